package flags

import (
	"flag"
	"io"
	"os"
)

// Flags stores the parsed command-line options
type Flags struct {
	Script  string // mission file for batch mode, "-" for stdin
	Mute    bool
	MuteSet bool // -mute given explicitly, overrides the saved setting
	Reset   bool
	Debug   bool
	Version bool
	Demo    bool // run the built-in sample mission
}

// Batch reports whether a mission script was requested.
func (f *Flags) Batch() bool {
	return f.Script != "" || f.Demo
}

// Parse parses os.Args and exits on bad input.
func Parse() *Flags {
	fl, _ := parse(NewFlagSetWithVisit(), os.Args[1:])
	return fl
}

// ParseArgs parses args without exiting, writing usage to out on error.
func ParseArgs(args []string, out io.Writer) (*Flags, error) {
	return parse(newFlagSet("marsrover", flag.ContinueOnError, out), args)
}

func parse(fsv *FlagSetWithVisit, args []string) (*Flags, error) {
	var fl Flags

	fsv.StringVar(&fl.Script, "script", "s", "", "Run a mission file in batch mode (- reads stdin)")
	fsv.BoolVar(&fl.Mute, "mute", "m", false, "Mute all sounds")
	fsv.BoolVar(&fl.Reset, "reset", "r", false, "Reset saved settings")
	fsv.BoolVar(&fl.Debug, "debug", "d", false, "Write a debug log to marsrover-debug.log")
	fsv.BoolVar(&fl.Version, "version", "v", false, "Print version and exit")
	fsv.BoolVar(&fl.Demo, "demo", "", false, "Run the built-in sample mission")

	if err := fsv.Parse(args); err != nil {
		return nil, err
	}
	fl.MuteSet = fsv.IsCustom("mute")
	// A lone positional argument is taken as the mission file.
	if fl.Script == "" && len(fsv.Args()) == 1 {
		fl.Script = fsv.Args()[0]
	}
	return &fl, nil
}
