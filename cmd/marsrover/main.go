package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/vinser/marsrover/internal/app"
	"github.com/vinser/marsrover/internal/flags"
	"github.com/vinser/marsrover/internal/state"
)

var version = "dev"

func main() {
	fl := flags.Parse()
	if fl.Version {
		fmt.Println("marsrover", version)
		return
	}

	// Piped input is a mission file too.
	if fl.Batch() || !isTerminal(os.Stdin) {
		log.SetFlags(0)
		if err := runBatch(fl, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if fl.Debug {
		f, err := tea.LogToFile("marsrover-debug.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	st := getState(fl)
	defer st.SoundManager.Close()

	p := tea.NewProgram(app.New(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func getState(fl *flags.Flags) *state.State {
	if fl.Reset {
		st := state.New()
		if err := st.Save(); err != nil {
			log.Printf("reset settings: %v", err)
		}
		return st
	}
	st := state.Load()
	if fl.MuteSet {
		st.SetMute(fl.Mute)
	}
	return st
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
