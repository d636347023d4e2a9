package main

import (
	"bytes"
	"io"
	"os"

	"github.com/vinser/marsrover/internal/embeddata"
	"github.com/vinser/marsrover/internal/flags"
	"github.com/vinser/marsrover/internal/mission"
)

// runBatch executes a mission script and prints one result line per robot.
// The script comes from the -script file, the built-in sample, or stdin.
func runBatch(fl *flags.Flags, stdin io.Reader, stdout io.Writer) error {
	name, src, err := openScript(fl, stdin)
	if err != nil {
		return err
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	script, err := mission.Parse(name, src)
	if err != nil {
		return err
	}
	report, err := mission.Execute(script)
	if report != nil {
		if werr := report.Write(stdout); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func openScript(fl *flags.Flags, stdin io.Reader) (string, io.Reader, error) {
	switch {
	case fl.Demo:
		data, err := embeddata.ReadSampleMission()
		if err != nil {
			return "", nil, err
		}
		return "sample.txt", bytes.NewReader(data), nil
	case fl.Script == "" || fl.Script == "-":
		return "stdin", stdin, nil
	}
	f, err := os.Open(fl.Script)
	if err != nil {
		return "", nil, err
	}
	return fl.Script, f, nil
}
