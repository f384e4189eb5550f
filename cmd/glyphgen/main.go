package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/teranos/smufl/cmd/glyphgen/cmd"
	"github.com/teranos/smufl/errors"
	"github.com/teranos/smufl/logger"
)

// Exit codes
const (
	exitDrift = 1 // catalogue was out of date
	exitError = 2 // anything else
)

func main() {
	err := cmd.GlyphgenCmd.Execute()
	logger.Cleanup()
	if err == nil {
		return
	}

	pterm.Error.Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.Println(hint)
	}

	if errors.IsDrift(err) {
		os.Exit(exitDrift)
	}
	os.Exit(exitError)
}
