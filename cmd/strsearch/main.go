package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/coregx/strsearch/cmd/strsearch/commands"
	"github.com/coregx/strsearch/internal/logger"
)

func main() {
	root := commands.NewRootCommand()
	err := root.Execute()
	logger.Cleanup()

	if err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		if hint := errors.FlattenHints(err); hint != "" {
			pterm.Info.WithWriter(os.Stderr).Println(hint)
		}
		os.Exit(1)
	}
}
