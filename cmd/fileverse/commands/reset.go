package commands

import (
	"fmt"

	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type resetConfig struct {
	*cli.Command
	app *app
}

// ResetCommand returns the reset subcommand.
func ResetCommand(a *app) *cli.Command {
	cfg := &resetConfig{app: a}
	return cli.NewCommandAt(&cfg.Command, "reset").
		WithSynopsis("reset <file> - Forget every snapshot of the file").
		WithRun(cfg.run)
}

func (cfg *resetConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "reset <file>")
	if err != nil {
		return err
	}
	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		if err := s.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "History cleared")
		return nil
	})
}
