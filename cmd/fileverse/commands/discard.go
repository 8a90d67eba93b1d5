package commands

import (
	"fmt"

	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type discardConfig struct {
	*cli.Command
	app *app
}

// DiscardCommand returns the discard subcommand.
func DiscardCommand(a *app) *cli.Command {
	cfg := &discardConfig{app: a}
	return cli.NewCommandAt(&cfg.Command, "discard").
		WithAliases("d").
		WithSynopsis("discard <file> - Drop the staged snapshot").
		WithRun(cfg.run)
}

func (cfg *discardConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "discard <file>")
	if err != nil {
		return err
	}
	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		if err := s.Discard(); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "Preview discarded")
		return nil
	})
}
