package commands

import (
	"fmt"

	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type commitConfig struct {
	*cli.Command
	app *app
}

// CommitCommand returns the commit subcommand.
func CommitCommand(a *app) *cli.Command {
	cfg := &commitConfig{app: a}
	return cli.NewCommandAt(&cfg.Command, "commit").
		WithAliases("c").
		WithSynopsis("commit <file> - Keep the staged snapshot as the file's content").
		WithRun(cfg.run)
}

func (cfg *commitConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "commit <file>")
	if err != nil {
		return err
	}
	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		if err := s.Commit(); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "Preview committed")
		return nil
	})
}
