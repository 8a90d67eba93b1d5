package commands

import (
	"fmt"

	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type restoreConfig struct {
	*cli.Command
	app      *app
	Remove   bool   `cli:"name=remove aliases=r desc='drop the snapshot from the history after restoring it'"`
	Template string `cli:"name=template aliases=t desc='restore the named template instead'"`
}

// RestoreCommand returns the restore subcommand.
func RestoreCommand(a *app) *cli.Command {
	cfg := &restoreConfig{app: a}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "restore").
		WithAliases("r").
		WithSynopsis("restore [-remove | -template N] <file> - Write a snapshot into the file").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *restoreConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "restore [-remove | -template N] <file>")
	if err != nil {
		return err
	}
	if cfg.Template != "" && cfg.Remove {
		return fmt.Errorf("%w: -remove does not apply to templates", cli.ErrUsage)
	}

	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		if cfg.Template != "" {
			if err := s.RestoreTemplate(cfg.Template); err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "Template %s restored\n", cfg.Template)
			return nil
		}
		if err := s.Restore(cfg.Remove); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "Snapshot restored")
		return nil
	})
}
