package commands

import (
	"fmt"

	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type snapConfig struct {
	*cli.Command
	app      *app
	Name     string `cli:"name=name aliases=n desc='name the snapshot; an existing name is overwritten'"`
	Template bool   `cli:"name=template aliases=t desc='record in the shared template index (requires -name)'"`
}

// SnapCommand returns the snap subcommand.
func SnapCommand(a *app) *cli.Command {
	cfg := &snapConfig{app: a}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "snap").
		WithAliases("s").
		WithSynopsis("snap [-name N] [-template] <file> - Record a snapshot").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *snapConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "snap [-name N] [-template] <file>")
	if err != nil {
		return err
	}
	if cfg.Template && cfg.Name == "" {
		return fmt.Errorf("%w: -template requires -name", cli.ErrUsage)
	}

	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		if cfg.Template {
			if err := s.SnapTemplate(cfg.Name); err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "Template %s saved\n", cfg.Name)
			return nil
		}
		if err := s.Snap(cfg.Name); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "Snapshot saved")
		return nil
	})
}
