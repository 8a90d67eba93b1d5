package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type diffConfig struct {
	*cli.Command
	app *app
}

// DiffCommand returns the diff subcommand.
func DiffCommand(a *app) *cli.Command {
	cfg := &diffConfig{app: a}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <file> - Compare the current snapshot with the file").
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "diff <file>")
	if err != nil {
		return err
	}
	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		lines, err := s.Diff()
		if err != nil {
			return err
		}
		add := cfg.app.painter(cc.Out, color.FgGreen)
		del := cfg.app.painter(cc.Out, color.FgRed)
		for _, l := range lines {
			switch l.Op {
			case fileverse.DiffInsert:
				fmt.Fprintln(cc.Out, add("+"+l.Text))
			case fileverse.DiffDelete:
				fmt.Fprintln(cc.Out, del("-"+l.Text))
			default:
				fmt.Fprintln(cc.Out, " "+l.Text)
			}
		}
		return nil
	})
}
