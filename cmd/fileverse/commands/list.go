package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type listConfig struct {
	*cli.Command
	app      *app
	Template bool `cli:"name=template aliases=t desc='list the shared template index'"`
	JSON     bool `cli:"name=json aliases=j desc='print one JSON object per entry'"`
}

// ListCommand returns the list subcommand.
func ListCommand(a *app) *cli.Command {
	cfg := &listConfig{app: a}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-template] [-json] <file> - List snapshots").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *listConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "list [-template] [-json] <file>")
	if err != nil {
		return err
	}

	src := fileverse.FileIndex
	if cfg.Template {
		src = fileverse.TemplateIndex
	}

	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		current := cfg.app.painter(cc.Out, color.FgGreen)
		n := 0
		for e, err := range s.List(src) {
			if err != nil {
				return err
			}
			n++
			if cfg.JSON {
				line, err := e.MarshalLine()
				if err != nil {
					return fmt.Errorf("encode entry: %w", err)
				}
				fmt.Fprintln(cc.Out, string(line))
				continue
			}
			fmt.Fprintln(cc.Out, formatEntry(e, current))
		}
		if n == 0 && !cfg.JSON {
			fmt.Fprintln(cc.Out, "No snapshots")
		}
		return nil
	})
}

func formatEntry(e fileverse.Entry, current func(...any) string) string {
	pos := fmt.Sprintf("%3d", e.Index)
	if e.Template {
		pos = "  T"
	}
	marker := " "
	if e.Current {
		marker = "*"
	}
	line := fmt.Sprintf("%s %s %s %4d lines  %s", marker, pos, e.Fingerprint[:8], e.Lines, e.Name)
	if e.Current {
		return current(line)
	}
	return line
}
