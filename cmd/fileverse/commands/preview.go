package commands

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/fileverse"
	"github.com/scott-cotton/cli"
)

type previewConfig struct {
	*cli.Command
	app      *app
	Backward bool   `cli:"name=backward aliases=b desc='stage the previous snapshot'"`
	Forward  bool   `cli:"name=forward aliases=f desc='stage the next snapshot'"`
	Index    string `cli:"name=index aliases=i desc='stage the snapshot at this position'"`
	Name     string `cli:"name=name aliases=n desc='stage the snapshot or template with this name'"`
	Template bool   `cli:"name=template aliases=t desc='read from the shared template index'"`
}

// PreviewCommand returns the preview subcommand.
func PreviewCommand(a *app) *cli.Command {
	cfg := &previewConfig{app: a}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "preview").
		WithAliases("p").
		WithSynopsis("preview [-backward|-forward|-index I|-name N] [-template] <file> - Stage a snapshot").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *previewConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile(args, "preview [-backward|-forward|-index I|-name N] [-template] <file>")
	if err != nil {
		return err
	}
	if count(cfg.Backward, cfg.Forward, cfg.Index != "", cfg.Name != "") > 1 {
		return fmt.Errorf("%w: use at most one of -backward, -forward, -index, -name", cli.ErrUsage)
	}
	index := 0
	if cfg.Index != "" {
		if index, err = strconv.Atoi(cfg.Index); err != nil {
			return fmt.Errorf("%w: -index %q is not a number", cli.ErrUsage, cfg.Index)
		}
	}

	src := fileverse.FileIndex
	if cfg.Template {
		src = fileverse.TemplateIndex
	}

	return cfg.app.withStore(path, func(s *fileverse.Store) error {
		var err error
		switch {
		case cfg.Backward:
			err = s.PreviewBackward(src)
		case cfg.Forward:
			err = s.PreviewForward(src)
		case cfg.Index != "":
			err = s.PreviewByIndex(src, index)
		case cfg.Name != "":
			err = s.PreviewByName(src, cfg.Name)
		default:
			err = s.PreviewCurrent(src)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "Snapshot staged; run commit to keep it or discard to drop it")
		return nil
	})
}

func count(vs ...bool) int {
	n := 0
	for _, v := range vs {
		if v {
			n++
		}
	}
	return n
}
