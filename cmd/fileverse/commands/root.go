package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jpl-au/fileverse"
	"github.com/jpl-au/fileverse/internal/config"
	"github.com/jpl-au/fileverse/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"
)

const usageText = `fileverse - snapshot history for a single file

Usage:
  fileverse snap [-name N] <file>                 Record the file as a new snapshot
  fileverse snap -template -name N <file>         Record the file as a shared template
  fileverse restore [-remove] <file>              Write the current snapshot into the file
  fileverse restore -template N <file>            Write a template into the file
  fileverse preview [-backward|-forward] <file>   Stage a snapshot at the top of the file
  fileverse preview -index I <file>               Stage snapshot I
  fileverse preview -name N [-template] <file>    Stage a named snapshot or template
  fileverse commit <file>                         Keep the staged snapshot as the file
  fileverse discard <file>                        Drop the staged snapshot
  fileverse reset <file>                          Forget all snapshots of the file
  fileverse list [-template] [-json] <file>       List snapshots
  fileverse diff <file>                           Compare current snapshot with the file

Configuration is read from $FILEVERSE_CONFIG or the user config directory
(fileverse/config.yaml) and can be overridden by FILEVERSE_* variables.`

// Root returns the root command for fileverse.
func Root() *cli.Command {
	a := &app{}

	return cli.NewCommand("fileverse").
		WithSynopsis("fileverse - snapshot history for a single file").
		WithDescription(usageText).
		WithSubs(
			SnapCommand(a),
			RestoreCommand(a),
			PreviewCommand(a),
			CommitCommand(a),
			DiscardCommand(a),
			ResetCommand(a),
			ListCommand(a),
			DiffCommand(a),
		)
}

// app carries what every subcommand needs: settings and a logger, loaded
// on first use.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func (a *app) setup() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(config.Path(""))
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// withStore opens the store for path, runs fn and closes the store. Errors
// are logged before they are returned to the command line.
func (a *app) withStore(path string, fn func(*fileverse.Store) error) error {
	if err := a.setup(); err != nil {
		return err
	}
	alg, err := fileverse.ParseAlgorithm(a.cfg.HashAlgorithm)
	if err != nil {
		return err
	}

	store, err := fileverse.Open(path, fileverse.Config{
		Template:      a.cfg.Templates,
		HashAlgorithm: alg,
		SyncWrites:    a.cfg.SyncWrites,
		Logger:        &a.log,
	})
	if err != nil {
		a.log.Error().Err(err).Str("file", path).Msg("open failed")
		return err
	}
	defer store.Close()

	if err := fn(store); err != nil {
		a.log.Error().Err(err).Str("file", path).Msg("command failed")
		return err
	}
	return nil
}

// colorize decides whether output to w gets colour.
func (a *app) colorize(w io.Writer) bool {
	switch a.cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// painter returns a Sprint function for attr, honouring colorize.
func (a *app) painter(w io.Writer, attr color.Attribute) func(...any) string {
	c := color.New(attr)
	if a.colorize(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// oneFile checks that exactly one file argument is left.
func oneFile(args []string, usage string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: usage: fileverse %s", cli.ErrUsage, usage)
	}
	return args[0], nil
}
