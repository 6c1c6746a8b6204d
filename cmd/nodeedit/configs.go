package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/nodeedit/config"
	"github.com/signadot/nodeedit/debug"
	"github.com/signadot/nodeedit/encode"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='config file (yaml), default $NODEEDIT_CONFIG'"`
	Color      bool   `cli:"name=color desc='encode with color'"`
	Debug      bool   `cli:"name=debug desc='debug logging and tracing'"`

	Main *cli.Command

	File *config.Config
	Log  *slog.Logger
}

// setup loads the config file and installs the logger.
func (cfg *MainConfig) setup() error {
	file, err := config.Find(cfg.ConfigFile)
	if err != nil {
		return err
	}
	cfg.File = file
	level, err := file.Level()
	if err != nil {
		return err
	}
	if cfg.Debug || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	if cfg.Debug {
		debug.SetAll(true)
	}
	cfg.Log = newLog(os.Stderr, level)
	slog.SetDefault(cfg.Log)
	return nil
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return nil
		}
		break
	}
	switch cfg.File.Color {
	case config.ColorAlways:
		return encode.NewColors()
	case config.ColorNever:
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeIndent(cfg.File.Indent),
		encode.EncodeColors(cfg.colors(w)),
	}
}

type NodesConfig struct {
	*MainConfig
	Nodes *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool   `cli:"name=s desc='save value as a string'"`
	Out    string `cli:"name=o desc='output file, - for stdout (default: the input file)'"`

	Set *cli.Command
}

type EditConfig struct {
	*MainConfig
	Edit *cli.Command
}

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", cli.ErrUsage, fmt.Sprintf(format, args...))
}
