// Command tokiconv converts Toki Pona text offline and maintains the preset
// dictionaries.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/MauritiusChief/toki-ante/internal/app"
	"github.com/MauritiusChief/toki-ante/internal/config"
)

// CLI defines the command-line interface for tokiconv.
var CLI struct {
	Verbose bool `short:"v" help:"Log diagnostics to stderr"`

	Convert ConvertCmd   `cmd:"" help:"Convert a text file to TXT and/or an HTML page"`
	Presets PresetsGroup `cmd:"" help:"Preset dictionary operations"`
	Search  SearchCmd    `cmd:"" help:"Search a dictionary"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// PresetsGroup contains preset dictionary operations.
type PresetsGroup struct {
	List     PresetsListCmd     `cmd:"" help:"List presets offered per mode"`
	Generate PresetsGenerateCmd `cmd:"" help:"Write the derived preset dictionaries"`
}

// env carries the process streams and logger into every command.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tokiconv"),
		kong.Description("Toki Pona ⇄ Hanzi dictionary converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := "warn"
	if CLI.Verbose {
		level = "debug"
	}

	err := ctx.Run(&env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		log:    app.NewLoggerTo(os.Stderr, config.LogConfig{Level: level, Format: "text"}),
	})
	ctx.FatalIfErrorf(err)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(e *env) error {
	_, err := io.WriteString(e.stdout, "tokiconv "+app.BuildVersion()+"\n")
	return err
}
