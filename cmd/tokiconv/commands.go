package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MauritiusChief/toki-ante/internal/adapter/provider/remote"
	"github.com/MauritiusChief/toki-ante/internal/adapter/provider/source"
	"github.com/MauritiusChief/toki-ante/internal/convert"
	"github.com/MauritiusChief/toki-ante/internal/csvdict"
	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/preset"
	"github.com/MauritiusChief/toki-ante/internal/service/dictionary"
)

const maxFileBytes = 64 << 20

// DictFlags select the dictionary a command works with.
type DictFlags struct {
	Dict      string        `short:"d" help:"Dictionary CSV file (overrides --preset)" type:"existingfile"`
	Preset    string        `short:"p" help:"Preset id" default:"default"`
	PresetURL string        `name:"preset-url" help:"Fetch presets from this base URL instead of the embedded bundle" env:"DICT_PRESET_BASE_URL"`
	Timeout   time.Duration `help:"Timeout for remote presets" default:"10s"`
}

func (f *DictFlags) load(ctx context.Context, log *slog.Logger) (*domain.Dictionary, string, error) {
	if f.Dict != "" {
		text, err := readFile(f.Dict)
		if err != nil {
			return nil, "", err
		}
		d, err := csvdict.Parse(text)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", f.Dict, err)
		}
		return d, preset.UploadName(filepath.Base(f.Dict)), nil
	}

	p, ok := preset.Lookup(f.Preset)
	if !ok {
		return nil, "", fmt.Errorf("unknown preset %q", f.Preset)
	}

	var fetcher preset.Fetcher
	if f.PresetURL != "" {
		fetcher = remote.NewProvider(f.PresetURL, f.Timeout, log)
	}
	bundle, err := preset.NewBundle(log, fetcher)
	if err != nil {
		return nil, "", err
	}

	text, err := bundle.Text(ctx, p.ID)
	if err != nil {
		return nil, "", err
	}
	d, err := csvdict.Parse(text)
	if err != nil {
		return nil, "", fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return d, p.Label, nil
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := source.ReadText(f, maxFileBytes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// ---------------------------------------------------------------------------
// convert
// ---------------------------------------------------------------------------

// ConvertCmd converts a text file with a dictionary.
type ConvertCmd struct {
	DictFlags

	Input string `arg:"" optional:"" help:"Input text file; stdin when omitted or '-'" default:"-"`
	Mode  string `short:"m" help:"Conversion direction" enum:"forward,reverse" default:"forward"`
	Txt   string `help:"Write plain text to this file" type:"path"`
	HTML  string `name:"html" help:"Write an HTML page with tooltips to this file" type:"path"`
}

func (c *ConvertCmd) Run(e *env) error {
	ctx := context.Background()

	d, name, err := c.load(ctx, e.log)
	if err != nil {
		return err
	}
	e.log.Debug("dictionary loaded", slog.String("name", name), slog.Int("entries", d.Len()))

	var text string
	if c.Input == "" || c.Input == "-" {
		text, err = source.ReadText(e.stdin, maxFileBytes)
	} else {
		text, err = readFile(c.Input)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	spans := convert.NewConverter(domain.Mode(c.Mode)).Convert(text, d)

	if c.Txt == "" && c.HTML == "" {
		_, err := io.WriteString(e.stdout, convert.RenderPlain(spans))
		return err
	}
	if c.Txt != "" {
		if err := os.WriteFile(c.Txt, []byte(convert.RenderPlain(spans)), 0o644); err != nil {
			return fmt.Errorf("write txt: %w", err)
		}
	}
	if c.HTML != "" {
		page := convert.RenderPage(convert.RenderHTML(spans))
		if err := os.WriteFile(c.HTML, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
	}

	fmt.Fprintln(e.stdout, "转换完成！")
	return nil
}

// ---------------------------------------------------------------------------
// presets
// ---------------------------------------------------------------------------

// PresetsListCmd prints the presets offered per mode.
type PresetsListCmd struct{}

func (c *PresetsListCmd) Run(e *env) error {
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tID\tFILE\tLABEL")
	for _, mode := range []domain.Mode{domain.ModeForward, domain.ModeReverse} {
		for _, p := range preset.List(mode) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mode, p.ID, p.File, p.Label)
		}
	}
	return tw.Flush()
}

// PresetsGenerateCmd derives the variant dictionaries from a base file.
type PresetsGenerateCmd struct {
	Base string `help:"Base dictionary CSV (embedded one when omitted)" type:"existingfile"`
	Out  string `short:"o" help:"Output directory" type:"path" default:"."`
}

func (c *PresetsGenerateCmd) Run(e *env) error {
	base := preset.BaseCSV()
	if c.Base != "" {
		text, err := readFile(c.Base)
		if err != nil {
			return err
		}
		base = text
	}

	files, err := preset.BuildFiles(base)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		if name != preset.BaseFile {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(c.Out, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		e.log.Info("preset written", slog.String("path", path))
		fmt.Fprintf(e.stdout, "已生成 %s\n", path)
	}
	return nil
}

// ---------------------------------------------------------------------------
// search
// ---------------------------------------------------------------------------

// SearchCmd lists dictionary entries containing the query.
type SearchCmd struct {
	DictFlags

	Query string `arg:"" help:"Text to look for in key, display or gloss"`
}

func (c *SearchCmd) Run(e *env) error {
	d, _, err := c.load(context.Background(), e.log)
	if err != nil {
		return err
	}

	rows := dictionary.SearchDictionary(d, c.Query)
	if len(rows) == 0 {
		fmt.Fprintf(e.stdout, "no entries match %q\n", strings.TrimSpace(c.Query))
		return nil
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Display, r.Gloss)
	}
	return tw.Flush()
}
