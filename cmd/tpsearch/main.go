package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/smileynet/tpsearch"
	"github.com/smileynet/tpsearch/internal/config"
	"github.com/smileynet/tpsearch/internal/logging"
	"github.com/smileynet/tpsearch/internal/render"
	"github.com/smileynet/tpsearch/internal/search"
	"github.com/smileynet/tpsearch/internal/source"
	"github.com/smileynet/tpsearch/internal/viewer"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errNoMatches reports a search whose filters excluded every row.
var errNoMatches = errors.New("no rows matched")

// sampleName labels the embedded dataset in logs and the viewer header.
const sampleName = "sample data"

// CLI is the top-level command structure for tpsearch.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	View    ViewCmd          `cmd:"" help:"Browse training providers interactively."`
	Search  SearchCmd        `cmd:"" help:"Print one page of matching training providers."`
}

// SourceFlags are the dataset and paging flags shared by every command.
type SourceFlags struct {
	CSV      string `name:"csv" help:"Provider CSV file. Defaults to config source.path, then the embedded sample." type:"path"`
	PageSize int    `help:"Rows per page. Must be one of view.page_sizes. 0 uses the configured default."`
}

// apply overrides config values with any flags that were set.
func (f SourceFlags) apply(cfg *config.Config) {
	if f.CSV != "" {
		cfg.Source.Path = f.CSV
	}
	if f.PageSize != 0 {
		cfg.View.PageSize = f.PageSize
	}
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/tpsearch/config.yaml"),
		".tpsearch.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads config, applies flag overrides, and validates the result.
func setup(flags SourceFlags) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTable reads the provider CSV at path, or the embedded sample when path
// is empty. It also returns a label for the dataset.
func loadTable(path string) (search.Table, string, error) {
	if path == "" {
		t, err := source.OpenFS(tpsearch.Data, tpsearch.SampleFile)
		return t, sampleName, err
	}
	t, err := source.Open(path)
	return t, path, err
}

// loadArt reads the surprise art, preferring a copy in the user config directory.
func loadArt() (string, error) {
	local := os.ExpandEnv("$HOME/.config/tpsearch")
	data, err := fs.ReadFile(tpsearch.OverlayFS(local, tpsearch.Art), tpsearch.ArtFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", tpsearch.ArtFile, err)
	}
	return string(data), nil
}

// --- View command ---

// ViewCmd opens the interactive provider browser.
type ViewCmd struct {
	SourceFlags `embed:""`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the viewer and launches it on the alternate screen.
func (v *ViewCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("view: requires a terminal (TTY)")
	}

	cfg, err := setup(v.SourceFlags)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	log, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, File: logFile})
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	defer closer.Close()

	tbl, name, err := loadTable(cfg.Source.Path)
	if err != nil {
		log.Error().Err(err).Str("source", cfg.Source.Path).Msg("load failed")
		return fmt.Errorf("view: %w", err)
	}

	opts := []viewer.ModelOption{
		viewer.WithPageSizes(cfg.View.PageSizes, cfg.View.PageSize),
		viewer.WithLogger(logging.Component(log, "viewer")),
		viewer.WithSourceName(name),
	}
	if cfg.View.EasterEgg {
		art, err := loadArt()
		if err != nil {
			log.Warn().Err(err).Msg("surprise disabled")
		} else {
			opts = append(opts, viewer.WithEasterEgg(art))
		}
	}

	m := viewer.NewModel(tbl, opts...)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return v.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (v *ViewCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("view: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// --- Search command ---

// SearchCmd filters the dataset and prints a single page of results.
type SearchCmd struct {
	Query   string `arg:"" optional:"" help:"Text matched case-insensitively against every column."`
	Name    string `help:"Filter on the Training Provider Name column."`
	Address string `help:"Filter on the Address column."`
	Phone   string `help:"Filter on the Telephone No. column."`
	Email   string `help:"Filter on the Email column."`
	Page    int    `help:"Page number. Out-of-range values are clamped." default:"1"`
	Format  string `help:"Output format (text, json, yaml)." enum:"text,json,yaml" default:"text" short:"o"`

	SourceFlags `embed:""`
}

// Run loads config and data, then writes the requested page to stdout.
func (s *SearchCmd) Run() error {
	cfg, err := setup(s.SourceFlags)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	log, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, Console: os.Stderr})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	defer closer.Close()

	tbl, name, err := loadTable(cfg.Source.Path)
	if err != nil {
		log.Error().Err(err).Str("source", cfg.Source.Path).Msg("load failed")
		return fmt.Errorf("search: %w", err)
	}
	log.Debug().Int("rows", len(tbl)).Str("source", name).Msg("dataset loaded")

	return s.run(os.Stdout, cfg, tbl, logging.Component(log, "search"))
}

// criteria builds search criteria from the query argument and column flags.
func (s *SearchCmd) criteria() search.Criteria {
	c := search.Criteria{Global: s.Query}
	for field, q := range map[search.Field]string{
		search.FieldName:    s.Name,
		search.FieldAddress: s.Address,
		search.FieldPhone:   s.Phone,
		search.FieldEmail:   s.Email,
	} {
		if q != "" {
			c = c.With(field, q)
		}
	}
	return c
}

// run filters tbl, clamps the page, and renders it to w. It returns
// errNoMatches when no row passes the filters.
func (s *SearchCmd) run(w io.Writer, cfg *config.Config, tbl search.Table, log zerolog.Logger) error {
	format, err := render.ParseFormat(s.Format)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	size := cfg.View.PageSize
	filtered := search.Filter(tbl, s.criteria())
	page := search.ClampPage(s.Page, search.TotalPages(len(filtered), size))
	if page != s.Page {
		log.Warn().Int("requested", s.Page).Int("page", page).Msg("page out of range, clamped")
	}

	res := search.Paginate(filtered, len(tbl), search.PageRequest{Size: size, Number: page})
	log.Debug().Int("matches", res.FilteredRows).Int("page", res.Page).Msg("search complete")

	if err := render.Write(w, res, format); err != nil {
		return fmt.Errorf("search: writing output: %w", err)
	}
	if res.FilteredRows == 0 {
		return errNoMatches
	}
	return nil
}

const (
	exitSuccess   = 0
	exitNoMatches = 1
	exitSetup     = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errNoMatches) {
		return exitNoMatches
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tpsearch"),
		kong.Description("Search and page through training provider contact records."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		// The no-match notice is already part of the rendered output.
		if !errors.Is(err, errNoMatches) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(exitCode(err))
	}
}
