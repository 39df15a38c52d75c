package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vanderheijden86/handover/pkg/config"
	"github.com/vanderheijden86/handover/pkg/debug"
	"github.com/vanderheijden86/handover/pkg/export"
	"github.com/vanderheijden86/handover/pkg/guide"
	"github.com/vanderheijden86/handover/pkg/metrics"
	_ "github.com/vanderheijden86/handover/pkg/ttyguard"
	"github.com/vanderheijden86/handover/pkg/ui"
	"github.com/vanderheijden86/handover/pkg/version"
	"github.com/vanderheijden86/handover/pkg/watcher"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	help          bool
	version       bool
	configPath    string
	section       string
	query         string
	robotSections bool
	robotPanel    bool
	exportMD      string
	exportHTML    string
	noWatch       bool
}

func main() {
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, interactive))
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("handover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.help, "help", false, "Show help")
	fs.BoolVar(&o.version, "version", false, "Show version")
	fs.StringVar(&o.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/handover/config.yaml)")
	fs.StringVar(&o.section, "section", "", "Section to open, by id or label (e.g. 'toolkit')")
	fs.StringVar(&o.query, "query", "", "Initial search text for the section list")
	fs.BoolVar(&o.robotSections, "robot-sections", false, "Print the (filtered) section list as JSON and exit")
	fs.BoolVar(&o.robotPanel, "robot-panel", false, "Print the active panel as JSON and exit")
	fs.StringVar(&o.exportMD, "export-md", "", "Write the whole guide as markdown to `path` and exit")
	fs.StringVar(&o.exportHTML, "export-html", "", "Write the whole guide as a static HTML page to `path` and exit")
	fs.BoolVar(&o.noWatch, "no-watch", false, "Do not reload the config file while the TUI runs")
	err := fs.Parse(args)
	return o, fs, err
}

func run(args []string, stdout, stderr io.Writer, interactive bool) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.help {
		printUsage(stdout, fs)
		return exitOK
	}

	if opts.version {
		fmt.Fprintf(stdout, "handover %s\n", version.Version)
		return exitOK
	}

	if opts.robotSections && opts.robotPanel {
		fmt.Fprintln(stderr, "Error: --robot-sections and --robot-panel are mutually exclusive")
		return exitUsage
	}

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		// Non-fatal: continue with defaults
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
	}

	state, err := initialState(cfg, opts.section, opts.query)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	now := time.Now()
	switch {
	case opts.robotSections:
		return writeOrFail(stderr, export.WriteRobotJSON(stdout, export.RobotSections(state, now)))
	case opts.robotPanel:
		return writeOrFail(stderr, export.WriteRobotJSON(stdout, export.RobotPanel(state, now)))
	}

	if opts.exportMD != "" || opts.exportHTML != "" {
		if opts.exportMD != "" {
			if err := export.SaveMarkdown(opts.exportMD); err != nil {
				return writeOrFail(stderr, err)
			}
			fmt.Fprintf(stdout, "Wrote %s\n", opts.exportMD)
		}
		if opts.exportHTML != "" {
			if err := export.SaveHTML(opts.exportHTML, export.HTMLOptions{Generated: now}); err != nil {
				return writeOrFail(stderr, err)
			}
			fmt.Fprintf(stdout, "Wrote %s\n", opts.exportHTML)
		}
		return exitOK
	}

	// Piped output gets the panel as plain markdown instead of a TUI.
	if !interactive {
		if _, err := io.WriteString(stdout, state.Panel().Markdown()); err != nil {
			return writeOrFail(stderr, err)
		}
		return exitOK
	}

	m := ui.NewModel(cfg, ui.WithSection(state.ActiveID()), ui.WithQuery(opts.query))
	p := newProgram(m)

	if !opts.noWatch && cfg.WatchEnabled() && cfgPath != "" {
		w, err := startConfigWatcher(cfgPath, p)
		if err != nil {
			debug.Log("config watcher disabled: %v", err)
		} else {
			defer w.Stop()
		}
	}

	err = runTUIProgram(p)
	debug.Log("metrics: %s", metrics.Summary())
	if err != nil {
		fmt.Fprintf(stderr, "Error running handover: %v\n", err)
		return exitError
	}
	return exitOK
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: handover [options]")
	fmt.Fprintln(w, "\nA terminal edition of the Interns Program handover guide.")
	fmt.Fprintln(w, "\nSections:")
	for i, sec := range guide.Sections() {
		fmt.Fprintf(w, "  %d  %-14s %s\n", i+1, sec.ID, sec.Label)
	}
	fmt.Fprintln(w, "\nOptions:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// loadConfig reads the config from path, or from the XDG location when path
// is empty. It returns the path that should be watched.
func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.LoadFrom(path)
		return cfg, path, err
	}
	cfg, err := config.Load()
	return cfg, config.ConfigPath(), err
}

// initialState resolves the start section (flag over config) and the
// initial query.
func initialState(cfg config.Config, section, query string) (guide.ViewState, error) {
	state := guide.NewViewState()
	state.SetActive(cfg.StartSection())
	if section != "" {
		id, ok := guide.ParseSectionID(section)
		if !ok {
			return state, fmt.Errorf("unknown section %q (valid: %s)", section, validSectionIDs())
		}
		state.SetActive(id)
	}
	state.SetQuery(query)
	return state, nil
}

func validSectionIDs() string {
	var ids []string
	for _, sec := range guide.Sections() {
		ids = append(ids, string(sec.ID))
	}
	return strings.Join(ids, ", ")
}

func writeOrFail(stderr io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// startConfigWatcher forwards config edits into the running program.
func startConfigWatcher(path string, p *tea.Program) (*watcher.Watcher, error) {
	w, err := watcher.NewWatcher(path,
		watcher.WithOnChange(func() {
			stop := metrics.Timer(metrics.ConfigReload)
			cfg, err := config.LoadFrom(path)
			stop()
			debug.Log("config changed: %s (err=%v)", path, err)
			p.Send(ui.ConfigReloadedMsg{Config: cfg, Err: err})
		}),
		watcher.WithOnError(func(err error) {
			debug.Log("config watcher: %v", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}

func newProgram(m ui.Model) *tea.Program {
	return tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)
}

func runTUIProgram(p *tea.Program) error {
	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated runs: set HANDOVER_TUI_AUTOCLOSE_MS.
	if ms := autocloseDelay(os.Getenv("HANDOVER_TUI_AUTOCLOSE_MS")); ms > 0 {
		go func() {
			timer := time.NewTimer(ms)
			defer timer.Stop()

			select {
			case <-runDone:
				return
			case <-timer.C:
			}

			p.Quit()

			select {
			case <-runDone:
				return
			case <-time.After(2 * time.Second):
			}

			p.Kill()
		}()
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}

func autocloseDelay(v string) time.Duration {
	if v == "" {
		return 0
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
