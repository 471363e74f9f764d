// vshell CLI entry point
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/batalabs/vshell/internal/config"
	"github.com/batalabs/vshell/internal/console"
	"github.com/batalabs/vshell/internal/execute"
	"github.com/batalabs/vshell/internal/session"
	"github.com/batalabs/vshell/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

// logPath is the log file a session started with -log=flagValue writes to.
func logPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.LogPath()
}

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	dirFlag := flag.String("dir", "", "Start in this directory")
	noHintsFlag := flag.Bool("no-hints", false, "Start with hint labels hidden")
	logFlag := flag.String("log", "", "Log file (default ~/.local/share/vshell/vshell.log)")
	initConfigFlag := flag.Bool("init-config", false, "Write the default config file and exit")
	showConfigFlag := flag.Bool("show-config", false, "Print the effective preferences and exit")
	setFlag := flag.String("set", "", "Update one preference (key=value) and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("vshell %s\n", version)
		return
	}

	if *initConfigFlag {
		if err := config.SavePreferences(config.DefaultPreferences()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", config.ConfigFilePath())
		return
	}

	prefs := config.LoadPreferences()

	if *setFlag != "" {
		if err := prefs.SetPair(*setFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := config.SavePreferences(prefs); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(config.FormatPreferences(prefs))
		return
	}

	if *showConfigFlag {
		fmt.Printf("%s\n%s\nlog: %s\n", config.ConfigFilePath(), config.FormatPreferences(prefs), logPath(*logFlag))
		return
	}

	logger := config.NewLogger(*logFlag)
	defer logger.Close()

	if *dirFlag != "" {
		if err := os.Chdir(*dirFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	startDir := mustGetwd()

	cfg := sessionConfig(prefs)
	if *noHintsFlag {
		cfg.HintState = session.HideHints
	}
	shared := session.NewShared(session.New(startDir, cfg))

	engine := &execute.Engine{Log: logger}
	runner := &console.TaskRunner{Shared: shared, Engine: engine, Log: logger}
	deps := console.Deps{
		Clipboard:    tui.SystemClipboard{},
		Runner:       runner,
		DefaultShell: prefs.DefaultShell,
		Log:          logger,
	}

	p := tui.NewProgram(tui.NewModel(shared, deps, tui.Options{
		TabGlyph:       prefs.TabGlyph,
		Highlight:      prefs.HighlightHistory,
		HighlightStyle: prefs.HighlightStyle,
	}))
	runner.Notify = func() { p.Send(tui.TaskDoneMsg{}) }

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Printf("received %s", sig)
		p.Send(tui.TerminateMsg{})
	}()

	logger.Printf("vshell %s started in %s", version, startDir)
	final, err := p.Run()
	signal.Stop(sigCh)
	joinRunningTask(shared, logger)

	if err != nil {
		fmt.Fprintf(os.Stderr, "vshell failed: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "vshell: %v\n", m.Err())
		if errors.Is(m.Err(), console.ErrTaskJoin) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// sessionConfig maps stored preferences onto the runtime display config.
func sessionConfig(p config.Preferences) session.Config {
	cfg := session.Config{HintState: session.ShowHints, HistoryType: session.CommandHistory}
	if !p.ShowHints {
		cfg.HintState = session.HideHints
	}
	if p.HistoryType == "directory" {
		cfg.HistoryType = session.DirectoryHistory
	}
	return cfg
}

// joinRunningTask kills and waits for a task still running when the
// program stops, so no child outlives vshell.
func joinRunningTask(shared *session.Shared, logger *config.Logger) {
	_ = shared.Do(func(m *session.Model) error {
		ex, ok := m.Mode.(*session.Executing)
		if !ok {
			return nil
		}
		ex.Task.Cancel()
		if _, err := ex.Task.Wait(); err != nil {
			logger.Printf("exit: join failed: %v", err)
		}
		m.Mode = &session.Quit{}
		return nil
	})
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	abs, err := filepath.Abs(wd)
	if err != nil {
		return wd
	}
	return abs
}
