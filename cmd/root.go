// Package cmd wires the CLI surface: flags, config loading, and the
// trainer program itself.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Deetschoe/monkeycmd/internal/config"
	"github.com/Deetschoe/monkeycmd/internal/game"
	"github.com/Deetschoe/monkeycmd/internal/infrastructure/sqlite"
	"github.com/Deetschoe/monkeycmd/internal/log"
	"github.com/Deetschoe/monkeycmd/internal/ui/styles"
	"github.com/Deetschoe/monkeycmd/internal/ui/trainer"
	"github.com/Deetschoe/monkeycmd/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "monkeycmd",
	Short:   "Practice keyboard shortcuts for editing text",
	Long:    `A typing trainer for text-editing keyboard shortcuts: jump, select, and delete by word and line against the clock, with per-platform key chords.`,
	Version: version,
	RunE:    runTrainer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/monkeycmd/config.yaml)")
	rootCmd.PersistentFlags().StringP("os", "o", "",
		"platform to train: mac, windows, or linux (default: autodetect)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write a debug log next to the score database")
	rootCmd.Flags().IntP("duration", "d", 0,
		"session length in seconds")
	rootCmd.Flags().Bool("no-save", false,
		"do not persist the session score")

	// Bind flags to viper
	_ = viper.BindPFlag("os", rootCmd.PersistentFlags().Lookup("os"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("duration", rootCmd.Flags().Lookup("duration"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("duration", defaults.Duration)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.show_key_hint", defaults.UI.ShowKeyHint)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)
	viper.SetDefault("theme.cursor", defaults.Theme.Cursor)
	viper.SetDefault("theme.selection", defaults.Theme.Selection)

	viper.SetEnvPrefix("MONKEYCMD")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .monkeycmd/config.yaml (current directory)
		// 2. ~/.config/monkeycmd/config.yaml (user config)
		if _, err := os.Stat(filepath.Join(".monkeycmd", "config.yaml")); err == nil {
			viper.SetConfigFile(filepath.Join(".monkeycmd", "config.yaml"))
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "monkeycmd"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "monkeycmd", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runTrainer(cmd *cobra.Command, args []string) error {
	cleanup := initDebugLog()
	defer cleanup()

	osTarget, err := cfg.ResolveOS()
	if err != nil {
		return err
	}
	ids, err := cfg.EnabledCommands()
	if err != nil {
		return err
	}

	styles.ApplyTheme(
		cfg.Theme.Highlight, cfg.Theme.Subtle,
		cfg.Theme.Error, cfg.Theme.Success,
		cfg.Theme.Cursor, cfg.Theme.Selection,
	)

	// Scores are persisted unless the user opts out or the database
	// cannot be opened; neither should keep the trainer from running.
	var repo game.RunRepository
	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		db, dbErr := sqlite.NewDB(cfg.DatabasePath())
		if dbErr != nil {
			fmt.Fprintf(os.Stderr, "warning: scores will not be saved: %v\n", dbErr)
		} else {
			repo = db.RunRepository()
			defer func() { _ = db.Close() }()
		}
	}

	model, err := trainer.New(cfg, osTarget, ids, repo)
	if err != nil {
		return fmt.Errorf("starting trainer: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	stopWatch := watchConfig(p)
	defer stopWatch()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// initDebugLog enables file logging when --debug or MONKEYCMD_DEBUG is
// set. Returns a cleanup function; logging stays disabled otherwise.
func initDebugLog() func() {
	if !viper.GetBool("debug") && os.Getenv("MONKEYCMD_DEBUG") == "" {
		return func() {}
	}
	cleanup, err := log.Init(config.DefaultLogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		return func() {}
	}
	return cleanup
}

// watchConfig reloads the config file on change and feeds the result to
// the running program. Returns a stop function.
func watchConfig(p *tea.Program) func() {
	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		return func() {}
	}

	w, err := watcher.New(watcher.DefaultConfig(configPath))
	if err != nil {
		log.ErrorErr(log.CatWatch, "config watcher unavailable", err)
		return func() {}
	}

	onChange, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatWatch, "config watcher failed to start", err)
		_ = w.Stop()
		return func() {}
	}

	go func() {
		for range onChange {
			if err := viper.ReadInConfig(); err != nil {
				log.ErrorErr(log.CatConfig, "config reload failed", err)
				continue
			}
			var fresh config.Config
			if err := viper.Unmarshal(&fresh); err != nil {
				log.ErrorErr(log.CatConfig, "config reload failed", err)
				continue
			}
			p.Send(trainer.ReloadMsg{Cfg: fresh})
		}
	}()

	return func() { _ = w.Stop() }
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
