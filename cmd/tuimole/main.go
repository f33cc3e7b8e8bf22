// Package main provides the CLI entrypoint for tuimole.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuimole/internal/config"
	"github.com/verte-zerg/tuimole/internal/model"
	"github.com/verte-zerg/tuimole/internal/scoresui"
	"github.com/verte-zerg/tuimole/internal/store"
	"github.com/verte-zerg/tuimole/internal/tui"
)

const defaultDifficulty = "medium"

var (
	playDifficulty string
	playDuration   int
	playRows       int
	playCols       int

	scoresMode  string
	scoresSince string
	scoresLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuimole",
		Short:         "TUI whack-a-mole",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayCmd(cmd, model.ModeClassic)
		},
	}

	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", defaultDifficulty, "difficulty (easy, medium, hard)")
	addBoardFlags(rootCmd)

	rootCmd.AddCommand(newSilverCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&playDuration, "duration", 0, "round length in seconds (default from config)")
	cmd.Flags().IntVar(&playRows, "rows", 0, "board rows (default from config)")
	cmd.Flags().IntVar(&playCols, "cols", 0, "board columns (default from config)")
}

func newSilverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "silver",
		Short: "Play Silver mode (speeds up as you score)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayCmd(cmd, model.ModeSilver)
		},
	}
	addBoardFlags(cmd)
	return cmd
}

func runPlayCmd(cmd *cobra.Command, mode model.Mode) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := fileCfg.GameConfig()
	applyDurationFlag(cmd, "duration", &cfg.Duration, playDuration)
	applyIntFlag(cmd, "rows", &cfg.Rows, playRows)
	applyIntFlag(cmd, "cols", &cfg.Cols, playCols)

	difficulty := model.DifficultyMedium
	if mode == model.ModeClassic {
		difficulty, err = model.ParseDifficulty(playDifficulty)
		if err != nil {
			return err
		}
	}

	if err := validateGameConfig(cfg); err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	playModel := tui.NewModel(cfg, mode, difficulty, st)
	program := tea.NewProgram(playModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Browse high scores and round history",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresMode, "mode", "", "mode filter (classic, silver)")
	cmd.Flags().StringVar(&scoresSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&scoresLast, "last", 0, "limit to last N rounds")
	return cmd
}

func runScoresCmd(_ *cobra.Command, _ []string) error {
	filter := model.RoundFilter{Last: scoresLast}
	switch strings.TrimSpace(strings.ToLower(scoresMode)) {
	case "":
	case string(model.ModeClassic):
		filter.Mode = model.ModeClassic
	case string(model.ModeSilver):
		filter.Mode = model.ModeSilver
	default:
		return fmt.Errorf("unknown mode %q (classic, silver)", scoresMode)
	}
	if scoresSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", scoresSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	scoresModel := scoresui.NewModel(st, filter)
	program := tea.NewProgram(scoresModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run scores TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyDurationFlag(cmd *cobra.Command, name string, target *time.Duration, seconds int) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = time.Duration(seconds) * time.Second
}

func validateGameConfig(cfg model.GameConfig) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.Rows <= 0 {
		return fmt.Errorf("--rows must be > 0")
	}
	if cfg.Cols <= 0 {
		return fmt.Errorf("--cols must be > 0")
	}
	if cfg.Rows*cfg.Cols < 2 {
		return fmt.Errorf("board needs at least two cells")
	}
	return nil
}

func defaultConfigTemplate() string {
	def := model.DefaultGameConfig()
	return fmt.Sprintf(`# tuimole configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# duration = %d       # Round length in seconds
# rows = %d           # Board rows
# cols = %d           # Board columns

[difficulty]
# easy = %d         # Target lifetime in ms
# medium = %d
# hard = %d

[animation]
# appear-frames = %d
# disappear-frames = %d
# classic-frame = %d  # Animation frame delay in ms
# silver-frame = %d

[silver]
# base = %d         # Starting lifetime in ms
# step = %d          # Lifetime reduction per level in ms
# floor = %d          # Minimum lifetime in ms
# level-every = %d     # Points per level-up

[confetti]
# count = %d
# frames = %d
`,
		int(def.Duration/time.Second),
		def.Rows,
		def.Cols,
		int(def.Lifetimes[model.DifficultyEasy]/time.Millisecond),
		int(def.Lifetimes[model.DifficultyMedium]/time.Millisecond),
		int(def.Lifetimes[model.DifficultyHard]/time.Millisecond),
		def.AppearFrames,
		def.DisappearFrames,
		int(def.FrameDelay[model.ModeClassic]/time.Millisecond),
		int(def.FrameDelay[model.ModeSilver]/time.Millisecond),
		int(def.SilverBaseLifetime/time.Millisecond),
		int(def.SilverStep/time.Millisecond),
		int(def.SilverFloor/time.Millisecond),
		def.SilverLevelEvery,
		def.ConfettiCount,
		def.ConfettiFrames,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
