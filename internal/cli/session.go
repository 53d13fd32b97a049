package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/relist/internal/config"
	"github.com/idilsaglam/relist/internal/editor"
	"github.com/idilsaglam/relist/internal/logging"
	"github.com/idilsaglam/relist/internal/model"
	"github.com/idilsaglam/relist/internal/store/seedfile"
	"github.com/idilsaglam/relist/internal/ui"
)

// session is everything a command needs to work on one list.
type session struct {
	cfg  config.Config
	log  *zap.Logger
	ed   *editor.Editor
	seed []model.Item
	sep  string

	closeLog func()
}

func (s *session) close() {
	if s.closeLog != nil {
		s.closeLog()
	}
}

// openSession resolves config, applies the theme, builds the logger and
// seeds a fresh editor.
func openSession(cmd *cobra.Command, flags *rootFlags) (_ *session, err error) {
	cfg, err := config.Load(flags.configPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := ui.SetTheme(cfg.Theme); err != nil {
		return nil, usageError{err}
	}
	if cfg.NoColor || ui.ColorDisabled() {
		ui.SetColorForcing(false, true)
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	sep, err := unescape(cfg.Separator)
	if err != nil {
		return nil, usagef("separator %q: %v", cfg.Separator, err)
	}

	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, usageError{err}
	}
	defer func() {
		if err != nil {
			log.Debug("session aborted", zap.Error(err))
			closeLog()
		}
	}()

	seed := model.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = seedfile.Load(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
	}

	ids, err := editor.NewIDSource(cfg.IDs)
	if err != nil {
		return nil, usageError{err}
	}
	ed, err := editor.New(seed, editor.WithIDSource(ids), editor.WithLogger(log))
	if err != nil {
		return nil, err
	}

	log.Debug("session opened",
		zap.String("command", cmd.Name()),
		zap.String("seed_file", cfg.SeedFile),
		zap.Int("items", ed.Len()),
	)
	return &session{cfg: cfg, log: log, ed: ed, seed: seed, sep: sep, closeLog: closeLog}, nil
}

// unescape turns a flag value like `\n` or `,\t` into the real characters.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	return strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
}

func contentsOf(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Content
	}
	return out
}
