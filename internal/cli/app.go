// Package cli wires the shell core to a terminal: dialogs are Bubble Tea
// programs, the content surface prints what it is asked to load and page
// events are replayed from a file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shadowflee/fluxer/assets"
	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/build"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/infrastructure/colorscheme"
	"github.com/shadowflee/fluxer/internal/infrastructure/config"
	"github.com/shadowflee/fluxer/internal/infrastructure/persistence/sqlite"
	"github.com/shadowflee/fluxer/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	DB        port.DatabaseProvider

	// ErrorPage is the file:// URL of the fallback page, set by Prepare.
	ErrorPage string

	ctx       context.Context
	logCloser io.Closer
}

// Repositories are the stores backing a session.
type Repositories struct {
	Prefs    repository.PreferenceRepository
	Grants   repository.GrantRepository
	Channels repository.ChannelRepository
}

// NewApp loads the configuration and sets up logging. The database is opened
// on first use. parent bounds every command; nil means context.Background.
func NewApp(parent context.Context) (*App, error) {
	if parent == nil {
		parent = context.Background()
	}
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	cfg := config.DefaultConfig()
	if loadErr := mgr.Load(); loadErr != nil {
		// Keep going on defaults so that `config show` can still help.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", loadErr)
	} else {
		cfg = mgr.Get()
	}

	logging.ApplyLevel(cfg.Logging.Level)
	logCfg := logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	logger := logging.New(logCfg)
	var logCloser io.Closer
	if cfg.Logging.EnableFileLog && cfg.Logging.LogDir != "" {
		fileLogger, closer, fileErr := logging.NewWithFile(logCfg, logging.FileConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		})
		if fileErr != nil {
			logger.Warn().Err(fileErr).Msg("file logging disabled")
		} else {
			logger, logCloser = fileLogger, closer
		}
	}

	ctx := logging.WithContext(parent, logger)
	ctx = logging.WithSessionID(ctx, logging.GenerateSessionID())

	dbPath := cfg.Database.Path
	if dbPath == "" {
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			return nil, err
		}
	}

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewThemeFromPalette(styles.PaletteFor(resolveColorScheme(cfg).PrefersDark)),
		DB:        sqlite.NewHandle(dbPath),
		ctx:       ctx,
		logCloser: logCloser,
	}, nil
}

func resolveColorScheme(cfg *config.Config) port.ColorSchemePreference {
	override := cfg.Appearance.ColorScheme
	if override != "" && override != "default" {
		return colorscheme.NewResolver(override).Resolve()
	}
	portal := colorscheme.NewPortalDetector()
	defer portal.Close()
	return colorscheme.NewResolver(override,
		portal,
		colorscheme.NewEnvDetector(),
		colorscheme.NewGsettingsDetector(),
	).Resolve()
}

// Prepare opens the database and writes the bundled fallback page, in
// parallel. Commands that run a session call it first.
func (a *App) Prepare(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := a.DB.DB(gctx)
		return err
	})
	if a.Config.Shell.FallbackPage == "" {
		g.Go(func() error {
			dir, err := config.GetDataDir()
			if err != nil {
				return err
			}
			page, err := assets.WriteErrorPage(dir)
			if err != nil {
				return fmt.Errorf("write fallback page: %w", err)
			}
			a.ErrorPage = page
			return nil
		})
	} else {
		a.ErrorPage = a.Config.Shell.FallbackPage
	}
	return g.Wait()
}

// Repositories opens the database if needed and returns its stores.
func (a *App) Repositories(ctx context.Context) (Repositories, error) {
	db, err := a.DB.DB(ctx)
	if err != nil {
		return Repositories{}, err
	}
	return Repositories{
		Prefs:    sqlite.NewPreferenceRepository(db),
		Grants:   sqlite.NewGrantRepository(db),
		Channels: sqlite.NewChannelRepository(db),
	}, nil
}

// SessionConfig derives the session settings from the loaded config.
func (a *App) SessionConfig() usecase.SessionConfig {
	return usecase.SessionConfig{
		FallbackPage:       a.ErrorPage,
		DeepLinkScheme:     a.Config.Shell.DeepLinkScheme,
		ShareTextLimit:     a.Config.Shell.ShareTextLimit,
		ChannelDisplayName: a.Config.Shell.ChannelDisplayName,
		DownloadDir:        a.Config.Downloads.Directory,
	}
}

// WatchConfig follows the config file while a session runs. A changed log
// level applies at once; other keys take effect on the next start.
func (a *App) WatchConfig() error {
	exists, err := fileExists(a.Manager.GetConfigFile())
	if err != nil || !exists {
		return err
	}
	log := logging.FromContext(a.ctx)
	a.Manager.OnConfigChange(func(c *config.Config) {
		level := logging.ApplyLevel(c.Logging.Level)
		log.Info().Str("level", level.String()).Msg("config reloaded")
	})
	return a.Manager.Watch()
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}
