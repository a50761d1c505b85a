// Package cli implements the resizable command-line interface.
//
// # Commands
//
//   - simulate: replay scripted drags from a TOML scenario and print a frame trace
//   - tui: resize a box in the terminal with the mouse
//   - store: inspect and clear persisted sizes
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/resizable/pkg/buildinfo"
	"github.com/matzehuels/resizable/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "resizable"

	// redisConnectTimeout bounds the initial PING to a redis store.
	redisConnectTimeout = 5 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Resizable drives resize handles headlessly or in the terminal",
		Long:         `Resizable is a resize-handle engine. It replays scripted drags against a headless layout, or lets you resize a box in the terminal with the mouse.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// storeFlags selects a persisted-size backend.
type storeFlags struct {
	noStore   bool
	dir       string
	redisAddr string
	redisDB   int
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noStore, "no-store", false, "do not load or save sizes")
	cmd.Flags().StringVar(&f.dir, "store-dir", "", "directory for saved sizes (default: XDG state dir)")
	cmd.Flags().StringVar(&f.redisAddr, "redis", "", "save sizes in redis at host:port instead of files")
	cmd.Flags().IntVar(&f.redisDB, "redis-db", 0, "redis database number")
}

// openStore builds the selected store. A file store that cannot be created falls
// back to the null store with a warning.
func (c *CLI) openStore(ctx context.Context, f storeFlags) (store.Store, error) {
	if f.noStore {
		return store.NewNullStore(), nil
	}
	if f.redisAddr != "" {
		ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
		defer cancel()

		spin := newSpinnerWithContext(ctx, "Connecting to redis at "+f.redisAddr)
		spin.Start()
		s, err := store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     f.redisAddr,
			Password: redisPassword(),
			DB:       f.redisDB,
		})
		spin.Stop()
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis store", "addr", f.redisAddr, "db", f.redisDB)
		return s, nil
	}

	s, err := store.NewFileStore(f.dir)
	if err != nil {
		c.Logger.Warn("size store unavailable, sizes will not persist", "err", err)
		return store.NewNullStore(), nil
	}
	c.Logger.Debug("using file store", "dir", s.Dir())
	return s, nil
}
