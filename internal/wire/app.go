package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/mithrel/notepolish/internal/config"
	"github.com/mithrel/notepolish/internal/enhance"
	"github.com/mithrel/notepolish/internal/notebook"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg      config.Config
	Log      *log.Logger
	Notebook notebook.Store
	Rewriter enhance.Rewriter
}

// BuildApp wires dependencies from resolved Viper state.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	cfg := config.FromViper(v)
	logger := log.New(os.Stderr, "notepolish ", log.LstdFlags)

	store, err := notebook.Open(ctx, cfg.Backend, config.ResolveDBPath(v))
	if err != nil {
		return nil, err
	}

	var rw enhance.Rewriter = enhance.NopRewriter{}
	if cfg.EnhanceEnabled {
		rw = enhance.NewCommandRewriter(cfg.EnhanceCommand, cfg.EnhanceTimeout)
	}

	return &App{
		Cfg:      cfg,
		Log:      logger,
		Notebook: store,
		Rewriter: rw,
	}, nil
}

// Close releases backend resources.
func (a *App) Close() error {
	if a.Notebook != nil {
		return a.Notebook.Close()
	}
	return nil
}
