// Package cli is the terminal presentation layer. It renders session state
// and forwards user commands to the controller's action surface; it holds
// no game state of its own.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/Rajatbisht12/EmiterA/internal/client/api"
	"github.com/Rajatbisht12/EmiterA/internal/client/config"
	"github.com/Rajatbisht12/EmiterA/internal/client/controller"
	"github.com/Rajatbisht12/EmiterA/internal/client/repositories/snapshots"
	"github.com/Rajatbisht12/EmiterA/internal/client/session"
	"github.com/Rajatbisht12/EmiterA/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	ctrl    *controller.Controller
	scanner *bufio.Scanner
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := snapshots.Open(context.Background(), cfg.SnapshotDSN)
	if err != nil {
		return nil, err
	}

	ctrl := controller.New(
		cfg,
		session.NewStore(),
		api.NewHTTPGameClient(cfg.APIBaseURL),
		snapshots.NewSQLiteRepository(db),
		log,
	)

	return &App{ctrl: ctrl, scanner: bufio.NewScanner(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	if msg := a.ctrl.Start(ctx); msg != "" {
		printlnFn(msg)
	}
	defer a.ctrl.Stop()

	runREPL(ctx, a, a.scanner)
}
