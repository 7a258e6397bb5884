// Package cli implements the interactive REPL shell. It is a thin view
// layer: commands prompt for input, call the services and print the results.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/lifekeeper/internal/config"
	"github.com/dmitrijs2005/lifekeeper/internal/logging"
	"github.com/dmitrijs2005/lifekeeper/internal/services"
	"github.com/dmitrijs2005/lifekeeper/internal/session"
	"github.com/dmitrijs2005/lifekeeper/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager

	insights  services.InsightService
	bookmarks services.BookmarkService
	goals     services.GoalService
	health    services.HealthLogService
	todos     services.TodoService

	reader *bufio.Reader
	db     *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {

	store, db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess, err := session.NewManager(ctx, store, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:    cfg,
		log:       log,
		session:   sess,
		insights:  services.NewInsightService(sess),
		bookmarks: services.NewBookmarkService(sess),
		goals:     services.NewGoalService(sess),
		health:    services.NewHealthLogService(sess),
		todos:     services.NewTodoService(sess),
		reader:    bufio.NewReader(os.Stdin),
		db:        db,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
