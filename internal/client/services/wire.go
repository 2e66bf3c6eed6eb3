package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/config"
	"github.com/stylocoin/dashboard/internal/client/session"
	"github.com/stylocoin/dashboard/internal/logging"
)

// Open builds the whole service graph from cfg: the session database, the
// in-memory session, the backend client authenticated by that session and
// every page service. The session is not hydrated; callers decide when.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*Dashboard, *sql.DB, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	sessions := session.NewService(session.NewStore(db), log.With("component", "session"))
	api, err := client.NewHTTPClient(cfg.BackendURL,
		client.WithTokenSource(sessions),
		client.WithRequestTimeout(cfg.RequestTimeout),
		client.WithLogger(log.With("component", "backend")),
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	auth := NewAuthService(api, sessions, cfg.AuthTimeout, log)
	return NewDashboard(api, auth, cfg.PageSize, log), db, nil
}
