package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/stylocoin/dashboard/internal/client/config"
	"github.com/stylocoin/dashboard/internal/client/guard"
	"github.com/stylocoin/dashboard/internal/client/services"
	"github.com/stylocoin/dashboard/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	dash   *services.Dashboard
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dash, db, err := services.Open(ctx, c, log)
	if err != nil {
		return nil, err
	}
	return &App{
		config: c,
		dash:   dash,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// Run restores the saved session, starts the connectivity watcher and blocks
// in the REPL until the user quits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	if err := a.dash.Auth.Hydrate(ctx); err != nil {
		a.log.Warn(ctx, "previous session could not be restored", "error", err)
	}
	a.checkOnline(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	printlnFn("Welcome to the StyloCoin dashboard (type 'help' for commands)")
	if snap := a.dash.Auth.Snapshot(); snap.IsAuthenticated() {
		printlnFn("Signed in as", snap.User.Username)
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.dash.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) view() guard.View {
	return guard.FromState(a.dash.Auth.Snapshot())
}

func (a *App) getStatus() string {
	var parts []string
	snap := a.dash.Auth.Snapshot()
	if snap.IsAuthenticated() {
		parts = append(parts, snap.User.Username)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if snap.IsAdmin() {
		parts = append(parts, "admin")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
