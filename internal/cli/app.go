// Package cli is the terminal front end of the order console: a small REPL
// that gates every board command behind the session gate and renders orders
// as a table.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"orderdeck/internal/board"
	"orderdeck/internal/config"
	"orderdeck/internal/localdb"
	"orderdeck/internal/logging"
	"orderdeck/internal/repositories/settings"
	"orderdeck/internal/session"
	"orderdeck/internal/store"
)

type App struct {
	config *config.Config
	gate   *session.Gate
	board  *board.Board
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(os.Stderr)

	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init client storage: %w", err)
	}

	out := os.Stdout
	reader := bufio.NewReader(os.Stdin)
	notify := NewTerminalNotifier(out)
	confirm := NewTerminalConfirmer(reader, out)

	gate := session.NewGate(
		settings.NewSQLiteRepository(db),
		session.Credentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		[]byte(cfg.SessionSigningKey),
		notify,
		log,
	)

	st := store.NewHTTPStore(cfg.StoreEndpointAddr, cfg.StoreDataset, cfg.StoreToken, cfg.RequestTimeout)
	b := board.New(st, confirm, notify, log)

	return &App{
		config: cfg,
		gate:   gate,
		board:  b,
		log:    log,
		reader: reader,
		out:    out,
	}, nil
}

// Run restores any persisted session and enters the REPL. A restored
// session counts as the dashboard becoming visible, so the board loads
// immediately; otherwise loading waits for a successful login.
func (a *App) Run(ctx context.Context) {
	a.gate.Restore(ctx)
	if a.gate.Authenticated() {
		_ = a.board.Load(ctx)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.gate.Authenticated()
}

func (a *App) status() string {
	s := a.gate.Session()
	if s.State == session.Authenticated {
		return fmt.Sprintf("(%s)", s.Email)
	}
	return ""
}
