package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/Gilles-knd/galerebuddy/internal/client/api"
	"github.com/Gilles-knd/galerebuddy/internal/client/config"
	"github.com/Gilles-knd/galerebuddy/internal/client/localdb"
	"github.com/Gilles-knd/galerebuddy/internal/client/repositories/credentials"
	"github.com/Gilles-knd/galerebuddy/internal/client/session"
	"github.com/Gilles-knd/galerebuddy/internal/logging"
)

// App is the interactive client. It owns the session store and the API
// client and implements one method per REPL command.
type App struct {
	config  *config.Config
	session *session.Store
	api     api.Client
	log     logging.Logger
	reader  *bufio.Reader
}

// NewApp wires the client together: local database, credential repository,
// HTTP API client (reading its bearer token from the repository) and the
// session store on top of both.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(c.LogLevel)

	db, err := localdb.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, credentials.Tokens{Repo: creds}, log)
	sess := session.NewStore(apiClient, creds, log)

	return &App{
		config:  c,
		session: sess,
		api:     apiClient,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and starts the REPL. Bootstrap shows
// the cached identity immediately; the server check happens underneath and
// only upgrades or drops it.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Bootstrap(ctx); err != nil {
		return err
	}
	if u := a.session.CurrentUser(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Firstname))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt decoration: the user's first name, plus an
// "unverified" marker while the session is running on the cached snapshot.
func (a *App) getStatus() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Firstname
	if a.session.Phase() == session.PhaseOptimistic {
		s += " unverified"
	}
	return "(" + s + ")"
}
