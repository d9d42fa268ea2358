package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/session"
	"github.com/docuflow/docuflow-cli/pkg/logger"
)

// app wires config, session store, API client and identity provider for one
// command invocation.
type app struct {
	cfg      *internal.Config
	logger   *slog.Logger
	store    *session.Store
	client   *api.Client
	sessions *session.Provider
	stdin    *bufio.Reader
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	lg := logger.LoggerWrapper()

	store, err := session.NewStore(cfg.Session.File, cfg.API.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, store.Jar())

	return &app{
		cfg:      cfg,
		logger:   lg,
		store:    store,
		client:   client,
		sessions: session.NewProvider(client, lg),
		stdin:    bufio.NewReader(os.Stdin),
	}, nil
}

// saveSession persists the cookie jar; called after any call that may have
// set or refreshed the session cookie.
func (a *app) saveSession() {
	if err := a.store.Save(); err != nil {
		a.logger.Warn("failed to persist session", "error", err)
	}
}

func (a *app) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := a.stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
