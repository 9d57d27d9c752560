// Package client is the CLI application core: the API client, the token
// file and a small local cache of the file listing.
package client

import (
	"context"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"cloudvault/internal/app/client/config"
)

type App struct {
	config *config.Config
	log    *slog.Logger
	api    *httpClient
	cache  *SQLiteCache
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	api := NewHTTPClient(cfg, log)

	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		log.Warn("file cache unavailable", "error", err)
		cache = nil
	}

	app := &App{
		config: cfg,
		log:    log,
		api:    api,
		cache:  cache,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		api.SetToken(token)
	}

	return app, nil
}

func (a *App) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

func (a *App) API() *httpClient { return a.api }

// SaveToken persists the session token for later invocations.
func (a *App) SaveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}

func (a *App) Logout() error {
	a.api.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ListFiles fetches the listing and refreshes the cache; with cached=true
// it reads the local copy instead.
func (a *App) ListFiles(ctx context.Context, cached bool) ([]File, error) {
	if cached {
		if a.cache == nil {
			return nil, errCacheUnavailable
		}
		return a.cache.ListFiles()
	}

	list, err := a.api.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.ReplaceFiles(list.Files); err != nil {
			a.log.Warn("cache refresh failed", "error", err)
		}
	}
	return list.Files, nil
}
