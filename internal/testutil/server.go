// A shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"database/sql"
	"testing"

	"github.com/kien091/movie-system/internal/api"
	"github.com/kien091/movie-system/internal/config"
	"github.com/kien091/movie-system/internal/core"
)

// SetupTestApp initializes a core.App backed by an in-memory database and a
// recording fake mailer.
func SetupTestApp(t *testing.T) (*core.App, *FakeMailer) {
	t.Helper()
	db := SetupTestDB(t)

	cfg := &config.Config{}
	cfg.Mail.From = "catalog@test.local"
	fakeMailer := &FakeMailer{}
	app := &core.App{
		Config: cfg,
		DB:     db,
		Mailer: fakeMailer,
	}
	return app, fakeMailer
}

// SetupTestServer initializes a full core.App and api.Server for
// integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *sql.DB, *FakeMailer) {
	t.Helper()
	app, fakeMailer := SetupTestApp(t)
	server := api.NewServer(app)
	return server, app.DB, fakeMailer
}
