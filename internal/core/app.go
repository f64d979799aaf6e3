package core

import (
	"database/sql"
	"embed"
	"fmt"
	"log"

	"github.com/kien091/movie-system/internal/config"
	"github.com/kien091/movie-system/internal/db"
	"github.com/kien091/movie-system/internal/mailer"
)

// App holds the core components of the application shared between the
// server, the background jobs and the tests.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Mailer mailer.Mailer
}

// New sets up and returns a new App instance. It handles loading the
// configuration, initializing the database connection, and running the
// embedded migrations.
func New(migrationsFS embed.FS) (*App, error) {
	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize the database connection
	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	if err := db.RunMigrations(database, migrationsFS); err != nil {
		// We can't proceed without a valid database schema.
		// Close the DB connection before failing.
		database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	log.Println("Core application setup complete.")
	return &App{
		Config: cfg,
		DB:     database,
		Mailer: mailer.NewSMTP(cfg),
	}, nil
}

// Close gracefully closes the application's resources, like the DB connection.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
