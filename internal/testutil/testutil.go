// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/questboard/config"
	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/pkg/utils"
)

// Password is the plaintext password of every user CreateUser makes.
const Password = "correct-horse-battery"

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with every table migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := config.SQLiteDSN(fmt.Sprintf("file:%s_%d", name, dbSeq.Add(1))) + "&mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Config returns a test configuration with fixed secrets and a cheap bcrypt cost.
func Config() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:            config.EnvTest,
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:3000"},
			BcryptCost:     bcrypt.MinCost,
		},
		DB: config.DBConfig{Driver: config.DriverSQLite},
		JWT: config.JWTConfig{
			AccessTokenSecret:        "test-access-secret",
			AccessTokenExpiryMinutes: 15,
			RefreshTokenSecret:       "test-refresh-secret",
			RefreshTokenExpiryDays:   7,
			Issuer:                   "questboard-test",
		},
	}
}

func CreateUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(Password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{Username: username, Email: username + "@example.com", Password: hash}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func CreateRuleset(t testing.TB, db *gorm.DB, name string) *models.Ruleset {
	t.Helper()

	rs := &models.Ruleset{Name: name}
	if err := db.Create(rs).Error; err != nil {
		t.Fatalf("create ruleset %s: %v", name, err)
	}
	return rs
}

// EventOption customizes an event before CreateEvent inserts it.
type EventOption func(*models.Event)

func WithMaxPlayers(n *int) EventOption {
	return func(e *models.Event) { e.MaxPlayers = n }
}

func WithRuleset(rs *models.Ruleset) EventOption {
	return func(e *models.Event) { e.RulesetID = &rs.ID }
}

func WithStart(at time.Time) EventOption {
	return func(e *models.Event) { e.DateStart = &at }
}

func WithTitle(title string) EventOption {
	return func(e *models.Event) { e.Title = title }
}

// CreateEvent inserts an event organized by organizer with default settings.
func CreateEvent(t testing.TB, db *gorm.DB, organizer *models.User, opts ...EventOption) *models.Event {
	t.Helper()

	ev := &models.Event{
		Title:       "One-shot",
		Online:      true,
		Location:    models.DefaultLocation,
		MaxPlayers:  IntPtr(models.DefaultMaxPlayers),
		OrganizerID: &organizer.ID,
	}
	for _, opt := range opts {
		opt(ev)
	}
	if err := db.Create(ev).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return ev
}

// CreateJoinRequest inserts a request directly, bypassing the engine's checks.
func CreateJoinRequest(t testing.TB, db *gorm.DB, ev *models.Event, user *models.User, status models.RequestStatus) *models.JoinRequest {
	t.Helper()

	jr := &models.JoinRequest{EventID: ev.ID, UserID: user.ID, Status: status}
	if err := db.Create(jr).Error; err != nil {
		t.Fatalf("create join request: %v", err)
	}
	return jr
}

func IntPtr(n int) *int { return &n }
