package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/mesto-api/internal/config"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 3000, MetricsPort: 9090, LogLevel: "debug"},
		Auth:   config.AuthConfig{JWTSecret: "test-secret-that-is-long-enough-for-testing"},
	}
}

func TestBuildApplicationLogsOneComponentPerLine(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	app, err := buildApplication(testConfig(), log, db)
	require.NoError(t, err)

	missing := domain.NewID()
	mock.ExpectQuery("SELECT .* FROM users WHERE id").
		WithArgs(missing).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "about", "avatar"}))

	_, err = app.userService.GetUser(context.Background(), missing)
	require.True(t, domain.IsKind(err, domain.KindNotFound))
	require.NoError(t, mock.ExpectationsWereMet())

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "user not found") {
			continue
		}
		found = true
		assert.Equal(t, 1, strings.Count(line, `"component"`), line)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "user_service", entry["component"])
	}
	assert.True(t, found, "expected a user not found log line")
}

func TestBuildApplicationRejectsShortSecret(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	_, err = buildApplication(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), db)
	assert.Error(t, err)
}
