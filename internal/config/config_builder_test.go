package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validBaseConfig returns a config source that passes validation on its own.
func validBaseConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionDuration:      24 * time.Hour,
			SessionSweepInterval: 10 * time.Minute,
			GroupDeletePolicy:    GroupDeleteDetach,
		},
		Storage: Storage{DB: DB{DSN: "todo.db"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_MergePriority verifies that earlier sources win for non-zero
// fields: a DSN from the first source is not overwritten by a later one.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first.db"}}},
		validBaseConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	// fields absent from the first source are filled from the second
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
}

// TestBuild_ValidationFailure verifies that a merged config missing a DSN
// fails validation.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	base := validBaseConfig()
	base.Storage.DB.DSN = ""
	b.configs = append(b.configs, base)

	_, err := b.build()
	require.ErrorIs(t, err, ErrNoDatabaseDSN)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsZeroFields verifies that the defaults source only
// fills fields left zero by higher-priority sources.
func TestWithDefaults_FillsZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{SessionDuration: time.Hour},
		Storage: Storage{DB: DB{DSN: "todo.db"}},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	// explicit value survives
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	// zeros are filled in from defaults
	assert.Equal(t, 10*time.Minute, cfg.App.SessionSweepInterval)
	assert.Equal(t, GroupDeleteDetach, cfg.App.GroupDeletePolicy)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergedAsLowerPriority verifies that a JSON file named by an
// earlier source is loaded and merged below that source.
func TestWithJSON_MergedAsLowerPriority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"session_duration":    "2h",
			"group_delete_policy": GroupDeleteCascade,
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "json.db"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{SessionDuration: time.Hour},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	// value set before the JSON source wins
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	// values only present in JSON are merged in
	assert.Equal(t, GroupDeleteCascade, cfg.App.GroupDeletePolicy)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

// TestWithJSON_MissingFile verifies that a non-existent JSON path surfaces
// as a build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/no/such/file.json",
	})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_InvalidGroupDeletePolicy(t *testing.T) {
	cfg := validBaseConfig()
	cfg.App.GroupDeletePolicy = "archive"

	require.ErrorIs(t, cfg.validate(), ErrInvalidGroupDeletePolicy)
}

func TestValidate_InvalidSessionDuration(t *testing.T) {
	cfg := validBaseConfig()
	cfg.App.SessionDuration = 0

	require.ErrorIs(t, cfg.validate(), ErrInvalidSessionDuration)
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validBaseConfig().validate())
}
