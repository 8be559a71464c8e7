package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
dbname = "wash"
user = "wash"
password = "secret"

[booking]
max_bookings_per_block = 4
min_weekly_hours = 12.5
timezone = "America/Chicago"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 4, cfg.Booking.MaxBookingsPerBlock)
	assert.Equal(t, 12.5, cfg.Booking.MinWeeklyHours)
	assert.Equal(t, "00000", cfg.Booking.DefaultZip)
	assert.Equal(t, "host=db port=5432 user=wash password=secret dbname=wash sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("BOOKING_MAX_PER_BLOCK", "2")
	t.Setenv("DB_HOST", "pg.internal")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Booking.MaxBookingsPerBlock)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("BOOKING_TIMEZONE", "Mars/Olympus")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_InvalidCapacity(t *testing.T) {
	_, err := Load(writeConfig(t, sampleConfig+"\n[cache]\nwashers_size = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
