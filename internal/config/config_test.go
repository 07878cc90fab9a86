package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "rooms", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=rooms sslmode=disable", p.DSN())
}

func TestBookingConfig_Location(t *testing.T) {
	loc, err := BookingConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = BookingConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestSchedulerConfig_Enabled(t *testing.T) {
	assert.False(t, SchedulerConfig{}.Enabled())
	assert.True(t, SchedulerConfig{Interval: time.Hour}.Enabled())
}
