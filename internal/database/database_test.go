package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/triviahq/trivia-api/internal/config"
	gormlogger "gorm.io/gorm/logger"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, logLevel("silent"))
	assert.Equal(t, gormlogger.Error, logLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, logLevel("info"))
	assert.Equal(t, gormlogger.Warn, logLevel(""))
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "lib/pq", driverName("postgres"))
	assert.Equal(t, "pgx", driverName("pgx"))
	assert.Equal(t, "pgx", driverName(""))
}

func TestConnect_MissingConfig(t *testing.T) {
	_, err := Connect(config.DBConfig{})

	assert.ErrorIs(t, err, config.ErrMissingDatabaseConfig)
}
