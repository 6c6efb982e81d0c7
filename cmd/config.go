package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string

	OutboxRelaySchedule  string
	OutboxRelayBatchSize int

	ReactorMaxAttempts int
	ReactorRetryDelay  time.Duration
}

// PostgresDSN assembles the database connection string from the split
// settings.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
