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

	EasyshipURL      string
	EasyshipAPIKey   string
	SendParcelURL    string
	SendParcelAPIKey string

	// ProviderTimeout bounds each provider call in the aggregation chain.
	ProviderTimeout time.Duration
	// SecondaryInChain inserts SendParcel between Easyship and the mock provider.
	SecondaryInChain bool

	RateProbeSchedule string
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
