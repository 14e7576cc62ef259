package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Seeder   SeederConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// SeederConfig fixes the shape of the generated dataset. Targets and
// distributions are parameters of this tool, not a pluggable model.
type SeederConfig struct {
	Stores           int
	MenuItems        int
	Ingredients      int
	Customers        int
	Orders           int
	AvgItemsPerOrder float64
	BatchSize        int
	TruncateFirst    bool
	Seed             int64
}

// Load reads configuration from the environment, merging in an
// optional .env file from the working directory first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     envStr("DB_HOST", "localhost"),
			Port:     envInt("DB_PORT", 5432),
			User:     envStr("DB_USER", "postgres"),
			Password: envStr("DB_PASS", ""),
			Database: envStr("DB_NAME", "rushmore_db"),
		},
		Seeder: SeederConfig{
			Stores:           envInt("NUM_STORES", 4),
			MenuItems:        envInt("NUM_MENU_ITEMS", 25),
			Ingredients:      envInt("NUM_INGREDIENTS", 45),
			Customers:        envInt("NUM_CUSTOMERS", 1200),
			Orders:           envInt("NUM_ORDERS", 6000),
			AvgItemsPerOrder: envFloat("AVG_ITEMS_PER_ORDER", 3),
			BatchSize:        envInt("BATCH_SIZE", 500),
			TruncateFirst:    envBool("TRUNCATE_FIRST", true),
			Seed:             int64(envInt("SEED", 42)),
		},
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
