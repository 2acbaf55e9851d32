package config

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the server wiring read from the environment.
type Config struct {
	Addr         string
	OwnerID      string
	FeedDecimals uint8
	FeedAnswer   *big.Int // initial answer for the built-in mock feed
	PostgresDSN  string   // empty selects the in-memory store
	KafkaBrokers []string // empty disables event publishing
}

// Load reads an optional .env file, then the environment, applying defaults.
func Load() (Config, error) {
	// missing .env is fine, real environments set variables directly
	_ = godotenv.Load()

	cfg := Config{
		Addr:         getenv("FUNDME_ADDR", ":8080"),
		OwnerID:      getenv("FUNDME_OWNER", "owner"),
		FeedDecimals: 8,
		PostgresDSN:  os.Getenv("FUNDME_POSTGRES_DSN"),
	}

	if v := os.Getenv("FUNDME_FEED_DECIMALS"); v != "" {
		decimals, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Config{}, fmt.Errorf("FUNDME_FEED_DECIMALS: %w", err)
		}
		cfg.FeedDecimals = uint8(decimals)
	}

	// default: $2000 per unit at 8 feed decimals
	answer := getenv("FUNDME_FEED_ANSWER", "200000000000")
	parsed, ok := new(big.Int).SetString(answer, 10)
	if !ok {
		return Config{}, fmt.Errorf("FUNDME_FEED_ANSWER: not an integer: %q", answer)
	}
	cfg.FeedAnswer = parsed

	if v := os.Getenv("FUNDME_KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
