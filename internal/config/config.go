package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultCalls       = 50
	maxCalls           = 999 // call ids render as three digits
	defaultTranscripts = "fake_customer_calls.txt"
	defaultMetadata    = "calls_metadata.json"
	dateLayout         = "2006-01-02"
)

// Config holds the settings for one generation run.
type Config struct {
	Seed      uint64
	SeedSet   bool
	Calls     int
	OutputDir string

	TranscriptsFile string
	MetadataFile    string
	WorkbookFile    string // empty disables the xlsx export
	ContentFile     string // empty uses the embedded banks

	Date time.Time

	Environment string
	LogLevel    string
}

// Load reads configuration from the environment and an optional .env file in
// the working directory. Variables already set in the environment win. On
// error the returned Config still carries the logging settings.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Calls:           clampInt(envInt("FIXTURES_CALLS", defaultCalls), 1, maxCalls),
		OutputDir:       envOr("FIXTURES_OUTPUT_DIR", "."),
		TranscriptsFile: envOr("FIXTURES_TRANSCRIPTS", defaultTranscripts),
		MetadataFile:    envOr("FIXTURES_METADATA", defaultMetadata),
		WorkbookFile:    os.Getenv("FIXTURES_WORKBOOK"),
		ContentFile:     os.Getenv("FIXTURES_CONTENT"),
		Date:            time.Now(),
		Environment:     os.Getenv("ENVIRONMENT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("FIXTURES_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("FIXTURES_SEED: %w", err)
		}
		cfg.SetSeed(seed)
	}
	if v := os.Getenv("FIXTURES_DATE"); v != "" {
		if err := cfg.SetDate(v); err != nil {
			return cfg, fmt.Errorf("FIXTURES_DATE: %w", err)
		}
	}
	return cfg, nil
}

func (c *Config) SetSeed(seed uint64) {
	c.Seed = seed
	c.SeedSet = true
}

// SetDate pins the transcript header date (YYYY-MM-DD).
func (c *Config) SetDate(s string) error {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	c.Date = d
	return nil
}

// SetCalls applies the same bounds as FIXTURES_CALLS.
func (c *Config) SetCalls(n int) {
	c.Calls = clampInt(n, 1, maxCalls)
}

// Path resolves an output file name against OutputDir. Absolute names are
// kept as-is.
func (c Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
