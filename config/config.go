package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"franceMiningCounter/internal/adapters/logger"
	"franceMiningCounter/internal/history"
)

// Page variants.
const (
	VariantSelectable = "selectable" // Share dropdown plus the network power metric
	VariantFixed      = "fixed"      // Fixed share, no power metric
)

// Price sources.
const (
	PriceSourceCoinGecko = "coingecko"
	PriceSourceBinance   = "binance"
)

// Config holds all application configuration.
type Config struct {
	// Scenario
	Share        float64 // Hypothetical share of global hash power, in (0,1]
	StartBlock   int64   // First block counted (approx. 2018-01-01)
	Variant      string  // VariantSelectable or VariantFixed
	ShareChoices []int   // Percentages offered by the selectable variant

	// Model
	HistoryStride      int     // Keep one historical sample every N
	PowerLawExponent   float64 // e.g., 5.8
	PowerLawYearsAhead int     // e.g., 5
	EfficiencyJPerTH   float64 // Average miner efficiency, e.g., 30 J/TH

	// Page
	RefreshInterval time.Duration // Client-side polling period
	OutputPath      string

	// Data sources
	PriceSource       string // PriceSourceCoinGecko or PriceSourceBinance
	BlockstreamURL    string
	CoinGeckoURL      string
	BlockchainInfoURL string
	BinanceURL        string
	BinanceSymbol     string
	UserAgent         string

	// Values used when a source fails
	Fallbacks     Fallbacks
	FallbacksFile string

	// Logging
	LogLevel logger.LogLevel
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Scenario
	cfg.Variant = strings.ToLower(getEnv("VARIANT", VariantSelectable))
	if cfg.Variant != VariantSelectable && cfg.Variant != VariantFixed {
		errs = append(errs, fmt.Sprintf("VARIANT must be %q or %q", VariantSelectable, VariantFixed))
	}

	defaultShare := 0.03
	if cfg.Variant == VariantFixed {
		defaultShare = 0.10
	}
	cfg.Share, err = getEnvAsFloatRequired("SHARE", defaultShare)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid SHARE: %v", err))
	} else if cfg.Share <= 0 || cfg.Share > 1 {
		errs = append(errs, "SHARE must be in (0, 1]")
	}

	startBlock, err := getEnvAsIntRequired("START_BLOCK", 499500)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid START_BLOCK: %v", err))
	} else if startBlock < 0 {
		errs = append(errs, "START_BLOCK cannot be negative")
	}
	cfg.StartBlock = int64(startBlock)

	cfg.ShareChoices, err = getEnvAsIntSlice("SHARE_CHOICES", []int{1, 2, 3, 5, 10, 15})
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid SHARE_CHOICES: %v", err))
	}
	for _, c := range cfg.ShareChoices {
		if c <= 0 || c > 100 {
			errs = append(errs, "SHARE_CHOICES values must be in [1, 100]")
			break
		}
	}
	if cfg.Variant == VariantSelectable && cfg.Share > 0 && !cfg.shareOffered() {
		errs = append(errs, fmt.Sprintf("SHARE %v%% must be one of SHARE_CHOICES %v", cfg.SharePercent(), cfg.ShareChoices))
	}

	// Model
	defaultStride := history.WeeklyStride
	if cfg.Variant == VariantFixed {
		defaultStride = history.MonthlyStride
	}
	cfg.HistoryStride, err = getEnvAsIntRequired("HISTORY_STRIDE", defaultStride)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid HISTORY_STRIDE: %v", err))
	} else if cfg.HistoryStride <= 0 {
		errs = append(errs, "HISTORY_STRIDE must be positive")
	}

	cfg.PowerLawExponent = getEnvAsFloat("POWER_LAW_EXPONENT", 5.8)
	if cfg.PowerLawExponent <= 0 {
		errs = append(errs, "POWER_LAW_EXPONENT must be positive")
	}
	cfg.PowerLawYearsAhead = getEnvAsInt("POWER_LAW_YEARS_AHEAD", 5)
	if cfg.PowerLawYearsAhead < 0 {
		errs = append(errs, "POWER_LAW_YEARS_AHEAD cannot be negative")
	}
	cfg.EfficiencyJPerTH = getEnvAsFloat("EFFICIENCY_J_PER_TH", 30)
	if cfg.EfficiencyJPerTH <= 0 {
		errs = append(errs, "EFFICIENCY_J_PER_TH must be positive")
	}

	// Page
	refreshMs := getEnvAsInt("REFRESH_INTERVAL_MS", 600000)
	if refreshMs <= 0 {
		errs = append(errs, "REFRESH_INTERVAL_MS must be positive")
	}
	cfg.RefreshInterval = time.Duration(refreshMs) * time.Millisecond

	cfg.OutputPath = getEnv("OUTPUT_PATH", "index.html")

	// Data sources
	cfg.PriceSource = strings.ToLower(getEnv("PRICE_SOURCE", PriceSourceCoinGecko))
	if cfg.PriceSource != PriceSourceCoinGecko && cfg.PriceSource != PriceSourceBinance {
		errs = append(errs, fmt.Sprintf("PRICE_SOURCE must be %q or %q", PriceSourceCoinGecko, PriceSourceBinance))
	}
	cfg.BlockstreamURL = getEnv("BLOCKSTREAM_URL", "https://blockstream.info/api")
	cfg.CoinGeckoURL = getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3")
	cfg.BlockchainInfoURL = getEnv("BLOCKCHAIN_INFO_URL", "https://api.blockchain.info")
	cfg.BinanceURL = getEnv("BINANCE_URL", "https://api.binance.com")
	cfg.BinanceSymbol = getEnv("BINANCE_SYMBOL", "BTCEUR")
	cfg.UserAgent = getEnv("USER_AGENT", "franceMiningCounter/1.0")

	// Fallbacks
	cfg.Fallbacks = DefaultFallbacks()
	cfg.FallbacksFile = getEnv("FALLBACKS_FILE", "")
	if cfg.FallbacksFile != "" {
		cfg.Fallbacks, err = LoadFallbacks(cfg.FallbacksFile, cfg.Fallbacks)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid FALLBACKS_FILE: %v", err))
		}
	}

	// Logging
	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// SharePercent returns Share expressed in percent, without float noise
// (0.03 gives 3, not 3.0000000000000004).
func (c *Config) SharePercent() float64 {
	return math.Round(c.Share*1e8) / 1e6
}

func (c *Config) shareOffered() bool {
	for _, v := range c.ShareChoices {
		if float64(v) == c.SharePercent() {
			return true
		}
	}
	return false
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsIntSlice(key string, defaultValue []int) ([]int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	parts := strings.Split(valueStr, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer value '%s' for key %s: %w", p, key, err)
		}
		values = append(values, v)
	}
	return values, nil
}
