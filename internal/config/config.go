package config

import (
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"

	"auction-market/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment (and an
// optional .env file in the working directory).
type Config struct {
	Port int `mapstructure:"PORT"`

	RPCURL           string `mapstructure:"RPC_URL"`
	ChainID          int64  `mapstructure:"CHAIN_ID"`
	FactoryAddress   string `mapstructure:"FACTORY_ADDRESS"`
	RegistryAddress  string `mapstructure:"REGISTRY_ADDRESS"`
	SignerPrivateKey string `mapstructure:"SIGNER_PRIVATE_KEY"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	PollInterval     time.Duration `mapstructure:"POLL_INTERVAL"`
	ReadRetries      int           `mapstructure:"READ_RETRIES"`
	ReadRetryDelay   time.Duration `mapstructure:"READ_RETRY_DELAY"`
	RevealWindow     time.Duration `mapstructure:"REVEAL_WINDOW"`
	HistoryBlockSpan uint64        `mapstructure:"HISTORY_BLOCK_SPAN"`
	StartBlock       uint64        `mapstructure:"START_BLOCK"`
	RPCRateLimit     float64       `mapstructure:"RPC_RATE_LIMIT"`
	MirrorTimeout    time.Duration `mapstructure:"MIRROR_TIMEOUT"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"PORT":               8080,
	"RPC_URL":            "https://ethereum-sepolia-rpc.publicnode.com",
	"CHAIN_ID":           11155111,
	"FACTORY_ADDRESS":    "",
	"REGISTRY_ADDRESS":   "",
	"SIGNER_PRIVATE_KEY": "",
	"REDIS_ADDR":         "",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
	"POLL_INTERVAL":      "20s",
	"READ_RETRIES":       5,
	"READ_RETRY_DELAY":   "1200ms",
	"REVEAL_WINDOW":      "1h",
	"HISTORY_BLOCK_SPAN": 20000,
	"START_BLOCK":        0,
	"RPC_RATE_LIMIT":     10,
	"MIRROR_TIMEOUT":     "30s",
	"LOG_LEVEL":          "info",
}

// Load reads .env (if present) and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.Debug("config: no .env file loaded", map[string]any{"error": err.Error()})
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that have no usable default.
func (c *Config) Validate() error {
	if !common.IsHexAddress(c.FactoryAddress) {
		return fmt.Errorf("config: FACTORY_ADDRESS %q is not a valid address", c.FactoryAddress)
	}
	if c.RegistryAddress != "" && !common.IsHexAddress(c.RegistryAddress) {
		return fmt.Errorf("config: REGISTRY_ADDRESS %q is not a valid address", c.RegistryAddress)
	}
	if strings.TrimSpace(c.RPCURL) == "" {
		return fmt.Errorf("config: RPC_URL is required")
	}
	if c.ChainID <= 0 {
		return fmt.Errorf("config: CHAIN_ID must be positive, got %d", c.ChainID)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config: POLL_INTERVAL must be a positive duration")
	}
	if c.ReadRetries < 1 {
		return fmt.Errorf("config: READ_RETRIES must be at least 1")
	}
	if c.RevealWindow < 0 {
		return fmt.Errorf("config: REVEAL_WINDOW must not be negative")
	}
	if _, err := c.SignerKey(); err != nil {
		return err
	}
	return nil
}

// Factory returns the parsed factory address.
func (c *Config) Factory() common.Address {
	return common.HexToAddress(c.FactoryAddress)
}

// Registry returns the registry address, or the zero address when unset.
func (c *Config) Registry() common.Address {
	if c.RegistryAddress == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.RegistryAddress)
}

// SignerKey parses SIGNER_PRIVATE_KEY. A missing key yields (nil, nil) and
// the service runs read-only.
func (c *Config) SignerKey() (*ecdsa.PrivateKey, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(c.SignerPrivateKey), "0x")
	if raw == "" {
		return nil, nil
	}
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("config: SIGNER_PRIVATE_KEY: %w", err)
	}
	return key, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
