package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Auction  AuctionConfig  `mapstructure:"auction"`
	Registry RegistryConfig `mapstructure:"registry"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AdminConfig is the operator console account. The password is stored as an
// Argon2id hash produced out of band.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// LedgerConfig holds the virtual balance ledger's addresses and tunables.
type LedgerConfig struct {
	Owner           string        `mapstructure:"owner"`
	Custody         string        `mapstructure:"custody"`
	FeeCollector    string        `mapstructure:"fee_collector"`
	ProtocolFeeBps  int64         `mapstructure:"protocol_fee_bps"`
	WithdrawalDelay time.Duration `mapstructure:"withdrawal_delay"`
}

// AuctionConfig holds the batch auction engine's tunables.
type AuctionConfig struct {
	BatchProcessor         string        `mapstructure:"batch_processor"`
	BatchDuration          time.Duration `mapstructure:"batch_duration"`
	SolverWindow           time.Duration `mapstructure:"solver_window"`
	MinVolumeForEarlyClose int64         `mapstructure:"min_volume_for_early_close"`
	CancelCooldown         time.Duration `mapstructure:"cancel_cooldown"`
	CommitTTL              time.Duration `mapstructure:"commit_ttl"`
	ReputationReward       int64         `mapstructure:"reputation_reward"`
}

// RegistryConfig holds the solver registry's economics.
type RegistryConfig struct {
	Treasury               string `mapstructure:"treasury"`
	StakeToken             string `mapstructure:"stake_token"`
	MinStake               int64  `mapstructure:"min_stake"`
	InitialReputation      int64  `mapstructure:"initial_reputation"`
	MinReputation          int64  `mapstructure:"min_reputation"`
	SlashBps               int64  `mapstructure:"slash_bps"`
	SlashReputationPenalty int64  `mapstructure:"slash_reputation_penalty"`
	DecayPerDay            int64  `mapstructure:"decay_per_day"`
}

// Protocol bounds enforced at load time, matching the runtime caps.
const (
	maxProtocolFeeBps = 2000
	maxSlashBps       = 5000
	maxBatchDuration  = 180 * time.Second
	minSolverWindow   = 5 * time.Second
	maxSolverWindow   = 30 * time.Second
)

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LQF_ (Liquid Flow).
// Nested keys use underscore: LQF_DATABASE_HOST, LQF_AUCTION_SOLVER_WINDOW, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "liquid_flow")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "liquid-flow")
	v.SetDefault("admin.username", "operator")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("ledger.owner", "")
	v.SetDefault("ledger.custody", "")
	v.SetDefault("ledger.fee_collector", "")
	v.SetDefault("ledger.protocol_fee_bps", 30)
	v.SetDefault("ledger.withdrawal_delay", "24h")
	v.SetDefault("auction.batch_processor", "")
	v.SetDefault("auction.batch_duration", "60s")
	v.SetDefault("auction.solver_window", "10s")
	v.SetDefault("auction.min_volume_for_early_close", 0)
	v.SetDefault("auction.cancel_cooldown", "5s")
	v.SetDefault("auction.commit_ttl", "24h")
	v.SetDefault("auction.reputation_reward", 10)
	v.SetDefault("registry.treasury", "")
	v.SetDefault("registry.stake_token", "")
	v.SetDefault("registry.min_stake", 1000_000000)
	v.SetDefault("registry.initial_reputation", 100)
	v.SetDefault("registry.min_reputation", 50)
	v.SetDefault("registry.slash_bps", 1000)
	v.SetDefault("registry.slash_reputation_penalty", 20)
	v.SetDefault("registry.decay_per_day", 1)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LQF_LEDGER_PROTOCOL_FEE_BPS -> ledger.protocol_fee_bps
	v.SetEnvPrefix("LQF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the protocol bounds on the loaded values.
func (c *Config) Validate() error {
	if c.Ledger.ProtocolFeeBps < 0 || c.Ledger.ProtocolFeeBps > maxProtocolFeeBps {
		return fmt.Errorf("ledger.protocol_fee_bps must be between 0 and %d", maxProtocolFeeBps)
	}
	if c.Ledger.WithdrawalDelay < 0 {
		return fmt.Errorf("ledger.withdrawal_delay must not be negative")
	}
	if c.Auction.BatchDuration <= 0 || c.Auction.BatchDuration > maxBatchDuration {
		return fmt.Errorf("auction.batch_duration must be between 1s and %s", maxBatchDuration)
	}
	if c.Auction.SolverWindow < minSolverWindow || c.Auction.SolverWindow > maxSolverWindow {
		return fmt.Errorf("auction.solver_window must be between %s and %s", minSolverWindow, maxSolverWindow)
	}
	if c.Auction.MinVolumeForEarlyClose < 0 {
		return fmt.Errorf("auction.min_volume_for_early_close must not be negative")
	}
	if c.Registry.MinStake <= 0 {
		return fmt.Errorf("registry.min_stake must be positive")
	}
	if c.Registry.SlashBps < 0 || c.Registry.SlashBps > maxSlashBps {
		return fmt.Errorf("registry.slash_bps must be between 0 and %d", maxSlashBps)
	}
	if c.Registry.MinReputation < 0 || c.Registry.InitialReputation < 0 {
		return fmt.Errorf("registry reputation values must not be negative")
	}
	if c.Registry.DecayPerDay < 0 {
		return fmt.Errorf("registry.decay_per_day must not be negative")
	}
	return nil
}
