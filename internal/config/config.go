package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PRIZEDRAW_SERVER_PORT
const EnvPrefix = "PRIZEDRAW"

// Prize source kinds
const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceRedis = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Prizes  PrizesConfig  `mapstructure:"prizes"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Draw    DrawConfig    `mapstructure:"draw"`
	Log     LogConfig     `mapstructure:"log"`
	Discord DiscordConfig `mapstructure:"discord"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// PrizesConfig says where the prize list comes from
type PrizesConfig struct {
	Source   string `mapstructure:"source" validate:"oneof=file http redis"`
	Path     string `mapstructure:"path" validate:"required_if=Source file"`
	URL      string `mapstructure:"url" validate:"required_if=Source http"`
	RedisKey string `mapstructure:"redis_key"`

	// Format of a Redis-stored document; files and URLs are sniffed
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml"`

	// Watch reloads the board when the prize file changes
	Watch bool `mapstructure:"watch"`

	// Seed makes draws reproducible; zero uses crypto randomness
	Seed uint64 `mapstructure:"seed"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DrawConfig holds the draw animation timings
type DrawConfig struct {
	TickCount        int           `mapstructure:"tick_count" validate:"gte=1"`
	TickInterval     time.Duration `mapstructure:"tick_interval" validate:"gt=0"`
	RevealDelay      time.Duration `mapstructure:"reveal_delay" validate:"gt=0"`
	CelebrationDelay time.Duration `mapstructure:"celebration_delay" validate:"gt=0"`
	SettleDelay      time.Duration `mapstructure:"settle_delay" validate:"gt=0"`
	NoticeDuration   time.Duration `mapstructure:"notice_duration" validate:"gt=0"`
	NoticeFade       time.Duration `mapstructure:"notice_fade" validate:"gt=0"`
	Particles        int           `mapstructure:"particles" validate:"gt=0"`
	TimeLayout       string        `mapstructure:"time_layout"`

	// WinTone flavours the win modal copy
	WinTone string `mapstructure:"win_tone" validate:"oneof=celebration funny neutral"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format      string `mapstructure:"format" validate:"oneof=json text"`
	Environment string `mapstructure:"environment"`
	AddSource   bool   `mapstructure:"add_source"`
}

// DiscordConfig holds bot settings. The bot is disabled without a token.
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"`
}

// Enabled returns true when a bot token is configured
func (d DiscordConfig) Enabled() bool {
	return d.Token != ""
}

// Load reads .env, then an optional config file, then PRIZEDRAW_* environment
// variables. configFile may be empty, in which case prizedraw.yaml is looked
// up in the working directory and ./config.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("prizedraw")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration. Every key needs a
// default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("prizes.source", SourceFile)
	v.SetDefault("prizes.path", "prizes-config.json")
	v.SetDefault("prizes.url", "")
	v.SetDefault("prizes.redis_key", "prizedraw:config")
	v.SetDefault("prizes.format", "json")
	v.SetDefault("prizes.watch", false)
	v.SetDefault("prizes.seed", 0)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("draw.tick_count", 15)
	v.SetDefault("draw.tick_interval", 80*time.Millisecond)
	v.SetDefault("draw.reveal_delay", 200*time.Millisecond)
	v.SetDefault("draw.celebration_delay", 300*time.Millisecond)
	v.SetDefault("draw.settle_delay", 800*time.Millisecond)
	v.SetDefault("draw.notice_duration", 2*time.Second)
	v.SetDefault("draw.notice_fade", 300*time.Millisecond)
	v.SetDefault("draw.particles", 100)
	v.SetDefault("draw.time_layout", "15:04:05")
	v.SetDefault("draw.win_tone", "celebration")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.environment", "dev")
	v.SetDefault("log.add_source", false)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")
}
