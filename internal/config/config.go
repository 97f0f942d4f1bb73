package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string   `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	BoardSize int      `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Human     Human    `yaml:"human"`
	Computer  Computer `yaml:"computer"`
	Redis     Redis    `yaml:"redis"`
}

type Human struct {
	Token string `yaml:"token" env:"HUMAN_TOKEN" env-default:"O"`
	Name  string `yaml:"name" env:"HUMAN_NAME"`
}

type Computer struct {
	Token       string        `yaml:"token" env:"COMPUTER_TOKEN" env-default:"X"`
	Name        string        `yaml:"name" env:"COMPUTER_NAME"`
	ThinkDelay  time.Duration `yaml:"think-delay" env:"COMPUTER_THINK_DELAY" env-default:"700ms"`
	ThinkJitter time.Duration `yaml:"think-jitter" env:"COMPUTER_THINK_JITTER" env-default:"0s"`
}

// Redis configures the optional spectator feed.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe:events"`
}

// Load - reads the YAML file at path, or only the environment when the file does not exist.
// The result is not validated; callers apply their overrides first and then call Validate.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	if that.BoardSize < tictactoe.MinBoardSize {
		return fmt.Errorf("%w: board-size must be at least %d, got %d", ErrInvalidConfig, tictactoe.MinBoardSize, that.BoardSize)
	}

	for _, token := range []string{that.Human.Token, that.Computer.Token} {
		if utf8.RuneCountInString(token) != 1 || token == entity.OverlayMarker {
			return fmt.Errorf("%w: token %q must be a single character other than %q", ErrInvalidConfig, token, entity.OverlayMarker)
		}
	}

	if that.Human.Token == that.Computer.Token {
		return fmt.Errorf("%w: human and computer share token %q", ErrInvalidConfig, that.Human.Token)
	}

	if that.Computer.ThinkDelay < 0 || that.Computer.ThinkJitter < 0 {
		return fmt.Errorf("%w: think durations must not be negative", ErrInvalidConfig)
	}

	if that.Redis.Enabled && (that.Redis.Host == "" || that.Redis.Port == "") {
		return fmt.Errorf("%w: redis is enabled without an address", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
