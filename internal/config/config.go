package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	PlayerX   string `yaml:"player-x" env:"PLAYER_X" env-default:"Player 1"`
	PlayerO   string `yaml:"player-o" env:"PLAYER_O" env-default:"Player 2"`
	FirstMark string `yaml:"first-mark" env:"FIRST_MARK" env-default:"X"`
	Rules     string `yaml:"rules" env:"RULES" env-default:"classic"`
	Resume    Resume `yaml:"resume"`
}

type Resume struct {
	Enabled     bool          `yaml:"enabled" env:"RESUME_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"SNAPSHOT_TTL" env-default:"24h"`
}

// MustLoad - loads the configuration from the given yaml file. A missing
// file is not an error: the game then runs on env-default values, so no
// config is required for a plain local game.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Resume) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
