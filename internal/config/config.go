package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`

	AppTitle   string `yaml:"app-title" env:"APP_TITLE" env-default:"Tic-Tac-Toe"`
	AppVersion string `yaml:"app-version" env:"APP_VERSION" env-default:"dev"`

	Game Game `yaml:"game"`
}

type Game struct {
	BoardSize     int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	BotMark       string `yaml:"bot-mark" env:"BOT_MARK" env-default:"O"`
	BotMoveWaitMS int    `yaml:"bot-move-wait-ms" env:"BOT_MOVE_WAIT_MS" env-default:"400"`
}

func (that *Game) GetBotMoveWait() time.Duration {
	return time.Duration(that.BotMoveWaitMS) * time.Millisecond
}

// MustLoad - load all configurations from the config file, falling back to
// environment variables only when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
