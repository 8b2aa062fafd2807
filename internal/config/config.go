package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Backend  Backend `yaml:"backend"`
	Game     Game    `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// Backend - the external service that stores completed games.
type Backend struct {
	SubmitURL      string        `yaml:"submit-url" env:"BACKEND_SUBMIT_URL" env-required:"true"`
	HistoryURL     string        `yaml:"history-url" env:"BACKEND_HISTORY_URL" env-required:"true"`
	Timeout        time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"5s"`
	SubmitAttempts uint64        `yaml:"submit-attempts" env:"BACKEND_SUBMIT_ATTEMPTS" env-default:"3"`
	RetryInterval  time.Duration `yaml:"retry-interval" env:"BACKEND_RETRY_INTERVAL" env-default:"500ms"`
	SubmissionTTL  time.Duration `yaml:"submission-ttl" env:"BACKEND_SUBMISSION_TTL" env-default:"1h"`
}

type Game struct {
	EntryMode string `yaml:"entry-mode" env:"GAME_ENTRY_MODE" env-default:"simultaneous"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
