package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Rules    Rules   `yaml:"rules"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
}

// NoUndo disables undo. A zero undo-limit is indistinguishable from an absent key and
// gets the default.
const NoUndo = -1

// Rules - zero values mean the defaults: three undos and the variant allotment of stones.
type Rules struct {
	UndoLimit    int `yaml:"undo-limit" env:"UNDO_LIMIT" env-default:"3"`
	GomokuStones int `yaml:"gomoku-stones" env:"GOMOKU_STONES" env-default:"0"`
	GoStones     int `yaml:"go-stones" env:"GO_STONES" env-default:"0"`
}

type Storage struct {
	Backend     string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`
	SaveDir     string `yaml:"save-dir" env:"SAVE_DIR" env-default:"saves"`
	DropHistory bool   `yaml:"drop-history" env:"DROP_HISTORY" env-default:"false"`
	SQLitePath  string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"stones.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
// When the file does not exist the configuration is read from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	if _, err := parseLevel(that.LogLevel); err != nil {
		return err
	}

	switch that.Storage.Backend {
	case BackendFile, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", that.Storage.Backend)
	}

	if that.Rules.UndoLimit < NoUndo {
		return fmt.Errorf("undo limit %d, use %d to disable undo", that.Rules.UndoLimit, NoUndo)
	}

	if that.Rules.GomokuStones < 0 || that.Rules.GoStones < 0 {
		return errors.New("stone allotments must not be negative")
	}

	return nil
}

// Level - returns the slog level named by log-level.
func (that *Config) Level() slog.Level {
	level, _ := parseLevel(that.LogLevel)

	return level
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Undos - returns the undo allowance per player, 0 when undo is disabled.
func (that *Rules) Undos() int {
	if that.UndoLimit == NoUndo {
		return 0
	}

	return that.UndoLimit
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
