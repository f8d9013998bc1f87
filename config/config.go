package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvAddr  = "SCOREBOARD_ADDR"
	EnvFile  = "SCOREBOARD_FILE"
	EnvMode  = "SCOREBOARD_MODE"
	EnvOpen  = "SCOREBOARD_OPEN"
	EnvColor = "SCOREBOARD_COLOR"
)

const (
	ModeWeb     = "web"
	ModeConsole = "console"
)

type Config struct {
	Addr        string
	SavePath    string
	Mode        string
	OpenBrowser bool
	Color       bool
}

func Defaults() Config {
	return Config{
		Addr:     ":8501",
		SavePath: "numbers_dict.json",
		Mode:     ModeWeb,
		Color:    true,
	}
}

// InitConfig loads .env files into the environment. A missing file is fine;
// the defaults and real environment still apply.
func InitConfig(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("no .env loaded:", err)
		return
	}

	log.Println("Successfully loaded environment variables")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", errors.New("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", errors.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// Load overlays environment variables on Defaults.
func Load() (Config, error) {
	cfg := Defaults()
	if v, err := GetEnvVariable(EnvAddr); err == nil {
		cfg.Addr = v
	}
	if v, err := GetEnvVariable(EnvFile); err == nil {
		cfg.SavePath = v
	}
	if v, err := GetEnvVariable(EnvMode); err == nil {
		cfg.Mode = v
	}
	if v, err := GetEnvVariable(EnvOpen); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvOpen)
		}
		cfg.OpenBrowser = b
	}
	if v, err := GetEnvVariable(EnvColor); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvColor)
		}
		cfg.Color = b
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Mode != ModeWeb && c.Mode != ModeConsole {
		return errors.Errorf("unknown mode %q (want %s or %s)", c.Mode, ModeWeb, ModeConsole)
	}
	if c.SavePath == "" {
		return errors.New("save path is empty")
	}
	if c.Mode == ModeWeb && c.Addr == "" {
		return errors.New("listen address is empty")
	}
	return nil
}
