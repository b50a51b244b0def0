package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config carries the angle generation bounds. Every rank loads the same
// configuration, so workers agree on what a batch looks like without
// any extra coordination.
type Config struct {
	MinCount int
	MaxCount int
	Low      float64
	High     float64
	Quiet    bool
}

func DefaultConfig() Config {
	return Config{MinCount: 1, MaxCount: 50, Low: 0, High: 360}
}

// LoadConfig applies overrides from .env and the environment on top of
// the defaults. A missing .env is fine; a malformed value is not.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Wrap(err, "load .env")
	}

	var err error
	if cfg.MinCount, err = intEnv("minAngles", cfg.MinCount); err != nil {
		return cfg, err
	}
	if cfg.MaxCount, err = intEnv("maxAngles", cfg.MaxCount); err != nil {
		return cfg, err
	}
	if cfg.Low, err = floatEnv("angleLow", cfg.Low); err != nil {
		return cfg, err
	}
	if cfg.High, err = floatEnv("angleHigh", cfg.High); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.MinCount < 0 || c.MaxCount < c.MinCount {
		return errors.Errorf("bad batch bounds [%d,%d]", c.MinCount, c.MaxCount)
	}
	if c.High < c.Low {
		return errors.Errorf("bad angle range [%v,%v)", c.Low, c.High)
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", key)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, errors.Wrapf(err, "parse %s", key)
	}
	return v, nil
}
