package config

import "errors"

var (
	ErrReadFile      = errors.New("config: failed to read file")
	ErrDecodeFile    = errors.New("config: failed to decode toml")
	ErrLoadEnv       = errors.New("config: failed to apply environment")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
