package config

import "errors"

var (
	ErrInvalid    = errors.New("config: invalid configuration")
	ErrReadFile   = errors.New("config: failed to read config file")
	ErrParseFile  = errors.New("config: failed to parse config file")
	ErrParseEnv   = errors.New("config: failed to parse environment")
	ErrLoadDotenv = errors.New("config: failed to load .env file")
)
