package config

import "errors"

var (
	// ErrInvalidAdapterConfigs indicates that client transport settings are
	// missing or invalid.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")

	// ErrInvalidWorkerConfigs indicates that background worker settings are
	// missing or invalid.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs")

	// ErrInvalidServerConfigs indicates that server settings are missing or
	// invalid.
	ErrInvalidServerConfigs = errors.New("invalid server configs")

	// ErrInvalidAuthConfigs indicates that token settings are missing or
	// invalid.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs")
)
