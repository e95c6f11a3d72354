package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidStoreCapacity  = errors.New("store capacity must be positive")
	ErrInvalidStreamInterval = errors.New("stream interval must be positive")
	ErrInvalidTheme          = errors.New("invalid theme")
	ErrInvalidBusBuffer      = errors.New("bus buffer must be positive")

	ErrUnknownLevel        = errors.New("unknown log level")
	ErrUnknownCategory     = errors.New("unknown log category")
	ErrUnknownSortKey      = errors.New("unknown sort key")
	ErrUnknownExportFormat = errors.New("unknown export format")

	ErrStreamTransition = errors.New("stream state transition failed")

	ErrFileExists     = errors.New("file already exists")
	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
