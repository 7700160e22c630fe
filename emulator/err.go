package emulator

import (
	"errors"

	"github.com/ezrec/mcsim/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("no program loaded"))
	ErrConfigInvalid  = errors.New(f("config invalid"))
)

// ErrConfig indicates an invalid configuration value.
type ErrConfig struct {
	Field string
	Value int
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v is not valid", err.Field, err.Value)
}

func (err *ErrConfig) Unwrap() error {
	return ErrConfigInvalid
}
