package memory

import (
	"errors"

	"github.com/ezrec/mcsim/translate"
)

var f = translate.From

var (
	ErrOutOfRange = errors.New(f("address out of range"))
	ErrMisaligned = errors.New(f("address misaligned"))
)

// ErrAccess is a faulted memory access.
type ErrAccess struct {
	Addr int   // Byte address of the access.
	Size int   // Width of the access in bytes.
	Err  error // ErrOutOfRange or ErrMisaligned.
}

func (err *ErrAccess) Error() string {
	return f("memory %d-byte access at %d: %v", err.Size, err.Addr, err.Err)
}

func (err *ErrAccess) Unwrap() error {
	return err.Err
}
