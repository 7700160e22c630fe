package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	REGISTER_COUNT = 32 // Default number of registers per core.
)

// Register is a register index.
type Register int

func (reg Register) String() string {
	return fmt.Sprintf("x%d", int(reg))
}

// ParseRegister decodes 'x<n>', where 0 <= n < count. The index is
// plain decimal: no sign, no leading zeros.
func ParseRegister(word string, count int) (reg Register, err error) {
	digits, ok := strings.CutPrefix(word, "x")
	if !ok || len(digits) == 0 || strings.TrimLeft(digits, "0123456789") != "" ||
		(len(digits) > 1 && digits[0] == '0') {
		err = &ErrDecode{Token: word, Err: ErrRegisterInvalid}
		return
	}

	n, perr := strconv.Atoi(digits)
	if perr != nil || n < 0 || n >= count {
		err = &ErrDecode{Token: word, Err: ErrRegisterInvalid}
		return
	}

	reg = Register(n)
	return
}
