package sav

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedInput   = errors.New("truncated input")
	ErrInvalidMagic     = errors.New("invalid save file signature")
	ErrUnknownEnumValue = errors.New("unknown enum value")
	ErrDecompression    = errors.New("decompression failed")
	ErrInvalidCount     = errors.New("invalid count")
)

// UnknownEnumError reports an integer that does not map to a variant of Enum.
type UnknownEnumError struct {
	Enum  string
	Value int32
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("%s: unknown value %d", e.Enum, e.Value)
}

func (e *UnknownEnumError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}

func truncated(offset, want, have int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, %d left", ErrTruncatedInput, want, offset, have)
}
