package ticks

import (
	"errors"
	"fmt"
)

var (
	ErrStyle  = errors.New("invalid style")
	ErrRange  = errors.New("invalid range")
	ErrLadder = errors.New("invalid ladder")
)

type StyleError struct {
	Field string
	Value any
	Err   error
}

func (e StyleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("style: %s %v: %s", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("style: %s %v out of range", e.Field, e.Value)
}

func (e StyleError) Is(target error) bool {
	return target == ErrStyle
}

func (e StyleError) Unwrap() error {
	return e.Err
}

type LadderError struct {
	Index   int
	Message string
}

func (e LadderError) Error() string {
	return fmt.Sprintf("ladder: span %d: %s", e.Index, e.Message)
}

func (e LadderError) Unwrap() error {
	return ErrLadder
}
