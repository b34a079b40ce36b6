package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrNotString    = errors.New("not at a string literal")
)

type LexErr struct {
	Err error
	Pos Pos
}

func NewLexErr(e error, p Pos) *LexErr {
	return &LexErr{Err: e, Pos: p}
}

func (e *LexErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func (e *LexErr) Unwrap() error {
	return e.Err
}
