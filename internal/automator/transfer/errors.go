package transfer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrElementNotFound = browser.ErrElementNotFound
	ErrTimeout         = browser.ErrTimeout

	ErrStalePage = errors.New("page session already handed over")
)

type InvalidInputKind string

const (
	NullValue        InvalidInputKind = "NULL_VALUE"
	WrongBlockCount  InvalidInputKind = "WRONG_BLOCK_COUNT"
	WrongBlockLength InvalidInputKind = "WRONG_BLOCK_LENGTH"
)

// InvalidInputError describes malformed structured input. Its message is
// surfaced to the caller as is.
type InvalidInputError struct {
	Kind  InvalidInputKind
	Field string
	Found int // block count for WrongBlockCount
	Index int // offending block for WrongBlockLength
	Block string
}

func (e *InvalidInputError) Error() string {
	switch e.Kind {
	case NullValue:
		return fmt.Sprintf("%s can not be null", e.Field)
	case WrongBlockCount:
		return fmt.Sprintf("Failed to split card number to 4 blocks. Created blocks %d blocks", e.Found)
	case WrongBlockLength:
		return fmt.Sprintf("Each card number block should consist of 4 symbols. Symbols in block %d. Block %s", utf8.RuneCountInString(e.Block), e.Block)
	default:
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Field)
	}
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StepError provides detailed context for failures while driving a wizard step
type StepError struct {
	Step      string
	Operation string
	Cause     error
	Details   string
}

func (e *StepError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("[%s] %s failed: %v", e.Step, e.Operation, e.Cause)
	}
	return fmt.Sprintf("[%s] %s failed: %v - %s", e.Step, e.Operation, e.Cause, e.Details)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}
