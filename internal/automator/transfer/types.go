package transfer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card holds the card data typed into the wizard. Number is kept in its raw
// "XXXX-XXXX-XXXX-XXXX" form and only tokenized when a page submits it.
type Card struct {
	Number       string
	ExpiresMonth string // "01".."12"
	ExpiresYear  string // last two digits of the year
	SecurityCode string
}

// Amount represents a money amount with two decimal precision (e.g. 100.50 is
// stored as 10050).
type Amount int64

// ParseAmount parses a decimal string with at most two fractional digits.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is empty", ErrInvalidInput)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrInvalidInput, s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: amount %q must have one or two fractional digits", ErrInvalidInput, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("%w: amount %q is out of range", ErrInvalidInput, s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrInvalidInput, s)
	}

	return Amount(units*100 + cents), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the amount with exactly two fractional digits, the format
// the amount field expects.
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	units, cents := v/100, v%100
	if units < 0 {
		units = -units
	}
	if cents < 0 {
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, units, cents)
}

// Request is built once per run and passed by value.
type Request struct {
	Sender      Card
	Receiver    Card
	Amount      Amount
	PhoneNumber string // 380XXXXXXXXX, optional
}

type Result struct {
	ID         uuid.UUID
	Provider   Provider
	State      State
	History    []State
	StartedAt  time.Time
	FinishedAt time.Time
}

// MaskCardNumber keeps the first and the last block of a card number visible.
func MaskCardNumber(number string) string {
	blocks := strings.Split(number, "-")
	if len(blocks) < 2 {
		return strings.Repeat("*", len(number))
	}
	for i := 1; i < len(blocks)-1; i++ {
		blocks[i] = strings.Repeat("*", len(blocks[i]))
	}
	return strings.Join(blocks, "-")
}

// Advance moves the result to next, recording it in History.
func (r *Result) Advance(next State) error {
	if !r.State.CanTransition(next) {
		return fmt.Errorf("invalid workflow transition %s -> %s", r.State, next)
	}
	r.State = next
	r.History = append(r.History, next)
	return nil
}
