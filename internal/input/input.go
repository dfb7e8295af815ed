// Package input turns raw console tokens into typed values. Every function
// here is pure; retrying on rejection is the caller's job.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-sql/civil"
)

var (
	ErrNotANumber  = errors.New("not a valid number")
	ErrInvalidDate = errors.New("invalid date")
)

// ParseInt accepts an optionally signed base-10 integer token that fits in
// 32 bits.
func ParseInt(token string) (int, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", token, ErrNotANumber)
	}
	return int(n), nil
}

// NewDate builds a calendar date, rejecting out-of-range months and days
// such as 2024-02-30.
func NewDate(year, month, day int) (civil.Date, error) {
	d := civil.Date{Year: year, Month: time.Month(month), Day: day}
	if !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%d-%d-%d: %w", year, month, day, ErrInvalidDate)
	}
	return d, nil
}

// ParseDate parses year, month and day tokens into a calendar date.
func ParseDate(year, month, day string) (civil.Date, error) {
	parts := [3]int{}
	for i, tok := range [3]string{year, month, day} {
		n, err := ParseInt(tok)
		if err != nil {
			return civil.Date{}, err
		}
		parts[i] = n
	}
	return NewDate(parts[0], parts[1], parts[2])
}
