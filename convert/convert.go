// Package convert provides type conversion helpers: string and byte-slice
// shaping, numeric and boolean parsing, UUID parsing, and choice validation.
package convert

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// String converts a byte slice to a string.
func String(value []byte) (string, error) {
	return string(value), nil
}

// Bytes converts a string to a byte slice.
func Bytes(value string) ([]byte, error) {
	return []byte(value), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) (string, error) {
	return strings.ToUpper(s), nil
}

// ParseInt parses a base-10 signed integer into any signed integer type,
// rejecting values that overflow the destination type.
func ParseInt[T Intish](s string) (T, error) {
	var out T

	parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, reflect.TypeFor[T]().Bits())
	if err != nil {
		return out, fmt.Errorf("parsing %q as %T: %w", s, out, err)
	}

	return T(parsed), nil
}

// ParseUint parses a base-10 unsigned integer into any unsigned integer
// type, rejecting values that overflow the destination type.
func ParseUint[T Uintish](s string) (T, error) {
	var out T

	parsed, err := strconv.ParseUint(strings.TrimSpace(s), 10, reflect.TypeFor[T]().Bits())
	if err != nil {
		return out, fmt.Errorf("parsing %q as %T: %w", s, out, err)
	}

	return T(parsed), nil
}

// ParseFloat parses a floating-point number into float32 or float64.
func ParseFloat[T Floatish](s string) (T, error) {
	var out T

	parsed, err := strconv.ParseFloat(strings.TrimSpace(s), reflect.TypeFor[T]().Bits())
	if err != nil {
		return out, fmt.Errorf("parsing %q as %T: %w", s, out, err)
	}

	return T(parsed), nil
}

// ParseBool parses a boolean, accepting the forms strconv.ParseBool does
// (1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False).
func ParseBool(s string) (bool, error) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("parsing %q as bool: %w", s, err)
	}

	return parsed, nil
}

// Positive validates that a parsed number is greater than zero.
func Positive[T Intish | Uintish | Floatish](value T) (T, error) {
	if value <= 0 {
		return value, fmt.Errorf("%w: %v", ErrNonPositive, value)
	}

	return value, nil
}

// UUID parses a string as a UUID in any of the formats accepted by
// github.com/google/uuid.
func UUID(value string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing %q as UUID: %w", value, err)
	}

	return parsed, nil
}

// OneOf returns a converter that validates a value is one of the allowed
// choices. Returns ErrInvalidChoice when the value matches none of them.
func OneOf[A comparable](choices ...A) func(A) (A, error) {
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v", ErrInvalidChoice, value)
	}
}
