package id

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNormalization reports an id that looks numeric but does not denote a whole number.
var ErrNormalization = errors.New("id normalization failed")

// maxExactInteger is the largest magnitude a float64 represents without gaps.
const maxExactInteger = 1 << 53

// Normalize returns the canonical string form of a record id or join key.
//
// Integer text is canonicalized ("007" -> "7"), numeric text with a zero fraction
// collapses to its integer ("123.0" -> "123") and anything that is not a number is
// treated as an opaque id and only trimmed. Numbers with a fractional part, values
// beyond float64 integer precision, NaN and Inf fail with ErrNormalization.
func Normalize(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("%w: empty id", ErrNormalization)
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrSyntax) {
			return value, nil
		}
		return "", fmt.Errorf("%w: %q is out of range", ErrNormalization, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %q is not a finite number", ErrNormalization, raw)
	}
	if math.Trunc(f) != f {
		return "", fmt.Errorf("%w: %q has a fractional part", ErrNormalization, raw)
	}
	if math.Abs(f) > maxExactInteger {
		return "", fmt.Errorf("%w: %q exceeds exact integer precision", ErrNormalization, raw)
	}

	return strconv.FormatInt(int64(f), 10), nil
}

// Canonical is Normalize for join keys: values that fail normalization keep their
// trimmed text so they can still match byte-for-byte.
func Canonical(raw string) string {
	normalized, err := Normalize(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return normalized
}

// Equal reports whether two raw ids normalize to the same value.
func Equal(a, b string) bool {
	na, err := Normalize(a)
	if err != nil {
		return false
	}
	nb, err := Normalize(b)
	if err != nil {
		return false
	}
	return na == nb
}
