package codec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// canonicalAlphabet lists the base62 symbols in the order the service
	// assigns digit values: digits, then uppercase, then lowercase.
	canonicalAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// alphabetBase is the numeric base of the track ID encoding.
	alphabetBase = 62

	// gidHexLength is the canonical length of a GID rendered as hex.
	// GIDs are 128-bit values, so 32 hex characters, zero-padded.
	gidHexLength = 32

	// trackIDMaxLength is the canonical length of a track ID.
	// 22 base62 digits are enough to render any 128-bit value.
	trackIDMaxLength = 22

	// hexBase is the numeric base of the GID encoding.
	hexBase = 16
)

// Static error definitions for better error handling.
var (
	// ErrMalformedInput indicates that an identifier contains symbols
	// outside its encoding's alphabet.
	ErrMalformedInput = errors.New("malformed identifier")
)

// GIDToTrackID converts a hexadecimal GID to a base62 track ID.
// The input is interpreted as an unsigned integer of any length; hex digit
// case is ignored. A GID of zero yields an empty string, which callers must
// treat as a degenerate identifier: no real track maps to it.
func GIDToTrackID(gid string) (string, error) {
	value, ok := new(big.Int).SetString(gid, hexBase)
	if ok {
		// SetString accepts a leading sign, which a GID never carries.
		// "-0" still parses to a non-negative value, so the prefix itself
		// is checked rather than the resulting sign.
		ok = !strings.HasPrefix(gid, "+") && !strings.HasPrefix(gid, "-")
	}

	if !ok {
		return "", fmt.Errorf("%w: %q is not valid hexadecimal", ErrMalformedInput, gid)
	}

	var (
		result    []byte
		base      = big.NewInt(alphabetBase)
		remainder = new(big.Int)
	)

	// Standard repeated division, most significant digit last.
	for value.Sign() > 0 {
		value.QuoRem(value, base, remainder)
		result = append(result, canonicalAlphabet[remainder.Int64()])
	}

	// Digits were produced least significant first.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	// The service stores base62 digits with letter case inverted relative
	// to the canonical alphabet. This is its convention, not an accident:
	// dropping the swap produces IDs the service does not recognize.
	return swapCase(string(result)), nil
}

// TrackIDToGID converts a base62 track ID to its hexadecimal GID,
// rendered lowercase and zero-padded to 32 characters.
// Any string over the canonical alphabet is accepted regardless of length;
// arbitrary-precision arithmetic keeps long inputs from overflowing.
func TrackIDToGID(trackID string) (string, error) {
	var (
		swapped = swapCase(trackID)
		value   = new(big.Int)
		base    = big.NewInt(alphabetBase)
		digit   = new(big.Int)
	)

	for i := range len(swapped) {
		index := strings.IndexByte(canonicalAlphabet, swapped[i])
		if index < 0 {
			return "", fmt.Errorf("%w: symbol %q is not base62", ErrMalformedInput, trackID[i])
		}

		value.Mul(value, base)
		value.Add(value, digit.SetInt64(int64(index)))
	}

	return fmt.Sprintf("%0*x", gidHexLength, value), nil
}

// IsTrackID reports whether the string looks like a track ID:
// non-empty, at most 22 symbols, all from the canonical alphabet.
// It does not guarantee the ID resolves to an existing track.
func IsTrackID(s string) bool {
	if s == "" || len(s) > trackIDMaxLength {
		return false
	}

	for i := range len(s) {
		c := s[i]
		if !isDigit(c) && !isUpper(c) && !isLower(c) {
			return false
		}
	}

	return true
}

// swapCase inverts the case of every ASCII letter, leaving digits unchanged.
func swapCase(s string) string {
	result := []byte(s)
	for i, c := range result {
		switch {
		case isUpper(c):
			result[i] = c + 'a' - 'A'
		case isLower(c):
			result[i] = c - ('a' - 'A')
		}
	}

	return string(result)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
