package watermarker

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAngle converts a rotation into degrees. An empty rotation is 0;
// a whitespace-only one is ErrInvalidAngle.
//
// Parsing is lenient: surrounding whitespace and an optional sign are
// accepted, a 0x prefix switches to hexadecimal, and anything after the
// leading run of digits is ignored ("180abc" is 180). No digits at all is
// ErrInvalidAngle. Range is not checked.
func ParseAngle(rotation string) (int, error) {
	if rotation == "" {
		return 0, nil
	}

	s := strings.TrimSpace(rotation)
	negative := false
	if s != "" {
		switch s[0] {
		case '-':
			negative = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, newError(ErrInvalidAngle, "", fmt.Errorf("no digits in rotation %q", rotation))
	}

	degrees, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		return 0, newError(ErrInvalidAngle, "", err)
	}
	if negative {
		degrees = -degrees
	}
	return int(degrees), nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		return true
	}
	return false
}
