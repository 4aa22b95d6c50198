package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Level is a master volume scalar in the closed range [0, 1].
type Level float32

const (
	// MinLevel mutes the endpoint.
	MinLevel Level = 0
	// MaxLevel is full scale.
	MaxLevel Level = 1
)

// smallestNormal32 is the smallest positive normal float32.
const smallestNormal32 = 0x1p-126

// ParseLevel converts command-line text into a validated Level.
// Syntax failures and literals whose magnitude over- or underflows float32
// are reported as *ParseError, well-formed values outside [0, 1] as
// *RangeError. Digit separators are not accepted.
func ParseLevel(text string) (Level, error) {
	literal := strings.TrimSpace(text)
	if strings.ContainsRune(literal, '_') {
		return 0, &ParseError{Input: text, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(literal, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Input: text, Err: strconv.ErrRange}
		}
		return 0, &ParseError{Input: text, Err: strconv.ErrSyntax}
	}
	if underflows(f, literal) {
		return 0, &ParseError{Input: text, Err: strconv.ErrRange}
	}
	level := Level(f)
	if err := level.Validate(); err != nil {
		return 0, err
	}
	return level, nil
}

// underflows reports whether a non-zero literal rounded to zero or to a
// subnormal float32.
func underflows(f float64, literal string) bool {
	if f != 0 {
		return math.Abs(f) < smallestNormal32
	}
	return nonZeroMantissa(literal)
}

func nonZeroMantissa(literal string) bool {
	s := strings.TrimLeft(literal, "+-")
	digits, exp := "123456789", "eE"
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		digits, exp = "123456789abcdefABCDEF", "pP"
	}
	if i := strings.IndexAny(s, exp); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, digits)
}

// Validate reports a *RangeError for NaN, infinities and values outside [0, 1].
func (l Level) Validate() error {
	f := float64(l)
	if math.IsNaN(f) || f < float64(MinLevel) || f > float64(MaxLevel) {
		return &RangeError{Value: f}
	}
	return nil
}

// Float32 returns the scalar in the form the platform API expects.
func (l Level) Float32() float32 {
	return float32(l)
}

// String formats the level with six significant digits.
func (l Level) String() string {
	return strconv.FormatFloat(float64(l), 'g', 6, 32)
}
