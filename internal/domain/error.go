package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUsage indicates the wrong number of arguments. It is not a failure.
var ErrUsage = errors.New("exactly one volume argument is required")

// ParseError reports argument text that is not a float32 literal.
// Err is strconv.ErrSyntax or strconv.ErrRange.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, strconv.ErrRange) {
		return fmt.Sprintf("float out of range: %q", e.Input)
	}
	return fmt.Sprintf("invalid floating point argument: %q", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// OutOfRange reports whether the literal overflowed float32.
func (e *ParseError) OutOfRange() bool {
	return errors.Is(e.Err, strconv.ErrRange)
}

// RangeError reports a well-formed value outside [0, 1].
type RangeError struct {
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("volume %v out of range [0, 1]", e.Value)
}

// Step identifies where in the acquisition chain a platform call failed.
type Step int

const (
	StepInitialize Step = iota
	StepEnumerator
	StepDevice
	StepActivate
	StepSetVolume
)

func (s Step) String() string {
	switch s {
	case StepInitialize:
		return "initialize"
	case StepEnumerator:
		return "enumerator"
	case StepDevice:
		return "device"
	case StepActivate:
		return "activate"
	case StepSetVolume:
		return "set-volume"
	default:
		return "unknown"
	}
}

// Description is the one-line diagnostic printed for a failure at s.
func (s Step) Description() string {
	switch s {
	case StepInitialize:
		return "Failed to init COM"
	case StepEnumerator:
		return "Failed to get enumerator"
	case StepDevice:
		return "Failed to get device"
	case StepActivate:
		return "Failed to get volume control interface"
	case StepSetVolume:
		return "Failed to set master volume"
	default:
		return "Platform call failed"
	}
}

// PlatformError is a failure returned by the audio subsystem at Step.
type PlatformError struct {
	Step Step
	Code ResultCode
	Err  error
}

// NewPlatformError decodes err into a PlatformError for step.
func NewPlatformError(step Step, err error) *PlatformError {
	return &PlatformError{Step: step, Code: CodeOf(err), Err: err}
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Code.Label())
}

func (e *PlatformError) Unwrap() error { return e.Err }

// CodeOf extracts the ResultCode carried by err, or EFail when there is none.
func CodeOf(err error) ResultCode {
	var code ResultCode
	if errors.As(err, &code) {
		return code
	}
	var coded interface{ ResultCode() ResultCode }
	if errors.As(err, &coded) {
		return coded.ResultCode()
	}
	return EFail
}
