package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep_Description(t *testing.T) {
	tests := []struct {
		step Step
		name string
		want string
	}{
		{StepInitialize, "initialize", "Failed to init COM"},
		{StepEnumerator, "enumerator", "Failed to get enumerator"},
		{StepDevice, "device", "Failed to get device"},
		{StepActivate, "activate", "Failed to get volume control interface"},
		{StepSetVolume, "set-volume", "Failed to set master volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.step.String())
			assert.Equal(t, tt.want, tt.step.Description())
		})
	}
}

func TestNewPlatformError(t *testing.T) {
	err := NewPlatformError(StepDevice, ENotFound)
	assert.Equal(t, StepDevice, err.Step)
	assert.Equal(t, ENotFound, err.Code)
	assert.ErrorIs(t, err, ENotFound)
	assert.Equal(t, "device: E_NOTFOUND: No device available", err.Error())

	err = NewPlatformError(StepEnumerator, errors.New("no code"))
	assert.Equal(t, EFail, err.Code)
}

func TestParseError_Error(t *testing.T) {
	_, err := ParseLevel("abc")
	assert.EqualError(t, err, `invalid floating point argument: "abc"`)
	_, err = ParseLevel("1e39")
	assert.EqualError(t, err, `float out of range: "1e39"`)
}
