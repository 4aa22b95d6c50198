package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultCode_Label(t *testing.T) {
	tests := []struct {
		code ResultCode
		want string
	}{
		{EPointer, "E_POINTER: Device is NULL"},
		{EInvalidArg, "E_INVALIDARG: Invalid dataFlow or role argument"},
		{ENotFound, "E_NOTFOUND: No device available"},
		{EOutOfMemory, "E_OUTOFMEMORY: Out of memory"},
		{RegdbEClassNotReg, "REGDB_E_CLASSNOTREG"},
		{ClassENoAggregation, "CLASS_E_NOAGGREGATION"},
		{ENoInterface, "E_NOINTERFACE"},
		{EFail, "Unknown result: -2147467259"},
		{ResultCode(0x88890004), "Unknown result: -2004287484"},
		{ResultCode(5), "Unknown result: 5"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Label())
			// decoding is pure
			assert.Equal(t, tt.code.Label(), tt.code.Label())
		})
	}
}

func TestResultCode_Known(t *testing.T) {
	assert.True(t, ENotFound.Known())
	assert.False(t, ENotImpl.Known())
	assert.False(t, ResultCode(0).Known())
}

func TestResultCode_Failed(t *testing.T) {
	assert.True(t, EPointer.Failed())
	assert.False(t, ResultCode(0).Failed())
	assert.False(t, ResultCode(1).Failed())
}

func TestResultCode_Error(t *testing.T) {
	assert.Equal(t, "HRESULT 0x80070490: E_NOTFOUND: No device available", ENotFound.Error())
}

type codedError struct{ code ResultCode }

func (e codedError) Error() string          { return "coded" }
func (e codedError) ResultCode() ResultCode { return e.code }

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ENotFound, CodeOf(ENotFound))
	assert.Equal(t, ENoInterface, CodeOf(fmt.Errorf("activate: %w", ENoInterface)))
	assert.Equal(t, EOutOfMemory, CodeOf(codedError{code: EOutOfMemory}))
	assert.Equal(t, EFail, CodeOf(errors.New("boom")))
}
