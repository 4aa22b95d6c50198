package domain

import "fmt"

// ResultCode is a platform HRESULT returned by the audio subsystem.
type ResultCode uint32

// Result codes the audio subsystem is documented to return along the
// enumerator → endpoint → volume control chain.
const (
	EPointer            ResultCode = 0x80004003
	EInvalidArg         ResultCode = 0x80070057
	ENotFound           ResultCode = 0x80070490
	EOutOfMemory        ResultCode = 0x8007000E
	RegdbEClassNotReg   ResultCode = 0x80040154
	ClassENoAggregation ResultCode = 0x80040110
	ENoInterface        ResultCode = 0x80004002

	// ENotImpl is returned by the adapter on hosts without the audio subsystem.
	ENotImpl ResultCode = 0x80004001
	// EFail stands in for adapter errors that carry no code.
	EFail ResultCode = 0x80004005
)

var resultLabels = map[ResultCode]string{
	EPointer:            "E_POINTER: Device is NULL",
	EInvalidArg:         "E_INVALIDARG: Invalid dataFlow or role argument",
	ENotFound:           "E_NOTFOUND: No device available",
	EOutOfMemory:        "E_OUTOFMEMORY: Out of memory",
	RegdbEClassNotReg:   "REGDB_E_CLASSNOTREG",
	ClassENoAggregation: "CLASS_E_NOAGGREGATION",
	ENoInterface:        "E_NOINTERFACE",
}

// Known reports whether c has a dedicated label.
func (c ResultCode) Known() bool {
	_, ok := resultLabels[c]
	return ok
}

// Label decodes c into a human readable description. Unknown codes are
// rendered as their signed decimal value.
func (c ResultCode) Label() string {
	if label, ok := resultLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Unknown result: %d", c.Signed())
}

// Signed returns the HRESULT as the platform prints it.
func (c ResultCode) Signed() int32 {
	return int32(c)
}

// Failed reports whether the severity bit is set.
func (c ResultCode) Failed() bool {
	return c&0x80000000 != 0
}

func (c ResultCode) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X: %s", uint32(c), c.Label())
}
