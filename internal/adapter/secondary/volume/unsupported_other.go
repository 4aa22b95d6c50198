//go:build !windows

package volume

import (
	"runtime"

	"winvol/internal/domain"
	"winvol/internal/logging"
)

// UnsupportedPlatform is the adapter used where the Windows Core Audio
// APIs do not exist. Initialization always fails with E_NOTIMPL.
type UnsupportedPlatform struct{}

// NewPlatform returns the audio subsystem adapter for this OS.
func NewPlatform() domain.AudioSubsystem {
	return UnsupportedPlatform{}
}

func (UnsupportedPlatform) Initialize(domain.ThreadingMode) error {
	logging.Warnf("no audio subsystem adapter for %s/%s, use --dry-run to exercise the chain", runtime.GOOS, runtime.GOARCH)
	return domain.ENotImpl
}

func (UnsupportedPlatform) Uninitialize() {}

func (UnsupportedPlatform) DeviceEnumerator() (domain.DeviceEnumerator, error) {
	return nil, domain.ENotImpl
}
