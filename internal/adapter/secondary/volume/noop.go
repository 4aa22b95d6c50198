package volume

import (
	"winvol/internal/domain"
	"winvol/internal/logging"
)

// NoopPlatform implements domain.AudioSubsystem without touching the OS.
// Every step succeeds. Used by --dry-run.
type NoopPlatform struct{}

// NewNoopPlatform creates a new no-op audio subsystem.
func NewNoopPlatform() domain.AudioSubsystem {
	return NoopPlatform{}
}

func (NoopPlatform) Initialize(domain.ThreadingMode) error {
	logging.Infof("dry run: audio subsystem is not touched")
	return nil
}

func (NoopPlatform) Uninitialize() {}

func (NoopPlatform) DeviceEnumerator() (domain.DeviceEnumerator, error) {
	return noopHandle{}, nil
}

type noopHandle struct{}

func (noopHandle) DefaultEndpoint(domain.DataFlow, domain.Role) (domain.Endpoint, error) {
	return noopHandle{}, nil
}

func (noopHandle) ActivateVolumeControl() (domain.VolumeControl, error) {
	return noopHandle{}, nil
}

func (noopHandle) SetMasterScalar(level domain.Level, _ *domain.EventContext) error {
	logging.Debugf("dry run: would set master volume to %s", level)
	return nil
}

func (noopHandle) Release() {}
