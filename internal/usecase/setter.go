package usecase

import (
	"errors"

	"winvol/internal/domain"
	"winvol/internal/logging"
)

// VolumeSetter walks the acquisition chain subsystem → enumerator →
// endpoint → volume control and applies one master volume level.
type VolumeSetter struct {
	audio domain.AudioSubsystem
}

// NewVolumeSetter creates a setter bound to the given platform port.
func NewVolumeSetter(audio domain.AudioSubsystem) (*VolumeSetter, error) {
	if audio == nil {
		return nil, errors.New("audio subsystem is required")
	}
	return &VolumeSetter{audio: audio}, nil
}

// SetVolume applies level to the default multimedia render endpoint.
// Every handle acquired before a failure is released in reverse order.
func (s *VolumeSetter) SetVolume(level domain.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	logging.Debugf("initializing audio subsystem")
	if err := s.audio.Initialize(domain.ApartmentThreaded); err != nil {
		return domain.NewPlatformError(domain.StepInitialize, err)
	}
	defer func() {
		s.audio.Uninitialize()
		logging.Tracef("audio subsystem released")
	}()

	logging.Debugf("acquiring device enumerator")
	enumerator, err := s.audio.DeviceEnumerator()
	if err != nil {
		return domain.NewPlatformError(domain.StepEnumerator, err)
	}
	defer release("enumerator", enumerator.Release)

	logging.Debugf("resolving default render endpoint")
	endpoint, err := enumerator.DefaultEndpoint(domain.Render, domain.RoleMultimedia)
	if err != nil {
		return domain.NewPlatformError(domain.StepDevice, err)
	}
	defer release("endpoint", endpoint.Release)

	logging.Debugf("activating endpoint volume control")
	control, err := endpoint.ActivateVolumeControl()
	if err != nil {
		return domain.NewPlatformError(domain.StepActivate, err)
	}
	defer release("volume control", control.Release)

	logging.Debugf("setting master volume scalar to %s", level)
	if err := control.SetMasterScalar(level, nil); err != nil {
		return domain.NewPlatformError(domain.StepSetVolume, err)
	}
	logging.Infof("master volume set to %s", level)
	return nil
}

func release(name string, fn func()) {
	fn()
	logging.Tracef("%s released", name)
}
