//go:build windows

package volume

import (
	"errors"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"

	"winvol/internal/domain"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// the thread. It still has to be balanced by CoUninitialize.
const sFalse = 1

// WASAPIPlatform implements domain.AudioSubsystem with the Windows Core
// Audio APIs (MMDevice + EndpointVolume). This is a secondary adapter.
type WASAPIPlatform struct{}

// NewPlatform returns the audio subsystem adapter for this OS.
func NewPlatform() domain.AudioSubsystem {
	return &WASAPIPlatform{}
}

// Initialize initializes COM on the calling OS thread. The goroutine stays
// locked to that thread until Uninitialize.
func (p *WASAPIPlatform) Initialize(mode domain.ThreadingMode) error {
	runtime.LockOSThread()
	if err := ole.CoInitializeEx(0, coinit(mode)); err != nil {
		if resultCode(err) == sFalse {
			return nil
		}
		runtime.UnlockOSThread()
		return toResultCode(err)
	}
	return nil
}

// Uninitialize releases COM and unlocks the OS thread.
func (p *WASAPIPlatform) Uninitialize() {
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

// DeviceEnumerator creates an IMMDeviceEnumerator instance.
func (p *WASAPIPlatform) DeviceEnumerator() (domain.DeviceEnumerator, error) {
	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		return nil, toResultCode(err)
	}
	return &deviceEnumerator{mmde: mmde}, nil
}

type deviceEnumerator struct {
	mmde *wca.IMMDeviceEnumerator
}

func (e *deviceEnumerator) DefaultEndpoint(flow domain.DataFlow, role domain.Role) (domain.Endpoint, error) {
	var mmd *wca.IMMDevice
	if err := e.mmde.GetDefaultAudioEndpoint(dataFlow(flow), erole(role), &mmd); err != nil {
		return nil, toResultCode(err)
	}
	return &endpoint{mmd: mmd}, nil
}

func (e *deviceEnumerator) Release() {
	e.mmde.Release()
}

type endpoint struct {
	mmd *wca.IMMDevice
}

func (e *endpoint) ActivateVolumeControl() (domain.VolumeControl, error) {
	var aev *wca.IAudioEndpointVolume
	if err := e.mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return nil, toResultCode(err)
	}
	return &volumeControl{aev: aev}, nil
}

func (e *endpoint) Release() {
	e.mmd.Release()
}

type volumeControl struct {
	aev *wca.IAudioEndpointVolume
}

func (v *volumeControl) SetMasterScalar(level domain.Level, eventContext *domain.EventContext) error {
	if err := v.aev.SetMasterVolumeLevelScalar(level.Float32(), toGUID(eventContext)); err != nil {
		return toResultCode(err)
	}
	return nil
}

func (v *volumeControl) Release() {
	v.aev.Release()
}

func coinit(mode domain.ThreadingMode) uint32 {
	if mode == domain.MultiThreaded {
		return ole.COINIT_MULTITHREADED
	}
	return ole.COINIT_APARTMENTTHREADED
}

func dataFlow(flow domain.DataFlow) uint32 {
	if flow == domain.Capture {
		return wca.ECapture
	}
	return wca.ERender
}

func erole(role domain.Role) uint32 {
	switch role {
	case domain.RoleMultimedia:
		return wca.EMultimedia
	case domain.RoleCommunications:
		return wca.ECommunications
	default:
		return wca.EConsole
	}
}

func toGUID(ctx *domain.EventContext) *ole.GUID {
	if ctx == nil {
		return nil
	}
	b := ctx[:]
	return &ole.GUID{
		Data1: uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]),
		Data2: uint16(b[4])<<8 | uint16(b[5]),
		Data3: uint16(b[6])<<8 | uint16(b[7]),
		Data4: [8]byte{b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15]},
	}
}

func resultCode(err error) uintptr {
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		return oleErr.Code()
	}
	return uintptr(domain.EFail)
}

func toResultCode(err error) error {
	return domain.ResultCode(uint32(resultCode(err)))
}
