package domain

// ThreadingMode selects the concurrency model the audio subsystem is
// initialized with.
type ThreadingMode int

const (
	ApartmentThreaded ThreadingMode = iota
	MultiThreaded
)

// DataFlow is the direction of an audio endpoint.
type DataFlow int

const (
	Render DataFlow = iota
	Capture
)

// Role is the usage category the platform picks a default device for.
type Role int

const (
	RoleConsole Role = iota
	RoleMultimedia
	RoleCommunications
)

// EventContext is the GUID passed along with a volume change so that the
// originating client can recognize its own notifications.
type EventContext [16]byte

// AudioSubsystem is a secondary port for the platform audio layer.
// Initialize must be paired with exactly one Uninitialize when it succeeds.
// Errors returned by any port should be, or wrap, a ResultCode.
type AudioSubsystem interface {
	Initialize(mode ThreadingMode) error
	Uninitialize()
	DeviceEnumerator() (DeviceEnumerator, error)
}

// DeviceEnumerator resolves endpoints.
type DeviceEnumerator interface {
	DefaultEndpoint(flow DataFlow, role Role) (Endpoint, error)
	Release()
}

// Endpoint is an addressable audio device.
type Endpoint interface {
	ActivateVolumeControl() (VolumeControl, error)
	Release()
}

// VolumeControl mutates the master volume of one endpoint.
type VolumeControl interface {
	SetMasterScalar(level Level, eventContext *EventContext) error
	Release()
}
