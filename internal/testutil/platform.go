// Package testutil provides a recording fake of the audio subsystem ports.
package testutil

import (
	"fmt"
	"sync"

	"winvol/internal/domain"
)

// Platform records every port call in order and fails at a configured step.
type Platform struct {
	// FailAt selects the step that returns FailCode. Nil means no failure.
	FailAt   *domain.Step
	FailCode domain.ResultCode

	mu    sync.Mutex
	calls []string

	// SetCalls holds every SetMasterScalar invocation.
	SetCalls []SetCall
}

// SetCall is one recorded SetMasterScalar invocation.
type SetCall struct {
	Level   domain.Level
	Context *domain.EventContext
}

// FailingAt returns a Platform that fails with code at step.
func FailingAt(step domain.Step, code domain.ResultCode) *Platform {
	return &Platform{FailAt: &step, FailCode: code}
}

// Calls returns a copy of the recorded call log.
func (p *Platform) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *Platform) record(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
}

func (p *Platform) fail(step domain.Step) error {
	if p.FailAt != nil && *p.FailAt == step {
		return p.FailCode
	}
	return nil
}

func (p *Platform) Initialize(mode domain.ThreadingMode) error {
	p.record("initialize(%d)", mode)
	return p.fail(domain.StepInitialize)
}

func (p *Platform) Uninitialize() {
	p.record("uninitialize")
}

func (p *Platform) DeviceEnumerator() (domain.DeviceEnumerator, error) {
	p.record("enumerator")
	if err := p.fail(domain.StepEnumerator); err != nil {
		return nil, err
	}
	return &enumerator{p: p}, nil
}

type enumerator struct{ p *Platform }

func (e *enumerator) DefaultEndpoint(flow domain.DataFlow, role domain.Role) (domain.Endpoint, error) {
	e.p.record("endpoint(%d,%d)", flow, role)
	if err := e.p.fail(domain.StepDevice); err != nil {
		return nil, err
	}
	return &endpoint{p: e.p}, nil
}

func (e *enumerator) Release() { e.p.record("release enumerator") }

type endpoint struct{ p *Platform }

func (e *endpoint) ActivateVolumeControl() (domain.VolumeControl, error) {
	e.p.record("activate")
	if err := e.p.fail(domain.StepActivate); err != nil {
		return nil, err
	}
	return &volumeControl{p: e.p}, nil
}

func (e *endpoint) Release() { e.p.record("release endpoint") }

type volumeControl struct{ p *Platform }

func (v *volumeControl) SetMasterScalar(level domain.Level, ctx *domain.EventContext) error {
	v.p.record("set(%s)", level)
	v.p.mu.Lock()
	v.p.SetCalls = append(v.p.SetCalls, SetCall{Level: level, Context: ctx})
	v.p.mu.Unlock()
	return v.p.fail(domain.StepSetVolume)
}

func (v *volumeControl) Release() { v.p.record("release volume") }
