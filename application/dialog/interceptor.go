// Package dialog captures and resolves native browser dialogs.
//
// An Interceptor lives for exactly one arm/trigger cycle:
//
//	Idle -> Armed -> Fired -> Resolved
//
// It must be armed before the action that raises the dialog, otherwise the
// engine auto-dismisses the dialog and the message is lost. Intercept makes
// that ordering the only one available.
package dialog

import (
	"fmt"
	"sync"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"
)

// State is where an interceptor is in its cycle
type State int

const (
	Idle State = iota
	Armed
	Fired
	Resolved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Fired:
		return "fired"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Policy says how the intercepted dialog is resolved
type Policy struct {
	Accept bool
	// PromptText is sent when accepting a prompt
	PromptText string
}

// Accept accepts the dialog
func Accept() Policy {
	return Policy{Accept: true}
}

// AcceptWith accepts a prompt with text
func AcceptWith(text string) Policy {
	return Policy{Accept: true, PromptText: text}
}

// Dismiss cancels the dialog
func Dismiss() Policy {
	return Policy{}
}

// Interceptor is a one-shot dialog handler
type Interceptor struct {
	policy Policy
	done   chan struct{}

	mu     sync.Mutex
	state  State
	event  entities.DialogEvent
	err    error
	disarm func()
}

// Arm subscribes to the next dialog of src
func Arm(src interfaces.DialogSource, policy Policy) *Interceptor {
	in := &Interceptor{
		policy: policy,
		done:   make(chan struct{}),
		state:  Armed,
	}
	in.mu.Lock()
	in.disarm = src.OnceDialog(in.handle)
	in.mu.Unlock()
	return in
}

// Intercept arms an interceptor, runs trigger and waits up to timeout for
// the dialog it raised.
func Intercept(src interfaces.DialogSource, policy Policy, trigger func() error, timeout time.Duration) (entities.DialogEvent, error) {
	in := Arm(src, policy)
	if err := trigger(); err != nil {
		in.Disarm()
		return entities.DialogEvent{}, err
	}
	return in.Wait(timeout)
}

func (in *Interceptor) handle(d interfaces.Dialog) {
	in.mu.Lock()
	if in.state != Armed {
		in.mu.Unlock()
		_ = d.Dismiss()
		return
	}
	in.state = Fired
	in.event = entities.DialogEvent{
		Kind:         d.Kind(),
		Message:      d.Message(),
		DefaultValue: d.DefaultValue(),
	}
	in.mu.Unlock()

	var err error
	if in.policy.Accept {
		err = d.Accept(in.policy.PromptText)
	} else {
		err = d.Dismiss()
	}

	in.mu.Lock()
	if err != nil {
		in.err = fmt.Errorf("resolve %s dialog: %w", in.event.Kind, err)
	} else {
		in.event.Accepted = in.policy.Accept
		if in.policy.Accept && in.event.Kind == entities.DialogPrompt {
			in.event.Response = in.policy.PromptText
		}
	}
	in.state = Resolved
	in.mu.Unlock()
	close(in.done)
}

// Wait blocks until the dialog is resolved or timeout passes. On timeout the
// interceptor is disarmed and ErrNoDialog is returned.
func (in *Interceptor) Wait(timeout time.Duration) (entities.DialogEvent, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-in.done:
	case <-timer.C:
		in.mu.Lock()
		if in.state == Armed {
			in.state = Idle
			disarm := in.disarm
			in.mu.Unlock()
			disarm()
			return entities.DialogEvent{}, fmt.Errorf("waited %s: %w", timeout, entities.ErrNoDialog)
		}
		in.mu.Unlock()
		// fired just now, resolution is already under way
		<-in.done
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	return in.event, in.err
}

// Disarm drops the subscription if no dialog has fired yet
func (in *Interceptor) Disarm() {
	in.mu.Lock()
	if in.state != Armed {
		in.mu.Unlock()
		return
	}
	in.state = Idle
	disarm := in.disarm
	in.mu.Unlock()
	disarm()
}

// State returns the current state
func (in *Interceptor) State() State {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}
