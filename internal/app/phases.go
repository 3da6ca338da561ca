package app

import (
	"github.com/felixgeelhaar/statekit"
)

// Phase is the step an install run is in.
type Phase string

// Machine state IDs. Untyped so they convert to the machine's ID type.
const (
	stateIdle       = "idle"
	stateChecking   = "checking"
	stateRetiring   = "retiring"
	stateEnsuring   = "ensuring"
	stateUpdating   = "updating"
	stateSecondary  = "secondary"
	stateCommitting = "committing"
	stateDone       = "done"
	stateFailed     = "failed"
)

// Run phases, in the order a successful run visits them.
const (
	PhaseIdle       Phase = stateIdle
	PhaseChecking   Phase = stateChecking
	PhaseRetiring   Phase = stateRetiring
	PhaseEnsuring   Phase = stateEnsuring
	PhaseUpdating   Phase = stateUpdating
	PhaseSecondary  Phase = stateSecondary
	PhaseCommitting Phase = stateCommitting
	PhaseDone       Phase = stateDone
	PhaseFailed     Phase = stateFailed
)

// Terminal reports whether no further transitions happen from p.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// Events driving the run machine.
const (
	EventStart     = "START"
	EventChecked   = "CHECKED"
	EventRetired   = "RETIRED"
	EventEnsured   = "ENSURED"
	EventUpdated   = "UPDATED"
	EventSecondary = "SECONDARY_DONE"
	EventCommitted = "COMMITTED"
	EventFail      = "FAIL"
)

// runContext is the machine's context type.
type runContext struct {
	RunID string
	Err   error
}

// buildRunMachine constructs the phase machine for one run. The state
// pointer is captured by the action closures so they update the caller's
// copy rather than the interpreter's.
func buildRunMachine(state *runContext) (*statekit.Interpreter[runContext], error) {
	machine, err := statekit.NewMachine[runContext]("triginstall-run").
		WithInitial(stateIdle).
		WithContext(*state).
		WithAction("recordFailure", func(_ *runContext, event statekit.Event) {
			if err, ok := event.Payload.(error); ok {
				state.Err = err
			}
		}).
		State(stateIdle).
		On(EventStart).Target(stateChecking).Done().
		State(stateChecking).
		On(EventChecked).Target(stateRetiring).
		On(EventFail).Target(stateFailed).Done().
		State(stateRetiring).
		On(EventRetired).Target(stateEnsuring).
		On(EventFail).Target(stateFailed).Done().
		State(stateEnsuring).
		On(EventEnsured).Target(stateUpdating).
		On(EventFail).Target(stateFailed).Done().
		State(stateUpdating).
		On(EventUpdated).Target(stateSecondary).
		On(EventFail).Target(stateFailed).Done().
		State(stateSecondary).
		On(EventSecondary).Target(stateCommitting).
		On(EventFail).Target(stateFailed).Done().
		State(stateCommitting).
		On(EventCommitted).Target(stateDone).
		On(EventFail).Target(stateFailed).Done().
		State(stateDone).Done().
		State(stateFailed).
		OnEntry("recordFailure").Done().
		Build()

	if err != nil {
		return nil, err
	}

	return statekit.NewInterpreter(machine), nil
}
