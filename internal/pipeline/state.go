package pipeline

import (
	"fmt"

	"github.com/idelchi/ghostenc/internal/autotune"
)

// Op identifies the direction of a pipeline call.
type Op int

const (
	// OpEncrypt is reported by Encrypt.
	OpEncrypt Op = iota
	// OpDecrypt is reported by Decrypt.
	OpDecrypt
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpEncrypt:
		return "encrypt"
	case OpDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// State is a step of the encrypt or decrypt state machine.
type State int

const (
	StateIdle State = iota
	StateCompressing
	StateTransforming
	StateEncapsulating
	StateCiphering
	StateAuthenticating
	StateFramed
	StateVerifyingMAC
	StateDeciphering
	StateReversingTransform
	StateDecompressing
	StateError
)

var stateNames = [...]string{ //nolint:gochecknoglobals
	StateIdle:               "idle",
	StateCompressing:        "compressing",
	StateTransforming:       "transforming",
	StateEncapsulating:      "encapsulating",
	StateCiphering:          "ciphering",
	StateAuthenticating:     "authenticating",
	StateFramed:             "framed",
	StateVerifyingMAC:       "verifying-mac",
	StateDeciphering:        "deciphering",
	StateReversingTransform: "reversing-transform",
	StateDecompressing:      "decompressing",
	StateError:              "error",
}

// String returns the state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Event describes a state the pipeline entered.
type Event struct {
	Op    Op
	State State
	// Size is the length of the buffer the state starts from.
	Size int
	// Plan carries the round count the cipher runs with.
	// Set on StateCiphering and StateDeciphering.
	Plan *autotune.RoundPlan
	// Suggested is the autotuner's plan for the payload, set on StateCiphering.
	// It only replaces Plan when Adaptive is true.
	Suggested *autotune.RoundPlan
	// Adaptive reports whether Plan was taken from Suggested.
	Adaptive bool
	// Entropy of the compressed payload, set alongside Suggested.
	Entropy float64
	// Err is set on StateError.
	Err error
}

// Observer receives pipeline events. Implementations must be safe for concurrent use
// when the Encryptor is shared between goroutines.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// run tracks one call through the state machine.
type run struct {
	op       Op
	observer Observer
}

func (r run) enter(state State, size int) {
	r.emit(Event{State: state, Size: size})
}

// emit stamps the operation onto ev and forwards it.
func (r run) emit(ev Event) {
	ev.Op = r.op
	r.observer.Observe(ev)
}

// fail reports err and returns it.
func (r run) fail(err error) error {
	r.observer.Observe(Event{Op: r.op, State: StateError, Err: err})

	return err
}
