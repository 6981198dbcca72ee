package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v2"
)

// MachineState models where the strip and restore cycle currently stands.
//
// The nominal cycle is idle, stripping, stripped, committing, restoring, idle.
// An abort during stripping forces a restore before returning to idle.
type MachineState string

const (
	// StateIdle means no veil activity is in flight
	StateIdle MachineState = "idle"

	// StateStripping means backups and stripped content are being written
	StateStripping MachineState = "stripping"

	// StateStripped means every matched file is stripped and re-staged
	StateStripped MachineState = "stripped"

	// StateCommitting means control was handed back to git for the commit itself
	StateCommitting MachineState = "committing"

	// StateRestoring means original bytes are being written back to the working tree
	StateRestoring MachineState = "restoring"

	// StateAborted means stripping failed midway and a restore is owed
	StateAborted MachineState = "aborted"
)

// IsValid checks the value of a machine state
func (s MachineState) IsValid() bool {
	switch s {
	case StateIdle, StateStripping, StateStripped, StateCommitting, StateRestoring, StateAborted:
		return true
	default:
		return false
	}
}

func (s MachineState) String() string {
	return string(s)
}

// CanTransition reports whether moving to next is a legal step from s
func (s MachineState) CanTransition(next MachineState) bool {
	switch s {
	case StateIdle:
		return next == StateStripping
	case StateStripping:
		return next == StateStripped || next == StateAborted
	case StateStripped:
		return next == StateCommitting || next == StateRestoring
	case StateCommitting:
		return next == StateRestoring
	case StateAborted:
		return next == StateRestoring
	case StateRestoring:
		return next == StateIdle
	default:
		return false
	}
}

// NeedsRecovery reports whether a state left behind by another process implies
// pending backups that must be restored before any new work
func (s MachineState) NeedsRecovery() bool {
	switch s {
	case StateStripping, StateStripped, StateCommitting, StateRestoring, StateAborted:
		return true
	default:
		return false
	}
}

// StateDescriptor is the durable snapshot of the machine shared by hook processes
type StateDescriptor struct {
	State     MachineState `json:"state" yaml:"state"`
	Scope     string       `json:"scope,omitempty" yaml:"scope,omitempty"` // scope of the run that owns the non idle state
	UpdatedAt time.Time    `json:"updatedAt" yaml:"updatedAt"`
	_         struct{}
}

// NewStateDescriptor returns a descriptor at rest
func NewStateDescriptor() *StateDescriptor {
	return &StateDescriptor{
		State:     StateIdle,
		UpdatedAt: time.Now().UTC(),
	}
}

// MarshalState serializes a state descriptor to YAML
func MarshalState(d *StateDescriptor) ([]byte, error) {
	return yaml.Marshal(d)
}

// UnmarshalState deserializes a state descriptor from YAML
func UnmarshalState(b []byte) (*StateDescriptor, error) {
	if b == nil {
		return nil, fmt.Errorf("received nil state to unmarshal")
	}
	var d StateDescriptor
	err := yaml.Unmarshal(b, &d)
	return &d, err
}
