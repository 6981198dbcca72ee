package core

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/oneconcern/git-veil/pkg/core/status"
	"github.com/oneconcern/git-veil/pkg/model"
	"github.com/oneconcern/git-veil/pkg/storage"
	"go.uber.org/zap"
)

// Machine is the durable state machine shared by the hook processes.
//
// The descriptor lives in the same store as the backup manifest, so the
// pre-commit process, the post-commit process and any concurrent CLI
// invocation observe a consistent view of where the cycle stands.
type Machine struct {
	store storage.Store
	l     *zap.Logger
}

// NewMachine builds a machine persisting through store
func NewMachine(store storage.Store, l *zap.Logger) *Machine {
	if l == nil {
		l = zap.NewNop()
	}
	return &Machine{
		store: store,
		l:     l,
	}
}

// Current reads the persisted state. A store that never saw a
// transition reports idle.
func (m *Machine) Current(ctx context.Context) (*model.StateDescriptor, error) {
	has, err := m.store.Has(ctx, model.StateKey())
	if err != nil {
		return nil, status.ErrState.Wrap(err)
	}
	if !has {
		return model.NewStateDescriptor(), nil
	}

	b, err := storage.ReadAll(ctx, m.store, model.StateKey())
	if err != nil {
		return nil, status.ErrState.Wrap(err)
	}
	d, err := model.UnmarshalState(b)
	if err != nil {
		return nil, status.ErrState.Wrap(err)
	}
	return d, nil
}

// Transition moves the machine to next, enforcing cycle legality
func (m *Machine) Transition(ctx context.Context, next model.MachineState, scope string) (*model.StateDescriptor, error) {
	cur, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !cur.State.CanTransition(next) {
		return nil, status.ErrIllegalTransition.Wrap(fmt.Errorf("%s to %s", cur.State, next))
	}
	return m.force(ctx, next, scope)
}

func (m *Machine) force(ctx context.Context, next model.MachineState, scope string) (*model.StateDescriptor, error) {
	d := &model.StateDescriptor{
		State:     next,
		Scope:     scope,
		UpdatedAt: time.Now().UTC(),
	}
	b, err := model.MarshalState(d)
	if err != nil {
		return nil, status.ErrState.Wrap(err)
	}
	if err = m.store.Put(ctx, model.StateKey(), bytes.NewReader(b)); err != nil {
		return nil, status.ErrState.Wrap(err)
	}
	m.l.Debug("machine state",
		zap.String("state", next.String()),
		zap.String("scope", scope),
	)
	return d, nil
}

// BeginRestore drives the machine into restoring from wherever an
// interrupted run left it.
func (m *Machine) BeginRestore(ctx context.Context) (*model.StateDescriptor, error) {
	cur, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}

	switch cur.State {
	case model.StateRestoring:
		// an earlier restore was interrupted, stay and retry
		return cur, nil

	case model.StateStripping:
		if _, err = m.Transition(ctx, model.StateAborted, cur.Scope); err != nil {
			return nil, err
		}
		return m.Transition(ctx, model.StateRestoring, cur.Scope)

	case model.StateIdle:
		// pending records under an idle machine are an anomaly, restore anyway
		m.l.Warn("pending backups found while idle, forcing a restore")
		return m.force(ctx, model.StateRestoring, cur.Scope)

	default:
		return m.Transition(ctx, model.StateRestoring, cur.Scope)
	}
}

// Settle returns the machine to idle once no restore is owed anymore
func (m *Machine) Settle(ctx context.Context) error {
	cur, err := m.Current(ctx)
	if err != nil {
		return err
	}
	switch cur.State {
	case model.StateIdle:
		return nil
	case model.StateRestoring:
		_, err = m.Transition(ctx, model.StateIdle, "")
		return err
	default:
		// a stale state with nothing pending settles directly
		m.l.Warn("settling stale machine state", zap.String("state", cur.State.String()))
		_, err = m.force(ctx, model.StateIdle, "")
		return err
	}
}
