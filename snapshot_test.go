package tickfsm_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/tickfsm"
)

func TestSnapshotRestore(t *testing.T) {
	var m tickfsm.Machine
	require.NoError(t, m.Init(2))

	snap := m.Snapshot("ctrl")
	assert.Equal(t, "ctrl", snap.MachineID)
	assert.Equal(t, tickfsm.StateID(2), snap.Current)

	// Restore into a freshly initialized machine; no callbacks may fire.
	var entries int
	require.NoError(t, m.Init(0))
	require.NoError(t, m.Register(2, func() tickfsm.StateID { return 2 },
		tickfsm.WithOnEntry(func() { entries++ }),
	))

	require.NoError(t, m.Restore(snap))
	assert.Equal(t, tickfsm.StateID(2), m.Current())
	assert.Zero(t, entries, "restore must not fire entry callbacks")
}

func TestRestoreOutOfRange(t *testing.T) {
	var m tickfsm.Machine
	require.NoError(t, m.Init(0))

	err := m.Restore(tickfsm.Snapshot{MachineID: "ctrl", Current: tickfsm.Capacity})
	assert.ErrorIs(t, err, tickfsm.ErrStateOutOfRange)
	assert.Equal(t, tickfsm.StateID(0), m.Current())
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := tickfsm.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	snap := tickfsm.Snapshot{MachineID: "ctrl", Current: 3}
	require.NoError(t, store.Save(snap))

	got, err := store.Load("ctrl")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = store.Load("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLStoreRoundTrip(t *testing.T) {
	store, err := tickfsm.NewYAMLStore(t.TempDir())
	require.NoError(t, err)

	snap := tickfsm.Snapshot{MachineID: "ctrl", Current: 3}
	require.NoError(t, store.Save(snap))

	got, err := store.Load("ctrl")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = store.Load("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
