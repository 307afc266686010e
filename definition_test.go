package tickfsm

import (
	"errors"
	"testing"
)

func TestDefinitionValidation(t *testing.T) {
	poll := func() StateID { return stateBoot }

	tests := []struct {
		name    string
		def     *Definition
		wantErr bool
	}{
		{
			name:    "no initial state",
			def:     NewDefinition().State(stateBoot, poll),
			wantErr: true,
		},
		{
			name:    "initial out of range",
			def:     NewDefinition().State(stateBoot, poll).Initial(Capacity),
			wantErr: true,
		},
		{
			name:    "state out of range",
			def:     NewDefinition().State(Capacity, poll).Initial(stateBoot),
			wantErr: true,
		},
		{
			name:    "nil poll",
			def:     NewDefinition().State(stateBoot, nil).Initial(stateBoot),
			wantErr: true,
		},
		{
			name:    "duplicate state",
			def:     NewDefinition().State(stateBoot, poll).State(stateBoot, poll).Initial(stateBoot),
			wantErr: true,
		},
		{
			name: "valid definition",
			def: NewDefinition().
				State(stateBoot, poll).
				State(stateIdle, poll).
				Initial(stateBoot),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefinitionBuild(t *testing.T) {
	var entered int

	m, err := NewDefinition().
		State(stateBoot, func() StateID { return stateIdle }).
		State(stateIdle, func() StateID { return stateIdle },
			WithOnEntry(func() { entered++ }),
		).
		Initial(stateBoot).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if m.Current() != stateBoot {
		t.Errorf("expected current %d, got %d", stateBoot, m.Current())
	}
	if !m.Registered(stateBoot) || !m.Registered(stateIdle) {
		t.Error("expected both states registered")
	}

	m.Step()
	if m.Current() != stateIdle {
		t.Errorf("expected current %d, got %d", stateIdle, m.Current())
	}
	if entered != 1 {
		t.Errorf("expected 1 entry, got %d", entered)
	}
}

func TestDefinitionBuildInvalid(t *testing.T) {
	_, err := NewDefinition().
		State(stateBoot, nil).
		Initial(stateBoot).
		Build()
	if !errors.Is(err, ErrNilPollFunc) {
		t.Fatalf("expected ErrNilPollFunc, got %v", err)
	}
}
