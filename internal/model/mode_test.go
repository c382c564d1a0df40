package model

import "testing"

func TestLifecycleState_IsActive(t *testing.T) {
	tests := []struct {
		state    LifecycleState
		expected bool
	}{
		{StateNone, false},
		{StatePIP, true},
		{StateFull, true},
		{StateExiting, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("LifecycleState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLifecycleState_IsInteractive(t *testing.T) {
	tests := []struct {
		state    LifecycleState
		expected bool
	}{
		{StateNone, false},
		{StatePIP, true},
		{StateFull, false},
		{StateExiting, false},
	}

	for _, test := range tests {
		result := test.state.IsInteractive()
		if result != test.expected {
			t.Errorf("LifecycleState(%s).IsInteractive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLifecycleState_Mode(t *testing.T) {
	tests := []struct {
		state   LifecycleState
		mode    Mode
		visible bool
	}{
		{StateNone, "", false},
		{StatePIP, ModePIP, true},
		{StateFull, ModeFull, true},
		{StateExiting, "", false},
	}

	for _, test := range tests {
		mode, visible := test.state.Mode()
		if visible != test.visible {
			t.Errorf("LifecycleState(%s).Mode() visible = %v, expected %v", test.state, visible, test.visible)
		}
		if visible && mode != test.mode {
			t.Errorf("LifecycleState(%s).Mode() = %s, expected %s", test.state, mode, test.mode)
		}
	}
}

func TestStateForMode(t *testing.T) {
	if StateForMode(ModePIP) != StatePIP {
		t.Errorf("StateForMode(ModePIP) = %s, expected %s", StateForMode(ModePIP), StatePIP)
	}
	if StateForMode(ModeFull) != StateFull {
		t.Errorf("StateForMode(ModeFull) = %s, expected %s", StateForMode(ModeFull), StateFull)
	}
}

func TestMode_String(t *testing.T) {
	mode := ModePIP
	expected := "PIP"
	result := mode.String()

	if result != expected {
		t.Errorf("Mode.String() = %s, expected %s", result, expected)
	}
}
