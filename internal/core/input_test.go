package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionNorth, ActionCast)

	if !f.Has(ActionNorth) || !f.Has(ActionCast) {
		t.Error("frame should hold both actions")
	}
	if f.Has(ActionQuit) {
		t.Error("frame should not hold ActionQuit")
	}

	var empty InputFrame
	if !empty.Empty() || empty.Has(ActionNorth) {
		t.Error("zero frame should be empty")
	}
	empty.Set(ActionNone)
	if !empty.Empty() {
		t.Error("ActionNone must not be recorded")
	}
	empty.Set(ActionBack)
	if !empty.Has(ActionBack) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionWest.String() != "West" {
		t.Errorf("ActionWest.String() = %q", ActionWest.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
