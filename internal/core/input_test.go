package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotateCW)
	f.Set(ActionLeft)
	f.Set(ActionRotateCW) // duplicate keeps first position

	got := f.Ordered()
	if len(got) != 2 {
		t.Fatalf("Ordered() returned %d actions, expected 2", len(got))
	}
	if got[0] != ActionRotateCW || got[1] != ActionLeft {
		t.Errorf("Ordered() = %v, expected [RotateCW Left]", got)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	f.Clear()

	if f.Has(ActionHardDrop) {
		t.Error("Has() should be false after Clear")
	}
	if len(f.Ordered()) != 0 {
		t.Errorf("Ordered() after Clear = %v, expected empty", f.Ordered())
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should register the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFlip)
	f.Set(ActionDown)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionFlip) || !c.Has(ActionDown) {
		t.Error("clone should keep actions after original is cleared")
	}
	if got := c.Ordered(); got[0] != ActionFlip {
		t.Errorf("clone order = %v, expected Flip first", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionFlip.String() != "Flip" {
		t.Errorf("ActionFlip.String() = %q, expected \"Flip\"", ActionFlip.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected \"Unknown\"", Action(99).String())
	}
}
