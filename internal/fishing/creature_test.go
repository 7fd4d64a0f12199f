package fishing

import "testing"

func TestCreature_UpdateAppliesVelocity(t *testing.T) {
	c := Creature{Entity: Entity{X: 100, Y: 100, W: 30, H: 15, VX: 2, VY: -1}}
	c.Update(800, 600)
	if c.X != 102 || c.Y != 99 {
		t.Fatalf("position = (%v,%v), want (102,99)", c.X, c.Y)
	}
	if c.VX != 2 || c.VY != -1 {
		t.Fatalf("velocity changed mid-window: (%v,%v)", c.VX, c.VY)
	}
}

func TestCreature_ReflectsOnLeftCrossing(t *testing.T) {
	c := Creature{Entity: Entity{X: 1, Y: 100, W: 30, H: 15, VX: -2}}
	c.Update(800, 600)
	if c.VX != 2 {
		t.Fatalf("vx=%v after crossing x=0, want 2", c.VX)
	}
	// Position is not re-clamped.
	if c.X != -1 {
		t.Fatalf("x=%v, want -1 (no clamp)", c.X)
	}
	c.Update(800, 600)
	if c.X != 1 || c.VX != 2 {
		t.Fatalf("next tick x=%v vx=%v, want x=1 vx=2", c.X, c.VX)
	}
}

func TestCreature_ReflectsOnTopCrossing(t *testing.T) {
	c := Creature{Entity: Entity{X: 100, Y: 1, W: 30, H: 15, VY: -2}}
	c.Update(800, 600)
	if c.VY != 2 {
		t.Fatalf("vy=%v after crossing y=0, want 2", c.VY)
	}
	if c.Y != -1 {
		t.Fatalf("y=%v, want -1 (no clamp)", c.Y)
	}
	if c.X != 100 || c.VX != 0 {
		t.Fatalf("horizontal state changed: x=%v vx=%v", c.X, c.VX)
	}
	c.Update(800, 600)
	if c.Y != 1 || c.VY != 2 {
		t.Fatalf("next tick y=%v vy=%v, want y=1 vy=2", c.Y, c.VY)
	}
}

func TestCreature_ReflectsOnRightAndBottom(t *testing.T) {
	c := Creature{Entity: Entity{X: 769, Y: 584, W: 30, H: 15, VX: 3, VY: 3}}
	c.Update(800, 600)
	if c.VX != -3 {
		t.Fatalf("right edge: vx=%v, want -3", c.VX)
	}
	if c.VY != -3 {
		t.Fatalf("bottom edge: vy=%v, want -3", c.VY)
	}
}

func TestCreature_AxesReflectIndependently(t *testing.T) {
	c := Creature{Entity: Entity{X: 0, Y: 300, W: 30, H: 15, VX: -1, VY: 1}}
	c.Update(800, 600)
	if c.VX != 1 {
		t.Fatalf("vx=%v, want 1", c.VX)
	}
	if c.VY != 1 {
		t.Fatalf("vy flipped without crossing: %v", c.VY)
	}
}

func TestCreature_ExactlyOnEdgeDoesNotReflect(t *testing.T) {
	c := Creature{Entity: Entity{X: 2, Y: 0, W: 30, H: 15, VX: -2}}
	c.Update(800, 600)
	if c.X != 0 || c.VX != -2 {
		t.Fatalf("x=%v vx=%v, want x=0 vx=-2 (left edge == 0 is inside)", c.X, c.VX)
	}
}

func TestCreature_Label(t *testing.T) {
	c := Creature{ID: 12, Species: Lobster}
	if got := c.Label(); got != "L12" {
		t.Fatalf("label=%q, want L12", got)
	}
	if got := c.View().Label(); got != "L12" {
		t.Fatalf("view label=%q, want L12", got)
	}
}
