package fishing

import "testing"

func newTestBoat(t *testing.T, cfg Config) *Boat {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	return newBoat(cfg)
}

func TestBoat_StartsCentredNearBottom(t *testing.T) {
	b := newTestBoat(t, DefaultConfig())
	if b.X != 370 || b.Y != 550 {
		t.Fatalf("boat start = (%v,%v), want (370,550)", b.X, b.Y)
	}
	if b.W != 60 || b.H != 20 {
		t.Fatalf("boat size = %vx%v, want 60x20", b.W, b.H)
	}
}

func TestBoat_MoveStepsBySpeed(t *testing.T) {
	b := newTestBoat(t, DefaultConfig())
	if !b.Move(Left, 800) || b.X != 365 {
		t.Fatalf("after left: x=%v, want 365", b.X)
	}
	if !b.Move(Right, 800) || !b.Move(Right, 800) || b.X != 375 {
		t.Fatalf("after two rights: x=%v, want 375", b.X)
	}
	if b.Y != 550 {
		t.Fatalf("boat moved vertically: y=%v", b.Y)
	}
}

func TestBoat_ClampedAtLeftEdge(t *testing.T) {
	b := newTestBoat(t, DefaultConfig())
	for i := 0; i < 74; i++ {
		b.Move(Left, 800)
	}
	if b.X != 0 {
		t.Fatalf("after 74 lefts x=%v, want 0", b.X)
	}
	if b.Move(Left, 800) {
		t.Fatal("move left at x=0 should be a no-op")
	}
	if b.X != 0 {
		t.Fatalf("x=%v after no-op, want 0", b.X)
	}
}

func TestBoat_ClampedAtRightEdge(t *testing.T) {
	b := newTestBoat(t, DefaultConfig())
	for i := 0; i < 200; i++ {
		b.Move(Right, 800)
	}
	if b.X != 740 {
		t.Fatalf("x=%v, want 740 (window 800 - boat 60)", b.X)
	}
}

func TestBoat_UnalignedSpeedDoesNotOvershoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoatSpeed = 7
	b := newTestBoat(t, cfg)
	for i := 0; i < 100; i++ {
		b.Move(Left, 800)
	}
	if b.X != 0 {
		t.Fatalf("left edge: x=%v, want 0", b.X)
	}
	for i := 0; i < 200; i++ {
		b.Move(Right, 800)
	}
	if b.X != 740 {
		t.Fatalf("right edge: x=%v, want 740", b.X)
	}
}

func TestBoat_UnknownDirectionIsNoop(t *testing.T) {
	b := newTestBoat(t, DefaultConfig())
	if b.Move(Direction(42), 800) || b.Move(Direction(-1), 800) {
		t.Fatal("unknown direction reported movement")
	}
	if b.X != 370 {
		t.Fatalf("x=%v, want 370", b.X)
	}
}
