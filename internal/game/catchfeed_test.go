package game

import (
	"testing"

	"github.com/Garsondee/Fishing-Game/internal/fishing"
)

func TestCatchFeed_RecentInOrder(t *testing.T) {
	f := NewCatchFeed()
	f.Add(1, "F0", fishing.Fish, 1)
	f.Add(2, "C1", fishing.Crab, 3)
	got := f.Recent()
	if len(got) != 2 || got[0].Label != "F0" || got[1].Label != "C1" {
		t.Fatalf("recent=%+v", got)
	}
}

func TestCatchFeed_WrapsAtCapacity(t *testing.T) {
	f := NewCatchFeed()
	for i := 0; i < feedMaxEntries+3; i++ {
		f.Add(i, "F", fishing.Fish, 1)
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("len=%d, want %d", len(got), feedMaxEntries)
	}
	if got[0].Tick != 3 || got[len(got)-1].Tick != feedMaxEntries+2 {
		t.Fatalf("oldest=%d newest=%d", got[0].Tick, got[len(got)-1].Tick)
	}
}
