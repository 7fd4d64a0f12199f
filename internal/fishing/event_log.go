package fishing

import "fmt"

// Event categories recorded by a World.
const (
	CategorySpawn = "spawn"
	CategoryCatch = "catch"
	CategoryBoat  = "boat"
)

// Event is one recorded world occurrence.
type Event struct {
	Tick     int
	Creature string // label e.g. "F3", or "--" for boat events
	Species  string // species name, or "--"
	Category string // spawn, catch, boat
	Key      string // specific event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] F3   catch    caught       fish +1
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-8s %-12s %s",
		e.Tick, e.Creature, e.Category, e.Key, e.Value)
}

// EventLog is an unbounded, machine-readable record of world events.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, creature, species, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Event{
		Tick:     tick,
		Creature: creature,
		Species:  species,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Filter returns entries matching category and key. An empty string
// matches anything for that field.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return Event{}, false
}
