package events

// InMemoryEventStore is a synchronous, append-only event log for one
// simulation session. The simulation core is single-threaded, so the store
// needs no locking or subscriber fan-out.
type InMemoryEventStore struct {
	streams   map[string][]Event
	allEvents []Event
}

// NewInMemoryEventStore creates an empty event store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[string][]Event),
	}
}

// AppendEvent appends an event to its stream, assigning the next stream
// version.
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) {
	versioned := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], versioned)
	s.allEvents = append(s.allEvents, versioned)
}

// ReadEvents returns a stream's events starting at fromVersion (1-based).
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) []Event {
	events := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(events) {
		return nil
	}
	return events[fromVersion-1:]
}

// ReadAllEvents returns every recorded event in append order.
func (s *InMemoryEventStore) ReadAllEvents() []Event {
	out := make([]Event, len(s.allEvents))
	copy(out, s.allEvents)
	return out
}
