package picker

import "github.com/gucio321/huewheel/pkg/hsb"

// EventType defines the kind of change a picker reports.
type EventType int

const (
	EventColorChanged EventType = iota
	EventGainChanged
	EventBrightnessChanged
)

func (e EventType) String() string {
	switch e {
	case EventColorChanged:
		return "color"
	case EventGainChanged:
		return "gain"
	case EventBrightnessChanged:
		return "brightness"
	}

	return "unknown"
}

// Event describes a change of the shared state.
type Event struct {
	Type  EventType
	State hsb.State
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan Event
	Handle func(Event)
}

// NewEventHandler creates a handler with a small buffered channel.
func NewEventHandler() *EventHandler {
	return &EventHandler{Events: make(chan Event, 8)}
}

// Emit delivers the event through the channel (dropping it when the buffer is
// full) and the callback if present.
func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}

	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}

	if h.Handle != nil {
		h.Handle(ev)
	}
}
