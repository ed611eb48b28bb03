// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	SimStarted     Type = "sim_started"
	SimStopped     Type = "sim_stopped"
	VehicleReset   Type = "vehicle_reset"
	CameraReset    Type = "camera_reset"
	QualityChanged Type = "quality_changed"
	TickCompleted  Type = "tick_completed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// QualityEvent reports a graphics quality tier change. Tier values are
// defined by the perf package; the previous tier is carried for logging.
type QualityEvent struct {
	BaseEvent
	PreviousTier int
	NewTier      int
}

// NewQualityEvent creates a new quality change event
func NewQualityEvent(source interface{}, previous, next int) *QualityEvent {
	return &QualityEvent{
		BaseEvent: BaseEvent{
			EventType: QualityChanged,
			Source:    source,
		},
		PreviousTier: previous,
		NewTier:      next,
	}
}

// TickEvent reports the completion of one frame-driver tick
type TickEvent struct {
	BaseEvent
	Tick  uint64
	Speed float64
}

// NewTickEvent creates a new tick completion event
func NewTickEvent(source interface{}, tick uint64, speed float64) *TickEvent {
	return &TickEvent{
		BaseEvent: BaseEvent{
			EventType: TickCompleted,
			Source:    source,
		},
		Tick:  tick,
		Speed: speed,
	}
}
