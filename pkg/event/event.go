// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted     Type = "game_started"
	GameEnded       Type = "game_ended"
	GamePaused      Type = "game_paused"
	GameResumed     Type = "game_resumed"
	EnemySpawned    Type = "enemy_spawned"
	EnemyDestroyed  Type = "enemy_destroyed"
	SphereSpawned   Type = "sphere_spawned"
	SphereCollected Type = "sphere_collected"
	ProjectileFired Type = "projectile_fired"
	MeteoriteStruck Type = "meteorite_struck"
	PlayerDamaged   Type = "player_damaged"
	ScoreChanged    Type = "score_changed"
	LivesChanged    Type = "lives_changed"
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

// ScoreEvent reports a score change and its cause
type ScoreEvent struct {
	BaseEvent
	Score int
	Delta int
}

// NewScoreEvent creates a score change event
func NewScoreEvent(source interface{}, score, delta int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: ScoreChanged,
			Source:    source,
		},
		Score: score,
		Delta: delta,
	}
}

// LivesEvent reports the player's remaining lives
type LivesEvent struct {
	BaseEvent
	Lives int
	Delta int
}

// NewLivesEvent creates a lives change event
func NewLivesEvent(source interface{}, lives, delta int) *LivesEvent {
	return &LivesEvent{
		BaseEvent: BaseEvent{
			EventType: LivesChanged,
			Source:    source,
		},
		Lives: lives,
		Delta: delta,
	}
}

// EntityEvent carries the ID of the entity an event concerns
type EntityEvent struct {
	BaseEvent
	EntityID uint64
}

// NewEntityEvent creates an entity-scoped event of the given type
func NewEntityEvent(eventType Type, source interface{}, entityID uint64) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
	}
}
