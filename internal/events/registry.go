// Package events holds the handlers features attach to gateway events.
//
// The set of event kinds is closed. A Registry is constructed once by the
// application and shared by reference through the session handle; nothing in
// this package is global.
package events

import (
	"context"
	"fmt"
	"sync"
)

// Kind identifies a gateway event type.
type Kind int

const (
	// Ready fires once the gateway session is established.
	Ready Kind = iota
	// GuildCreate fires when a guild becomes available to the session.
	GuildCreate
)

func (k Kind) String() string {
	switch k {
	case Ready:
		return "ready"
	case GuildCreate:
		return "guild_create"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a single delivered gateway event. GuildID is zero for events that
// are not tied to a guild.
type Event struct {
	Kind    Kind
	GuildID uint64
	Payload any
}

// Handler reacts to an event.
type Handler func(ctx context.Context, evt Event)

// Matcher decides whether a handler wants events from the given guild id.
type Matcher func(guildID uint64) bool

// MatchAll accepts every event.
func MatchAll(uint64) bool { return true }

type entry struct {
	match   Matcher
	handler Handler
}

// Registry stores handler queues per event kind. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	queues map[Kind][]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{queues: make(map[Kind][]entry)}
}

// Add appends a handler to the queue for kind. A nil matcher accepts everything.
func (r *Registry) Add(kind Kind, match Matcher, handler Handler) {
	if handler == nil {
		panic(fmt.Sprintf("events: nil handler for %s", kind))
	}
	if match == nil {
		match = MatchAll
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.queues[kind] = append(r.queues[kind], entry{match: match, handler: handler})
}

// Len returns the number of handlers queued for kind.
func (r *Registry) Len(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queues[kind])
}

// Dispatch runs, in registration order, every handler for the event's kind
// whose matcher accepts the event's guild. It returns how many ran.
func (r *Registry) Dispatch(ctx context.Context, evt Event) int {
	r.mu.RLock()
	queue := make([]entry, len(r.queues[evt.Kind]))
	copy(queue, r.queues[evt.Kind])
	r.mu.RUnlock()

	ran := 0
	for _, e := range queue {
		if !e.match(evt.GuildID) {
			continue
		}
		e.handler(ctx, evt)
		ran++
	}
	return ran
}
