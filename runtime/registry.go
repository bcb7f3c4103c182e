// Package runtime hosts the real-time plumbing: the room registry and
// the supervised workers that move events from the engine to connected
// clients. No business rules live here.
package runtime

import (
	"sync"

	"mealmatch/contract"
	"mealmatch/domain"
)

type Set map[string]struct{}

// Registry maps live connections to the rooms they joined. A connection
// may hold membership in any number of rooms at once (a user room plus
// the admin room, for example); membership exists only while the
// connection does. There is no persisted subscription state: clients
// re-emit their join events after reconnecting.
type Registry struct {
	mu          sync.RWMutex
	Sessions    map[string]contract.EventSink // connection id -> sink
	RoomMembers map[domain.RoomID]Set         // room -> connection ids
	ConnRooms   map[string]map[domain.RoomID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions:    make(map[string]contract.EventSink),
		RoomMembers: make(map[domain.RoomID]Set),
		ConnRooms:   make(map[string]map[domain.RoomID]struct{}),
	}
}

// SinksForRoom resolves a room's current members into their sinks.
// Returns nil for an unknown or empty room: a connection that joined
// nothing receives nothing, which is the routing boundary of this
// design.
func (r *Registry) SinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.RoomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connectionID := range members {
		if sink, exists := r.Sessions[connectionID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Join registers a connection's sink and adds it to a room, initializing
// the room on first use. Joining the same room twice is a no-op.
func (r *Registry) Join(connectionID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[connectionID] = sink

	if _, ok := r.RoomMembers[roomID]; !ok {
		r.RoomMembers[roomID] = make(Set)
	}
	r.RoomMembers[roomID][connectionID] = struct{}{}

	if _, ok := r.ConnRooms[connectionID]; !ok {
		r.ConnRooms[connectionID] = make(map[domain.RoomID]struct{})
	}
	r.ConnRooms[connectionID][roomID] = struct{}{}
}

// Leave removes a connection from a single room, keeping its other
// memberships. Empty rooms are deleted so the map does not accumulate
// entries over time.
func (r *Registry) Leave(connectionID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(connectionID, roomID)
}

// DropConnection is the explicit teardown called on disconnect: it
// removes the connection from every room it joined and forgets its sink.
func (r *Registry) DropConnection(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomID := range r.ConnRooms[connectionID] {
		r.leaveLocked(connectionID, roomID)
	}
	delete(r.Sessions, connectionID)
	delete(r.ConnRooms, connectionID)
}

func (r *Registry) leaveLocked(connectionID string, roomID domain.RoomID) {
	if members, ok := r.RoomMembers[roomID]; ok {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(r.RoomMembers, roomID)
		}
	}
	if rooms, ok := r.ConnRooms[connectionID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(r.ConnRooms, connectionID)
			delete(r.Sessions, connectionID)
		}
	}
}
