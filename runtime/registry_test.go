package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mealmatch/domain"
	"mealmatch/domain/event"
)

type Sink struct {
	name string
}

func (s Sink) Consume(_ context.Context, _ event.DomainEvent) error {
	return nil
}

func TestRegistry_Join_One_Room_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()
	roomID := domain.UserRoom("user-1")
	sink := Sink{}

	// Given no connection exists
	// And no room exists
	req.Empty(registry.Sessions)
	req.Empty(registry.RoomMembers)

	// When a connection joins a room
	registry.Join(connectionID, roomID, sink)

	// Then
	req.Len(registry.Sessions, 1)
	req.Equal(sink, registry.Sessions[connectionID])

	req.Len(registry.RoomMembers, 1)
	req.Contains(registry.RoomMembers[roomID], connectionID)

	req.Len(registry.SinksForRoom(roomID), 1)
	req.Contains(registry.SinksForRoom(roomID), sink)
}

func TestRegistry_Join_One_Room_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID1 := uuid.NewString()
	connectionID2 := uuid.NewString()
	roomID := domain.RestaurantRoom("rest-1")
	sink1 := Sink{name: "first"}
	sink2 := Sink{name: "second"}

	// When connections join a room
	registry.Join(connectionID1, roomID, sink1)
	registry.Join(connectionID2, roomID, sink2)

	// Then
	req.Len(registry.Sessions, 2)
	req.Len(registry.RoomMembers[roomID], 2)

	req.Len(registry.SinksForRoom(roomID), 2)
	req.Contains(registry.SinksForRoom(roomID), sink1)
	req.Contains(registry.SinksForRoom(roomID), sink2)
}

func TestRegistry_Join_Multiple_Rooms_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()
	sink := Sink{}

	// When one connection joins its user room and the admin room
	registry.Join(connectionID, domain.UserRoom("user-1"), sink)
	registry.Join(connectionID, domain.AdminRoom, sink)

	// Then the single session is a member of both rooms
	req.Len(registry.Sessions, 1)
	req.Len(registry.RoomMembers, 2)
	req.Contains(registry.SinksForRoom(domain.UserRoom("user-1")), sink)
	req.Contains(registry.SinksForRoom(domain.AdminRoom), sink)
}

func TestRegistry_Leave_One_Room_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()
	roomID := domain.UserRoom("user-1")
	sink := Sink{}

	// Given a connection joined a room
	registry.Join(connectionID, roomID, sink)

	// When it leaves
	registry.Leave(connectionID, roomID)

	// Then no session left
	// And the room doesn't exist anymore
	req.Empty(registry.Sessions)
	req.Empty(registry.RoomMembers)

	req.Nil(registry.SinksForRoom(roomID))
}

func TestRegistry_Leave_One_Room_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID1 := uuid.NewString()
	connectionID2 := uuid.NewString()
	roomID := domain.RestaurantRoom("rest-1")
	sink1 := Sink{name: "first"}
	sink2 := Sink{name: "second"}

	registry.Join(connectionID1, roomID, sink1)
	registry.Join(connectionID2, roomID, sink2)

	// When one connection leaves
	registry.Leave(connectionID1, roomID)

	// Then only the other remains
	req.Len(registry.Sessions, 1)
	req.Len(registry.RoomMembers[roomID], 1)

	req.Len(registry.SinksForRoom(roomID), 1)
	req.Contains(registry.SinksForRoom(roomID), sink2)
}

func TestRegistry_Leave_One_Of_Several_Rooms_Keeps_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()
	sink := Sink{}

	registry.Join(connectionID, domain.UserRoom("user-1"), sink)
	registry.Join(connectionID, domain.AdminRoom, sink)

	// When the connection leaves one room only
	registry.Leave(connectionID, domain.AdminRoom)

	// Then its session and remaining membership survive
	req.Len(registry.Sessions, 1)
	req.Nil(registry.SinksForRoom(domain.AdminRoom))
	req.Contains(registry.SinksForRoom(domain.UserRoom("user-1")), sink)
}

func TestRegistry_DropConnection_Removes_Every_Membership(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	droppedID := uuid.NewString()
	survivorID := uuid.NewString()
	dropped := Sink{name: "dropped"}
	survivor := Sink{name: "survivor"}

	// Given one connection in three rooms and another sharing one of them
	registry.Join(droppedID, domain.UserRoom("user-1"), dropped)
	registry.Join(droppedID, domain.RestaurantRoom("rest-1"), dropped)
	registry.Join(droppedID, domain.AdminRoom, dropped)
	registry.Join(survivorID, domain.AdminRoom, survivor)

	// When the first connection drops
	registry.DropConnection(droppedID)

	// Then all its memberships are gone and the other connection keeps its own
	req.Len(registry.Sessions, 1)
	req.Nil(registry.SinksForRoom(domain.UserRoom("user-1")))
	req.Nil(registry.SinksForRoom(domain.RestaurantRoom("rest-1")))
	req.Len(registry.SinksForRoom(domain.AdminRoom), 1)
	req.Contains(registry.SinksForRoom(domain.AdminRoom), survivor)
}

func TestRegistry_DropConnection_Unknown_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.DropConnection(uuid.NewString())

	req.Empty(registry.Sessions)
	req.Empty(registry.RoomMembers)
}
