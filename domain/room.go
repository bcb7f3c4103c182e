package domain

import "fmt"

// RoomID names a broadcast group. Room membership is the only routing
// (and de facto authorization) boundary of the real-time layer: a
// connection that joined no room receives nothing.
type RoomID string

// AdminRoom receives every negotiation event system-wide.
const AdminRoom RoomID = "admin-room"

func UserRoom(userID string) RoomID {
	return RoomID(fmt.Sprintf("user-%s", userID))
}

func RestaurantRoom(restaurantID string) RoomID {
	return RoomID(fmt.Sprintf("restaurant-%s", restaurantID))
}
