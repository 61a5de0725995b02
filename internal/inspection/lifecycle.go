package inspection

import (
	"fmt"

	"rentinspect/pkg/types"
)

// InitializeRooms expands a room configuration into rooms in canonical order.
// Calling it again yields fresh rooms; callers replacing existing rooms lose
// whatever was recorded on them.
func InitializeRooms(cfg types.RoomConfig) []*types.Room {
	rooms := make([]*types.Room, 0)

	numbered := func(t types.RoomType, count int) {
		for i := 1; i <= count; i++ {
			rooms = append(rooms, NewRoom(t, fmt.Sprintf("%s %d", t.Label(), i)))
		}
	}
	single := func(t types.RoomType, present bool) {
		if present {
			rooms = append(rooms, NewRoom(t, t.Label()))
		}
	}

	numbered(types.RoomBedroom, cfg.Bedrooms)
	numbered(types.RoomBathroom, cfg.Bathrooms)
	single(types.RoomKitchen, cfg.HasKitchen)
	single(types.RoomLivingRoom, cfg.HasLivingRoom)
	single(types.RoomDiningRoom, cfg.HasDiningRoom)
	single(types.RoomLaundryRoom, cfg.HasLaundryRoom)
	numbered(types.RoomHallway, cfg.Hallways)
	numbered(types.RoomStairway, cfg.Stairways)
	single(types.RoomDeckPatio, cfg.HasDeckPatio)
	single(types.RoomYard, cfg.HasYard)

	return rooms
}
