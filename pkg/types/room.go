package types

type RoomType string

const (
	RoomBedroom     RoomType = "bedroom"
	RoomBathroom    RoomType = "bathroom"
	RoomKitchen     RoomType = "kitchen"
	RoomLivingRoom  RoomType = "livingRoom"
	RoomDiningRoom  RoomType = "diningRoom"
	RoomLaundryRoom RoomType = "laundryRoom"
	RoomHallway     RoomType = "hallway"
	RoomStairway    RoomType = "stairway"
	RoomDeckPatio   RoomType = "deckPatio"
	RoomYard        RoomType = "yard"
)

// RoomTypes is the canonical room order.
var RoomTypes = []RoomType{
	RoomBedroom,
	RoomBathroom,
	RoomKitchen,
	RoomLivingRoom,
	RoomDiningRoom,
	RoomLaundryRoom,
	RoomHallway,
	RoomStairway,
	RoomDeckPatio,
	RoomYard,
}

var roomTypeLabels = map[RoomType]string{
	RoomBedroom:     "Bedroom",
	RoomBathroom:    "Bathroom",
	RoomKitchen:     "Kitchen",
	RoomLivingRoom:  "Living Room",
	RoomDiningRoom:  "Dining Room",
	RoomLaundryRoom: "Laundry Room",
	RoomHallway:     "Hallway",
	RoomStairway:    "Stairway",
	RoomDeckPatio:   "Deck/Patio",
	RoomYard:        "Yard",
}

func (t RoomType) Label() string {
	if l, ok := roomTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Item is the inspectable-item cluster attached to each checklist topic.
type Item struct {
	Present     Presence    `json:"present,omitempty"`
	Condition   Condition   `json:"condition,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Photos      []*Photo    `json:"photos,omitempty"`
	WorkOrder   bool        `json:"workOrder"`
	NeedsAction NeedsAction `json:"needsAction"`
}

type Room struct {
	ID         string         `json:"id"`
	Type       RoomType       `json:"type"`
	Name       string         `json:"name"`
	Items      map[Topic]Item `json:"items"`
	RiseCount  int            `json:"riseCount"`
	Notes      string         `json:"notes"`
	Appliances []*Appliance   `json:"appliances"`
}

// Item returns the topic's item, or a zero item when the topic was never set.
func (r *Room) Item(t Topic) Item {
	if r == nil || r.Items == nil {
		return Item{}
	}
	return r.Items[t]
}
