package types

import "time"

// Photo is an image attached to an inspectable item or appliance. DataURI holds the
// full payload so a report can render it without any fetch.
type Photo struct {
	ID         string    `json:"id"`
	DataURI    string    `json:"dataUri"`
	FileName   string    `json:"fileName"`
	CapturedAt time.Time `json:"capturedAt"`
	Comment    string    `json:"comment"`
}

// PhotoTarget addresses a photo list. A non-empty ApplianceID selects the appliance's
// photos, otherwise Field names a room-level list such as "flooringPhotos".
type PhotoTarget struct {
	RoomID      string `form:"roomID"`
	ApplianceID string `form:"applianceID"`
	Field       string `form:"field"`
}
