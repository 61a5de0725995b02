package report

import (
	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"
)

// Violation is an advisory NSPIRE banner for one room.
type Violation struct {
	RoomName string
	Topic    types.Topic
	Message  string
}

type violationRule struct {
	topic types.Topic
	rooms []types.RoomType
	when  func(data types.InspectionData, room *types.Room) bool
}

var violationRules = []violationRule{
	{topic: types.TopicSmokeAlarm, rooms: []types.RoomType{types.RoomBedroom, types.RoomHallway}},
	{topic: types.TopicCO2Alarm, when: func(data types.InspectionData, room *types.Room) bool {
		return inspection.TopicRelevant(data, room, types.TopicCO2Alarm)
	}},
	{topic: types.TopicGFI, rooms: []types.RoomType{types.RoomKitchen, types.RoomBathroom}},
	{topic: types.TopicRailing, rooms: []types.RoomType{types.RoomStairway}, when: func(_ types.InspectionData, room *types.Room) bool {
		return inspection.RailingRequired(room)
	}},
	{topic: types.TopicVentilation, rooms: []types.RoomType{types.RoomBathroom}},
}

// RoomViolations lists the safety devices recorded as absent where they are
// required.
func RoomViolations(data types.InspectionData, room *types.Room) []Violation {
	out := make([]Violation, 0)
	if room == nil {
		return out
	}

	for _, rule := range violationRules {
		if rule.rooms != nil && !containsRoomType(rule.rooms, room.Type) {
			continue
		}
		if rule.when != nil && !rule.when(data, room) {
			continue
		}
		if room.Item(rule.topic).Present != types.PresenceNo {
			continue
		}

		def, _ := types.LookupTopic(rule.topic)
		out = append(out, Violation{
			RoomName: room.Name,
			Topic:    rule.topic,
			Message:  def.Label + " missing. " + def.Requirement,
		})
	}

	return out
}

func AllViolations(data types.InspectionData, rooms []*types.Room) []Violation {
	out := make([]Violation, 0)
	for _, r := range rooms {
		out = append(out, RoomViolations(data, r)...)
	}
	return out
}

func containsRoomType(list []types.RoomType, t types.RoomType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}
