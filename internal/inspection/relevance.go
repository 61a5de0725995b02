package inspection

import "rentinspect/pkg/types"

// Relevance predicates are computed from current state on every read. Nothing
// stores a "visible" flag.

// FuelTypeRequired reports whether the fuel type question applies.
func FuelTypeRequired(data types.InspectionData) bool {
	return data.HeatingType == types.HeatingCentralFurnace
}

// FuelBurningHeat reports whether the heating system burns fuel.
func FuelBurningHeat(data types.InspectionData) bool {
	switch data.HeatingType {
	case types.HeatingCentralFurnace:
		return data.FuelType != types.FuelElectric
	case types.HeatingBoiler:
		return true
	}
	return false
}

// CO2AlarmRelevant is true only for fuel-burning heat: a furnace on gas, propane
// or oil, or a boiler. Unset heating counts as not fuel burning.
func CO2AlarmRelevant(data types.InspectionData) bool {
	return FuelBurningHeat(data)
}

func WaterHeaterMonthRequired(data types.InspectionData) bool {
	return data.HasWaterHeater && data.WaterHeaterInstallDate == types.InstallDateCustom
}

func ApplianceMonthRequired(a *types.Appliance) bool {
	return a != nil && a.InstallDate == types.InstallDateCustom
}

// RailingRequired derives from the rise count; it is never stored.
func RailingRequired(room *types.Room) bool {
	return room != nil && room.RiseCount >= 3
}

func WindowsRelevant(room *types.Room) bool {
	if room == nil {
		return false
	}
	switch room.Type {
	case types.RoomHallway, types.RoomStairway:
		return false
	}
	def, _ := types.LookupTopic(types.TopicWindows)
	return def.AppliesTo(room.Type)
}

func GFIRelevant(room *types.Room) bool {
	return room != nil && (room.Type == types.RoomKitchen || room.Type == types.RoomBathroom)
}

func AppliancesAllowed(roomType types.RoomType) bool {
	switch roomType {
	case types.RoomKitchen, types.RoomLivingRoom, types.RoomDiningRoom, types.RoomLaundryRoom:
		return true
	}
	return false
}

// TopicRelevant reports whether a checklist topic is shown for a room.
func TopicRelevant(data types.InspectionData, room *types.Room, topic types.Topic) bool {
	if room == nil {
		return false
	}

	def, ok := types.LookupTopic(topic)
	if !ok || !def.AppliesTo(room.Type) {
		return false
	}

	switch topic {
	case types.TopicCO2Alarm:
		return CO2AlarmRelevant(data)
	case types.TopicWindows:
		return WindowsRelevant(room)
	case types.TopicGFI:
		return GFIRelevant(room)
	case types.TopicRailing:
		if room.Type == types.RoomStairway {
			return RailingRequired(room)
		}
	}

	return true
}

func RelevantTopics(data types.InspectionData, room *types.Room) []types.TopicDef {
	out := make([]types.TopicDef, 0)
	for _, def := range types.Topics {
		if TopicRelevant(data, room, def.Key) {
			out = append(out, def)
		}
	}
	return out
}
