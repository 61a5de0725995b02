package types

import "strings"

type Topic string

const (
	TopicHousekeeping Topic = "housekeeping"
	TopicSmokeAlarm   Topic = "smokeAlarm"
	TopicCO2Alarm     Topic = "co2Alarm"
	TopicFlooring     Topic = "flooring"
	TopicWalls        Topic = "walls"
	TopicCeiling      Topic = "ceiling"
	TopicPaint        Topic = "paint"
	TopicTrim         Topic = "trim"
	TopicOutlets      Topic = "outlets"
	TopicGFI          Topic = "gfi"
	TopicEntryDoor    Topic = "entryDoor"
	TopicWindows      Topic = "windows"
	TopicClosets      Topic = "closets"
	TopicCupboards    Topic = "cupboards"
	TopicDrawers      Topic = "drawers"
	TopicSink         Topic = "sink"
	TopicFaucet       Topic = "faucet"
	TopicToilet       Topic = "toilet"
	TopicShowerTub    Topic = "showerTub"
	TopicVentilation  Topic = "ventilation"
	TopicHeating      Topic = "heating"
	TopicStairs       Topic = "stairs"
	TopicRailing      Topic = "railing"
	TopicGrounds      Topic = "grounds"
)

type TopicKind int

const (
	// KindCondition items are rated with a Condition.
	KindCondition TopicKind = iota
	// KindPresence items are safety devices answered Yes/No.
	KindPresence
)

type TopicDef struct {
	Key   Topic
	Label string
	Kind  TopicKind
	// RoomTypes lists where the topic appears. Nil means every room type.
	RoomTypes   []RoomType
	Requirement string
}

func (d TopicDef) AppliesTo(t RoomType) bool {
	if d.RoomTypes == nil {
		return true
	}
	for _, rt := range d.RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

var (
	interiorRooms = []RoomType{RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom, RoomDiningRoom, RoomLaundryRoom, RoomHallway, RoomStairway}
	wetRooms      = []RoomType{RoomKitchen, RoomBathroom, RoomLaundryRoom}
	livingSpaces  = []RoomType{RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom, RoomDiningRoom, RoomLaundryRoom}
)

// Topics is the checklist in display order. The Requirement copy is advisory only.
var Topics = []TopicDef{
	{Key: TopicHousekeeping, Label: "Housekeeping", Requirement: "Unit is free of accumulated trash, pests and sanitation hazards."},
	{Key: TopicSmokeAlarm, Label: "Smoke Alarm", Kind: KindPresence,
		RoomTypes:   []RoomType{RoomBedroom, RoomHallway, RoomLivingRoom, RoomStairway},
		Requirement: "NSPIRE: a working smoke alarm is required in each sleeping area and in the hallway outside sleeping areas."},
	{Key: TopicCO2Alarm, Label: "Carbon Monoxide Alarm", Kind: KindPresence,
		RoomTypes:   []RoomType{RoomBedroom, RoomHallway, RoomLivingRoom},
		Requirement: "NSPIRE: a carbon monoxide alarm is required where fuel-burning appliances are present."},
	{Key: TopicFlooring, Label: "Flooring", RoomTypes: append(append([]RoomType{}, interiorRooms...), RoomDeckPatio),
		Requirement: "Floors are free of trip hazards, holes and water damage."},
	{Key: TopicWalls, Label: "Walls", RoomTypes: interiorRooms, Requirement: "Walls are free of holes, bulges and mold."},
	{Key: TopicCeiling, Label: "Ceiling", RoomTypes: interiorRooms, Requirement: "Ceilings are free of leaks, holes and sagging."},
	{Key: TopicPaint, Label: "Paint", RoomTypes: interiorRooms, Requirement: "No peeling or chipping paint (lead-based paint presumed in pre-1978 buildings)."},
	{Key: TopicTrim, Label: "Trim", RoomTypes: interiorRooms},
	{Key: TopicOutlets, Label: "Outlets & Switches", RoomTypes: append(append([]RoomType{}, interiorRooms...), RoomDeckPatio),
		Requirement: "Outlets and switches have cover plates and no exposed wiring."},
	{Key: TopicGFI, Label: "GFI Outlet", Kind: KindPresence,
		RoomTypes:   []RoomType{RoomKitchen, RoomBathroom},
		Requirement: "NSPIRE: GFCI protection is required for outlets within 6 feet of a water source."},
	{Key: TopicEntryDoor, Label: "Entry Door", RoomTypes: []RoomType{RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom, RoomLaundryRoom, RoomDeckPatio},
		Requirement: "Doors open, close and latch; entry doors lock."},
	{Key: TopicWindows, Label: "Windows", RoomTypes: livingSpaces,
		Requirement: "Windows open, stay open, lock and are free of cracked panes."},
	{Key: TopicClosets, Label: "Closets", RoomTypes: []RoomType{RoomBedroom, RoomHallway}},
	{Key: TopicCupboards, Label: "Cupboards", RoomTypes: wetRooms},
	{Key: TopicDrawers, Label: "Drawers", RoomTypes: []RoomType{RoomKitchen, RoomBathroom}},
	{Key: TopicSink, Label: "Sink", RoomTypes: wetRooms, Requirement: "Sinks drain and are free of leaks."},
	{Key: TopicFaucet, Label: "Faucet", RoomTypes: wetRooms, Requirement: "Hot and cold water available; no leaks."},
	{Key: TopicToilet, Label: "Toilet", RoomTypes: []RoomType{RoomBathroom}, Requirement: "Toilet flushes, is secured to the floor and does not leak."},
	{Key: TopicShowerTub, Label: "Shower/Tub", RoomTypes: []RoomType{RoomBathroom}, Requirement: "Shower and tub drain; caulking and surround intact."},
	{Key: TopicVentilation, Label: "Ventilation", Kind: KindPresence, RoomTypes: wetRooms,
		Requirement: "NSPIRE: bathrooms require an operable window or exhaust fan."},
	{Key: TopicHeating, Label: "Heating/Thermostat", RoomTypes: []RoomType{RoomBedroom, RoomBathroom, RoomLivingRoom, RoomDiningRoom, RoomHallway},
		Requirement: "Heat source present and thermostat operable."},
	{Key: TopicStairs, Label: "Stair Treads", RoomTypes: []RoomType{RoomStairway, RoomDeckPatio}},
	{Key: TopicRailing, Label: "Railing", Kind: KindPresence, RoomTypes: []RoomType{RoomStairway, RoomDeckPatio},
		Requirement: "NSPIRE: a handrail is required for four or more risers (three or more rises) and guardrails for drops over 30 inches."},
	{Key: TopicGrounds, Label: "Grounds & Fencing", RoomTypes: []RoomType{RoomYard, RoomDeckPatio}},
}

var topicIndex = func() map[Topic]TopicDef {
	m := make(map[Topic]TopicDef, len(Topics))
	for _, t := range Topics {
		m[t.Key] = t
	}
	return m
}()

func LookupTopic(t Topic) (TopicDef, bool) {
	d, ok := topicIndex[t]
	return d, ok
}

// Item attribute suffixes used in room-level field names, e.g. "flooringWorkOrder".
const (
	AttrPresent     = "Present"
	AttrCondition   = "Condition"
	AttrNotes       = "Notes"
	AttrPhotos      = "Photos"
	AttrWorkOrder   = "WorkOrder"
	AttrNeedsAction = "NeedsAction"
)

var itemAttrs = []string{AttrPresent, AttrCondition, AttrNotes, AttrPhotos, AttrWorkOrder, AttrNeedsAction}

// ParseItemField splits a room-level field name into its topic and attribute.
func ParseItemField(field string) (Topic, string, bool) {
	for _, attr := range itemAttrs {
		if !strings.HasSuffix(field, attr) {
			continue
		}
		topic := Topic(strings.TrimSuffix(field, attr))
		if _, ok := topicIndex[topic]; ok {
			return topic, attr, true
		}
	}
	return "", "", false
}

func ItemField(t Topic, attr string) string {
	return string(t) + attr
}
