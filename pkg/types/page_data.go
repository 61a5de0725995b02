package types

type BasePageData struct {
	Title  string
	Notice string
	Error  string
}

// StepLink is one entry in the wizard progress bar.
type StepLink struct {
	Step     Step
	Title    string
	Active   bool
	Complete bool
}

type RoomTab struct {
	Index  int
	ID     string
	Name   string
	Active bool
}

// TopicView is one relevant checklist topic of the current room.
type TopicView struct {
	TopicDef
	Item      Item
	Violation string
}

type ApplianceView struct {
	*Appliance
	Variants      []VariantField
	MonthRequired bool
}

type Options struct {
	PropertyNames     []string
	PropertyAddresses []string
	InspectorNames    []string
	InspectionTypes   []InspectionType
	ProgramTypes      []ProgramType
	HeatingTypes      []HeatingType
	FuelTypes         []FuelType
	CoolingTypes      []CoolingType
	InstallDates      []string
	WaterHeaterLocs   []string
	LaundryLocations  []string
	Conditions        []Condition
	Presences         []Presence
	NeedsActions      []NeedsAction
	ApplianceTypes    []ApplianceType
}

// DefaultOptions exposes the option tables to templates.
func DefaultOptions() Options {
	return Options{
		PropertyNames:     PropertyNames,
		PropertyAddresses: PropertyAddresses,
		InspectorNames:    InspectorNames,
		InspectionTypes:   InspectionTypes,
		ProgramTypes:      ProgramTypes,
		HeatingTypes:      HeatingTypes,
		FuelTypes:         FuelTypes,
		CoolingTypes:      CoolingTypes,
		InstallDates:      InstallDates,
		WaterHeaterLocs:   WaterHeaterLocations,
		LaundryLocations:  LaundryLocations,
		Conditions:        Conditions,
		Presences:         Presences,
		NeedsActions:      NeedsActions,
		ApplianceTypes:    ApplianceTypes,
	}
}

type InspectionPageData struct {
	BasePageData
	Step    Step
	Steps   []StepLink
	Data    InspectionData
	Options Options

	// Global features
	ShowFuelType             bool
	WaterHeaterMonthRequired bool

	// Room inspection
	Rooms           []RoomTab
	Room            *Room
	RoomIndex       int
	IsLastRoom      bool
	Topics          []TopicView
	AppliancesOK    bool
	Appliances      []ApplianceView
	RailingRequired bool

	// Report
	WorkOrderCount int
	ViolationCount int
	Filename       string
}
