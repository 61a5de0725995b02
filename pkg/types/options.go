package types

// Option lists are process-wide read-only tables. Nothing mutates them after init.

type InspectionType string

const (
	InspectionTypeAnnual    InspectionType = "Annual"
	InspectionTypeMoveIn    InspectionType = "Move-in"
	InspectionTypeMoveOut   InspectionType = "Move-out"
	InspectionTypeSpecial   InspectionType = "Special"
	InspectionTypeComplaint InspectionType = "Complaint"
)

var InspectionTypes = []InspectionType{
	InspectionTypeAnnual,
	InspectionTypeMoveIn,
	InspectionTypeMoveOut,
	InspectionTypeSpecial,
	InspectionTypeComplaint,
}

type ProgramType string

const (
	ProgramHUD      ProgramType = "HUD"
	ProgramHOME     ProgramType = "HOME"
	ProgramLIHTC    ProgramType = "LIHTC"
	ProgramUSDA     ProgramType = "USDA Rural Development"
	ProgramSection8 ProgramType = "Section 8"
	ProgramOther    ProgramType = "Other"
)

var ProgramTypes = []ProgramType{
	ProgramHUD,
	ProgramHOME,
	ProgramLIHTC,
	ProgramUSDA,
	ProgramSection8,
	ProgramOther,
}

type HeatingType string

const (
	HeatingCentralFurnace    HeatingType = "Central Furnace"
	HeatingBoiler            HeatingType = "Boiler"
	HeatingElectricBaseboard HeatingType = "Electric Baseboard"
	HeatingHeatPump          HeatingType = "Heat Pump"
	HeatingWallHeater        HeatingType = "Wall Heater"
	HeatingNone              HeatingType = "None"
)

var HeatingTypes = []HeatingType{
	HeatingCentralFurnace,
	HeatingBoiler,
	HeatingElectricBaseboard,
	HeatingHeatPump,
	HeatingWallHeater,
	HeatingNone,
}

type FuelType string

const (
	FuelNaturalGas FuelType = "Natural Gas"
	FuelPropane    FuelType = "Propane"
	FuelOil        FuelType = "Oil"
	FuelElectric   FuelType = "Electric"
)

var FuelTypes = []FuelType{FuelNaturalGas, FuelPropane, FuelOil, FuelElectric}

type CoolingType string

const (
	CoolingCentralAir CoolingType = "Central Air"
	CoolingWindowUnit CoolingType = "Window Unit"
	CoolingHeatPump   CoolingType = "Heat Pump"
	CoolingEvap       CoolingType = "Evaporative Cooler"
	CoolingNone       CoolingType = "None"
)

var CoolingTypes = []CoolingType{CoolingCentralAir, CoolingWindowUnit, CoolingHeatPump, CoolingEvap, CoolingNone}

// InstallDateCustom requires a month value alongside it.
const InstallDateCustom = "Custom"

var InstallDates = []string{
	"Less than 1 year",
	"1-5 years",
	"5-10 years",
	"10-15 years",
	"Over 15 years",
	"Unknown",
	InstallDateCustom,
}

var WaterHeaterLocations = []string{
	"Utility Closet",
	"Garage",
	"Basement",
	"Attic",
	"Kitchen",
	"Laundry Room",
	"Exterior Closet",
}

var LaundryLocations = []string{
	"In Unit",
	"Shared On-Site",
	"Hookups Only",
	"None",
}

// Custom marks a select whose free-text override lives in a sibling field.
const Custom = "Custom"

var PropertyNames = []string{
	"Park Village",
	"Maple Court",
	"Riverside Commons",
	Custom,
}

var PropertyAddresses = []string{
	"100 Park Village Dr",
	"22 Maple Ct",
	"7 Riverside Way",
	Custom,
}

var InspectorNames = []string{
	"Site Manager",
	"Compliance Officer",
	Custom,
}

type Condition string

const (
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
	ConditionPoor    Condition = "Poor"
	ConditionDamaged Condition = "Damaged"
	ConditionNA      Condition = "N/A"
)

var Conditions = []Condition{ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged, ConditionNA}

type Presence string

const (
	PresenceUnknown Presence = ""
	PresenceYes     Presence = "Yes"
	PresenceNo      Presence = "No"
)

var Presences = []Presence{PresenceYes, PresenceNo}

type NeedsAction string

const (
	NeedsActionNone    NeedsAction = "None"
	NeedsActionRepair  NeedsAction = "Repair"
	NeedsActionReplace NeedsAction = "Replace"
	NeedsActionClean   NeedsAction = "Clean"
	NeedsActionInstall NeedsAction = "Install"
	NeedsActionMonitor NeedsAction = "Monitor"
)

var NeedsActions = []NeedsAction{
	NeedsActionNone,
	NeedsActionRepair,
	NeedsActionReplace,
	NeedsActionClean,
	NeedsActionInstall,
	NeedsActionMonitor,
}
