package types

type ApplianceType string

const (
	ApplianceRefrigerator    ApplianceType = "Refrigerator"
	ApplianceStove           ApplianceType = "Stove/Range"
	ApplianceRangeHood       ApplianceType = "Range Hood"
	ApplianceDishwasher      ApplianceType = "Dishwasher"
	ApplianceGarbageDisposal ApplianceType = "Garbage Disposal"
	ApplianceMicrowave       ApplianceType = "Microwave"
	ApplianceWasher          ApplianceType = "Washer"
	ApplianceDryer           ApplianceType = "Dryer"
	ApplianceWaterHeater     ApplianceType = "Water Heater"
	ApplianceHVAC            ApplianceType = "HVAC Unit"
	ApplianceOther           ApplianceType = "Other"
)

var ApplianceTypes = []ApplianceType{
	ApplianceRefrigerator,
	ApplianceStove,
	ApplianceRangeHood,
	ApplianceDishwasher,
	ApplianceGarbageDisposal,
	ApplianceMicrowave,
	ApplianceWasher,
	ApplianceDryer,
	ApplianceWaterHeater,
	ApplianceHVAC,
	ApplianceOther,
}

type Appliance struct {
	ID           string            `json:"id"`
	Type         ApplianceType     `json:"type"`
	Brand        string            `json:"brand"`
	Model        string            `json:"model"`
	Serial       string            `json:"serial"`
	InstallDate  string            `json:"installDate"`
	InstallMonth string            `json:"installMonth"`
	Condition    Condition         `json:"condition"`
	NeedsAction  NeedsAction       `json:"needsAction"`
	Notes        string            `json:"notes"`
	Photos       []*Photo          `json:"photos"`
	WorkOrder    bool              `json:"workOrder"`
	Details      map[string]string `json:"details"`
}

type VariantKind int

const (
	VariantYesNo VariantKind = iota
	VariantText
	VariantNumber
)

// VariantField is one type-specific appliance field.
type VariantField struct {
	Key     string
	Label   string
	Kind    VariantKind
	Default string
}

// ApplianceVariants maps an appliance type to its extra fields. Types without an
// entry have no extra fields.
var ApplianceVariants = map[ApplianceType][]VariantField{
	ApplianceRefrigerator: {
		{Key: "temperature", Label: "Temperature (°F)", Kind: VariantNumber},
		{Key: "excessiveNoise", Label: "Excessive Noise", Kind: VariantYesNo, Default: "No"},
		{Key: "brokenShelves", Label: "Broken Shelves", Kind: VariantNumber, Default: "0"},
		{Key: "brokenDrawers", Label: "Broken Drawers", Kind: VariantNumber, Default: "0"},
		{Key: "gasketIntact", Label: "Door Gasket Intact", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceStove: {
		{Key: "ovenWorks", Label: "Oven Works", Kind: VariantYesNo, Default: "Yes"},
		{Key: "burnersWork", Label: "All Burners Work", Kind: VariantYesNo, Default: "Yes"},
		{Key: "burnersNotWorking", Label: "Burners Not Working", Kind: VariantNumber, Default: "0"},
		{Key: "knobsPresent", Label: "All Knobs Present", Kind: VariantYesNo, Default: "Yes"},
		{Key: "gasLeak", Label: "Gas Leak Detected", Kind: VariantYesNo, Default: "No"},
		{Key: "antiTipBracket", Label: "Anti-Tip Bracket", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceRangeHood: {
		{Key: "fanWorks", Label: "Fan Works", Kind: VariantYesNo, Default: "Yes"},
		{Key: "lightWorks", Label: "Light Works", Kind: VariantYesNo, Default: "Yes"},
		{Key: "filterClean", Label: "Filter Clean", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceDishwasher: {
		{Key: "drainsProperly", Label: "Drains Properly", Kind: VariantYesNo, Default: "Yes"},
		{Key: "leaks", Label: "Leaks", Kind: VariantYesNo, Default: "No"},
		{Key: "rackCondition", Label: "Rack Condition", Kind: VariantText},
	},
	ApplianceGarbageDisposal: {
		{Key: "operates", Label: "Operates", Kind: VariantYesNo, Default: "Yes"},
		{Key: "leaks", Label: "Leaks", Kind: VariantYesNo, Default: "No"},
	},
	ApplianceMicrowave: {
		{Key: "heats", Label: "Heats", Kind: VariantYesNo, Default: "Yes"},
		{Key: "doorSeals", Label: "Door Seals", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceWasher: {
		{Key: "hosesCondition", Label: "Hoses Condition", Kind: VariantText},
		{Key: "leaks", Label: "Leaks", Kind: VariantYesNo, Default: "No"},
		{Key: "spins", Label: "Spin Cycle Works", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceDryer: {
		{Key: "ventConnected", Label: "Vent Connected", Kind: VariantYesNo, Default: "Yes"},
		{Key: "lintTrapClean", Label: "Lint Trap Clean", Kind: VariantYesNo, Default: "Yes"},
		{Key: "heats", Label: "Heats", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceWaterHeater: {
		{Key: "hasTPRValve", Label: "TPR Valve Present", Kind: VariantYesNo, Default: "Yes"},
		{Key: "tprDischargePipe", Label: "TPR Discharge Pipe", Kind: VariantYesNo, Default: "Yes"},
		{Key: "hasDrainPan", Label: "Drain Pan", Kind: VariantYesNo, Default: "Yes"},
		{Key: "ventingProper", Label: "Venting Proper", Kind: VariantYesNo, Default: "Yes"},
		{Key: "waterTemperature", Label: "Water Temperature (°F)", Kind: VariantNumber},
		{Key: "leaks", Label: "Leaks", Kind: VariantYesNo, Default: "No"},
		{Key: "seismicStraps", Label: "Seismic Straps", Kind: VariantYesNo, Default: "Yes"},
	},
	ApplianceHVAC: {
		{Key: "filterDate", Label: "Filter Last Changed", Kind: VariantText},
		{Key: "filterClean", Label: "Filter Clean", Kind: VariantYesNo, Default: "Yes"},
		{Key: "operates", Label: "Operates", Kind: VariantYesNo, Default: "Yes"},
	},
}

func LookupVariantField(t ApplianceType, key string) (VariantField, bool) {
	for _, f := range ApplianceVariants[t] {
		if f.Key == key {
			return f, true
		}
	}
	return VariantField{}, false
}
