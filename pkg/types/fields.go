package types

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldBool
	FieldMulti
)

// FieldDef describes one InspectionData field: which wizard step owns it and how
// it is labelled in reports.
type FieldDef struct {
	Name  string
	Label string
	Step  Step
	Kind  FieldKind
	// Derived fields are computed from siblings and never accepted from input.
	Derived bool
}

var InspectionFields = []FieldDef{
	{Name: "propertyName", Label: "Property Name", Step: StepPropertyInfo},
	{Name: "customPropertyName", Label: "Custom Property Name", Step: StepPropertyInfo},
	{Name: "propertyAddress", Label: "Property Address", Step: StepPropertyInfo},
	{Name: "customPropertyAddress", Label: "Custom Property Address", Step: StepPropertyInfo},
	{Name: "unitNumber", Label: "Unit Number", Step: StepPropertyInfo},
	{Name: "tenantFirstName", Label: "Tenant First Name", Step: StepPropertyInfo},
	{Name: "tenantLastName", Label: "Tenant Last Name", Step: StepPropertyInfo},
	{Name: "tenantInitial", Label: "Tenant Initial", Step: StepPropertyInfo, Derived: true},
	{Name: "inspectorName", Label: "Inspector", Step: StepPropertyInfo},
	{Name: "customInspectorName", Label: "Custom Inspector Name", Step: StepPropertyInfo},
	{Name: "inspectionDate", Label: "Inspection Date", Step: StepPropertyInfo},
	{Name: "inspectionType", Label: "Inspection Type", Step: StepPropertyInfo},
	{Name: "programType", Label: "Program Type", Step: StepPropertyInfo, Kind: FieldMulti},

	{Name: "bedrooms", Label: "Bedrooms", Step: StepRoomConfig, Kind: FieldNumber},
	{Name: "bathrooms", Label: "Bathrooms", Step: StepRoomConfig, Kind: FieldNumber},
	{Name: "hasKitchen", Label: "Kitchen", Step: StepRoomConfig, Kind: FieldBool},
	{Name: "hasLivingRoom", Label: "Living Room", Step: StepRoomConfig, Kind: FieldBool},
	{Name: "hasDiningRoom", Label: "Dining Room", Step: StepRoomConfig, Kind: FieldBool},
	{Name: "hasLaundryRoom", Label: "Laundry Room", Step: StepRoomConfig, Kind: FieldBool},
	{Name: "hallways", Label: "Hallways", Step: StepRoomConfig, Kind: FieldNumber},
	{Name: "stairways", Label: "Stairways", Step: StepRoomConfig, Kind: FieldNumber},
	{Name: "hasDeckPatio", Label: "Deck/Patio", Step: StepRoomConfig, Kind: FieldBool},
	{Name: "hasYard", Label: "Yard", Step: StepRoomConfig, Kind: FieldBool},

	{Name: "heatingType", Label: "Heating Type", Step: StepGlobalFeatures},
	{Name: "fuelType", Label: "Fuel Type", Step: StepGlobalFeatures},
	{Name: "coolingType", Label: "Cooling Type", Step: StepGlobalFeatures},
	{Name: "hasWaterHeater", Label: "Water Heater", Step: StepGlobalFeatures, Kind: FieldBool},
	{Name: "waterHeaterLocation", Label: "Water Heater Location", Step: StepGlobalFeatures},
	{Name: "waterHeaterInstallDate", Label: "Water Heater Install Date", Step: StepGlobalFeatures},
	{Name: "waterHeaterInstallMonth", Label: "Water Heater Install Month", Step: StepGlobalFeatures},
	{Name: "hasWasherDryer", Label: "Washer/Dryer", Step: StepGlobalFeatures, Kind: FieldBool},
	{Name: "laundryLocation", Label: "Laundry Location", Step: StepGlobalFeatures},

	{Name: "complianceAccepted", Label: "Compliance Statement Accepted", Step: StepReportGeneration, Kind: FieldBool},
	{Name: "reportNotes", Label: "Report Notes", Step: StepReportGeneration},
	{Name: "inspectorSignature", Label: "Inspector Signature", Step: StepReportGeneration},
	{Name: "tenantSignature", Label: "Tenant Signature", Step: StepReportGeneration},
}

func LookupInspectionField(name string) (FieldDef, bool) {
	for _, f := range InspectionFields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

func FieldsForStep(step Step) []FieldDef {
	out := make([]FieldDef, 0)
	for _, f := range InspectionFields {
		if f.Step == step {
			out = append(out, f)
		}
	}
	return out
}
