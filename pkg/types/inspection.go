package types

import "strings"

// InspectionData is the root aggregate for one inspection. Field names in the form
// tags are the names accepted by the mutation API.
type InspectionData struct {
	// Property info
	PropertyName          string         `form:"propertyName" json:"propertyName"`
	CustomPropertyName    string         `form:"customPropertyName" json:"customPropertyName"`
	PropertyAddress       string         `form:"propertyAddress" json:"propertyAddress"`
	CustomPropertyAddress string         `form:"customPropertyAddress" json:"customPropertyAddress"`
	UnitNumber            string         `form:"unitNumber" json:"unitNumber"`
	TenantFirstName       string         `form:"tenantFirstName" json:"tenantFirstName"`
	TenantLastName        string         `form:"tenantLastName" json:"tenantLastName"`
	TenantInitial         string         `form:"tenantInitial" json:"tenantInitial"`
	InspectorName         string         `form:"inspectorName" json:"inspectorName"`
	CustomInspectorName   string         `form:"customInspectorName" json:"customInspectorName"`
	InspectionDate        string         `form:"inspectionDate" json:"inspectionDate"`
	InspectionType        InspectionType `form:"inspectionType" json:"inspectionType"`
	ProgramType           []ProgramType  `form:"programType" json:"programType"`

	// Room configuration
	Bedrooms       int  `form:"bedrooms" json:"bedrooms"`
	Bathrooms      int  `form:"bathrooms" json:"bathrooms"`
	HasKitchen     bool `form:"hasKitchen" json:"hasKitchen"`
	HasLivingRoom  bool `form:"hasLivingRoom" json:"hasLivingRoom"`
	HasDiningRoom  bool `form:"hasDiningRoom" json:"hasDiningRoom"`
	HasLaundryRoom bool `form:"hasLaundryRoom" json:"hasLaundryRoom"`
	Hallways       int  `form:"hallways" json:"hallways"`
	Stairways      int  `form:"stairways" json:"stairways"`
	HasDeckPatio   bool `form:"hasDeckPatio" json:"hasDeckPatio"`
	HasYard        bool `form:"hasYard" json:"hasYard"`

	// Global systems
	HeatingType             HeatingType `form:"heatingType" json:"heatingType"`
	FuelType                FuelType    `form:"fuelType" json:"fuelType"`
	CoolingType             CoolingType `form:"coolingType" json:"coolingType"`
	HasWaterHeater          bool        `form:"hasWaterHeater" json:"hasWaterHeater"`
	WaterHeaterLocation     string      `form:"waterHeaterLocation" json:"waterHeaterLocation"`
	WaterHeaterInstallDate  string      `form:"waterHeaterInstallDate" json:"waterHeaterInstallDate"`
	WaterHeaterInstallMonth string      `form:"waterHeaterInstallMonth" json:"waterHeaterInstallMonth"`
	HasWasherDryer          bool        `form:"hasWasherDryer" json:"hasWasherDryer"`
	LaundryLocation         string      `form:"laundryLocation" json:"laundryLocation"`

	// Report
	ComplianceAccepted bool   `form:"complianceAccepted" json:"complianceAccepted"`
	ReportNotes        string `form:"reportNotes" json:"reportNotes"`
	InspectorSignature string `form:"inspectorSignature" json:"inspectorSignature"`
	TenantSignature    string `form:"tenantSignature" json:"tenantSignature"`
}

// RoomConfig is the coarse room-count configuration collected on step 2.
type RoomConfig struct {
	Bedrooms       int
	Bathrooms      int
	HasKitchen     bool
	HasLivingRoom  bool
	HasDiningRoom  bool
	HasLaundryRoom bool
	Hallways       int
	Stairways      int
	HasDeckPatio   bool
	HasYard        bool
}

func (d InspectionData) RoomConfig() RoomConfig {
	return RoomConfig{
		Bedrooms:       d.Bedrooms,
		Bathrooms:      d.Bathrooms,
		HasKitchen:     d.HasKitchen,
		HasLivingRoom:  d.HasLivingRoom,
		HasDiningRoom:  d.HasDiningRoom,
		HasLaundryRoom: d.HasLaundryRoom,
		Hallways:       d.Hallways,
		Stairways:      d.Stairways,
		HasDeckPatio:   d.HasDeckPatio,
		HasYard:        d.HasYard,
	}
}

func pickCustom(selected, custom string) string {
	if selected == Custom {
		return strings.TrimSpace(custom)
	}
	return selected
}

func (d InspectionData) EffectivePropertyName() string {
	return pickCustom(d.PropertyName, d.CustomPropertyName)
}

func (d InspectionData) EffectivePropertyAddress() string {
	return pickCustom(d.PropertyAddress, d.CustomPropertyAddress)
}

func (d InspectionData) EffectiveInspectorName() string {
	return pickCustom(d.InspectorName, d.CustomInspectorName)
}

func (d InspectionData) HasProgram(p ProgramType) bool {
	for _, v := range d.ProgramType {
		if v == p {
			return true
		}
	}
	return false
}
