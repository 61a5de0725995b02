package types

type Step int

const (
	StepPropertyInfo Step = iota + 1
	StepRoomConfig
	StepGlobalFeatures
	StepRoomInspection
	StepReportGeneration
)

var Steps = []Step{
	StepPropertyInfo,
	StepRoomConfig,
	StepGlobalFeatures,
	StepRoomInspection,
	StepReportGeneration,
}

func (s Step) Title() string {
	switch s {
	case StepPropertyInfo:
		return "Property Information"
	case StepRoomConfig:
		return "Room Configuration"
	case StepGlobalFeatures:
		return "Global Features"
	case StepRoomInspection:
		return "Room Inspection"
	case StepReportGeneration:
		return "Generate Report"
	}
	return ""
}

func (s Step) Valid() bool {
	return s >= StepPropertyInfo && s <= StepReportGeneration
}
