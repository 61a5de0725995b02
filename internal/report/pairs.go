// Package report synthesizes the inspection report: a flat label/value listing,
// a structured printable document, the work-order summary and the report filename.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"
)

const NotAvailable = "N/A"

// Field is one label/value line. Violation marks an NSPIRE banner line.
type Field struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Violation bool   `json:"violation,omitempty"`
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotAvailable
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Pairs walks the inspection in canonical order and flattens it to label/value
// lines.
func Pairs(data types.InspectionData, rooms []*types.Room) []Field {
	out := make([]Field, 0)
	out = append(out, HeaderFields(data)...)
	out = append(out, SystemFields(data)...)

	for _, room := range rooms {
		prefix := room.Name + " - "

		for _, f := range roomFields(room) {
			f.Label = prefix + f.Label
			out = append(out, f)
		}

		for _, def := range inspection.RelevantTopics(data, room) {
			item := room.Item(def.Key)
			out = append(out, Field{Label: prefix + def.Label, Value: itemStatus(def, item)})
			if item.NeedsAction != "" && item.NeedsAction != types.NeedsActionNone {
				out = append(out, Field{Label: prefix + def.Label + " Action", Value: string(item.NeedsAction)})
			}
			if item.WorkOrder {
				out = append(out, Field{Label: prefix + def.Label + " Work Order", Value: "Yes"})
			}
			if n := strings.TrimSpace(item.Notes); n != "" {
				out = append(out, Field{Label: prefix + def.Label + " Notes", Value: n})
			}
			if len(item.Photos) > 0 {
				out = append(out, Field{Label: prefix + def.Label + " Photos", Value: strconv.Itoa(len(item.Photos))})
			}
		}

		for i, a := range room.Appliances {
			aprefix := fmt.Sprintf("%s%s %d - ", prefix, a.Type, i+1)
			for _, f := range ApplianceFields(a) {
				f.Label = aprefix + f.Label
				out = append(out, f)
			}
		}

		for _, v := range RoomViolations(data, room) {
			out = append(out, Field{Label: prefix + "NSPIRE Violation", Value: v.Message, Violation: true})
		}
	}

	wo := WorkOrders(data, rooms)
	out = append(out, Field{Label: "Work Orders", Value: strconv.Itoa(wo.Count)})
	if wo.Passed() {
		out = append(out, Field{Label: "Result", Value: PassStatement})
	}

	out = append(out,
		Field{Label: "Compliance Statement Accepted", Value: yesNo(data.ComplianceAccepted)},
		Field{Label: "Report Notes", Value: orNA(data.ReportNotes)},
	)

	return out
}

// HeaderFields lists property, tenant and inspector metadata with custom
// selections resolved.
func HeaderFields(data types.InspectionData) []Field {
	programs := make([]string, 0, len(data.ProgramType))
	for _, p := range data.ProgramType {
		programs = append(programs, string(p))
	}

	tenant := strings.TrimSpace(data.TenantFirstName + " " + data.TenantLastName)

	return []Field{
		{Label: "Property Name", Value: orNA(data.EffectivePropertyName())},
		{Label: "Property Address", Value: orNA(data.EffectivePropertyAddress())},
		{Label: "Unit Number", Value: orNA(data.UnitNumber)},
		{Label: "Tenant", Value: orNA(tenant)},
		{Label: "Inspector", Value: orNA(data.EffectiveInspectorName())},
		{Label: "Inspection Date", Value: orNA(data.InspectionDate)},
		{Label: "Inspection Type", Value: orNA(string(data.InspectionType))},
		{Label: "Program Type", Value: orNA(strings.Join(programs, ", "))},
	}
}

// SystemFields lists the global systems, skipping questions that do not apply.
func SystemFields(data types.InspectionData) []Field {
	out := []Field{{Label: "Heating Type", Value: orNA(string(data.HeatingType))}}
	if inspection.FuelTypeRequired(data) {
		out = append(out, Field{Label: "Fuel Type", Value: orNA(string(data.FuelType))})
	}
	out = append(out,
		Field{Label: "Cooling Type", Value: orNA(string(data.CoolingType))},
		Field{Label: "Water Heater", Value: yesNo(data.HasWaterHeater)},
	)
	if data.HasWaterHeater {
		out = append(out,
			Field{Label: "Water Heater Location", Value: orNA(data.WaterHeaterLocation)},
			Field{Label: "Water Heater Installed", Value: installLabel(data.WaterHeaterInstallDate, data.WaterHeaterInstallMonth)},
		)
	}
	out = append(out, Field{Label: "Washer/Dryer", Value: yesNo(data.HasWasherDryer)})
	if data.HasWasherDryer {
		out = append(out, Field{Label: "Laundry Location", Value: orNA(data.LaundryLocation)})
	}
	return out
}

// ApplianceFields lists an appliance including only the variant fields of its
// current type.
func ApplianceFields(a *types.Appliance) []Field {
	out := []Field{
		{Label: "Brand", Value: orNA(a.Brand)},
		{Label: "Model", Value: orNA(a.Model)},
		{Label: "Serial", Value: orNA(a.Serial)},
		{Label: "Installed", Value: installLabel(a.InstallDate, a.InstallMonth)},
		{Label: "Condition", Value: orNA(string(a.Condition))},
	}
	for _, vf := range types.ApplianceVariants[a.Type] {
		out = append(out, Field{Label: vf.Label, Value: orNA(a.Details[vf.Key])})
	}
	if a.NeedsAction != "" && a.NeedsAction != types.NeedsActionNone {
		out = append(out, Field{Label: "Action", Value: string(a.NeedsAction)})
	}
	if a.WorkOrder {
		out = append(out, Field{Label: "Work Order", Value: "Yes"})
	}
	if n := strings.TrimSpace(a.Notes); n != "" {
		out = append(out, Field{Label: "Notes", Value: n})
	}
	if len(a.Photos) > 0 {
		out = append(out, Field{Label: "Photos", Value: strconv.Itoa(len(a.Photos))})
	}
	return out
}

func roomFields(room *types.Room) []Field {
	out := make([]Field, 0)
	if room.Type == types.RoomStairway {
		out = append(out,
			Field{Label: "Rise Count", Value: strconv.Itoa(room.RiseCount)},
			Field{Label: "Railing Required", Value: yesNo(inspection.RailingRequired(room))},
		)
	}
	if n := strings.TrimSpace(room.Notes); n != "" {
		out = append(out, Field{Label: "Comments", Value: n})
	}
	return out
}

func itemStatus(def types.TopicDef, item types.Item) string {
	if def.Kind == types.KindPresence {
		return orNA(string(item.Present))
	}
	return orNA(string(item.Condition))
}

func installLabel(date, month string) string {
	if date == types.InstallDateCustom {
		return orNA(month)
	}
	return orNA(date)
}
