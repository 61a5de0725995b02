package report

import (
	"strings"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"
)

type WorkOrderRow struct {
	RoomName string `json:"roomName"`
	Item     string `json:"item"`
	Action   string `json:"action"`
	Notes    string `json:"notes"`
}

type WorkOrderSummary struct {
	Count int            `json:"count"`
	Rows  []WorkOrderRow `json:"rows"`
}

func (s WorkOrderSummary) Passed() bool {
	return s.Count == 0
}

const PassStatement = "No work orders were required. The unit passed inspection with no remediation items."

// WorkOrders collects every flagged appliance and every flagged item the room
// still shows, in canonical room order.
func WorkOrders(data types.InspectionData, rooms []*types.Room) WorkOrderSummary {
	summary := WorkOrderSummary{Rows: make([]WorkOrderRow, 0)}

	for _, room := range rooms {
		for _, def := range types.Topics {
			item, ok := room.Items[def.Key]
			if !ok || !item.WorkOrder || !inspection.TopicRelevant(data, room, def.Key) {
				continue
			}
			summary.Rows = append(summary.Rows, WorkOrderRow{
				RoomName: room.Name,
				Item:     def.Label,
				Action:   actionLabel(item.NeedsAction),
				Notes:    item.Notes,
			})
		}

		for _, a := range room.Appliances {
			if !a.WorkOrder {
				continue
			}
			summary.Rows = append(summary.Rows, WorkOrderRow{
				RoomName: room.Name,
				Item:     applianceTitle(a),
				Action:   actionLabel(a.NeedsAction),
				Notes:    a.Notes,
			})
		}
	}

	summary.Count = len(summary.Rows)

	return summary
}

func actionLabel(a types.NeedsAction) string {
	if a == "" || a == types.NeedsActionNone {
		return "Repair"
	}
	return string(a)
}

func applianceTitle(a *types.Appliance) string {
	parts := []string{string(a.Type)}
	if b := strings.TrimSpace(a.Brand); b != "" {
		parts = append(parts, "("+b+")")
	}
	return strings.Join(parts, " ")
}
