package report

import (
	"bytes"
	"html"
	"strings"
	"testing"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeRooms(t *testing.T) []*types.Room {
	t.Helper()

	rooms := inspection.InitializeRooms(types.RoomConfig{Bedrooms: 1, Bathrooms: 1, HasKitchen: true})
	require.Len(t, rooms, 3)

	rooms, err := inspection.UpdateRoom(rooms, rooms[0].ID, "flooringWorkOrder", "true")
	require.NoError(t, err)
	rooms, err = inspection.UpdateRoom(rooms, rooms[0].ID, "flooringNotes", "torn carpet")
	require.NoError(t, err)

	rooms, err = inspection.AddAppliance(rooms, rooms[2].ID, types.ApplianceRefrigerator)
	require.NoError(t, err)
	applianceID := rooms[2].Appliances[0].ID
	rooms, err = inspection.UpdateAppliance(rooms, rooms[2].ID, applianceID, "workOrder", "true")
	require.NoError(t, err)
	rooms, err = inspection.UpdateAppliance(rooms, rooms[2].ID, applianceID, "needsAction", string(types.NeedsActionReplace))
	require.NoError(t, err)

	return rooms
}

func TestWorkOrdersAggregatesItemsAndAppliances(t *testing.T) {
	rooms := threeRooms(t)

	summary := WorkOrders(types.InspectionData{}, rooms)
	require.Equal(t, 2, summary.Count)
	require.Len(t, summary.Rows, 2)
	assert.False(t, summary.Passed())

	assert.Equal(t, WorkOrderRow{RoomName: "Bedroom 1", Item: "Flooring", Action: "Repair", Notes: "torn carpet"}, summary.Rows[0])
	assert.Equal(t, "Kitchen", summary.Rows[1].RoomName)
	assert.Equal(t, "Refrigerator", summary.Rows[1].Item)
	assert.Equal(t, "Replace", summary.Rows[1].Action)
}

func TestWorkOrdersSkipHiddenItems(t *testing.T) {
	rooms := inspection.InitializeRooms(types.RoomConfig{Stairways: 1})
	stairway := rooms[0]

	var err error
	for field, value := range map[string]string{
		"riseCount":          "4",
		"railingWorkOrder":   "true",
		"railingNeedsAction": "Repair",
	} {
		rooms, err = inspection.UpdateRoom(rooms, stairway.ID, field, value)
		require.NoError(t, err)
	}
	require.Equal(t, 1, WorkOrders(types.InspectionData{}, rooms).Count)

	// a short stair no longer shows the railing, so its flag is not reported
	rooms, err = inspection.UpdateRoom(rooms, stairway.ID, "riseCount", "1")
	require.NoError(t, err)

	summary := WorkOrders(types.InspectionData{}, rooms)
	assert.True(t, summary.Passed())
	assert.Empty(t, summary.Rows)

	doc := Build(types.InspectionData{}, rooms, Options{})
	require.Len(t, doc.Rooms, 1)
	for _, item := range doc.Rooms[0].Items {
		assert.NotEqual(t, "Railing", item.Label)
	}
}

func TestWorkOrdersPassWhenNoneFlagged(t *testing.T) {
	rooms := inspection.InitializeRooms(types.RoomConfig{Bedrooms: 2})

	summary := WorkOrders(types.InspectionData{}, rooms)
	assert.Zero(t, summary.Count)
	assert.True(t, summary.Passed())
	assert.Empty(t, summary.Rows)
}

func TestFilename(t *testing.T) {
	data := types.InspectionData{
		PropertyName:   "Park Village",
		UnitNumber:     "101",
		TenantInitial:  "J",
		TenantLastName: "Doe",
		InspectionDate: "2024-03-05",
	}
	assert.Equal(t, "Park Village 101 JDoe 03 05 2024", Filename(data))

	data.PropertyName = types.Custom
	data.CustomPropertyName = "Elm Court"
	data.UnitNumber = ""
	assert.Equal(t, "Elm Court JDoe 03 05 2024", Filename(data))

	assert.Equal(t, "inspection-report", SafeFilename(Filename(types.InspectionData{})))
	assert.Equal(t, "A-B 1", SafeFilename("A/B 1"))
}

func TestRoomViolations(t *testing.T) {
	data := inspection.NewInspectionData(time.Now())
	data.HeatingType = types.HeatingCentralFurnace
	data.FuelType = types.FuelElectric

	rooms := inspection.InitializeRooms(types.RoomConfig{Bedrooms: 1, Bathrooms: 1, Stairways: 1})
	bedroom, bathroom, stairway := rooms[0], rooms[1], rooms[2]

	var err error
	rooms, err = inspection.UpdateRoom(rooms, bedroom.ID, "smokeAlarmPresent", "No")
	require.NoError(t, err)
	rooms, err = inspection.UpdateRoom(rooms, bedroom.ID, "co2AlarmPresent", "No")
	require.NoError(t, err)
	rooms, err = inspection.UpdateRoom(rooms, bathroom.ID, "gfiPresent", "No")
	require.NoError(t, err)
	rooms, err = inspection.UpdateRoom(rooms, bathroom.ID, "ventilationPresent", "Yes")
	require.NoError(t, err)
	rooms, err = inspection.UpdateRoom(rooms, stairway.ID, "railingPresent", "No")
	require.NoError(t, err)

	bv := RoomViolations(data, rooms[0])
	require.Len(t, bv, 1, "electric heat makes the CO2 alarm irrelevant")
	assert.Equal(t, types.TopicSmokeAlarm, bv[0].Topic)
	assert.Equal(t, "Bedroom 1", bv[0].RoomName)

	bathV := RoomViolations(data, rooms[1])
	require.Len(t, bathV, 1)
	assert.Equal(t, types.TopicGFI, bathV[0].Topic)

	assert.Empty(t, RoomViolations(data, rooms[2]), "two rises do not require a railing")

	rooms, err = inspection.UpdateRoom(rooms, stairway.ID, "riseCount", "3")
	require.NoError(t, err)
	sv := RoomViolations(data, rooms[2])
	require.Len(t, sv, 1)
	assert.Equal(t, types.TopicRailing, sv[0].Topic)

	data.FuelType = types.FuelNaturalGas
	assert.Len(t, RoomViolations(data, rooms[0]), 2)

	assert.Len(t, AllViolations(data, rooms), 4)
}

func TestPairsRendersMissingValuesAsNA(t *testing.T) {
	data := types.InspectionData{}
	rooms := inspection.InitializeRooms(types.RoomConfig{HasKitchen: true})

	pairs := Pairs(data, rooms)
	require.NotEmpty(t, pairs)

	byLabel := make(map[string]string, len(pairs))
	for _, p := range pairs {
		byLabel[p.Label] = p.Value
	}

	assert.Equal(t, NotAvailable, byLabel["Property Name"])
	assert.Equal(t, NotAvailable, byLabel["Tenant"])
	assert.Equal(t, NotAvailable, byLabel["Heating Type"])
	assert.Equal(t, NotAvailable, byLabel["Kitchen - GFI Outlet"])
	assert.Equal(t, "Good", byLabel["Kitchen - Flooring"])
	assert.Equal(t, "0", byLabel["Work Orders"])
	assert.Equal(t, PassStatement, byLabel["Result"])
	assert.Equal(t, "No", byLabel["Compliance Statement Accepted"])

	_, ok := byLabel["Fuel Type"]
	assert.False(t, ok, "fuel type only applies to central furnaces")
}

func TestApplianceFieldsOnlyShowCurrentType(t *testing.T) {
	a := inspection.NewAppliance(types.ApplianceStove, "GE")
	a.Details["staleKey"] = "leftover"

	labels := make([]string, 0)
	for _, f := range ApplianceFields(a) {
		labels = append(labels, f.Label)
	}

	for _, vf := range types.ApplianceVariants[types.ApplianceStove] {
		assert.Contains(t, labels, vf.Label)
	}
	assert.NotContains(t, labels, "staleKey")
}

func TestRenderDocument(t *testing.T) {
	data := inspection.NewInspectionData(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))
	data.PropertyName = "Park Village"
	data.UnitNumber = "101"
	data.TenantLastName = "Doe"
	data, err := inspection.UpdateInspectionData(data, "tenantFirstName", "jane")
	require.NoError(t, err)

	rooms := threeRooms(t)
	rooms, err = inspection.AddPhoto(rooms, types.PhotoTarget{RoomID: rooms[0].ID, Field: "flooringPhotos"}, types.Photo{
		DataURI:  "data:image/png;base64,AAAA",
		FileName: "floor.png",
		Comment:  "stain by door",
	})
	require.NoError(t, err)
	rooms, err = inspection.AddPhoto(rooms, types.PhotoTarget{RoomID: rooms[0].ID, Field: "wallsPhotos"}, types.Photo{
		DataURI: "javascript:alert(1)",
	})
	require.NoError(t, err)

	doc := Build(data, rooms, Options{BrandName: "Acme Housing", AutoPrint: true, Now: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)})
	assert.Equal(t, "Park Village 101 JDoe 03 05 2024", doc.Filename)
	require.Len(t, doc.Rooms, 3)
	assert.Equal(t, 2, doc.WorkOrders.Count)
	assert.NotEmpty(t, doc.BrandImage)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "<title>Park Village 101 JDoe 03 05 2024</title>")
	assert.Contains(t, out, "Work Orders (2)")
	assert.Contains(t, out, "torn carpet")
	assert.Contains(t, out, `src="data:image/png;base64,AAAA"`)
	// html/template escapes "+" inside attributes
	assert.Contains(t, html.UnescapeString(out), `src="data:image/svg+xml;base64,`)
	assert.Contains(t, out, "stain by door")
	assert.Contains(t, out, "window.print()")
	assert.NotContains(t, out, "javascript:alert")
	assert.NotContains(t, out, "http://")
}

func TestRenderPassStatement(t *testing.T) {
	doc := Build(types.InspectionData{}, inspection.InitializeRooms(types.RoomConfig{Bedrooms: 1}), Options{})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Contains(t, buf.String(), PassStatement)
	assert.False(t, strings.Contains(buf.String(), "window.print()"))
}

func TestRenderPairs(t *testing.T) {
	doc := BuildFromPairs("Scraped Report", []Field{{Label: "Unit Number", Value: "<101>"}}, Options{})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Contains(t, buf.String(), "Unit Number")
	assert.Contains(t, buf.String(), "&lt;101&gt;")
	assert.NotContains(t, buf.String(), "Work Orders")
}
