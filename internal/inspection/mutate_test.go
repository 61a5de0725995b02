package inspection

import (
	"testing"
	"time"

	"rentinspect/internal/utils"
	"rentinspect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRooms() []*types.Room {
	return InitializeRooms(types.RoomConfig{Bedrooms: 1, Bathrooms: 1, HasKitchen: true})
}

func TestUpdateInspectionDataDerivesInitial(t *testing.T) {
	data := NewInspectionData(time.Now())

	next, err := UpdateInspectionData(data, "tenantFirstName", "jane")
	require.NoError(t, err)
	assert.Equal(t, "jane", next.TenantFirstName)
	assert.Equal(t, "J", next.TenantInitial)
	assert.Empty(t, data.TenantFirstName, "input must not be modified")

	next, err = UpdateInspectionData(next, "tenantFirstName", "mark")
	require.NoError(t, err)
	assert.Equal(t, "M", next.TenantInitial)

	next, err = UpdateInspectionData(next, "tenantFirstName", "")
	require.NoError(t, err)
	assert.Empty(t, next.TenantInitial)
}

func TestUpdateInspectionDataRejectsDerivedAndUnknown(t *testing.T) {
	data := NewInspectionData(time.Now())

	_, err := UpdateInspectionData(data, "tenantInitial", "Z")
	assert.ErrorIs(t, err, types.ErrReadOnlyField)

	_, err = UpdateInspectionData(data, "favoriteColor", "blue")
	assert.ErrorIs(t, err, types.ErrUnknownField)
}

func TestUpdateInspectionDataTypedFields(t *testing.T) {
	data := NewInspectionData(time.Now())

	next, err := UpdateInspectionData(data, "bedrooms", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, next.Bedrooms)

	next, err = UpdateInspectionData(next, "hasYard", "false", "true")
	require.NoError(t, err)
	assert.True(t, next.HasYard)

	next, err = UpdateInspectionData(next, "hasKitchen", "false")
	require.NoError(t, err)
	assert.False(t, next.HasKitchen)

	next, err = UpdateInspectionData(next, "heatingType", string(types.HeatingBoiler))
	require.NoError(t, err)
	assert.Equal(t, types.HeatingBoiler, next.HeatingType)

	_, err = UpdateInspectionData(next, "bathrooms", "two")
	assert.ErrorIs(t, err, types.ErrInvalidValue)

	next, err = UpdateInspectionData(next, "propertyName", "")
	require.NoError(t, err)
	assert.Empty(t, next.PropertyName)
}

func TestUpdateInspectionDataProgramTypeKeepsOrder(t *testing.T) {
	data := NewInspectionData(time.Now())

	next, err := UpdateInspectionData(data, "programType", "LIHTC", "HUD", "", "LIHTC")
	require.NoError(t, err)
	assert.Equal(t, []types.ProgramType{types.ProgramLIHTC, types.ProgramHUD}, next.ProgramType)

	shrunk, err := UpdateInspectionData(next, "programType", "HOME")
	require.NoError(t, err)
	assert.Equal(t, []types.ProgramType{types.ProgramHOME}, shrunk.ProgramType)
	assert.Equal(t, []types.ProgramType{types.ProgramLIHTC, types.ProgramHUD}, next.ProgramType)

	cleared, err := UpdateInspectionData(shrunk, "programType")
	require.NoError(t, err)
	assert.NotNil(t, cleared.ProgramType)
	assert.Empty(t, cleared.ProgramType)
}

func TestUpdateRoomPreservesIdentity(t *testing.T) {
	rooms := createTestRooms()
	target := rooms[1]

	out, err := UpdateRoom(rooms, target.ID, "notes", "abc")
	require.NoError(t, err)
	require.Len(t, out, len(rooms))

	for i := range rooms {
		if rooms[i].ID == target.ID {
			assert.NotSame(t, rooms[i], out[i])
			assert.Equal(t, "abc", out[i].Notes)
			assert.Empty(t, rooms[i].Notes)
			continue
		}
		assert.Same(t, rooms[i], out[i])
	}
}

func TestUpdateRoomItemFields(t *testing.T) {
	rooms := createTestRooms()
	id := rooms[0].ID

	out, err := UpdateRoom(rooms, id, "flooringWorkOrder", "on")
	require.NoError(t, err)
	out, err = UpdateRoom(out, id, "flooringCondition", "Poor")
	require.NoError(t, err)
	out, err = UpdateRoom(out, id, "flooringNeedsAction", "Replace")
	require.NoError(t, err)
	out, err = UpdateRoom(out, id, "smokeAlarmPresent", "No")
	require.NoError(t, err)

	flooring := out[0].Item(types.TopicFlooring)
	assert.True(t, flooring.WorkOrder)
	assert.Equal(t, types.ConditionPoor, flooring.Condition)
	assert.Equal(t, types.NeedsActionReplace, flooring.NeedsAction)
	assert.Equal(t, types.PresenceNo, out[0].Item(types.TopicSmokeAlarm).Present)

	assert.False(t, rooms[0].Item(types.TopicFlooring).WorkOrder, "original map must be untouched")
}

func TestUpdateRoomErrors(t *testing.T) {
	rooms := createTestRooms()
	id := rooms[0].ID

	_, err := UpdateRoom(rooms, "missing", "notes", "x")
	assert.ErrorIs(t, err, types.ErrRoomNotFound)

	_, err = UpdateRoom(rooms, id, "bogusField", "x")
	assert.ErrorIs(t, err, types.ErrUnknownField)

	_, err = UpdateRoom(rooms, id, "flooringCondition", "Sparkly")
	assert.ErrorIs(t, err, types.ErrInvalidValue)

	_, err = UpdateRoom(rooms, id, "riseCount", "-1")
	assert.ErrorIs(t, err, types.ErrInvalidValue)

	_, err = UpdateRoom(rooms, id, "flooringPhotos", "x")
	assert.ErrorIs(t, err, types.ErrReadOnlyField)

	_, err = UpdateRoom(rooms, id, "type", "kitchen")
	assert.ErrorIs(t, err, types.ErrReadOnlyField)
}

func TestApplianceLifecycle(t *testing.T) {
	rooms := createTestRooms()
	kitchen := rooms[2]

	out, err := AddAppliance(rooms, kitchen.ID, types.ApplianceRefrigerator)
	require.NoError(t, err)
	out, err = AddAppliance(out, kitchen.ID, types.ApplianceStove)
	require.NoError(t, err)

	require.Len(t, out[2].Appliances, 2)
	assert.Empty(t, kitchen.Appliances)
	assert.Same(t, rooms[0], out[0])

	fridge := out[2].Appliances[0]
	stove := out[2].Appliances[1]

	updated, err := UpdateAppliance(out, kitchen.ID, stove.ID, "ovenWorks", "No")
	require.NoError(t, err)
	assert.Equal(t, "No", updated[2].Appliances[1].Details["ovenWorks"])
	assert.Equal(t, "Yes", stove.Details["ovenWorks"])
	assert.Same(t, fridge, updated[2].Appliances[0])

	_, err = UpdateAppliance(out, kitchen.ID, stove.ID, "hasTPRValve", "No")
	assert.ErrorIs(t, err, types.ErrUnknownField)

	_, err = UpdateAppliance(out, kitchen.ID, "nope", "brand", "GE")
	assert.ErrorIs(t, err, types.ErrApplianceNotFound)

	removed, err := RemoveAppliance(updated, kitchen.ID, fridge.ID)
	require.NoError(t, err)
	require.Len(t, removed[2].Appliances, 1)
	assert.Equal(t, stove.ID, removed[2].Appliances[0].ID)

	_, err = RemoveAppliance(removed, kitchen.ID, fridge.ID)
	assert.ErrorIs(t, err, types.ErrApplianceNotFound)
}

func TestUpdateApplianceTypeChangeClearsVariantFields(t *testing.T) {
	rooms := createTestRooms()
	kitchen := rooms[2]

	out, err := AddAppliance(rooms, kitchen.ID, types.ApplianceStove)
	require.NoError(t, err)
	id := out[2].Appliances[0].ID

	out, err = UpdateAppliance(out, kitchen.ID, id, "gasLeak", "Yes")
	require.NoError(t, err)
	out, err = UpdateAppliance(out, kitchen.ID, id, "type", string(types.ApplianceWaterHeater))
	require.NoError(t, err)

	a := out[2].Appliances[0]
	assert.Equal(t, types.ApplianceWaterHeater, a.Type)
	assert.NotContains(t, a.Details, "gasLeak")
	assert.Contains(t, a.Details, "hasTPRValve")
}

func TestInspectionFieldTableMatchesStruct(t *testing.T) {
	names := make([]string, 0, len(types.InspectionFields))
	for _, f := range types.InspectionFields {
		names = append(names, f.Name)
	}

	assert.Equal(t, utils.StructTagValues(types.InspectionData{}), names)
}
