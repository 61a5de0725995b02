package inspection

import (
	"testing"
	"time"

	"rentinspect/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestCO2AlarmRelevance(t *testing.T) {
	data := NewInspectionData(time.Now())
	bedroom := NewRoom(types.RoomBedroom, "Bedroom 1")

	tests := []struct {
		name    string
		heating types.HeatingType
		fuel    types.FuelType
		want    bool
	}{
		{"gas furnace", types.HeatingCentralFurnace, types.FuelNaturalGas, true},
		{"electric furnace", types.HeatingCentralFurnace, types.FuelElectric, false},
		{"boiler", types.HeatingBoiler, "", true},
		{"heat pump", types.HeatingHeatPump, "", false},
		{"baseboard", types.HeatingElectricBaseboard, types.FuelNaturalGas, false},
		{"wall heater", types.HeatingWallHeater, types.FuelPropane, false},
		{"no heating", types.HeatingNone, "", false},
		{"unset", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data.HeatingType = tt.heating
			data.FuelType = tt.fuel
			assert.Equal(t, tt.want, CO2AlarmRelevant(data))
			assert.Equal(t, tt.want, TopicRelevant(data, bedroom, types.TopicCO2Alarm))
		})
	}
}

func TestFuelTypeRequired(t *testing.T) {
	data := NewInspectionData(time.Now())
	data.HeatingType = types.HeatingCentralFurnace
	assert.True(t, FuelTypeRequired(data))
	data.HeatingType = types.HeatingHeatPump
	assert.False(t, FuelTypeRequired(data))
}

func TestRailingDerivedFromRiseCount(t *testing.T) {
	data := NewInspectionData(time.Now())
	stair := NewRoom(types.RoomStairway, "Stairway 1")

	assert.False(t, RailingRequired(stair))
	assert.False(t, TopicRelevant(data, stair, types.TopicRailing))

	stair.RiseCount = 3
	assert.True(t, RailingRequired(stair))
	assert.True(t, TopicRelevant(data, stair, types.TopicRailing))
}

func TestRoomTypePredicates(t *testing.T) {
	data := NewInspectionData(time.Now())

	hall := NewRoom(types.RoomHallway, "Hallway 1")
	kitchen := NewRoom(types.RoomKitchen, "Kitchen")
	bedroom := NewRoom(types.RoomBedroom, "Bedroom 1")

	assert.False(t, WindowsRelevant(hall))
	assert.True(t, WindowsRelevant(kitchen))
	assert.True(t, GFIRelevant(kitchen))
	assert.False(t, GFIRelevant(bedroom))
	assert.False(t, TopicRelevant(data, bedroom, types.TopicGFI))
	assert.True(t, AppliancesAllowed(types.RoomLaundryRoom))
	assert.False(t, AppliancesAllowed(types.RoomBedroom))
	assert.False(t, TopicRelevant(data, nil, types.TopicFlooring))
}

func TestWaterHeaterMonthRequired(t *testing.T) {
	data := NewInspectionData(time.Now())
	data.HasWaterHeater = true
	data.WaterHeaterInstallDate = types.InstallDateCustom
	assert.True(t, WaterHeaterMonthRequired(data))
	data.HasWaterHeater = false
	assert.False(t, WaterHeaterMonthRequired(data))
}
