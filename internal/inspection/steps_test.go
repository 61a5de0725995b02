package inspection

import (
	"testing"
	"time"

	"rentinspect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSession() *Session {
	s := NewSession("sess-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	s.Data.Bedrooms = 2
	s.Data.Bathrooms = 1
	s.Data.HasKitchen = true
	s.Data.HasLivingRoom = false
	return s
}

func TestPrevAtFirstStepIsNoop(t *testing.T) {
	s := createTestSession()
	s.Prev()
	assert.Equal(t, types.StepPropertyInfo, s.Step)
}

func TestNextLeavingRoomConfigReinitializes(t *testing.T) {
	s := createTestSession()

	s.Next()
	require.Equal(t, types.StepRoomConfig, s.Step)
	assert.Empty(t, s.Rooms)

	s.Next()
	require.Equal(t, types.StepGlobalFeatures, s.Step)
	require.Len(t, s.Rooms, 4)

	edited, err := UpdateRoom(s.Rooms, s.Rooms[0].ID, "notes", "edited")
	require.NoError(t, err)
	s.Rooms = edited

	s.Prev()
	s.Next()
	assert.Empty(t, s.Rooms[0].Notes, "sequential next rebuilds rooms")
}

func TestGoToRoomInspectionOnlyInitializesWhenEmpty(t *testing.T) {
	s := createTestSession()

	require.NoError(t, s.GoTo(types.StepRoomInspection))
	require.Len(t, s.Rooms, 4)

	edited, err := UpdateRoom(s.Rooms, s.Rooms[1].ID, "notes", "keep me")
	require.NoError(t, err)
	s.Rooms = edited

	require.NoError(t, s.GoTo(types.StepPropertyInfo))
	require.NoError(t, s.GoTo(types.StepRoomInspection))
	assert.Equal(t, "keep me", s.Rooms[1].Notes)
}

func TestGoToInvalidStep(t *testing.T) {
	s := createTestSession()
	assert.ErrorIs(t, s.GoTo(0), types.ErrInvalidStep)
	assert.ErrorIs(t, s.GoTo(6), types.ErrInvalidStep)
	assert.Equal(t, types.StepPropertyInfo, s.Step)
}

func TestNextAtReportIsNoop(t *testing.T) {
	s := createTestSession()
	require.NoError(t, s.GoTo(types.StepReportGeneration))
	s.Next()
	assert.Equal(t, types.StepReportGeneration, s.Step)
}

func TestRoomCursorBoundaries(t *testing.T) {
	s := createTestSession()
	require.NoError(t, s.GoTo(types.StepRoomInspection))
	require.Len(t, s.Rooms, 4)

	s.PrevRoom()
	assert.Equal(t, 0, s.RoomIndex)

	s.NextRoom()
	s.NextRoom()
	s.NextRoom()
	assert.Equal(t, 3, s.RoomIndex)
	assert.Equal(t, types.StepRoomInspection, s.Step)
	assert.Equal(t, "Kitchen", s.CurrentRoom().Name)

	s.NextRoom()
	assert.Equal(t, types.StepReportGeneration, s.Step)
	assert.Equal(t, 3, s.RoomIndex)
	assert.NotNil(t, s.CurrentRoom())
}

func TestNextRoomWithNoRoomsMovesToReport(t *testing.T) {
	s := NewSession("empty", time.Now())
	s.Data.Bedrooms = 0
	s.Data.Bathrooms = 0
	s.Data.HasKitchen = false
	s.Data.HasLivingRoom = false

	require.NoError(t, s.GoTo(types.StepRoomInspection))
	assert.Nil(t, s.CurrentRoom())

	s.NextRoom()
	assert.Equal(t, types.StepReportGeneration, s.Step)
	assert.Equal(t, 0, s.RoomIndex)
}

func TestSelectRoomClamps(t *testing.T) {
	s := createTestSession()
	require.NoError(t, s.GoTo(types.StepRoomInspection))

	s.SelectRoom(10)
	assert.Equal(t, 3, s.RoomIndex)
	s.SelectRoom(-4)
	assert.Equal(t, 0, s.RoomIndex)
}

func TestCloneIsIndependent(t *testing.T) {
	s := createTestSession()
	require.NoError(t, s.GoTo(types.StepRoomInspection))

	snap := s.Clone()
	s.Rooms = s.Rooms[:1]
	s.Step = types.StepPropertyInfo

	assert.Len(t, snap.Rooms, 4)
	assert.Equal(t, types.StepRoomInspection, snap.Step)
}
