package inspection

import (
	"testing"
	"time"

	"rentinspect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPhoto(name string) types.Photo {
	return types.Photo{
		DataURI:    "data:image/png;base64,iVBORw0KGgo=",
		FileName:   name,
		CapturedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestAddPhotoToRoomField(t *testing.T) {
	rooms := createTestRooms()
	target := types.PhotoTarget{RoomID: rooms[0].ID, Field: "flooringPhotos"}

	out, err := AddPhoto(rooms, target, createTestPhoto("floor.jpg"))
	require.NoError(t, err)

	photos := out[0].Item(types.TopicFlooring).Photos
	require.Len(t, photos, 1)
	assert.NotEmpty(t, photos[0].ID)
	assert.Equal(t, "floor.jpg", photos[0].FileName)
	assert.Empty(t, rooms[0].Item(types.TopicFlooring).Photos)
	assert.Same(t, rooms[1], out[1])
}

func TestAddPhotoRejectsNonPhotoField(t *testing.T) {
	rooms := createTestRooms()

	_, err := AddPhoto(rooms, types.PhotoTarget{RoomID: rooms[0].ID, Field: "flooringNotes"}, createTestPhoto("a.jpg"))
	assert.ErrorIs(t, err, types.ErrUnknownField)

	_, err = AddPhoto(rooms, types.PhotoTarget{RoomID: "nope", Field: "flooringPhotos"}, createTestPhoto("a.jpg"))
	assert.ErrorIs(t, err, types.ErrRoomNotFound)
}

func TestUpdatePhotoCommentTouchesOnlyThatPhoto(t *testing.T) {
	rooms := createTestRooms()
	kitchen := rooms[2]

	rooms, err := AddAppliance(rooms, kitchen.ID, types.ApplianceRefrigerator)
	require.NoError(t, err)
	applianceID := rooms[2].Appliances[0].ID

	floor0 := types.PhotoTarget{RoomID: rooms[0].ID, Field: "flooringPhotos"}
	walls0 := types.PhotoTarget{RoomID: rooms[0].ID, Field: "wallsPhotos"}
	fridge := types.PhotoTarget{RoomID: kitchen.ID, ApplianceID: applianceID}

	rooms, err = AddPhoto(rooms, floor0, createTestPhoto("a.jpg"))
	require.NoError(t, err)
	rooms, err = AddPhoto(rooms, floor0, createTestPhoto("b.jpg"))
	require.NoError(t, err)
	rooms, err = AddPhoto(rooms, walls0, createTestPhoto("c.jpg"))
	require.NoError(t, err)
	rooms, err = AddPhoto(rooms, fridge, createTestPhoto("d.jpg"))
	require.NoError(t, err)

	before := rooms
	targetPhoto := before[0].Item(types.TopicFlooring).Photos[1]

	after, err := UpdatePhotoComment(before, floor0, targetPhoto.ID, "scratched near door")
	require.NoError(t, err)

	floor := after[0].Item(types.TopicFlooring).Photos
	assert.Equal(t, "scratched near door", floor[1].Comment)
	assert.Empty(t, targetPhoto.Comment)
	assert.Same(t, before[0].Item(types.TopicFlooring).Photos[0], floor[0])
	assert.Same(t, before[0].Item(types.TopicWalls).Photos[0], after[0].Item(types.TopicWalls).Photos[0])
	assert.Same(t, before[2], after[2])
	assert.Empty(t, after[2].Appliances[0].Photos[0].Comment)

	_, err = UpdatePhotoComment(after, floor0, "missing", "x")
	assert.ErrorIs(t, err, types.ErrPhotoNotFound)
}

func TestRemovePhotoFromAppliance(t *testing.T) {
	rooms := createTestRooms()
	kitchen := rooms[2]

	rooms, err := AddAppliance(rooms, kitchen.ID, types.ApplianceDishwasher)
	require.NoError(t, err)
	target := types.PhotoTarget{RoomID: kitchen.ID, ApplianceID: rooms[2].Appliances[0].ID}

	rooms, err = AddPhoto(rooms, target, createTestPhoto("a.jpg"))
	require.NoError(t, err)
	rooms, err = AddPhoto(rooms, target, createTestPhoto("b.jpg"))
	require.NoError(t, err)

	photos, err := Photos(rooms, target)
	require.NoError(t, err)
	require.Len(t, photos, 2)

	out, err := RemovePhoto(rooms, target, photos[0].ID)
	require.NoError(t, err)

	remaining, err := Photos(out, target)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b.jpg", remaining[0].FileName)

	_, err = RemovePhoto(out, target, photos[0].ID)
	assert.ErrorIs(t, err, types.ErrPhotoNotFound)
}
