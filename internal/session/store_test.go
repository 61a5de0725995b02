package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(maxAge time.Duration) *Store {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewStore(maxAge, logger)
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(time.Hour)

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, types.StepPropertyInfo, sess.Step)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
}

func TestUpdateCommitsOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(time.Hour)

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	_, err = store.Update(ctx, sess.ID, func(s *inspection.Session) error {
		s.Step = types.StepGlobalFeatures
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StepPropertyInfo, got.Step)

	updated, err := store.Update(ctx, sess.ID, func(s *inspection.Session) error {
		s.Step = types.StepGlobalFeatures
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, types.StepGlobalFeatures, updated.Step)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(time.Hour)

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	sess.Step = types.StepReportGeneration

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StepPropertyInfo, got.Step)
}

func TestConcurrentPhotoUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(time.Hour)

	sess, err := store.Create(ctx)
	require.NoError(t, err)

	sess, err = store.Update(ctx, sess.ID, func(s *inspection.Session) error {
		return s.GoTo(types.StepRoomInspection)
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Rooms)

	target := types.PhotoTarget{RoomID: sess.Rooms[0].ID, Field: "flooringPhotos"}
	other := types.PhotoTarget{RoomID: sess.Rooms[0].ID, Field: "wallsPhotos"}

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tgt := target
			if i%5 == 0 {
				tgt = other
			}
			_, err := store.Update(ctx, sess.ID, func(s *inspection.Session) error {
				rooms, err := inspection.AddPhoto(s.Rooms, tgt, types.Photo{FileName: fmt.Sprintf("%d.jpg", i)})
				if err != nil {
					return err
				}
				s.Rooms = rooms
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Rooms[0].Item(types.TopicFlooring).Photos, 20)
	assert.Len(t, got.Rooms[0].Item(types.TopicWalls).Photos, 5)
}

func TestExpiredSessionsAreDropped(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(time.Minute)

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	_, err = store.Create(ctx)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestPutAndDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(0)

	sess := inspection.NewSession("fixed-id", time.Now())
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", got.ID)

	store.Delete(ctx, "fixed-id")
	_, err = store.Get(ctx, "fixed-id")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
}
