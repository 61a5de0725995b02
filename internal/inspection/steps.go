package inspection

import (
	"fmt"
	"slices"
	"time"

	"rentinspect/pkg/types"
)

// Session is the whole state of one inspection in progress.
type Session struct {
	ID        string               `json:"id"`
	Data      types.InspectionData `json:"data"`
	Rooms     []*types.Room        `json:"rooms"`
	Step      types.Step           `json:"step"`
	RoomIndex int                  `json:"roomIndex"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Data:      NewInspectionData(now),
		Rooms:     []*types.Room{},
		Step:      types.StepPropertyInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a snapshot. Rooms are shared because they are never modified in
// place.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Rooms = slices.Clone(s.Rooms)
	cp.Data.ProgramType = slices.Clone(s.Data.ProgramType)
	return &cp
}

// Next advances one step. Leaving room configuration rebuilds the rooms from the
// current configuration, discarding any room edits.
func (s *Session) Next() {
	switch s.Step {
	case types.StepReportGeneration:
		return
	case types.StepRoomConfig:
		s.resetRooms()
	}
	s.Step++
}

func (s *Session) Prev() {
	if s.Step > types.StepPropertyInfo {
		s.Step--
	}
}

// GoTo jumps to a step. Arriving at room inspection only builds rooms when none
// exist yet.
func (s *Session) GoTo(step types.Step) error {
	if !step.Valid() {
		return fmt.Errorf("%w: %d", types.ErrInvalidStep, step)
	}

	if step == types.StepRoomInspection && len(s.Rooms) == 0 {
		s.resetRooms()
	}

	s.Step = step
	s.clampRoomIndex()

	return nil
}

// NextRoom moves the room cursor forward. Advancing past the last room moves on
// to report generation.
func (s *Session) NextRoom() {
	if s.RoomIndex >= len(s.Rooms)-1 {
		s.Step = types.StepReportGeneration
		s.clampRoomIndex()
		return
	}
	s.RoomIndex++
}

func (s *Session) PrevRoom() {
	if s.RoomIndex > 0 {
		s.RoomIndex--
	}
}

// SelectRoom puts the room cursor on index i, clamped to the room list.
func (s *Session) SelectRoom(i int) {
	s.RoomIndex = i
	s.clampRoomIndex()
}

func (s *Session) CurrentRoom() *types.Room {
	if s.RoomIndex < 0 || s.RoomIndex >= len(s.Rooms) {
		return nil
	}
	return s.Rooms[s.RoomIndex]
}

func (s *Session) resetRooms() {
	s.Rooms = InitializeRooms(s.Data.RoomConfig())
	s.RoomIndex = 0
}

func (s *Session) clampRoomIndex() {
	if s.RoomIndex > len(s.Rooms)-1 {
		s.RoomIndex = len(s.Rooms) - 1
	}
	if s.RoomIndex < 0 {
		s.RoomIndex = 0
	}
}
