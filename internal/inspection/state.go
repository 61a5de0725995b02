package inspection

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"

	"rentinspect/pkg/types"
)

// DecodeSession reads a session saved as JSON. Unknown keys are rejected, as is
// a document with neither inspection data nor rooms.
func DecodeSession(r io.Reader) (*Session, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	sess := new(Session)
	if err := dec.Decode(sess); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidState, err)
	}

	if len(sess.Rooms) == 0 && reflect.ValueOf(sess.Data).IsZero() {
		return nil, fmt.Errorf("%w: no inspection data or rooms", types.ErrInvalidState)
	}

	if slices.Contains(sess.Rooms, nil) {
		return nil, fmt.Errorf("%w: null room", types.ErrInvalidState)
	}

	for _, room := range sess.Rooms {
		if room.Items == nil {
			room.Items = make(map[types.Topic]types.Item)
		}
		if room.Appliances == nil {
			room.Appliances = []*types.Appliance{}
		}
		if slices.Contains(room.Appliances, nil) {
			return nil, fmt.Errorf("%w: null appliance in %s", types.ErrInvalidState, room.Name)
		}
		for _, a := range room.Appliances {
			if a.Details == nil {
				a.Details = VariantDefaults(a.Type)
			}
		}
	}

	if !sess.Step.Valid() {
		sess.Step = types.StepPropertyInfo
	}
	sess.clampRoomIndex()

	return sess, nil
}
