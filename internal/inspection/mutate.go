package inspection

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"rentinspect/internal/utils"
	"rentinspect/pkg/types"

	"github.com/go-playground/form/v4"
)

var (
	decoder              = form.NewDecoder()
	inspectionFieldIndex = utils.FieldIndexByTag(types.InspectionData{})
)

// UpdateInspectionData returns a copy of data with one field replaced. Multi-valued
// fields take every value; other fields take the last one. No required-field
// validation happens here.
func UpdateInspectionData(data types.InspectionData, field string, values ...string) (types.InspectionData, error) {
	def, ok := types.LookupInspectionField(field)
	idx, indexed := inspectionFieldIndex[field]
	if !ok || !indexed {
		return data, fmt.Errorf("%w: %s", types.ErrUnknownField, field)
	}

	if def.Derived {
		return data, fmt.Errorf("%w: %s", types.ErrReadOnlyField, field)
	}

	if def.Kind == types.FieldMulti {
		values = uniqueNonEmpty(values)
	} else if len(values) > 1 {
		values = values[len(values)-1:]
	}

	next := data
	target := reflect.ValueOf(&next).Elem().Field(idx)
	target.Set(reflect.Zero(target.Type()))

	if len(values) > 0 {
		err := decoder.Decode(&next, url.Values{field: values})
		if err != nil {
			return data, fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
	}

	if def.Kind == types.FieldMulti && target.IsNil() {
		target.Set(reflect.MakeSlice(target.Type(), 0, 0))
	}

	if field == "tenantFirstName" {
		next.TenantInitial = DeriveInitial(next.TenantFirstName)
	}

	return next, nil
}

func uniqueNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// UpdateRoom replaces the room matching roomID with an updated copy. Every other
// room pointer in the returned slice is the same as in rooms.
func UpdateRoom(rooms []*types.Room, roomID, field, value string) ([]*types.Room, error) {
	return replaceRoom(rooms, roomID, func(r *types.Room) error {
		return setRoomField(r, field, value)
	})
}

func UpdateAppliance(rooms []*types.Room, roomID, applianceID, field, value string) ([]*types.Room, error) {
	return replaceRoom(rooms, roomID, func(r *types.Room) error {
		return replaceAppliance(r, applianceID, func(a *types.Appliance) error {
			return setApplianceField(a, field, value)
		})
	})
}

// AddAppliance appends a new default appliance of the given type to a room.
func AddAppliance(rooms []*types.Room, roomID string, applianceType types.ApplianceType) ([]*types.Room, error) {
	return replaceRoom(rooms, roomID, func(r *types.Room) error {
		appliances := make([]*types.Appliance, len(r.Appliances), len(r.Appliances)+1)
		copy(appliances, r.Appliances)
		r.Appliances = append(appliances, NewAppliance(applianceType, ""))
		return nil
	})
}

func RemoveAppliance(rooms []*types.Room, roomID, applianceID string) ([]*types.Room, error) {
	return replaceRoom(rooms, roomID, func(r *types.Room) error {
		appliances := make([]*types.Appliance, 0, len(r.Appliances))
		for _, a := range r.Appliances {
			if a.ID != applianceID {
				appliances = append(appliances, a)
			}
		}
		if len(appliances) == len(r.Appliances) {
			return fmt.Errorf("%w: %s", types.ErrApplianceNotFound, applianceID)
		}
		r.Appliances = appliances
		return nil
	})
}

func FindRoom(rooms []*types.Room, roomID string) (*types.Room, bool) {
	for _, r := range rooms {
		if r.ID == roomID {
			return r, true
		}
	}
	return nil, false
}

func FindAppliance(room *types.Room, applianceID string) (*types.Appliance, bool) {
	if room == nil {
		return nil, false
	}
	for _, a := range room.Appliances {
		if a.ID == applianceID {
			return a, true
		}
	}
	return nil, false
}

func replaceRoom(rooms []*types.Room, roomID string, fn func(*types.Room) error) ([]*types.Room, error) {
	idx := -1
	for i, r := range rooms {
		if r.ID == roomID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rooms, fmt.Errorf("%w: %s", types.ErrRoomNotFound, roomID)
	}

	room := *rooms[idx]
	room.Items = maps.Clone(rooms[idx].Items)
	if room.Items == nil {
		room.Items = make(map[types.Topic]types.Item)
	}

	if err := fn(&room); err != nil {
		return rooms, err
	}

	out := make([]*types.Room, len(rooms))
	copy(out, rooms)
	out[idx] = &room

	return out, nil
}

// replaceAppliance swaps an updated appliance copy into a room that replaceRoom
// already copied.
func replaceAppliance(r *types.Room, applianceID string, fn func(*types.Appliance) error) error {
	idx := -1
	for i, a := range r.Appliances {
		if a.ID == applianceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", types.ErrApplianceNotFound, applianceID)
	}

	appliance := *r.Appliances[idx]
	appliance.Details = maps.Clone(r.Appliances[idx].Details)
	if appliance.Details == nil {
		appliance.Details = make(map[string]string)
	}

	if err := fn(&appliance); err != nil {
		return err
	}

	appliances := make([]*types.Appliance, len(r.Appliances))
	copy(appliances, r.Appliances)
	appliances[idx] = &appliance
	r.Appliances = appliances

	return nil
}

func setRoomField(r *types.Room, field, value string) error {
	switch field {
	case "name":
		r.Name = value
		return nil
	case "notes":
		r.Notes = value
		return nil
	case "riseCount":
		n, err := parseCount(value)
		if err != nil {
			return fmt.Errorf("%w: riseCount: %v", types.ErrInvalidValue, err)
		}
		r.RiseCount = n
		return nil
	case "id", "type", "appliances":
		return fmt.Errorf("%w: %s", types.ErrReadOnlyField, field)
	}

	topic, attr, ok := types.ParseItemField(field)
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrUnknownField, field)
	}

	item := r.Items[topic]
	switch attr {
	case types.AttrPresent:
		p, err := parsePresence(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		item.Present = p
	case types.AttrCondition:
		c, err := parseCondition(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		item.Condition = c
	case types.AttrNotes:
		item.Notes = value
	case types.AttrWorkOrder:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		item.WorkOrder = b
	case types.AttrNeedsAction:
		a, err := parseNeedsAction(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		item.NeedsAction = a
	case types.AttrPhotos:
		return fmt.Errorf("%w: %s is managed through photo operations", types.ErrReadOnlyField, field)
	}
	r.Items[topic] = item

	return nil
}

func setApplianceField(a *types.Appliance, field, value string) error {
	switch field {
	case "type":
		t := types.ApplianceType(value)
		if t != a.Type {
			// Variant fields of the previous type are dropped rather than kept hidden.
			a.Type = t
			a.Details = VariantDefaults(t)
		}
	case "brand":
		a.Brand = value
	case "model":
		a.Model = value
	case "serial":
		a.Serial = value
	case "installDate":
		a.InstallDate = value
	case "installMonth":
		a.InstallMonth = value
	case "condition":
		c, err := parseCondition(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		a.Condition = c
	case "needsAction":
		n, err := parseNeedsAction(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		a.NeedsAction = n
	case "notes":
		a.Notes = value
	case "workOrder":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrInvalidValue, field, err)
		}
		a.WorkOrder = b
	case "id", "photos":
		return fmt.Errorf("%w: %s", types.ErrReadOnlyField, field)
	default:
		if _, ok := types.LookupVariantField(a.Type, field); !ok {
			return fmt.Errorf("%w: %s for %s", types.ErrUnknownField, field, a.Type)
		}
		a.Details[field] = value
	}

	return nil
}

func parseCount(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "f", "false", "off", "no":
		return false, nil
	case "1", "t", "true", "on", "yes":
		return true, nil
	}
	return false, fmt.Errorf("not a boolean: %q", v)
}

func parsePresence(v string) (types.Presence, error) {
	p := types.Presence(v)
	if p == types.PresenceUnknown {
		return p, nil
	}
	for _, o := range types.Presences {
		if o == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown presence %q", v)
}

func parseCondition(v string) (types.Condition, error) {
	c := types.Condition(v)
	if c == "" {
		return c, nil
	}
	for _, o := range types.Conditions {
		if o == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown condition %q", v)
}

func parseNeedsAction(v string) (types.NeedsAction, error) {
	a := types.NeedsAction(v)
	if a == "" {
		return types.NeedsActionNone, nil
	}
	for _, o := range types.NeedsActions {
		if o == a {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", v)
}
