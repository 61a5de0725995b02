package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"rentinspect/internal/inspection"
	"rentinspect/pkg/types"
)

const (
	navNext     = "next"
	navPrev     = "prev"
	navGoTo     = "goto"
	navNextRoom = "nextRoom"
	navPrevRoom = "prevRoom"
	navRoom     = "room"
	navStay     = "stay"
)

// navForm carries the navigation action submitted with any wizard form.
type navForm struct {
	Action string `form:"action"`
	Step   int    `form:"step"`
	Room   int    `form:"room"`
}

// navKeys are stripped from forms before the remaining values are applied as fields.
var navKeys = map[string]bool{"action": true, "step": true, "room": true}

func applyNav(sess *inspection.Session, nav navForm) error {
	switch nav.Action {
	case "", navStay:
	case navNext:
		sess.Next()
	case navPrev:
		sess.Prev()
	case navGoTo:
		return sess.GoTo(types.Step(nav.Step))
	case navNextRoom:
		sess.NextRoom()
	case navPrevRoom:
		sess.PrevRoom()
	case navRoom:
		sess.SelectRoom(nav.Room)
	default:
		return fmt.Errorf("unknown navigation action %q", nav.Action)
	}
	return nil
}

// update applies fn to the caller's session through the store.
func (s *Service) update(ctx context.Context, fn func(*inspection.Session) error) error {
	sessionID, err := s.sessionIDFromContext(ctx)
	if err != nil {
		return err
	}

	_, err = s.sessions.Update(ctx, sessionID, fn)
	return err
}

// fail reports a mutation error back to the wizard. Input errors are shown to
// the user, anything else is a server error.
func (s *Service) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, types.ErrUnknownField),
		errors.Is(err, types.ErrReadOnlyField),
		errors.Is(err, types.ErrInvalidValue),
		errors.Is(err, types.ErrInvalidStep),
		errors.Is(err, types.ErrRoomNotFound),
		errors.Is(err, types.ErrApplianceNotFound),
		errors.Is(err, types.ErrPhotoNotFound):
		s.logger.WithError(err).Warn(msg)
		s.redirectWithError(w, r, err.Error())
	default:
		s.logger.WithError(err).Error(msg)
		s.internalServerError(w)
	}
}

func (s *Service) handlePostNav(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var nav = new(navForm)
	err = decoder.Decode(nav, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode navigation form")
		s.redirectWithError(w, r, "invalid navigation")
		return
	}

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		return applyNav(sess, *nav)
	})
	if err != nil {
		s.fail(w, r, err, "failed to navigate")
		return
	}

	s.redirectToInspection(w, r)
}

// handlePostStep saves the fields owned by a wizard step and then navigates.
func (s *Service) handlePostStep(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(r.PathValue("step"))
	if err != nil || !types.Step(step).Valid() {
		s.redirectWithError(w, r, "unknown step")
		return
	}

	err = r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var nav = new(navForm)
	err = decoder.Decode(nav, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode navigation form")
		s.redirectWithError(w, r, "invalid navigation")
		return
	}

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		data, err := applyStepFields(sess.Data, types.Step(step), r.PostForm)
		if err != nil {
			return err
		}
		sess.Data = data

		return applyNav(sess, *nav)
	})
	if err != nil {
		s.fail(w, r, err, "failed to save step")
		return
	}

	s.redirectToInspection(w, r)
}

// applyStepFields writes every field the step owns. Unchecked checkboxes are
// absent from a submission, so a missing bool field means false. Other missing
// fields are left alone.
func applyStepFields(data types.InspectionData, step types.Step, form url.Values) (types.InspectionData, error) {
	for _, def := range types.FieldsForStep(step) {
		if def.Derived {
			continue
		}

		values, ok := form[def.Name]
		if !ok {
			switch def.Kind {
			case types.FieldBool:
				values = []string{"false"}
			case types.FieldMulti:
				if _, present := form[def.Name+"Present"]; !present {
					continue
				}
				values = []string{}
			default:
				continue
			}
		}

		var err error
		data, err = inspection.UpdateInspectionData(data, def.Name, values...)
		if err != nil {
			return data, err
		}
	}
	return data, nil
}

func (s *Service) handlePostRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")

	err := r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var nav = new(navForm)
	err = decoder.Decode(nav, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode navigation form")
		s.redirectWithError(w, r, "invalid navigation")
		return
	}

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		rooms, err := applyRoomFields(sess.Rooms, roomID, r.PostForm)
		if err != nil {
			return err
		}
		sess.Rooms = rooms

		return applyNav(sess, *nav)
	})
	if err != nil {
		s.fail(w, r, err, "failed to save room")
		return
	}

	s.redirectToInspection(w, r)
}

// applyRoomFields applies submitted room fields in name order. Repeated values
// (a hidden "false" followed by a checked box) resolve to the last one.
func applyRoomFields(rooms []*types.Room, roomID string, form url.Values) ([]*types.Room, error) {
	keys := make([]string, 0, len(form))
	for k := range form {
		if !navKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		values := form[k]
		if len(values) == 0 {
			continue
		}

		var err error
		rooms, err = inspection.UpdateRoom(rooms, roomID, k, values[len(values)-1])
		if err != nil {
			return nil, err
		}
	}

	return rooms, nil
}

type applianceForm struct {
	Type string `form:"type"`
}

func (s *Service) handlePostAppliance(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")

	err := r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var add = new(applianceForm)
	err = decoder.Decode(add, r.Form)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode appliance form")
		s.redirectWithError(w, r, "invalid appliance")
		return
	}

	applianceType := types.ApplianceType(add.Type)
	if applianceType == "" {
		applianceType = types.ApplianceOther
	}

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		rooms, err := inspection.AddAppliance(sess.Rooms, roomID, applianceType)
		if err != nil {
			return err
		}
		sess.Rooms = rooms
		return nil
	})
	if err != nil {
		s.fail(w, r, err, "failed to add appliance")
		return
	}

	s.redirectToInspection(w, r)
}

func (s *Service) handlePostApplianceFields(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	applianceID := r.PathValue("applianceID")

	err := r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		rooms := sess.Rooms

		// The type goes first so variant fields are checked against the new type.
		if values := r.PostForm["type"]; len(values) > 0 {
			var err error
			rooms, err = inspection.UpdateAppliance(rooms, roomID, applianceID, "type", values[len(values)-1])
			if err != nil {
				return err
			}
		}

		keys := make([]string, 0, len(r.PostForm))
		for k := range r.PostForm {
			if k != "type" && !navKeys[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		for _, k := range keys {
			values := r.PostForm[k]
			if len(values) == 0 {
				continue
			}
			var err error
			rooms, err = inspection.UpdateAppliance(rooms, roomID, applianceID, k, values[len(values)-1])
			if errors.Is(err, types.ErrUnknownField) {
				// Left over from the previous type's form.
				continue
			}
			if err != nil {
				return err
			}
		}

		sess.Rooms = rooms
		return nil
	})
	if err != nil {
		s.fail(w, r, err, "failed to save appliance")
		return
	}

	s.redirectToInspection(w, r)
}

func (s *Service) handlePostApplianceDelete(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	applianceID := r.PathValue("applianceID")

	err := s.update(r.Context(), func(sess *inspection.Session) error {
		rooms, err := inspection.RemoveAppliance(sess.Rooms, roomID, applianceID)
		if err != nil {
			return err
		}
		sess.Rooms = rooms
		return nil
	})
	if err != nil {
		s.fail(w, r, err, "failed to remove appliance")
		return
	}

	s.redirectWithNotice(w, r, "Appliance removed")
}

func (s *Service) handlePostReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID, err := s.sessionIDFromContext(ctx); err == nil {
		s.sessions.Delete(ctx, sessionID)
	}

	sess, err := s.sessions.Create(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to create session")
		s.internalServerError(w)
		return
	}

	if err := s.setSessionCookie(w, sess.ID); err != nil {
		s.logger.WithError(err).Error("failed to encode session cookie")
		s.internalServerError(w)
		return
	}

	s.redirectWithNotice(w, r, "Started a new inspection")
}
