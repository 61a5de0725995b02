package server

import (
	"encoding/json"
	"net/http"

	"rentinspect/internal/inspection"
	"rentinspect/internal/report"
	"rentinspect/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	s.redirectToInspection(w, r)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to encode health response")
	}
}

func (s *Service) handleGetInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, err := s.sessionIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain session")
		s.internalServerError(w)
		return
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.WithError(err).Error("failed to load session")
		s.internalServerError(w)
		return
	}

	data := buildPageData(sess)

	err = s.renderTemplate(w, r, "page.inspection", data)
	if err != nil {
		s.logger.WithError(err).WithField("step", sess.Step).Error("failed to render inspection page")
		s.internalServerError(w)
		return
	}
}

func buildPageData(sess *inspection.Session) *types.InspectionPageData {
	data := &types.InspectionPageData{
		BasePageData: types.BasePageData{Title: sess.Step.Title()},
		Step:         sess.Step,
		Steps:        make([]types.StepLink, 0, len(types.Steps)),
		Data:         sess.Data,
		Options:      types.DefaultOptions(),

		ShowFuelType:             inspection.FuelTypeRequired(sess.Data),
		WaterHeaterMonthRequired: inspection.WaterHeaterMonthRequired(sess.Data),
	}

	for _, step := range types.Steps {
		data.Steps = append(data.Steps, types.StepLink{
			Step:     step,
			Title:    step.Title(),
			Active:   step == sess.Step,
			Complete: step < sess.Step,
		})
	}

	switch sess.Step {
	case types.StepRoomInspection:
		fillRoomData(data, sess)
	case types.StepReportGeneration:
		data.WorkOrderCount = report.WorkOrders(sess.Data, sess.Rooms).Count
		data.ViolationCount = len(report.AllViolations(sess.Data, sess.Rooms))
		data.Filename = report.Filename(sess.Data)
	}

	return data
}

func fillRoomData(data *types.InspectionPageData, sess *inspection.Session) {
	data.Rooms = make([]types.RoomTab, 0, len(sess.Rooms))
	for i, room := range sess.Rooms {
		data.Rooms = append(data.Rooms, types.RoomTab{
			Index:  i,
			ID:     room.ID,
			Name:   room.Name,
			Active: i == sess.RoomIndex,
		})
	}

	room := sess.CurrentRoom()
	if room == nil {
		return
	}

	data.Room = room
	data.RoomIndex = sess.RoomIndex
	data.IsLastRoom = sess.RoomIndex == len(sess.Rooms)-1
	data.RailingRequired = inspection.RailingRequired(room)
	data.AppliancesOK = inspection.AppliancesAllowed(room.Type)

	violations := make(map[types.Topic]string)
	for _, v := range report.RoomViolations(sess.Data, room) {
		violations[v.Topic] = v.Message
	}

	data.Topics = make([]types.TopicView, 0)
	for _, def := range inspection.RelevantTopics(sess.Data, room) {
		data.Topics = append(data.Topics, types.TopicView{
			TopicDef:  def,
			Item:      room.Item(def.Key),
			Violation: violations[def.Key],
		})
	}

	data.Appliances = make([]types.ApplianceView, 0, len(room.Appliances))
	for _, a := range room.Appliances {
		data.Appliances = append(data.Appliances, types.ApplianceView{
			Appliance:     a,
			Variants:      types.ApplianceVariants[a.Type],
			MonthRequired: inspection.ApplianceMonthRequired(a),
		})
	}
}
