package server

import (
	"net/http"

	"rentinspect/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data *types.InspectionPageData) error {
	data.Notice = r.URL.Query().Get("notice")
	data.Error = r.URL.Query().Get("error")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}
