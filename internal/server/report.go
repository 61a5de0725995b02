package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rentinspect/internal/inspection"
	"rentinspect/internal/report"

	"github.com/sirupsen/logrus"
)

const (
	maxScrapeBytes = 10 << 20
	maxStateBytes  = 64 << 20
)

type reportJSON struct {
	Filename   string                  `json:"filename"`
	Pairs      []report.Field          `json:"pairs"`
	WorkOrders report.WorkOrderSummary `json:"workOrders"`
}

// handleGetReport renders the printable report from session state. The page
// prints itself on load unless print=0 is passed.
func (s *Service) handleGetReport(w http.ResponseWriter, r *http.Request) {
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

	switch r.URL.Query().Get("format") {
	case "state":
		// the file the report command reads with --in
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.SafeFilename(report.Filename(sess.Data))+".json"))
		if err := json.NewEncoder(w).Encode(sess); err != nil {
			s.logger.WithError(err).Error("failed to encode session state")
		}
		return
	case "json":
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(reportJSON{
			Filename:   report.Filename(sess.Data),
			Pairs:      report.Pairs(sess.Data, sess.Rooms),
			WorkOrders: report.WorkOrders(sess.Data, sess.Rooms),
		})
		if err != nil {
			s.logger.WithError(err).Error("failed to encode report json")
		}
		return
	}

	doc := report.Build(sess.Data, sess.Rooms, report.Options{
		BrandName: s.config.BrandName,
		AutoPrint: r.URL.Query().Get("print") != "0",
	})

	var buf bytes.Buffer
	if err := report.Render(&buf, doc); err != nil {
		s.logger.WithError(err).Error("failed to render report")
		s.internalServerError(w)
		return
	}

	s.archiveReport(ctx, doc.Filename, buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handlePostScrape builds a report from rendered form HTML posted as the body.
func (s *Service) handlePostScrape(w http.ResponseWriter, r *http.Request) {
	fields, err := report.Scrape(io.LimitReader(r.Body, maxScrapeBytes))
	if err != nil {
		s.logger.WithError(err).Warn("failed to scrape form html")
		http.Error(w, "unable to read form", http.StatusBadRequest)
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = "Inspection Report"
	}

	doc := report.BuildFromPairs(title, fields, report.Options{
		BrandName: s.config.BrandName,
		AutoPrint: r.URL.Query().Get("print") != "0",
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Render(w, doc); err != nil {
		s.logger.WithError(err).Error("failed to render scraped report")
	}
}

// handlePostState replaces the caller's session with a state file saved by the
// Download State link. The session keeps its id so the cookie stays valid.
func (s *Service) handlePostState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, err := s.sessionIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain session")
		s.internalServerError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxStateBytes)
	file, _, err := r.FormFile("state")
	if err != nil {
		s.logger.WithError(err).Warn("state upload without a file")
		s.redirectWithError(w, r, "choose a saved inspection file to load")
		return
	}
	defer file.Close()

	loaded, err := inspection.DecodeSession(file)
	if err != nil {
		s.logger.WithError(err).Warn("rejected state upload")
		s.redirectWithError(w, r, "that file is not a saved inspection")
		return
	}
	loaded.ID = sessionID

	if err := s.sessions.Put(ctx, loaded); err != nil {
		s.logger.WithError(err).Error("failed to store loaded session")
		s.internalServerError(w)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"rooms":      len(loaded.Rooms),
	}).Info("inspection state loaded")

	s.redirectWithNotice(w, r, "Inspection loaded")
}

// archiveReport copies the report to the archive when one is configured.
// Failures are logged and never block delivery.
func (s *Service) archiveReport(ctx context.Context, filename string, body []byte) {
	if s.archive == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	key, err := s.archive.Put(ctx, filename, body)
	if err != nil {
		s.logger.WithError(err).WithField("filename", filename).Error("failed to archive report")
		return
	}

	s.logger.WithField("key", key).Info("report archived")
}
