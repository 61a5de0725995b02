package server

import (
	"context"
	"fmt"
	"net/http"

	"rentinspect/internal/inspection"
	"rentinspect/internal/photo"
	"rentinspect/pkg/types"
)

const photoFormField = "photos"

type photoCommentForm struct {
	ApplianceID string `form:"applianceID"`
	Field       string `form:"field"`
	Comment     string `form:"comment"`
}

// handlePostPhotos reads every uploaded file concurrently. Each completed read
// is added to the latest session state on its own, so one bad file does not
// discard the rest of the batch.
func (s *Service) handlePostPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, err := s.sessionIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain session")
		s.internalServerError(w)
		return
	}

	maxMemory := s.config.MaxPhotoBytes
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}

	err = r.ParseMultipartForm(maxMemory)
	if err != nil {
		s.logger.WithError(err).Error("failed to parse multipart form")
		s.redirectWithError(w, r, "invalid upload")
		return
	}

	var target types.PhotoTarget
	err = decoder.Decode(&target, r.MultipartForm.Value)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode photo target")
		s.redirectWithError(w, r, "invalid photo target")
		return
	}
	target.RoomID = r.PathValue("roomID")

	// Validate the target once up front so a bad field name is a single error
	// rather than one per file.
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.fail(w, r, err, "failed to load session")
		return
	}
	if _, err := inspection.Photos(sess.Rooms, target); err != nil {
		s.fail(w, r, err, "invalid photo target")
		return
	}

	files := photo.FromMultipart(r.MultipartForm.File[photoFormField])
	if len(files) == 0 {
		s.redirectWithError(w, r, "no photos selected")
		return
	}

	result, err := s.ingestor.Ingest(ctx, files, func(ctx context.Context, p types.Photo) error {
		_, err := s.sessions.Update(ctx, sessionID, func(sess *inspection.Session) error {
			rooms, err := inspection.AddPhoto(sess.Rooms, target, p)
			if err != nil {
				return err
			}
			sess.Rooms = rooms
			return nil
		})
		return err
	})
	if err != nil {
		s.logger.WithError(err).WithField("added", result.Added).Warn("photo upload interrupted")
		s.redirectWithError(w, r, fmt.Sprintf("upload interrupted after %d photo(s)", result.Added))
		return
	}

	if len(result.Failed) > 0 {
		s.redirectWithError(w, r, fmt.Sprintf("%d photo(s) added, %d could not be read", result.Added, len(result.Failed)))
		return
	}

	s.redirectWithNotice(w, r, fmt.Sprintf("%d photo(s) added", result.Added))
}

func (s *Service) handlePostPhotoComment(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	photoID := r.PathValue("photoID")

	err := r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var in = new(photoCommentForm)
	err = decoder.Decode(in, r.PostForm)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode photo comment form")
		s.redirectWithError(w, r, "invalid photo comment")
		return
	}
	target := types.PhotoTarget{RoomID: roomID, ApplianceID: in.ApplianceID, Field: in.Field}

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		rooms, err := inspection.UpdatePhotoComment(sess.Rooms, target, photoID, in.Comment)
		if err != nil {
			return err
		}
		sess.Rooms = rooms
		return nil
	})
	if err != nil {
		s.fail(w, r, err, "failed to update photo comment")
		return
	}

	s.redirectToInspection(w, r)
}

func (s *Service) handlePostPhotoDelete(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	photoID := r.PathValue("photoID")

	err := r.ParseForm()
	if err != nil {
		s.logger.WithError(err).Error("failed to parse form")
		s.redirectWithError(w, r, "invalid form payload")
		return
	}

	var target types.PhotoTarget
	err = decoder.Decode(&target, r.PostForm)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode photo target")
		s.redirectWithError(w, r, "invalid photo target")
		return
	}
	target.RoomID = roomID

	err = s.update(r.Context(), func(sess *inspection.Session) error {
		rooms, err := inspection.RemovePhoto(sess.Rooms, target, photoID)
		if err != nil {
			return err
		}
		sess.Rooms = rooms
		return nil
	})
	if err != nil {
		s.fail(w, r, err, "failed to remove photo")
		return
	}

	s.redirectWithNotice(w, r, "Photo removed")
}
