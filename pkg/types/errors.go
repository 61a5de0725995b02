package types

import "errors"

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrApplianceNotFound = errors.New("appliance not found")
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrUnknownField      = errors.New("unknown field")
	ErrReadOnlyField     = errors.New("field is derived and cannot be set")
	ErrInvalidValue      = errors.New("invalid field value")
	ErrInvalidStep       = errors.New("invalid step")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidState      = errors.New("invalid inspection state")
)
