package session

import "errors"

var (
	ErrSessionNotFound = errors.New("view session not found")
	ErrUnknownAction   = errors.New("unknown view action")
)
