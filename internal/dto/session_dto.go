package dto

import "github.com/google/uuid"

type ClearSessionRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}
