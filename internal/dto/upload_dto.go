package dto

import "github.com/google/uuid"

type UploadResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Chunks    int       `json:"chunks"`
	Filename  string    `json:"filename"`
}
