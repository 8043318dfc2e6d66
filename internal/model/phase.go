package model

// UploadPhase tracks the lifecycle of an image upload within a session.
type UploadPhase string

// Upload phase constants.
const (
	PhaseIdle      UploadPhase = "IDLE"
	PhaseUploading UploadPhase = "UPLOADING"
	PhaseSucceeded UploadPhase = "SUCCEEDED"
	PhaseFailed    UploadPhase = "FAILED"
)
