package api

// SubmitResponse acknowledges an appended submission.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
