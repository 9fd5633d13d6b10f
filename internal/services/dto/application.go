package dto

type ApplyRequest struct {
	// Optional inline resume text. When present it is stored as a new
	// resume; when absent the user's latest resume is used.
	ResumeText string `json:"resume_text"`
}

type UpdateApplicationStatusRequest struct {
	// Free-text by design; an empty value falls back to "Under Review".
	Status string `json:"status" validate:"max=40"`
}

type ApplyResponse struct {
	ApplicationID string  `json:"application_id"`
	JobTitle      string  `json:"job_title"`
	MatchScore    float64 `json:"match_score"`
	Status        string  `json:"status"`
}
