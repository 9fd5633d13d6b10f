package dto

type CreateResumeRequest struct {
	Content string `json:"content" binding:"required" validate:"required,min=1"`
}
