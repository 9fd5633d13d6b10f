package dto

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,min=1,max=200"`
	Description string `json:"description" binding:"required" validate:"required,min=1"`
	Location    string `json:"location" validate:"max=120"`
}
