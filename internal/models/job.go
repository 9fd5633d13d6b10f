package models

// Job is an admin-created posting. Jobs are immutable once created:
// there is no update or delete operation anywhere in the system, which is
// what lets applications keep their match score without recomputation.
type Job struct {
	BaseModel
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Location    *string `json:"location,omitempty"`

	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
