package models

// Application ties a user, a job and the resume that was scored.
// MatchScore is computed exactly once at creation and never recomputed;
// resumes and jobs are immutable, so the score stays truthful.
// There is deliberately no uniqueness constraint on (UserID, JobID):
// re-applying creates a second row.
type Application struct {
	BaseModel
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	JobID    string `gorm:"type:uuid;not null;index" json:"job_id"`
	ResumeID string `gorm:"type:uuid;not null" json:"resume_id"`
	// Free-text; starts as "Under Review", admins may set any string.
	Status     string  `gorm:"type:varchar(40);not null;default:'Under Review'" json:"status"`
	MatchScore float64 `gorm:"not null;default:0" json:"match_score"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job    *Job    `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Resume *Resume `gorm:"foreignKey:ResumeID" json:"resume,omitempty"`
}
