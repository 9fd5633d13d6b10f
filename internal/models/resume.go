package models

// Resume holds free-text resume content. A user may hold many; the one
// with the newest CreatedAt is the default when applying. Immutable once
// created.
type Resume struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`
}
