package models

type User struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
	// Stored lowercased; duplicate detection compares lowercased input.
	Email      string   `gorm:"uniqueIndex;not null" json:"email"`
	Credential string   `gorm:"not null" json:"-"`
	Role       UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Relations
	Resumes      []Resume      `gorm:"foreignKey:UserID" json:"-"`
	Applications []Application `gorm:"foreignKey:UserID" json:"-"`
}
