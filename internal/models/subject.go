package models

import "time"

// Subject is a top-level content unit owned by one teacher.
type Subject struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	TeacherID   string    `gorm:"size:64;not null;index" json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`

	Chapters []Chapter `gorm:"foreignKey:SubjectID" json:"chapters,omitempty"`
}

// Chapter groups questions inside a subject. OrderIndex is monotonic per
// subject: assigned as max(existing)+1 at creation and never reused.
type Chapter struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	SubjectID   string    `gorm:"size:64;not null;index" json:"subject_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	OrderIndex  int       `gorm:"not null" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}
