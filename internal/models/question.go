package models

import "time"

// Question types.
const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeShortAnswer = "short_answer"
	QuestionTypeEssay       = "essay"
)

// Question belongs to a chapter. CorrectAnswer is compared verbatim against
// student answers regardless of type; for mcq it should match one of the
// option texts, which is the author's responsibility, not enforced here.
type Question struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	ChapterID     string    `gorm:"size:64;not null;index" json:"chapter_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	QuestionType  string    `gorm:"size:16;not null" json:"question_type"`
	Marks         int       `gorm:"not null;default:1" json:"marks"`
	CorrectAnswer string    `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   string    `gorm:"type:text" json:"explanation"`
	CreatedAt     time.Time `json:"created_at"`

	Options []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

// Option is one choice of an mcq question, ordered by insertion position.
type Option struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	QuestionID string    `gorm:"size:64;not null;index" json:"question_id"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	OrderIndex int       `gorm:"not null" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}
