package models

import "github.com/google/uuid"

// Order is a purchased course. AmountTotal is in minor currency units.
type Order struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CourseID    string    `gorm:"index;not null" json:"course_id"`
	CourseTitle string    `json:"course_title"`
	AmountTotal int64     `json:"amount_total"`
}
