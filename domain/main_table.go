package domain

import "time"

const (
	BcryptCost = 10

	TokenDuration = time.Hour
)

type Student struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Password     string  `gorm:"not null" json:"-"`
	Name         string  `gorm:"not null;size:50" json:"name"`
	TotalPayable float64 `gorm:"type:decimal(10,2);not null;default:0" json:"total_payable"`

	// many2many join table carries a composite primary key, so a duplicate
	// (student, course) pair is rejected by the store itself.
	Courses []Course `gorm:"many2many:student_courses;" json:"courses,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Course struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Title string  `gorm:"not null" json:"title"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	Students  []Student  `gorm:"many2many:student_courses" json:"-"`
	Feedbacks []Feedback `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"feedbacks,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Feedback struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`

	CourseID  uint `gorm:"not null;index" json:"course_id"`
	StudentID uint `gorm:"not null;index" json:"student_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
