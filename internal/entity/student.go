package entity

import "time"

// Student references its faculty by id only; the faculty owns the collection.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Age       int       `gorm:"index" json:"age"`
	FacultyID *uint     `gorm:"index" json:"faculty_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
