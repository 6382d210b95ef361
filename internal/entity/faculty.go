package entity

import "time"

type Faculty struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Color     string    `gorm:"size:100;index" json:"color"`
	Students  []Student `gorm:"foreignKey:FacultyID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
