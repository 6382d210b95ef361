package entity

import "time"

type Avatar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"uniqueIndex;not null" json:"student_id"`
	FilePath  string    `gorm:"type:text" json:"file_path"`
	FileSize  int64     `json:"file_size"`
	MediaType string    `gorm:"size:100" json:"media_type"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
