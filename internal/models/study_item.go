package models

import "time"

type StudyItem struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(255);not null" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User User  `gorm:"foreignKey:UserID" json:"-"`
	Logs []Log `gorm:"foreignKey:StudyItemID" json:"-"`
}
