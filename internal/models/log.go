package models

import "time"

// Log is a single recorded study session. Date carries the calendar day
// only, normalized to YYYY-MM-DD, so lexicographic order is date order.
type Log struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"userId"`
	StudyItemID uint64    `gorm:"not null;index" json:"studyItemId"`
	Date        string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Duration    int       `gorm:"not null" json:"duration"`
	Memo        string    `gorm:"type:text" json:"memo"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	StudyItem StudyItem `gorm:"foreignKey:StudyItemID" json:"-"`
}
