package model

import "time"

type ContactMessage struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Subject     string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	IsResponded bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_responded"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
