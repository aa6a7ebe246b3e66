package model

import "time"

type SupportTicket struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	TicketId     string    `gorm:"type:text;uniqueIndex;not null"` // TKT-NNNN business key
	ClientId     string    `gorm:"type:text;not null;index"`
	SerialNumber string    `gorm:"type:text"`
	Category     string    `gorm:"type:text"`
	Severity     string    `gorm:"type:text"`
	Status       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}

type TicketHistory struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	TicketId  string `gorm:"type:text;not null;index"`
	EventTime string `gorm:"type:text"`
	Status    string `gorm:"type:text"`
	Notes     string `gorm:"type:text"`
}

func (TicketHistory) TableName() string {
	return "ticket_history"
}
