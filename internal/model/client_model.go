package model

import "time"

type Client struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	ClientId   string    `gorm:"type:text;uniqueIndex;not null"` // ME-XXXXX business key
	Name       string    `gorm:"type:text;not null"`
	Email      string    `gorm:"type:text;not null;index"`
	ClientType string    `gorm:"type:text;not null"`
	City       string    `gorm:"type:text"`
	Country    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}
