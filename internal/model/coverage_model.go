package model

import "time"

type Warranty struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	WarrantyId    string    `gorm:"type:text;uniqueIndex;not null"`
	SerialNumber  string    `gorm:"type:text;not null;index"`
	StartDate     string    `gorm:"type:text"`
	EndDate       string    `gorm:"type:text"`
	CoverageLevel string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Warranty) TableName() string {
	return "warranties"
}

type AmcContract struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	AmcId        string    `gorm:"type:text;uniqueIndex;not null"`
	SerialNumber string    `gorm:"type:text;not null;index"`
	Tier         string    `gorm:"type:text"`
	StartDate    string    `gorm:"type:text"`
	EndDate      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AmcContract) TableName() string {
	return "amc_contracts"
}
