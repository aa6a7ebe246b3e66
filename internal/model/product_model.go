package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	Id                uint           `gorm:"primaryKey;autoIncrement"`
	Sku               string         `gorm:"type:text;uniqueIndex;not null"`
	Model             string         `gorm:"type:text;not null"`
	Category          string         `gorm:"type:text;not null"`
	Name              string         `gorm:"type:text;not null"`
	Description       string         `gorm:"type:text"`
	PowerRequirements string         `gorm:"type:text"`
	Specifications    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// EquipmentRegistry tracks installed units by serial number (US-/CT- prefixes).
type EquipmentRegistry struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	SerialNumber string    `gorm:"type:text;uniqueIndex;not null"`
	ClientId     string    `gorm:"type:text;not null;index"`
	ProductId    uint      `gorm:"not null"`
	InstallDate  string    `gorm:"type:text"`
	Status       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (EquipmentRegistry) TableName() string {
	return "equipment_registry"
}

type Part struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	PartNumber    string    `gorm:"type:text;uniqueIndex;not null"`
	Name          string    `gorm:"type:text;not null;index"`
	Description   string    `gorm:"type:text"`
	StockQuantity int       `gorm:"not null;default:0"`
	UnitPrice     float64   `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Part) TableName() string {
	return "parts_catalog"
}
