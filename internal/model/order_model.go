package model

import "time"

type Order struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	OrderId     string    `gorm:"type:text;uniqueIndex;not null"` // ORD-YYYY-NNNN business key
	ClientId    string    `gorm:"type:text;not null;index"`
	OrderDate   string    `gorm:"type:text"`
	Status      string    `gorm:"type:text"`
	TotalAmount float64
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id        uint    `gorm:"primaryKey;autoIncrement"`
	OrderId   string  `gorm:"type:text;not null;index"`
	ProductId uint    `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type Shipment struct {
	Id                   uint      `gorm:"primaryKey;autoIncrement"`
	ShipmentId           string    `gorm:"type:text;uniqueIndex;not null"`
	OrderId              string    `gorm:"type:text;not null;index"`
	Carrier              string    `gorm:"type:text"`
	TrackingNumber       string    `gorm:"type:text"`
	ShippedDate          string    `gorm:"type:text"`
	ExpectedDeliveryDate string    `gorm:"type:text"`
	DeliveryStatus       string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (Shipment) TableName() string {
	return "shipments"
}
