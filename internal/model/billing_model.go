package model

import "time"

type Invoice struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	InvoiceId string    `gorm:"type:text;uniqueIndex;not null"` // INV-NNNN business key
	ClientId  string    `gorm:"type:text;not null;index"`
	OrderId   string    `gorm:"type:text;index"`
	Amount    float64
	IssueDate string    `gorm:"type:text"`
	DueDate   string    `gorm:"type:text"`
	Status    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type Payment struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	PaymentId   string    `gorm:"type:text;uniqueIndex;not null"`
	InvoiceId   string    `gorm:"type:text;not null;index"`
	Amount      float64
	PaymentDate string    `gorm:"type:text"`
	Method      string    `gorm:"type:text"`
	Status      string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
