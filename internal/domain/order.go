package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order struct - Submitted checkout, line items kept as serialized JSON
type Order struct {
	ID        *uuid.UUID       `gorm:"type:uuid;primary_key;"`
	UserID    *string          `gorm:"type:varchar(64);not null;index"`
	Name      *string          `gorm:"type:varchar(200)"`
	Orders    *string          `gorm:"type:TEXT;not null;"`
	Address   *string          `gorm:"type:TEXT;not null;"`
	Phone     *string          `gorm:"type:varchar(32);not null;"`
	Total     *decimal.Decimal `gorm:"type:numeric(12,2);not null;"`
	CreatedAt *time.Time       `gorm:"type:timestamp"`
	UpdatedAt *time.Time       `gorm:"type:timestamp"`
}

// TableName func
func (o *Order) TableName() string {
	return "orders"
}

// BeforeCreate hook - generates UUID before creating
func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	o.ID = &id
	return nil
}

// EncodeLineItems serializes line items for the Orders column
func EncodeLineItems(items []LineItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeLineItems parses the Orders column back into line items
func DecodeLineItems(payload string) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}
