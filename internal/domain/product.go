package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// listSeparator separates entries of list columns such as images
const listSeparator = ","

// Product struct - Catalog entity
type Product struct {
	ID               *string          `gorm:"type:varchar(64);primary_key;"`
	Name             *string          `gorm:"type:varchar(200);not null;"`
	Brand            *string          `gorm:"type:varchar(100)"`
	Description      *string          `gorm:"type:TEXT"`
	Price            *decimal.Decimal `gorm:"type:numeric(12,2);not null;"`
	OriginalPrice    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Images           *string          `gorm:"type:TEXT"`
	Colors           *string          `gorm:"type:TEXT"`
	Sizes            *string          `gorm:"type:TEXT"`
	Rating           *float64         `gorm:"type:numeric(3,2)"`
	ReviewCount      *int             `gorm:"type:integer"`
	IsNew            *bool            `gorm:"type:boolean"`
	IsSale           *bool            `gorm:"type:boolean"`
	IsLimitedEdition *bool            `gorm:"type:boolean"`
	CreatedAt        *time.Time       `gorm:"type:timestamp"`
	UpdatedAt        *time.Time       `gorm:"type:timestamp"`
	DeletedAt        *gorm.DeletedAt  `gorm:"type:timestamp"`
}

// TableName func
func (p *Product) TableName() string {
	return "products"
}

// BeforeCreate hook - generates an id when none was supplied
func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID != nil && *p.ID != "" {
		return nil
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	logrus.Debugf("assigning product id %s", id)
	sid := id.String()
	p.ID = &sid
	return nil
}

// SplitList splits a comma separated column into trimmed, non-empty entries
func SplitList(value *string) []string {
	if value == nil {
		return []string{}
	}
	parts := strings.Split(*value, listSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList joins entries into a comma separated column value
func JoinList(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	joined := strings.Join(values, listSeparator+" ")
	return &joined
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&Product{}, &Order{})
	if err != nil {
		panic(err)
	}
}
