package domain

import (
	"time"

	"gorm.io/gorm"
)

// Sale is an immutable record of a completed sale. Brand/model/year/color
// are copied from the car at the moment of sale, so the record survives
// later edits or deletion of the car row.
type Sale struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CarID         uint      `gorm:"column:car_id;not null;index" json:"car_id"`
	Brand         string    `gorm:"column:brand;not null" json:"brand"`
	Model         string    `gorm:"column:model;not null" json:"model"`
	Year          int       `gorm:"column:year;not null" json:"year"`
	Color         string    `gorm:"column:color;not null" json:"color"`
	SalePrice     float64   `gorm:"column:sale_price;type:decimal(12,2);not null" json:"sale_price"`
	CustomerName  string    `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"column:customer_phone;not null" json:"customer_phone"`
	SaleDate      time.Time `gorm:"column:sale_date;not null" json:"sale_date"`
}

func (Sale) TableName() string {
	return "sales"
}

// BeforeCreate stamps sale_date when the caller did not (DBs without a
// datetime default).
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now().UTC()
	}
	return nil
}
