package domain

import "time"

// Car is a vehicle in dealership stock. VIN is unique across all cars;
// the service layer pre-checks it inside the write transaction and the
// index backstops it.
type Car struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Brand     string    `gorm:"column:brand;not null" json:"brand"`
	Model     string    `gorm:"column:model;not null" json:"model"`
	Year      int       `gorm:"column:year;not null" json:"year"`
	Color     string    `gorm:"column:color;not null" json:"color"`
	Price     float64   `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	Mileage   float64   `gorm:"column:mileage;type:decimal(12,1);not null;default:0" json:"mileage"`
	VIN       string    `gorm:"column:vin;uniqueIndex;not null" json:"vin"`
	Available bool      `gorm:"column:available;not null;default:true" json:"available"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Car) TableName() string {
	return "cars"
}
