package sales

import (
	"context"
	"errors"

	"autolot-backend/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// SellInput carries the fields for a sale. Price nil means "use the car's
// list price"; an explicit zero is taken verbatim.
type SellInput struct {
	CarID         uint
	CustomerName  string
	CustomerPhone string
	Price         *float64
}

// SellCar converts an available car into a sold one and creates the sale
// record, atomically. The availability flip is a conditional update keyed
// on available = true, so of two concurrent sales on the same car exactly
// one flips the flag; the loser sees zero rows affected and fails with
// ErrAlreadySold. Either both writes commit or neither does.
func (s *Service) SellCar(ctx context.Context, in SellInput) (*domain.Sale, error) {
	var sale domain.Sale
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var car domain.Car
		if err := tx.First(&car, in.CarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCarNotFound
			}
			return err
		}
		if !car.Available {
			return domain.ErrAlreadySold
		}

		res := tx.Model(&domain.Car{}).
			Where("id = ? AND available = ?", car.ID, true).
			Update("available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadySold
		}

		salePrice := car.Price
		if in.Price != nil {
			salePrice = *in.Price
		}

		sale = domain.Sale{
			CarID:         car.ID,
			Brand:         car.Brand,
			Model:         car.Model,
			Year:          car.Year,
			Color:         car.Color,
			SalePrice:     salePrice,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// History returns all sale records in insertion order.
func (s *Service) History(ctx context.Context) ([]domain.Sale, error) {
	records := []domain.Sale{}
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*domain.Sale, error) {
	var sale domain.Sale
	if err := s.DB.WithContext(ctx).First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &sale, nil
}
