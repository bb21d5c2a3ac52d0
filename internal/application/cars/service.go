package cars

import (
	"context"
	"errors"

	"autolot-backend/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateInput carries the fields for a new car. Mileage defaults to 0 and
// Available to true when the caller leaves them nil.
type CreateInput struct {
	Brand     string
	Model     string
	Year      int
	Color     string
	Price     float64
	Mileage   *float64
	VIN       string
	Available *bool
}

// UpdateInput is a full-field replace; every field is required.
type UpdateInput struct {
	Brand     string
	Model     string
	Year      int
	Color     string
	Price     float64
	Mileage   float64
	VIN       string
	Available bool
}

// Create inserts a new car. The VIN pre-check runs inside the insert
// transaction so no other committed car can share the VIN.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Car, error) {
	car := domain.Car{
		Brand:     in.Brand,
		Model:     in.Model,
		Year:      in.Year,
		Color:     in.Color,
		Price:     in.Price,
		VIN:       in.VIN,
		Available: true,
	}
	if in.Mileage != nil {
		car.Mileage = *in.Mileage
	}
	if in.Available != nil {
		car.Available = *in.Available
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Car{}).Where("vin = ?", in.VIN).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateVIN
		}
		return tx.Create(&car).Error
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Car, error) {
	var car domain.Car
	if err := s.DB.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Car, error) {
	cars := []domain.Car{}
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	cars := []domain.Car{}
	if err := s.DB.WithContext(ctx).Where("available = ?", true).Order("id asc").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// Update replaces every field of the car. When the VIN changes, uniqueness
// is re-checked against all other cars in the same transaction.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*domain.Car, error) {
	var car domain.Car
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&car, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCarNotFound
			}
			return err
		}

		if in.VIN != car.VIN {
			var count int64
			if err := tx.Model(&domain.Car{}).Where("vin = ? AND id <> ?", in.VIN, id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrDuplicateVIN
			}
		}

		car.Brand = in.Brand
		car.Model = in.Model
		car.Year = in.Year
		car.Color = in.Color
		car.Price = in.Price
		car.Mileage = in.Mileage
		car.VIN = in.VIN
		car.Available = in.Available
		return tx.Save(&car).Error
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// Delete hard-deletes the car and returns the removed row. Sale records
// referencing the car are left untouched; they are snapshots.
func (s *Service) Delete(ctx context.Context, id uint) (*domain.Car, error) {
	var car domain.Car
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&car, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCarNotFound
			}
			return err
		}
		return tx.Delete(&car).Error
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// SetAvailability flips the availability flag independently of any sale
// (restock and correction workflows; re-sale after restock is allowed).
func (s *Service) SetAvailability(ctx context.Context, id uint, available bool) (*domain.Car, error) {
	var car domain.Car
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&car, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCarNotFound
			}
			return err
		}
		car.Available = available
		return tx.Save(&car).Error
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}
