package domain

import "errors"

var (
	ErrCarNotFound  = errors.New("Car not found")
	ErrSaleNotFound = errors.New("Sale not found")
	ErrDuplicateVIN = errors.New("A car with this VIN already exists")
	ErrAlreadySold  = errors.New("Car has already been sold")
)
