package cars

import (
	"errors"

	carsvc "autolot-backend/internal/application/cars"
	"autolot-backend/internal/domain"
	"autolot-backend/internal/pkg/response"
	"autolot-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *carsvc.Service
}

type carBody struct {
	Brand     string   `json:"brand"`
	Model     string   `json:"model"`
	Year      int      `json:"year"`
	Color     string   `json:"color"`
	Price     *float64 `json:"price"`
	Mileage   *float64 `json:"mileage"`
	VIN       string   `json:"vin"`
	Available *bool    `json:"available"`
}

// GetCars GET /api/cars
func (h *Handlers) GetCars(c *fiber.Ctx) error {
	list, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Cars retrieved successfully", list, nil)
}

// GetAvailableCars GET /api/cars/available
func (h *Handlers) GetAvailableCars(c *fiber.Ctx) error {
	list, err := h.Service.ListAvailable(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Available cars retrieved successfully", list, nil)
}

// GetCar GET /api/cars/:id
func (h *Handlers) GetCar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid car id", 400, nil)
	}
	car, err := h.Service.Get(c.Context(), uint(id))
	if err != nil {
		return carError(c, err)
	}
	return response.Success(c, "Car retrieved successfully", car, nil)
}

// CreateCar POST /api/cars
func (h *Handlers) CreateCar(c *fiber.Ctx) error {
	var body carBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	if msg := validateCarBody(&body); msg != "" {
		return response.Error(c, msg, 400, nil)
	}

	car, err := h.Service.Create(c.Context(), carsvc.CreateInput{
		Brand:     body.Brand,
		Model:     body.Model,
		Year:      body.Year,
		Color:     body.Color,
		Price:     *body.Price,
		Mileage:   body.Mileage,
		VIN:       body.VIN,
		Available: body.Available,
	})
	if err != nil {
		return carError(c, err)
	}
	return response.SuccessCreated(c, "Car created successfully", car, nil)
}

// UpdateCar PUT /api/cars/:id — full-field replace.
func (h *Handlers) UpdateCar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid car id", 400, nil)
	}
	var body carBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	if msg := validateCarBody(&body); msg != "" {
		return response.Error(c, msg, 400, nil)
	}
	if body.Mileage == nil || body.Available == nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}

	car, err := h.Service.Update(c.Context(), uint(id), carsvc.UpdateInput{
		Brand:     body.Brand,
		Model:     body.Model,
		Year:      body.Year,
		Color:     body.Color,
		Price:     *body.Price,
		Mileage:   *body.Mileage,
		VIN:       body.VIN,
		Available: *body.Available,
	})
	if err != nil {
		return carError(c, err)
	}
	return response.Success(c, "Car updated successfully", car, nil)
}

// UpdateStatus PATCH /api/cars/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid car id", 400, nil)
	}
	var body struct {
		Available *bool `json:"available"`
	}
	if err := c.BodyParser(&body); err != nil || body.Available == nil {
		return response.Error(c, "available is required", 400, nil)
	}

	car, err := h.Service.SetAvailability(c.Context(), uint(id), *body.Available)
	if err != nil {
		return carError(c, err)
	}
	return response.Success(c, "Car status updated successfully", car, nil)
}

// DeleteCar DELETE /api/cars/:id — returns the deleted row.
func (h *Handlers) DeleteCar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid car id", 400, nil)
	}
	car, err := h.Service.Delete(c.Context(), uint(id))
	if err != nil {
		return carError(c, err)
	}
	return response.Success(c, "Car deleted successfully", car, nil)
}

func validateCarBody(body *carBody) string {
	if body.Brand == "" || body.Model == "" || body.Color == "" || body.VIN == "" {
		return "Missing required fields"
	}
	if body.Price == nil {
		return "Missing required fields"
	}
	if !validation.IsValidYear(body.Year) {
		return "Invalid year"
	}
	if *body.Price < 0 {
		return "Price must not be negative"
	}
	if body.Mileage != nil && *body.Mileage < 0 {
		return "Mileage must not be negative"
	}
	if !validation.IsValidVIN(body.VIN) {
		return "Invalid VIN"
	}
	return ""
}

func carError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCarNotFound):
		return response.Error(c, err.Error(), 404, nil)
	case errors.Is(err, domain.ErrDuplicateVIN):
		return response.Error(c, err.Error(), 400, nil)
	default:
		return response.Error(c, "Internal Server Error", 500, nil)
	}
}
