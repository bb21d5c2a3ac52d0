package sales

import (
	"errors"

	salesvc "autolot-backend/internal/application/sales"
	"autolot-backend/internal/domain"
	"autolot-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *salesvc.Service
}

// CreateSale POST /api/sales — sells a car.
func (h *Handlers) CreateSale(c *fiber.Ctx) error {
	var body struct {
		CarID         uint     `json:"car_id"`
		CustomerName  string   `json:"customer_name"`
		CustomerPhone string   `json:"customer_phone"`
		SalePrice     *float64 `json:"sale_price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	if body.CarID == 0 || body.CustomerName == "" || body.CustomerPhone == "" {
		return response.Error(c, "car_id, customer_name and customer_phone are required", 400, nil)
	}
	if body.SalePrice != nil && *body.SalePrice < 0 {
		return response.Error(c, "sale_price must not be negative", 400, nil)
	}

	sale, err := h.Service.SellCar(c.Context(), salesvc.SellInput{
		CarID:         body.CarID,
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		Price:         body.SalePrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCarNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, domain.ErrAlreadySold):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Car sold successfully", sale, nil)
}

// GetSales GET /api/sales — full history, insertion order.
func (h *Handlers) GetSales(c *fiber.Ctx) error {
	records, err := h.Service.History(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Sales retrieved successfully", records, nil)
}

// GetSale GET /api/sales/:id
func (h *Handlers) GetSale(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid sale id", 400, nil)
	}
	sale, err := h.Service.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Sale retrieved successfully", sale, nil)
}
