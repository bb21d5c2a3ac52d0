package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	salesvc "autolot-backend/internal/application/sales"
	"autolot-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSalesApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Car{}, &domain.Sale{}))

	h := &Handlers{Service: &salesvc.Service{DB: db}}
	app := fiber.New()
	g := app.Group("/api/sales")
	g.Post("/", h.CreateSale)
	g.Get("/", h.GetSales)
	g.Get("/:id", h.GetSale)
	return app, db
}

func seedCar(t *testing.T, db *gorm.DB, vin string, price float64) *domain.Car {
	car := &domain.Car{
		Brand: "Toyota", Model: "Corolla", Year: 2021, Color: "white",
		Price: price, VIN: vin, Available: true,
	}
	require.NoError(t, db.Create(car).Error)
	return car
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	var req = httptest.NewRequest(method, path, nil)
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCreateSale_DefaultPriceThenAlreadySold(t *testing.T) {
	app, db := setupSalesApp(t)
	car := seedCar(t, db, "ABC123", 20000)

	// sell without a price: sale_price falls back to the list price
	status, out := doJSON(t, app, "POST", "/api/sales", map[string]interface{}{
		"car_id": car.ID, "customer_name": "Ann", "customer_phone": "555-0100",
	})
	assert.Equal(t, 201, status)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, 20000.0, data["sale_price"])
	assert.Equal(t, float64(car.ID), data["car_id"])

	var got domain.Car
	require.NoError(t, db.First(&got, car.ID).Error)
	assert.False(t, got.Available)

	// selling again fails and leaves exactly one record
	status, out = doJSON(t, app, "POST", "/api/sales", map[string]interface{}{
		"car_id": car.ID, "customer_name": "Bob", "customer_phone": "555-0101",
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Car has already been sold", out["error"].(map[string]interface{})["message"])

	var count int64
	require.NoError(t, db.Model(&domain.Sale{}).Where("car_id = ?", car.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateSale_ExplicitPrice(t *testing.T) {
	app, db := setupSalesApp(t)
	car := seedCar(t, db, "PRC1", 20000)

	status, out := doJSON(t, app, "POST", "/api/sales", map[string]interface{}{
		"car_id": car.ID, "customer_name": "Ann", "customer_phone": "555", "sale_price": 17500.0,
	})
	assert.Equal(t, 201, status)
	assert.Equal(t, 17500.0, out["data"].(map[string]interface{})["sale_price"])
}

func TestCreateSale_CarNotFound(t *testing.T) {
	app, _ := setupSalesApp(t)

	status, out := doJSON(t, app, "POST", "/api/sales", map[string]interface{}{
		"car_id": 999, "customer_name": "Ann", "customer_phone": "555",
	})
	assert.Equal(t, 404, status)
	assert.Equal(t, "Car not found", out["error"].(map[string]interface{})["message"])
}

func TestCreateSale_MissingFields(t *testing.T) {
	app, db := setupSalesApp(t)
	car := seedCar(t, db, "MSS1", 10000)

	status, _ := doJSON(t, app, "POST", "/api/sales", map[string]interface{}{})
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "POST", "/api/sales", map[string]interface{}{
		"car_id": car.ID, "customer_name": "Ann",
	})
	assert.Equal(t, 400, status)

	// validation failures must not touch the store
	var got domain.Car
	require.NoError(t, db.First(&got, car.ID).Error)
	assert.True(t, got.Available)
}

func TestGetSales_ListAndGetByID(t *testing.T) {
	app, db := setupSalesApp(t)
	a := seedCar(t, db, "LST1", 100)
	b := seedCar(t, db, "LST2", 200)

	for _, car := range []*domain.Car{a, b} {
		status, _ := doJSON(t, app, "POST", "/api/sales", map[string]interface{}{
			"car_id": car.ID, "customer_name": "Ann", "customer_phone": "555",
		})
		require.Equal(t, 201, status)
	}

	status, out := doJSON(t, app, "GET", "/api/sales", nil)
	assert.Equal(t, 200, status)
	data := out["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, float64(a.ID), data[0].(map[string]interface{})["car_id"])

	id := int(data[1].(map[string]interface{})["id"].(float64))
	status, out = doJSON(t, app, "GET", fmt.Sprintf("/api/sales/%d", id), nil)
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(b.ID), out["data"].(map[string]interface{})["car_id"])
}

func TestGetSale_NotFound(t *testing.T) {
	app, _ := setupSalesApp(t)
	status, out := doJSON(t, app, "GET", "/api/sales/42", nil)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Sale not found", out["error"].(map[string]interface{})["message"])
}
