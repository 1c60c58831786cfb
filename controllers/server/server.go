package server

import (
	"time"

	"salon-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthController reports process and database health.
type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) Health(c *fiber.Ctx) error {
	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: "Database unreachable",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "OK",
		Data:    fiber.Map{"time": time.Now().UTC()},
	})
}
