package analytics

import (
	"salon-booking/logger"
	analyticsService "salon-booking/services/analytics"
	"salon-booking/types"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsController serves the date-range KPI report.
type AnalyticsController struct {
	Service *analyticsService.Service
}

func NewAnalyticsController(service *analyticsService.Service) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// Report handles GET /analytics?from=YYYY-MM-DD&to=YYYY-MM-DD. Both dates are
// required and strictly validated.
func (ac *AnalyticsController) Report(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	start, end, err := analyticsService.ParseRange(from, to)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	report, err := ac.Service.Report(start, end)
	if err != nil {
		logger.Error("Failed to build analytics report", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Analytics report generated successfully",
		Data:    report,
	})
}
