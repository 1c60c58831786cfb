package invoice

import (
	"errors"

	"salon-booking/invoicetoken"
	"salon-booking/logger"
	"salon-booking/types"

	"github.com/gofiber/fiber/v2"
)

// InvoiceController resolves invoice access tokens for unauthenticated
// invoice retrieval.
type InvoiceController struct {
	Codec *invoicetoken.Codec
}

func NewInvoiceController(codec *invoicetoken.Codec) *InvoiceController {
	return &InvoiceController{Codec: codec}
}

// ResolveToken handles GET /resolve-invoice-token?token=...
// Malformed tokens are a caller fault (400), failed signatures an
// authorization fault (401), and a missing secret a server fault (500).
func (ic *InvoiceController) ResolveToken(c *fiber.Ctx) error {
	token := c.Query("token")

	id, err := ic.Codec.Decode(token)
	if err != nil {
		switch {
		case errors.Is(err, invoicetoken.ErrSecretMissing):
			logger.Error("Invoice token secret is not configured", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Internal server error",
			})
		case errors.Is(err, invoicetoken.ErrBadSignature):
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid invoice token signature",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Malformed invoice token",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Invoice token resolved successfully",
		Data:    fiber.Map{"id": id},
	})
}
