package fulfillment

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"salon-booking/logger"
	"salon-booking/middleware"
	"salon-booking/services/errs"
	fulfillmentService "salon-booking/services/fulfillment"
	"salon-booking/types"
	performedTypes "salon-booking/types/performed"

	"github.com/gofiber/fiber/v2"
)

// FulfillmentController handles the performed-service routes of an appointment.
type FulfillmentController struct {
	Service *fulfillmentService.Service
	Logger  *logger.AsyncLogger
}

func NewFulfillmentController(service *fulfillmentService.Service, asyncLogger *logger.AsyncLogger) *FulfillmentController {
	return &FulfillmentController{
		Service: service,
		Logger:  asyncLogger,
	}
}

// Index lists the performed services of an appointment, newest first.
func (fc *FulfillmentController) Index(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	rows, err := fc.Service.List(appointmentID)
	if err != nil {
		logger.Error("Failed to list performed services", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Performed services fetched successfully",
		Data:    rows,
	})
}

// Store bulk-creates performed services. A single invalid item rejects the
// whole batch.
func (fc *FulfillmentController) Store(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req performedTypes.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	inserted, err := fc.Service.CreateBatch(actor, appointmentID, req.Items)
	if err != nil {
		return fc.serviceError(c, "Failed to create performed services", err)
	}

	fc.logMutation(c, actor, fiber.StatusCreated)
	logger.Success(fmt.Sprintf("Inserted %d performed services for appointment %d", inserted, appointmentID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Performed services created successfully",
		Data:    fiber.Map{"inserted": inserted},
	})
}

// Update bulk-applies partial updates. Items a staff caller does not own are
// skipped silently; the returned count is the caller's only signal.
func (fc *FulfillmentController) Update(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req performedTypes.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	updated, err := fc.Service.UpdateBatch(actor, appointmentID, req.Items)
	if err != nil {
		return fc.serviceError(c, "Failed to update performed services", err)
	}

	fc.logMutation(c, actor, fiber.StatusOK)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Performed services updated successfully",
		Data:    fiber.Map{"updated": updated},
	})
}

// Destroy bulk-deletes by id list, scoped to the staff caller's own rows.
func (fc *FulfillmentController) Destroy(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req performedTypes.DeleteBatchRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	deleted, err := fc.Service.DeleteBatch(actor, appointmentID, req.IDs)
	if err != nil {
		return fc.serviceError(c, "Failed to delete performed services", err)
	}

	fc.logMutation(c, actor, fiber.StatusOK)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Performed services deleted successfully",
		Data:    fiber.Map{"deleted": deleted},
	})
}

func (fc *FulfillmentController) serviceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return badRequest(c, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: err.Error(),
		})
	default:
		logger.Error(message, err)
		return serverError(c)
	}
}

func (fc *FulfillmentController) logMutation(c *fiber.Ctx, actor types.Actor, status int) {
	actorID := actor.UserID
	fc.Logger.Log(types.LogEntry{
		Method:      c.Method(),
		URL:         c.OriginalURL(),
		RequestBody: string(c.Body()),
		StatusCode:  status,
		ActorID:     &actorID,
		CreatedAt:   time.Now(),
	})
}

func parseAppointmentID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid appointment id")
	}
	return uint(id), nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Invalid user claims",
	})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
	})
}
