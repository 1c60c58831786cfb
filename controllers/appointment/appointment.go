package appointment

import (
	"fmt"
	"strconv"
	"time"

	"salon-booking/constants"
	"salon-booking/logger"
	"salon-booking/middleware"
	appointmentModel "salon-booking/models/appointment"
	billingModel "salon-booking/models/billing"
	serviceModel "salon-booking/models/service"
	"salon-booking/services/appointment_event"
	"salon-booking/types"
	appointmentTypes "salon-booking/types/appointment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentController handles booking and lifecycle of appointments.
type AppointmentController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewAppointmentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AppointmentController {
	return &AppointmentController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store books a new appointment and opens one performed-service row per
// planned service, snapshotting the current catalog price onto each row.
func (ac *AppointmentController) Store(c *fiber.Ctx) error {
	var req appointmentTypes.CreateRequest
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

	var catalog []serviceModel.Service
	if err := ac.DB.Where("id IN ?", req.PlannedServiceIDs).Find(&catalog).Error; err != nil {
		logger.Error("Failed to load service catalog", err)
		return serverError(c)
	}
	if len(catalog) != len(req.PlannedServiceIDs) {
		return badRequest(c, "One or more planned services do not exist")
	}
	prices := make(map[uint]float64, len(catalog))
	for _, s := range catalog {
		prices[s.ID] = s.Price
	}

	appt := appointmentModel.Appointment{
		Uuid:              uuid.NewString(),
		CustomerID:        req.CustomerID,
		FamilyMemberID:    req.FamilyMemberID,
		Status:            appointmentModel.StatusScheduled,
		ScheduledStart:    req.ScheduledStart,
		ScheduledEnd:      req.ScheduledEnd,
		PlannedServiceIDs: req.PlannedServiceIDs,
		PlannedStaffIDs:   req.PlannedStaffIDs,
		Notes:             req.Notes,
		CreatedBy:         strconv.FormatUint(uint64(actor.UserID), 10),
	}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appt).Error; err != nil {
			logger.Error("Failed to create appointment", err)
			return err
		}

		rows := make([]appointmentModel.PerformedService, 0, len(req.PlannedServiceIDs))
		for _, serviceID := range req.PlannedServiceIDs {
			price := prices[serviceID]
			rows = append(rows, appointmentModel.PerformedService{
				AppointmentID: appt.ID,
				ServiceID:     serviceID,
				Status:        appointmentModel.StatusScheduled,
				Price:         &price,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			logger.Error("Failed to create performed services", err)
			return err
		}

		return appointment_event.SnapshotStatus(tx, &appt, appt.CreatedBy)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save appointment",
		})
	}

	logger.Success(fmt.Sprintf("Appointment created successfully with ID: %d", appt.ID))

	var created appointmentModel.Appointment
	if err := ac.DB.Preload("Customer").Preload("PerformedServices").First(&created, appt.ID).Error; err != nil {
		logger.Error("Failed to load created appointment data", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Appointment created but failed to retrieve complete data",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Appointment created successfully",
		Data:    created,
	})
}

// Show returns one appointment with its customer and performed services.
func (ac *AppointmentController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var appt appointmentModel.Appointment
	err = ac.DB.Preload("Customer").Preload("PerformedServices").First(&appt, id).Error
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Appointment not found",
		})
	}
	if err != nil {
		logger.Error("Failed to find appointment", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Appointment fetched successfully",
		Data:    appt,
	})
}

// UpdateStatus moves the appointment through its lifecycle and writes an
// audit event in the same transaction.
func (ac *AppointmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req appointmentTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	status := appointmentModel.Status(req.Status)
	if !status.IsValid() {
		return badRequest(c, fmt.Sprintf("Invalid status %q", req.Status))
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var appt appointmentModel.Appointment
	err = ac.DB.First(&appt, id).Error
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Appointment not found",
		})
	}
	if err != nil {
		logger.Error("Failed to find appointment", err)
		return serverError(c)
	}

	appt.Status = status
	appt.UpdatedBy = strconv.FormatUint(uint64(actor.UserID), 10)

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&appt).Error; err != nil {
			return err
		}
		return appointment_event.SnapshotStatus(tx, &appt, appt.UpdatedBy)
	})
	if err != nil {
		logger.Error("Failed to update appointment status", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Appointment status updated successfully",
		Data:    appt,
	})
}

// Destroy hard-deletes an appointment. Admin only; there is no soft delete or
// tombstone for appointments.
func (ac *AppointmentController) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}
	if actor.Role != constants.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Only admins may delete appointments",
		})
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", id).Delete(&billingModel.BillingRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("appointment_id = ?", id).Delete(&appointmentModel.StatusEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("appointment_id = ?", id).Delete(&appointmentModel.PerformedService{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&appointmentModel.Appointment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Appointment not found",
		})
	}
	if err != nil {
		logger.Error("Failed to delete appointment", err)
		return serverError(c)
	}

	actorID := actor.UserID
	ac.Logger.Log(types.LogEntry{
		Method:     c.Method(),
		URL:        c.OriginalURL(),
		StatusCode: fiber.StatusOK,
		ActorID:    &actorID,
		CreatedAt:  time.Now(),
	})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Appointment deleted successfully",
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id")
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
