package billing

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"salon-booking/invoicetoken"
	"salon-booking/logger"
	"salon-booking/middleware"
	appointmentModel "salon-booking/models/appointment"
	billingModel "salon-booking/models/billing"
	billingService "salon-booking/services/billing"
	"salon-booking/services/errs"
	"salon-booking/services/mailer"
	"salon-booking/types"
	billingTypes "salon-booking/types/billing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BillingController handles the billing record routes of an appointment.
type BillingController struct {
	DB      *gorm.DB
	Service *billingService.Service
	Codec   *invoicetoken.Codec
	Mailer  *mailer.Mailer
	Logger  *logger.AsyncLogger
}

func NewBillingController(db *gorm.DB, service *billingService.Service, codec *invoicetoken.Codec, m *mailer.Mailer, asyncLogger *logger.AsyncLogger) *BillingController {
	return &BillingController{
		DB:      db,
		Service: service,
		Codec:   codec,
		Mailer:  m,
		Logger:  asyncLogger,
	}
}

// Show returns the appointment's billing record, or null when none exists.
func (bc *BillingController) Show(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	record, err := bc.Service.Get(appointmentID)
	if err != nil {
		logger.Error("Failed to fetch billing record", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Billing record fetched successfully",
		Data:    record,
	})
}

// Store creates the billing record and mails the customer an invoice link
// when both the mailer and a customer email are available.
func (bc *BillingController) Store(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req billingTypes.CreateRequest
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

	record, err := bc.Service.Create(actor, appointmentID, req)
	if err != nil {
		return bc.serviceError(c, "Failed to create billing record", err)
	}

	bc.sendInvoiceMail(record)
	bc.logMutation(c, actor, fiber.StatusCreated)
	logger.Success(fmt.Sprintf("Billing record %d created for appointment %d", record.ID, appointmentID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Billing record created successfully",
		Data:    record,
	})
}

// Update applies the fields present in the payload to the billing record.
func (bc *BillingController) Update(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	var req billingTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	record, err := bc.Service.Update(appointmentID, req)
	if err != nil {
		return bc.serviceError(c, "Failed to update billing record", err)
	}

	bc.logMutation(c, actor, fiber.StatusOK)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Billing record updated successfully",
		Data:    record,
	})
}

// Revenue reports the authoritative revenue figure for one appointment.
func (bc *BillingController) Revenue(c *fiber.Ctx) error {
	appointmentID, err := parseAppointmentID(c)
	if err != nil {
		return badRequest(c, "Invalid appointment id")
	}

	revenue, err := bc.Service.RevenueForAppointment(appointmentID)
	if err != nil {
		logger.Error("Failed to compute appointment revenue", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Revenue computed successfully",
		Data:    fiber.Map{"appointment_id": appointmentID, "revenue": revenue},
	})
}

func (bc *BillingController) sendInvoiceMail(record *billingModel.BillingRecord) {
	if !bc.Mailer.Enabled() {
		return
	}

	token, err := bc.Codec.Encode(record.ID)
	if err != nil {
		logger.Error("Failed to encode invoice token", err)
		return
	}

	var appt appointmentModel.Appointment
	if err := bc.DB.Preload("Customer").First(&appt, record.AppointmentID).Error; err != nil {
		logger.Error("Failed to load appointment for invoice mail", err)
		return
	}
	if appt.Customer.Email == nil || *appt.Customer.Email == "" {
		return
	}

	if err := bc.Mailer.SendInvoiceLink(*appt.Customer.Email, appt.Customer.Name, token); err != nil {
		// Billing creation already succeeded; a failed mail is only logged.
		logger.Error("Failed to send invoice mail", err)
		return
	}
	logger.Success(fmt.Sprintf("Invoice mail sent for billing record %d", record.ID))
}

func (bc *BillingController) serviceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return badRequest(c, err.Error())
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

func (bc *BillingController) logMutation(c *fiber.Ctx, actor types.Actor, status int) {
	actorID := actor.UserID
	bc.Logger.Log(types.LogEntry{
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
