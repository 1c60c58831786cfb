package routes

import (
	"os"

	"salon-booking/constants"
	analyticsController "salon-booking/controllers/analytics"
	appointmentController "salon-booking/controllers/appointment"
	"salon-booking/controllers/auth"
	billingController "salon-booking/controllers/billing"
	fulfillmentController "salon-booking/controllers/fulfillment"
	invoiceController "salon-booking/controllers/invoice"
	"salon-booking/controllers/server"
	"salon-booking/invoicetoken"
	"salon-booking/logger"
	"salon-booking/middleware"
	analyticsService "salon-booking/services/analytics"
	billingService "salon-booking/services/billing"
	fulfillmentService "salon-booking/services/fulfillment"
	"salon-booking/services/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes constructs every dependency once and wires the route groups.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	codec := invoicetoken.NewCodec(os.Getenv("INVOICE_TOKEN_SECRET"))
	invoiceMailer := mailer.NewFromEnv()

	fulfillmentSvc := fulfillmentService.NewService(db)
	billingSvc := billingService.NewService(db)
	analyticsSvc := analyticsService.NewService(db)

	authCtl := auth.NewAuthController(db, asyncLogger)
	appointmentCtl := appointmentController.NewAppointmentController(db, asyncLogger)
	fulfillmentCtl := fulfillmentController.NewFulfillmentController(fulfillmentSvc, asyncLogger)
	billingCtl := billingController.NewBillingController(db, billingSvc, codec, invoiceMailer, asyncLogger)
	analyticsCtl := analyticsController.NewAnalyticsController(analyticsSvc)
	invoiceCtl := invoiceController.NewInvoiceController(codec)
	healthCtl := server.NewHealthController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", healthCtl.Health)
	api.Post("/login", authCtl.Login)
	api.Post("/logout", authCtl.LogOut)
	api.Get("/resolve-invoice-token", invoiceCtl.ResolveToken)

	/*=============================================================================
	| Appointment Routes
	===============================================================================*/
	appointments := api.Group("/appointments")

	appointments.Post("/", middleware.RequireRoles(
		constants.RoleAdmin, constants.RoleReceptionist,
	), appointmentCtl.Store)

	appointments.Get("/:id", middleware.RequireAuthentication(), appointmentCtl.Show)

	appointments.Patch("/:id/status", middleware.RequireRoles(
		constants.FulfillmentRoles...,
	), appointmentCtl.UpdateStatus)

	appointments.Delete("/:id", middleware.RequireRoles(
		constants.RoleAdmin,
	), appointmentCtl.Destroy)

	/*=============================================================================
	| Fulfillment Routes
	===============================================================================*/
	appointments.Get("/:id/performed-services", middleware.RequireAuthentication(), fulfillmentCtl.Index)

	appointments.Post("/:id/performed-services", middleware.RequireRoles(
		constants.FulfillmentRoles...,
	), fulfillmentCtl.Store)

	appointments.Patch("/:id/performed-services", middleware.RequireRoles(
		constants.FulfillmentRoles...,
	), fulfillmentCtl.Update)

	appointments.Delete("/:id/performed-services", middleware.RequireRoles(
		constants.FulfillmentRoles...,
	), fulfillmentCtl.Destroy)

	/*=============================================================================
	| Billing Routes (no staff path to billing)
	===============================================================================*/
	appointments.Get("/:id/billing", middleware.RequireAuthentication(), billingCtl.Show)

	appointments.Post("/:id/billing", middleware.RequireRoles(
		constants.BillingRoles...,
	), billingCtl.Store)

	appointments.Patch("/:id/billing", middleware.RequireRoles(
		constants.BillingRoles...,
	), billingCtl.Update)

	appointments.Get("/:id/revenue", middleware.RequireRoles(
		constants.BillingRoles...,
	), billingCtl.Revenue)

	/*=============================================================================
	| Analytics Routes
	===============================================================================*/
	api.Get("/analytics", middleware.RequireRoles(
		constants.BillingRoles...,
	), analyticsCtl.Report)
}
