package database

import (
	"fmt"
	"os"

	"salon-booking/logger"
	appointmentModel "salon-booking/models/appointment"
	billingModel "salon-booking/models/billing"
	customerModel "salon-booking/models/customer"
	logModel "salon-booking/models/log"
	serviceModel "salon-booking/models/service"
	userModel "salon-booking/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: foundation models without cross references
	stage1Models := []interface{}{
		&userModel.User{},
		&customerModel.Customer{},
		&customerModel.FamilyMember{},
		&serviceModel.Service{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: appointments and the rows they own
	stage2Models := []interface{}{
		&appointmentModel.Appointment{},
		&appointmentModel.PerformedService{},
		&appointmentModel.StatusEvent{},
		&billingModel.BillingRecord{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: remaining models
	remainingModels := []interface{}{
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_users_role", "CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)"},
		{"idx_customers_phone", "CREATE INDEX IF NOT EXISTS idx_customers_phone ON customers(phone)"},
		{"idx_appointments_status", "CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)"},
		{"idx_appointments_scheduled_start", "CREATE INDEX IF NOT EXISTS idx_appointments_scheduled_start ON appointments(scheduled_start)"},
		{"idx_performed_services_appointment_id", "CREATE INDEX IF NOT EXISTS idx_performed_services_appointment_id ON performed_services(appointment_id)"},
		{"idx_performed_services_staff_id", "CREATE INDEX IF NOT EXISTS idx_performed_services_staff_id ON performed_services(staff_id)"},
		{"idx_performed_services_status", "CREATE INDEX IF NOT EXISTS idx_performed_services_status ON performed_services(status)"},
		{"idx_billing_records_payment_status", "CREATE INDEX IF NOT EXISTS idx_billing_records_payment_status ON billing_records(payment_status)"},
		{"idx_logs_status_code", "CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, index := range indexes {
		if err := DB.Exec(index.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", index.name, err)
		}
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_appointments_customer",
			sql: `ALTER TABLE appointments ADD CONSTRAINT fk_appointments_customer
				  FOREIGN KEY (customer_id) REFERENCES customers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_performed_services_appointment",
			sql: `ALTER TABLE performed_services ADD CONSTRAINT fk_performed_services_appointment
				  FOREIGN KEY (appointment_id) REFERENCES appointments(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_performed_services_service",
			sql: `ALTER TABLE performed_services ADD CONSTRAINT fk_performed_services_service
				  FOREIGN KEY (service_id) REFERENCES services(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_billing_records_appointment",
			sql: `ALTER TABLE billing_records ADD CONSTRAINT fk_billing_records_appointment
				  FOREIGN KEY (appointment_id) REFERENCES appointments(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
