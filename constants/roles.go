package constants

// Salon account roles
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleStaff        = "staff"
	RoleCustomer     = "customer"
)

// Role groups for convenience
var (
	// FulfillmentRoles may read and mutate performed-service records.
	FulfillmentRoles = []string{
		RoleAdmin,
		RoleReceptionist,
		RoleStaff,
	}

	// BillingRoles may mutate billing records. There is no staff path to billing.
	BillingRoles = []string{
		RoleAdmin,
		RoleReceptionist,
	}
)
