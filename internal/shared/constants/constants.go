package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"

	// Context keys
	ContextKeyAdminID = "admin_id"
	ContextKeyEmail   = "admin_email"

	// Database table names
	TableAdmins        = "admins"
	TableSubscribers   = "subscribers"
	TableCities        = "cities"
	TableCityDiscounts = "city_discounts"
	TableCalls         = "calls"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
)
