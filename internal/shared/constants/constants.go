package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID  = "user_id"
	ContextKeyIsAdmin = "is_admin"

	// Subscription types
	SubscriptionTypeFree    = "free"
	SubscriptionTypePremium = "premium"

	// Payment providers accepted by the payment confirmation endpoint
	PaymentProviderXendit   = "xendit"
	PaymentProviderMidtrans = "midtrans"

	// Database table names
	TableUsers         = "users"
	TableArticles      = "articles"
	TableTags          = "tags"
	TableArticleTags   = "article_tags"
	TableSubscriptions = "subscriptions"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
