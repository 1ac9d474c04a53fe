package utils

// Application constants
const (
	// Application name
	AppName = "Turbo Cricket League"

	// API prefix
	APIPrefix = "/api"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 6

	// Player age bounds
	MinPlayerAge = 10
	MaxPlayerAge = 30
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials     = "Invalid credentials"
	ErrAuthenticationRequired = "Authentication required. Please provide a token."
	ErrInvalidToken           = "Invalid or expired token."
	ErrTokenUserNotFound      = "User not found. Token is invalid."
	ErrPermissionDenied       = "You do not have permission to perform this action."
	ErrUserAlreadyExists      = "User already exists with this email"

	// Registration errors
	ErrEmailAlreadyRegistered  = "This email has already been registered"
	ErrRegistrationNotFound    = "Registration not found"
	ErrRegistrationHasPayments = "Registration has payment records and cannot be deleted"
	ErrInvalidStatus           = "Invalid status. Must be pending, approved, or rejected"
	ErrUnknownLeague           = "Unknown league type"

	// Payment errors
	ErrPaymentNotFound         = "Payment not found"
	ErrPaymentRecordNotFound   = "Payment record not found"
	ErrPaymentAlreadyCompleted = "Payment already completed for this registration"
	ErrInvalidSignature        = "Invalid payment signature"
	ErrOrderMismatch           = "Razorpay order ID does not match this payment"
	ErrPaymentInitFailed       = "Failed to initialize payment"
	ErrPaymentVerifyFailed     = "Failed to verify payment"
	ErrPaymentNotCompleted     = "Receipt is only available for completed payments"
	ErrInvalidWebhook          = "Invalid webhook signature"
	ErrInvalidWebhookPayload   = "Invalid webhook payload"
	ErrPaymentSuperseded       = "Another payment attempt is already active for this registration"
	ErrReceiptFailed           = "Failed to generate receipt"

	// Upload errors
	ErrNoFileProvided   = "No file provided"
	ErrNoFilesProvided  = "No files provided"
	ErrFileKeyRequired  = "File key is required"
	ErrInvalidFileType  = "Invalid file type. Only images and documents are allowed."
	ErrFileTooLarge     = "File size exceeds 10MB limit"
	ErrFileUploadFailed = "File upload failed"

	// Generic errors
	ErrValidation     = "Validation error"
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgServerRunning = "Server is running"

	MsgUserRegistered = "User registered successfully"
	MsgLoginSuccess   = "Login successful"
	MsgLogoutSuccess  = "Logged out successfully"
	MsgUserRetrieved  = "User retrieved successfully"
	MsgUsersRetrieved = "Users retrieved successfully"

	MsgRegistrationSuccess    = "Registration successful! We'll contact you soon."
	MsgRegistrationsRetrieved = "Registrations retrieved successfully"
	MsgRegistrationRetrieved  = "Registration retrieved successfully"
	MsgStatusUpdated          = "Registration status updated successfully"
	MsgRegistrationDeleted    = "Registration deleted successfully"

	MsgPaymentInitialized        = "Payment initialized successfully"
	MsgPaymentAlreadyInitialized = "Payment already initialized"
	MsgPaymentVerified           = "Payment verified and completed successfully"
	MsgPaymentStatusRetrieved    = "Payment status retrieved successfully"
	MsgWebhookProcessed          = "Webhook processed"

	MsgFileUploaded  = "File uploaded successfully"
	MsgFilesUploaded = "Files uploaded successfully"
	MsgFileDeleted   = "File deleted successfully"

	MsgLeadCreated    = "Thank you for contacting us! We'll get back to you soon."
	MsgLeadsRetrieved = "Leads retrieved successfully"

	MsgNoPendingPayments = "No pending payments found"
	MsgReminderSent      = "Payment reminder sent successfully"

	MsgTooManyRequests = "Too many requests, please try again later."
)
