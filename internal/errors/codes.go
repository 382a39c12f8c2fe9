package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The storefront maps these codes to user-facing messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // admin session required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong password
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // malformed or forged token
	AuthSessionRevoked     = "AUTH_SESSION_REVOKED"     // logged-out session

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // bad request body
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing required field

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // record missing

	// ==================== Remote store (STORE_) ====================
	StorePermissionDenied = "STORE_PERMISSION_DENIED" // backend access rules reject writes
	StoreWriteFailed      = "STORE_WRITE_FAILED"      // generic write failure

	// ==================== Uploads (UPLOAD_) ====================
	UploadNoFiles = "UPLOAD_NO_FILES" // no files in the multipart form
	UploadFailed  = "UPLOAD_FAILED"   // image host rejected the batch

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
)
