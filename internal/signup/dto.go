package signup

// SignupRequest carries raw, unvalidated signup input. Fields are pointers
// so an absent field and an explicit null look the same to the rules.
// Struct order fixes field evaluation order: username, email, password.
type SignupRequest struct {
	Username *string `json:"username" validate:"required,min=4,max=32"`
	Email    *string `json:"email" validate:"required,basic_email"`
	Password *string `json:"password" validate:"required,password_mix,min=6"`
	// Inactive is accepted but ignored; users are always created inactive.
	Inactive *bool `json:"inactive,omitempty"`
}

// SignupResponse acknowledges a successful registration.
type SignupResponse struct {
	Message string `json:"message"`
}

// ErrorResponse reports field rule violations to the caller.
type ErrorResponse struct {
	Message          string      `json:"message"`
	ValidationErrors FieldErrors `json:"validationErrors,omitempty"`
}
