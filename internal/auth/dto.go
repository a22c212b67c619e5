package auth

// SignupRequest is the validated body of POST /auth/signup.
type SignupRequest struct {
	FirstName  string  `json:"firstName" validate:"required,max=100"`
	MiddleName *string `json:"middleName,omitempty" validate:"omitempty,max=100"`
	LastName   string  `json:"lastName" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the validated body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}
