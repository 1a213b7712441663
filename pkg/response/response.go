package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// FieldError is a single failed validation check on a draft record.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse carries structured field-level validation failures.
type ValidationResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}
