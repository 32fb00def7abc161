package models

// TokenResponse is the body returned by the token endpoint on successful
// authentication.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform JSON body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}
