package auth

import "github.com/frahmantamala/finance-tracker/internal"

// SignupDTO is the transport shape used by the HTTP handler to accept
// signup requests.
type SignupDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields before any hashing or store access.
func (d SignupDTO) Validate() error {
	if d.Username == "" || d.Password == "" {
		return internal.ErrMissingField
	}
	return nil
}

func (d LoginDTO) Validate() error {
	if d.Username == "" || d.Password == "" {
		return internal.ErrMissingField
	}
	return nil
}
