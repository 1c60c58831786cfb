package auth

import "fmt"

// LoginRequest is the payload of POST /api/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
