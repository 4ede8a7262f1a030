package domain

type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Credits      int32  `json:"credits"`
	IsAdmin      bool   `json:"isAdmin"`
	CreatedOn    string `json:"createdOn"`
	UpdatedOn    string `json:"updatedOn"`
}

// PendingRegistration is a signup staged behind OTP verification. The user
// row is only created once the emailed code has been verified.
type PendingRegistration struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	OTPCode      string `json:"-"`
	ExpiresAt    string `json:"expires_at"`
	CreatedOn    string `json:"createdOn"`
}
