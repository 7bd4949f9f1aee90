package model

import "time"

// Device represents a registered client installation in the database.
type Device struct {
	ID           string
	SecretDigest string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterDeviceResponse is returned once on registration. The secret is not
// retrievable afterwards.
type RegisterDeviceResponse struct {
	DeviceID string    `json:"device_id"`
	Secret   string    `json:"secret"`
	Token    string    `json:"token"`
	Expires  time.Time `json:"expires_at"`
}

// DeviceTokenRequest exchanges device credentials for a new token.
type DeviceTokenRequest struct {
	DeviceID string `json:"device_id" validate:"required,uuid"`
	Secret   string `json:"secret" validate:"required,hexadecimal,len=64"`
}

// TokenResponse carries a freshly issued device token.
type TokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires_at"`
}
