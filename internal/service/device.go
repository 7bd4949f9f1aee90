package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid device id or secret")

// DeviceStore persists registered devices.
type DeviceStore interface {
	Create(ctx context.Context, d *model.Device) error
	GetByID(ctx context.Context, id string) (*model.Device, error)
}

// DeviceService registers devices and issues their tokens.
type DeviceService struct {
	repo      DeviceStore
	jwtSecret string
	jwtExpiry time.Duration
	params    crypto.DigestParams
}

// NewDeviceService creates a new DeviceService.
func NewDeviceService(repo DeviceStore, secret string, expiry time.Duration) *DeviceService {
	return &DeviceService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
		params:    crypto.DefaultDigestParams(),
	}
}

// WithDigestParams overrides the Argon2id cost used for new device secrets.
func (s *DeviceService) WithDigestParams(p crypto.DigestParams) *DeviceService {
	s.params = p
	return s
}

// Register creates a device with a random secret. The secret is returned
// once and only its digest is stored.
func (s *DeviceService) Register(ctx context.Context) (model.RegisterDeviceResponse, error) {
	secret, err := crypto.NewDeviceSecret()
	if err != nil {
		return model.RegisterDeviceResponse{}, err
	}
	digest, err := crypto.DigestSecret(secret, s.params)
	if err != nil {
		return model.RegisterDeviceResponse{}, err
	}

	device := &model.Device{ID: uuid.NewString(), SecretDigest: digest}
	if err := s.repo.Create(ctx, device); err != nil {
		return model.RegisterDeviceResponse{}, fmt.Errorf("store device: %w", err)
	}

	token, expires, err := s.issue(device.ID)
	if err != nil {
		return model.RegisterDeviceResponse{}, err
	}

	return model.RegisterDeviceResponse{
		DeviceID: device.ID,
		Secret:   secret,
		Token:    token,
		Expires:  expires,
	}, nil
}

// Token authenticates a device by its secret and issues a new token.
func (s *DeviceService) Token(ctx context.Context, req model.DeviceTokenRequest) (model.TokenResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	device, err := s.repo.GetByID(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	match, err := crypto.MatchSecret(req.Secret, device.SecretDigest)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, expires, err := s.issue(device.ID)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{Token: token, Expires: expires}, nil
}

func (s *DeviceService) issue(deviceID string) (string, time.Time, error) {
	expires := time.Now().Add(s.jwtExpiry).UTC().Truncate(time.Second)
	token, err := crypto.IssueDeviceToken(deviceID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return token, expires, nil
}
