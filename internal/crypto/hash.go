package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedDigest = errors.New("malformed secret digest")
	ErrDigestVersion   = errors.New("unsupported argon2 version in digest")
)

// deviceSecretBytes is the amount of randomness in a device secret.
const deviceSecretBytes = 32

// DigestParams are the Argon2id cost settings recorded in every digest.
type DigestParams struct {
	Memory     uint32
	Time       uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultDigestParams returns the Argon2id settings used for device secrets.
func DefaultDigestParams() DigestParams {
	return DigestParams{
		Memory:     64 * 1024,
		Time:       3,
		Threads:    2,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// NewDeviceSecret returns a hex-encoded random secret handed to a device once
// at registration.
func NewDeviceSecret() (string, error) {
	b := make([]byte, deviceSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating device secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// DigestSecret derives an Argon2id digest of secret in PHC string form,
// e.g. $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>.
func DigestSecret(secret string, p DigestParams) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt, p.Time, p.Memory, p.Threads, p.KeyLength)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

// MatchSecret reports whether secret produces digest. The comparison runs in
// constant time.
func MatchSecret(secret, digest string) (bool, error) {
	p, salt, key, err := parseDigest(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(secret), salt, p.Time, p.Memory, p.Threads, p.KeyLength)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func parseDigest(digest string) (DigestParams, []byte, []byte, error) {
	var p DigestParams

	fields := strings.Split(digest, "$")
	if len(fields) != 6 || fields[0] != "" || fields[1] != "argon2id" {
		return p, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	if version != argon2.Version {
		return p, nil, nil, ErrDigestVersion
	}

	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrMalformedDigest
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(fields[4])
	if err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	key, err := enc.DecodeString(fields[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedDigest
	}
	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
