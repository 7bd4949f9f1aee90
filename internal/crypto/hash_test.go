package crypto

import (
	"encoding/hex"
	"strings"
	"testing"
)

// fastDigestParams keeps the tests quick; production uses DefaultDigestParams.
func fastDigestParams() DigestParams {
	p := DefaultDigestParams()
	p.Memory = 8 * 1024
	p.Time = 1
	return p
}

func TestDigestSecretFormat(t *testing.T) {
	digest, err := DigestSecret("device-secret", DefaultDigestParams())
	if err != nil {
		t.Fatalf("DigestSecret() unexpected error: %v", err)
	}

	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		t.Fatalf("DigestSecret() expected 6 parts, got %d: %q", len(parts), digest)
	}
	if parts[1] != "argon2id" {
		t.Errorf("algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestMatchSecret(t *testing.T) {
	digest, err := DigestSecret("right", fastDigestParams())
	if err != nil {
		t.Fatalf("DigestSecret() unexpected error: %v", err)
	}

	ok, err := MatchSecret("right", digest)
	if err != nil || !ok {
		t.Errorf("MatchSecret(right) = %v, %v; want true, nil", ok, err)
	}

	ok, err = MatchSecret("wrong", digest)
	if err != nil || ok {
		t.Errorf("MatchSecret(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestDigestSecretSalted(t *testing.T) {
	a, err := DigestSecret("same", fastDigestParams())
	if err != nil {
		t.Fatalf("DigestSecret() unexpected error: %v", err)
	}
	b, err := DigestSecret("same", fastDigestParams())
	if err != nil {
		t.Fatalf("DigestSecret() unexpected error: %v", err)
	}
	if a == b {
		t.Error("DigestSecret() produced identical digests; salt should differ")
	}
}

func TestMatchSecretMalformed(t *testing.T) {
	tests := []struct {
		name    string
		digest  string
		wantErr error
	}{
		{name: "garbage", digest: "not-a-digest", wantErr: ErrMalformedDigest},
		{name: "wrong algorithm", digest: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedDigest},
		{name: "wrong version", digest: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrDigestVersion},
		{name: "bad params", digest: "$argon2id$v=19$memory$c2FsdA$a2V5", wantErr: ErrMalformedDigest},
		{name: "bad salt", digest: "$argon2id$v=19$m=1,t=1,p=1$!!$a2V5", wantErr: ErrMalformedDigest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MatchSecret("x", tt.digest); err != tt.wantErr {
				t.Errorf("MatchSecret() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDeviceSecret(t *testing.T) {
	a, err := NewDeviceSecret()
	if err != nil {
		t.Fatalf("NewDeviceSecret() unexpected error: %v", err)
	}
	raw, err := hex.DecodeString(a)
	if err != nil || len(raw) != deviceSecretBytes {
		t.Fatalf("NewDeviceSecret() = %q, want %d hex-encoded bytes", a, deviceSecretBytes)
	}

	b, _ := NewDeviceSecret()
	if a == b {
		t.Error("NewDeviceSecret() returned the same secret twice")
	}
}
