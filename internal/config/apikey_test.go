package config

import (
	"os"
	"testing"
)

func TestNewAPIKeyConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{
			name:       "default cost",
			bcryptCost: "",
			wantCost:   12,
		},
		{
			name:       "valid cost",
			bcryptCost: "11",
			wantCost:   11,
		},
		{
			name:       "cost too low",
			bcryptCost: "9",
			wantErr:    true,
		},
		{
			name:       "cost too high",
			bcryptCost: "15",
			wantErr:    true,
		},
		{
			name:       "non-numeric cost",
			bcryptCost: "invalid",
			wantErr:    true,
		},
		{
			name:       "with pepper",
			bcryptCost: "12",
			pepper:     "test-pepper",
			wantCost:   12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalCost := os.Getenv("BCRYPT_COST")
			originalPepper := os.Getenv("API_KEY_PEPPER")
			defer func() {
				os.Setenv("BCRYPT_COST", originalCost)
				os.Setenv("API_KEY_PEPPER", originalPepper)
			}()

			if tt.bcryptCost != "" {
				os.Setenv("BCRYPT_COST", tt.bcryptCost)
			} else {
				os.Unsetenv("BCRYPT_COST")
			}
			if tt.pepper != "" {
				os.Setenv("API_KEY_PEPPER", tt.pepper)
			} else {
				os.Unsetenv("API_KEY_PEPPER")
			}

			config, err := NewAPIKeyConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAPIKeyConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if config.BcryptCost != tt.wantCost {
					t.Errorf("NewAPIKeyConfig() BcryptCost = %v, want %v", config.BcryptCost, tt.wantCost)
				}
				if config.Pepper != tt.pepper {
					t.Errorf("NewAPIKeyConfig() Pepper = %v, want %v", config.Pepper, tt.pepper)
				}
			}
		})
	}
}

func TestAPIKeyConfig_HashAndVerify(t *testing.T) {
	os.Unsetenv("BCRYPT_COST")
	os.Unsetenv("API_KEY_PEPPER")

	config, err := NewAPIKeyConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	key := "tm_live_9f8e7d6c5b4a"
	hash, err := config.HashKey(key)
	if err != nil {
		t.Fatalf("HashKey() error = %v", err)
	}
	if hash == "" {
		t.Error("HashKey() returned empty hash")
	}

	if !config.VerifyKey(key, hash) {
		t.Error("VerifyKey() should return true for the correct key")
	}
	if config.VerifyKey("wrong-key", hash) {
		t.Error("VerifyKey() should return false for an incorrect key")
	}
	if config.VerifyKey(key, "") {
		t.Error("VerifyKey() should return false for an empty hash")
	}

	// Hash should differ each time (bcrypt includes salt)
	hash2, err := config.HashKey(key)
	if err != nil {
		t.Fatalf("HashKey() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashKey() should produce different hashes for the same key (salt)")
	}
}

func TestAPIKeyConfig_PepperChangesVerification(t *testing.T) {
	originalPepper := os.Getenv("API_KEY_PEPPER")
	defer os.Setenv("API_KEY_PEPPER", originalPepper)

	key := "tm_live_9f8e7d6c5b4a"

	os.Setenv("API_KEY_PEPPER", "pepper-one")
	peppered, err := NewAPIKeyConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	hash, err := peppered.HashKey(key)
	if err != nil {
		t.Fatalf("HashKey() error = %v", err)
	}
	if !peppered.VerifyKey(key, hash) {
		t.Error("VerifyKey() should work with the original pepper")
	}

	os.Setenv("API_KEY_PEPPER", "pepper-two")
	rotated, err := NewAPIKeyConfig()
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	if rotated.VerifyKey(key, hash) {
		t.Error("VerifyKey() should fail once the pepper changes")
	}
}
