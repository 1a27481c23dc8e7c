package cli

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrKeyFileExists is returned when keygen would overwrite an existing key
var ErrKeyFileExists = errors.New("key file already exists")

// Config holds CLI configuration
type Config struct {
	ServerURL string
	KeyFile   string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("GMOD_SERVER", "http://localhost:8080"),
		KeyFile:   getEnvOrDefault("GMOD_KEY_FILE", defaultKeyFile()),
		Output:    "text",
	}
}

// LoadKey reads the hex-encoded ed25519 seed from the key file.
// A missing file returns a nil key.
func (c *Config) LoadKey() (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(c.KeyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	seed, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("key file %s does not hold a %d byte hex seed", c.KeyFile, ed25519.SeedSize)
	}

	return ed25519.NewKeyFromSeed(seed), nil
}

// SaveKey writes the key's seed to the key file
func (c *Config) SaveKey(key ed25519.PrivateKey, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(c.KeyFile); err == nil {
			return fmt.Errorf("%w: %s", ErrKeyFileExists, c.KeyFile)
		}
	}

	dir := filepath.Dir(c.KeyFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.KeyFile, []byte(hex.EncodeToString(key.Seed())+"\n"), 0600)
}

func defaultKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gmod/key"
	}
	return filepath.Join(home, ".gmod", "key")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
