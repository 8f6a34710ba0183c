package config_test

import (
	"os"
	"testing"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCryptoPanicsOnShortKey(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "short-key")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should have panicked with a short key, but did not.")
		}
	}()

	config.InitCrypto()
}

func TestInitCryptoAcceptsValidKey(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)

	config.InitCrypto()
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "secret refresh token"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("Decrypted text (%q) does not match original (%q)", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("Encryption is not randomized (nonce). Ciphertexts should differ.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		plaintext := ""
		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("Decrypted empty text is incorrect: %q", decrypted)
		}
	})
}
