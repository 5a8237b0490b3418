// Package shareenc optionally encrypts a serialized share payload with
// a passphrase, via age-backed scrypt Encrypt/Decrypt, scoped to
// in-memory bytes: this core has no file to write the ciphertext to,
// so callers decide where the returned bytes go.
package shareenc

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"

	schiaerr "github.com/mrz1836/schiavinato-sss/pkg/errors"
)

// DefaultWorkFactor is age's recommended scrypt work factor for
// interactive (not long-term-archival) passphrase encryption.
const DefaultWorkFactor = 18

// Encrypt encrypts plaintext (a serialized Share) using age with a
// passphrase-based scrypt recipient.
func Encrypt(plaintext []byte, passphrase string, workFactor int) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(workFactor)

	buf := &bytes.Buffer{}
	w, err := age.Encrypt(buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("initializing encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing encrypted data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	return buf.Bytes(), nil
}

// Decrypt decrypts ciphertext produced by Encrypt. Returns
// schiaerr.ErrDecryptionFailed (with the underlying age error's text
// in its message; the age error itself is not in the error chain) on
// any failure, so callers never need to distinguish a wrong
// passphrase from a corrupted payload.
func Decrypt(ciphertext []byte, passphrase string, maxWorkFactor int) ([]byte, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, schiaerr.Wrap(schiaerr.ErrDecryptionFailed, "creating scrypt identity: %v", err)
	}
	identity.SetMaxWorkFactor(maxWorkFactor)

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return nil, schiaerr.Wrap(schiaerr.ErrDecryptionFailed, "initializing decryption: %v", err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, schiaerr.Wrap(schiaerr.ErrDecryptionFailed, "reading decrypted data: %v", err)
	}
	return plaintext, nil
}
