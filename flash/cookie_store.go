package flash

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/notifykit/notify"
)

// AES-256 needs a 32-byte key, so secrets must be at least that long.
const minSecretLength = 32

// CookieStore carries the batch in an encrypted client-side cookie under
// SlotKey. AES-GCM provides both confidentiality and tamper detection, so the
// opaque fragment cannot be forged or inspected by the client.
//
// Multiple secrets enable key rotation: the first secret encrypts, all of
// them are tried when decrypting.
type CookieStore struct {
	secrets []string
	options Options
}

// NewCookieStore creates a cookie-backed flash store.
func NewCookieStore(secrets []string, opts ...Option) (*CookieStore, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieStore{
		secrets: secrets,
		options: applyOptions(defaults, opts),
	}, nil
}

// Put serializes the batch into the flash cookie, replacing any prior
// unconsumed batch.
func (s *CookieStore) Put(_ context.Context, w http.ResponseWriter, _ *http.Request, batch []notify.Message) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal flash batch: %w", err)
	}

	encrypted, err := s.encrypt(data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SlotKey,
		Value:    encrypted,
		Path:     s.options.Path,
		Domain:   s.options.Domain,
		Secure:   s.options.Secure,
		HttpOnly: true,
		SameSite: s.options.SameSite,
	})
	return nil
}

// Take reads and clears the carried batch. The cookie is expired even when
// decoding fails: a corrupt or tampered fragment must not survive to the next
// request either.
func (s *CookieStore) Take(_ context.Context, w http.ResponseWriter, r *http.Request) ([]notify.Message, error) {
	c, err := r.Cookie(SlotKey)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	s.clear(w)

	data, err := s.decrypt(c.Value)
	if err != nil {
		return nil, err
	}

	var batch []notify.Message
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}

	return batch, nil
}

// clear expires the flash cookie on the client.
func (s *CookieStore) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SlotKey,
		Value:    "",
		Path:     s.options.Path,
		Domain:   s.options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.options.Secure,
		HttpOnly: true,
		SameSite: s.options.SameSite,
	})
}

func (s *CookieStore) encrypt(value []byte) (string, error) {
	block, err := aes.NewCipher([]byte(s.secrets[0][:minSecretLength]))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	// Random nonce prepended to the ciphertext for self-contained decryption.
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, value, nil)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

func (s *CookieStore) decrypt(encrypted string) ([]byte, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	// Try all secrets to support key rotation.
	for _, secret := range s.secrets {
		block, err := aes.NewCipher([]byte(secret[:minSecretLength]))
		if err != nil {
			continue
		}

		gcm, err := cipher.NewGCM(block)
		if err != nil {
			continue
		}

		if len(ciphertext) < gcm.NonceSize() {
			continue
		}

		nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
		if plaintext, err := gcm.Open(nil, nonce, sealed, nil); err == nil {
			return plaintext, nil
		}
	}

	return nil, ErrDecryptionFailed
}
