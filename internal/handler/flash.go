package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// =============================================================================
// Flash Messages
// =============================================================================

// Flash represents a one-shot message displayed on the page after a
// redirect.
type Flash struct {
	Type    string `json:"type"` // "success", "warning", or "danger"
	Message string `json:"message"`
}

// Flash types
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

const (
	// flashCookieName is the name of the cookie carrying the flash across
	// the post/redirect/get cycle.
	flashCookieName = "aylb_flash"

	// flashCookieMaxAge keeps stale flashes from lingering (60 seconds).
	flashCookieMaxAge = 60
)

// FlashCodec signs and verifies flash cookies with HMAC-SHA256 keyed by the
// application secret. Tampered or unsigned cookies are silently dropped.
//
// The cookie value is base64(json) + "." + base64(hmac).
type FlashCodec struct {
	secret   []byte
	isSecure bool
}

// NewFlashCodec creates a codec keyed by the application secret.
// Set isSecure to true in production so the cookie is HTTPS-only.
func NewFlashCodec(secret string, isSecure bool) *FlashCodec {
	return &FlashCodec{
		secret:   []byte(secret),
		isSecure: isSecure,
	}
}

// Set stores a flash in a signed cookie on the response.
func (c *FlashCodec) Set(w http.ResponseWriter, flash Flash) {
	payload, err := json.Marshal(flash)
	if err != nil {
		return
	}

	encoded := base64.URLEncoding.EncodeToString(payload)
	value := encoded + "." + c.sign(encoded)

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   flashCookieMaxAge,
		HttpOnly: true,
		Secure:   c.isSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads, verifies and clears the flash cookie. It returns nil when no
// valid flash is present.
func (c *FlashCodec) Pop(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	// One-shot: clear regardless of validity.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.isSecure,
		SameSite: http.SameSiteLaxMode,
	})

	encoded, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok {
		return nil
	}
	if !hmac.Equal([]byte(c.sign(encoded)), []byte(sig)) {
		return nil
	}

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}

func (c *FlashCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
