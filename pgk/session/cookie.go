package session

import (
	"net/http"
	"sync"
)

const (
	TokenCookieName   = "token"
	AccountCookieName = "account"
)

type CookieConfig struct {
	Domain string
	Secure bool
}

// Cookie is a Session backed by the browser cookie of a single request.
// Token refreshes are written back to the response as Set-Cookie headers,
// so they must happen before the response body is written.
type Cookie struct {
	mu    sync.Mutex
	w     http.ResponseWriter
	r     *http.Request
	cfg   CookieConfig
	token string
}

func NewCookie(w http.ResponseWriter, r *http.Request, cfg CookieConfig) *Cookie {
	c := &Cookie{w: w, r: r, cfg: cfg}

	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		c.token = cookie.Value
	}

	return c
}

func (c *Cookie) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

func (c *Cookie) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	http.SetCookie(c.w, c.cookie(TokenCookieName, token, 0, true))
}

// Clear drops the token on logout.
func (c *Cookie) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	http.SetCookie(c.w, c.cookie(TokenCookieName, "", -1, true))
}

// RememberedAccount returns the e-mail saved by the "remember account" checkbox.
func (c *Cookie) RememberedAccount() string {
	cookie, err := c.r.Cookie(AccountCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (c *Cookie) RememberAccount(email string) {
	http.SetCookie(c.w, c.cookie(AccountCookieName, email, 0, false))
}

func (c *Cookie) ForgetAccount() {
	http.SetCookie(c.w, c.cookie(AccountCookieName, "", -1, false))
}

func (c *Cookie) cookie(name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.cfg.Domain,
		MaxAge:   maxAge,
		Secure:   c.cfg.Secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}
