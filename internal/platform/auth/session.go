package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/config"
)

const secretLen = 32

// Sentinel errors for errors.Is() checking.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("login disabled: no password hash configured")
	ErrInvalidSession     = errors.New("invalid session")
)

// Authenticator checks admin credentials and issues and parses the HS256
// session tokens stored in the session cookie.
type Authenticator struct {
	username     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	cookieName   string
	cookieSecure bool
	now          func() time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithClock replaces time.Now for token issue and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) { a.now = now }
}

// NewAuthenticator builds an Authenticator from cfg. An empty token secret
// is replaced by a random one, so sessions do not survive a restart.
func NewAuthenticator(cfg *config.AuthConfig, opts ...Option) (*Authenticator, error) {
	secret := []byte(cfg.TokenSecret)
	if len(secret) == 0 {
		secret = make([]byte, secretLen)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generating token secret: %w", err)
		}
	}

	a := &Authenticator{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		secret:       secret,
		ttl:          cfg.TokenTTL,
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.CookieSecure,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// LoginEnabled reports whether a password hash is configured.
func (a *Authenticator) LoginEnabled() bool {
	return a.passwordHash != ""
}

// Login verifies the credentials and returns a signed session token.
func (a *Authenticator) Login(username, password string) (string, error) {
	if !a.LoginEnabled() {
		return "", ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK, err := VerifyPassword(password, a.passwordHash)
	if err != nil {
		return "", err
	}
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	return a.Issue(username)
}

// Issue signs a session token for subject.
func (a *Authenticator) Issue(subject string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and returns its subject.
func (a *Authenticator) Parse(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.Subject != a.username {
		return "", fmt.Errorf("%w: unknown subject", ErrInvalidSession)
	}
	return claims.Subject, nil
}

// FromRequest parses the session cookie of r.
func (a *Authenticator) FromRequest(r *http.Request) (string, error) {
	c, err := r.Cookie(a.cookieName)
	if err != nil {
		return "", fmt.Errorf("%w: no session cookie", ErrInvalidSession)
	}
	return a.Parse(c.Value)
}

// SetCookie writes token as the session cookie.
func (a *Authenticator) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.ttl / time.Second),
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (a *Authenticator) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
