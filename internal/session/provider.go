package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/courseorders/internal/models"
	"github.com/example/courseorders/internal/utils"
)

// Options configure a Provider.
type Options struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

// Provider issues session tokens and resolves them back from requests.
type Provider struct {
	opts    Options
	revoker Revoker
}

// NewProvider constructs Provider. A nil revoker disables revocation.
func NewProvider(opts Options, revoker Revoker) *Provider {
	if revoker == nil {
		revoker = NoopRevoker{}
	}
	if opts.CookieName == "" {
		opts.CookieName = "session_token"
	}
	return &Provider{opts: opts, revoker: revoker}
}

// Issue starts a new session for the user and returns its signed token.
func (p *Provider) Issue(user *models.User) (string, *Session, error) {
	sess := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(p.opts.TTL).Truncate(time.Second),
	}

	token, err := utils.GenerateToken(p.opts.Secret, sess.ID, sess.UserID, sess.Email, sess.ExpiresAt)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	return token, sess, nil
}

// GetSession returns the request's session or nil when there is none.
// Invalid, expired and revoked tokens count as no session; only a failing
// revocation lookup is reported as an error.
func (p *Provider) GetSession(c *fiber.Ctx) (*Session, error) {
	token := p.tokenFromRequest(c)
	if token == "" {
		return nil, nil
	}

	claims, err := utils.ParseToken(p.opts.Secret, token)
	if err != nil {
		return nil, nil
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, nil
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil
	}

	revoked, err := p.revoker.IsRevoked(c.UserContext(), sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session revocation: %w", err)
	}
	if revoked {
		return nil, nil
	}

	return &Session{
		ID:        sessionID,
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SetCookie stores the token in an HttpOnly cookie that expires with the session.
func (p *Provider) SetCookie(c *fiber.Ctx, token string, sess *Session) {
	c.Cookie(&fiber.Cookie{
		Name:     p.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   p.opts.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie in the browser.
func (p *Provider) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     p.opts.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   p.opts.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Revoke invalidates the session for the rest of its lifetime.
func (p *Provider) Revoke(ctx context.Context, sess *Session) error {
	ttl := sess.TTL()
	if ttl == 0 {
		return nil
	}
	if err := p.revoker.Revoke(ctx, sess.ID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (p *Provider) tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(p.opts.CookieName); token != "" {
		return token
	}

	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
