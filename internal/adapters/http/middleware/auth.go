package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"esursi/internal/application/gate"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookieName = "esursi_session"

// SessionTTL bounds how long a login survives without re-authenticating.
const SessionTTL = 24 * time.Hour

// SecureCookies controls the Secure flag on session cookies. Set true in
// production behind TLS.
var SecureCookies = false

// Session is the verified admin identity carried through the request context.
type Session struct {
	AdminID  int64
	Username string
	IssuedAt time.Time
}

// Claims is the JWT payload for a session token.
type Claims struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies stateless session tokens. There is no
// server-side session table; the token signature is the session.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionCodec creates a codec with the given HMAC secret.
// PRE: secret is non-empty and kept out of source control
func NewSessionCodec(secret []byte) *SessionCodec {
	return &SessionCodec{secret: secret, ttl: SessionTTL}
}

// Issue signs a session token for a verified admin identity.
// PRE: credentials for adminID have been verified
// POST: Returns a token that Verify accepts until the TTL elapses
func (c *SessionCodec) Issue(adminID int64, username string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a session token.
// POST: Returns the session only for an untampered, unexpired token
func (c *SessionCodec) Verify(tokenString string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Session{}, jwt.ErrTokenInvalidClaims
	}
	return Session{
		AdminID:  claims.AdminID,
		Username: claims.Username,
		IssuedAt: claims.IssuedAt.Time,
	}, nil
}

// Auth returns middleware that verifies the session cookie and sets the
// session in context. A missing, tampered or expired token is not an error:
// the request simply proceeds unauthenticated. Use RequireAdmin to block.
func Auth(codec *SessionCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				if session, err := codec.Verify(cookie.Value); err == nil {
					ctx := context.WithValue(r.Context(), sessionContextKey, session)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin returns middleware that rejects unauthenticated requests with
// a JSON 401.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"` + gate.ErrRestricted.Error() + `"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// GateFromContext builds the access gate for the current request: Admin when
// a verified session is present, Public otherwise.
func GateFromContext(ctx context.Context) *gate.Gate {
	if session, ok := GetSessionFromContext(ctx); ok {
		return gate.NewAdmin(session.AdminID, session.Username)
	}
	return gate.NewPublic()
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}
