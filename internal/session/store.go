package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store keeps the backend's session cookie across process runs. Each command
// invocation is the CLI's page load, so without persistence every command
// would start unauthenticated.
type Store struct {
	path string
	base *url.URL
	jar  *cookiejar.Jar
}

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
	Secure  bool      `json:"secure,omitempty"`
}

func NewStore(path, baseURL string) (*Store, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path, base: base, jar: jar}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Jar exposes the cookie jar for the HTTP client.
func (s *Store) Jar() http.CookieJar {
	return s.jar
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var saved []storedCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		// a corrupt session file means a fresh session, not a fatal error
		return nil
	}

	cookies := make([]*http.Cookie, 0, len(saved))
	now := time.Now()
	for _, c := range saved {
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		})
	}
	s.jar.SetCookies(s.base, cookies)
	return nil
}

// Save writes the cookies for the configured backend to disk, owner-readable
// only.
func (s *Store) Save() error {
	cookies := s.jar.Cookies(s.base)
	saved := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		saved = append(saved, storedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		})
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear drops the persisted session and empties the jar.
func (s *Store) Clear() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	s.jar = jar

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SessionExpiry peeks at the session cookie and, when it is JWT-shaped,
// reports its expiry from the unverified claims. Verification is the server's
// job; this only drives a "session expired, log in again" hint.
func (s *Store) SessionExpiry() (time.Time, bool) {
	for _, c := range s.jar.Cookies(s.base) {
		claims := jwt.MapClaims{}
		parser := jwt.NewParser()
		if _, _, err := parser.ParseUnverified(c.Value, claims); err != nil {
			continue
		}
		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil {
			continue
		}
		return exp.Time, true
	}
	return time.Time{}, false
}
