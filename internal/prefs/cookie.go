package prefs

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Cookie names for the two slots. The browser is the client-local storage
// for the web surface, so preferences ride along with every request.
const (
	cookieVisibleColumns = "litgrid_" + SlotVisibleColumns
	cookieSearchField    = "litgrid_" + SlotSearchField
)

const cookieTTL = 365 * 24 * time.Hour

// CookieStore binds a Store to one request/response pair. Build one per
// request; Load reads the request's cookies, Save sets cookies on the
// response.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCookieStore returns a store for one request cycle.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r}
}

// Load reads both slots from the request cookies. ok is false when neither
// slot has ever been saved.
func (s *CookieStore) Load() (Preferences, bool, error) {
	var p Preferences
	found := false

	if c, err := s.r.Cookie(cookieVisibleColumns); err == nil {
		raw, err := url.QueryUnescape(c.Value)
		if err != nil {
			return Preferences{}, false, fmt.Errorf("decoding %s cookie: %w", SlotVisibleColumns, err)
		}
		found = true
		if raw == "" {
			p.VisibleColumns = []string{}
		} else {
			p.VisibleColumns = strings.Split(raw, ",")
		}
	}
	if c, err := s.r.Cookie(cookieSearchField); err == nil {
		raw, err := url.QueryUnescape(c.Value)
		if err != nil {
			return Preferences{}, false, fmt.Errorf("decoding %s cookie: %w", SlotSearchField, err)
		}
		found = true
		p.SearchField = raw
	}
	return p, found, nil
}

// Save writes both slots as long-lived cookies on the response.
func (s *CookieStore) Save(p Preferences) error {
	if s.w == nil {
		return fmt.Errorf("cookie store has no response to write to")
	}
	expires := time.Now().Add(cookieTTL)
	http.SetCookie(s.w, &http.Cookie{
		Name:     cookieVisibleColumns,
		Value:    url.QueryEscape(strings.Join(p.VisibleColumns, ",")),
		Path:     "/",
		Expires:  expires,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(s.w, &http.Cookie{
		Name:     cookieSearchField,
		Value:    url.QueryEscape(p.SearchField),
		Path:     "/",
		Expires:  expires,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
