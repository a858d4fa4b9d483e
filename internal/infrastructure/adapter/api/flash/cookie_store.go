// Package flash implements the notification sink: messages emitted during
// one request are carried in a cookie and consumed on the next page view,
// the way server-rendered apps flash messages across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Minyanaing/item-market/internal/domain/entity"
)

const (
	// DefaultCookieName is the cookie used to carry pending notifications
	DefaultCookieName = "im_flash"

	// cookie lifetime; a flash not consumed within this window is dropped
	defaultMaxAge = 300
)

// flashMessage is the wire form of one notification
type flashMessage struct {
	Message  string `json:"m"`
	Category string `json:"c"`
}

// CookieStore reads and writes flash notifications through a cookie
type CookieStore struct {
	cookieName string
	maxAge     int
}

// NewCookieStore creates a cookie-backed flash store
func NewCookieStore() *CookieStore {
	return &CookieStore{
		cookieName: DefaultCookieName,
		maxAge:     defaultMaxAge,
	}
}

// Add appends notifications to the pending flash cookie
func (s *CookieStore) Add(c *gin.Context, notifications ...entity.Notification) {
	if len(notifications) == 0 {
		return
	}

	pending := s.peek(c)
	for _, n := range notifications {
		pending = append(pending, flashMessage{
			Message:  n.Message,
			Category: string(n.Category),
		})
	}

	encoded, err := encode(pending)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, encoded, s.maxAge, "/", "", false, true)
}

// Pop returns all pending notifications and clears the cookie
func (s *CookieStore) Pop(c *gin.Context) []entity.Notification {
	pending := s.peek(c)
	if len(pending) == 0 {
		return nil
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", false, true)

	notifications := make([]entity.Notification, 0, len(pending))
	for _, m := range pending {
		notifications = append(notifications, entity.Notification{
			Message:  m.Message,
			Category: entity.NotificationCategory(m.Category),
		})
	}
	return notifications
}

// peek decodes the current cookie without clearing it. A malformed cookie
// is treated as empty. Reading through gin undoes the URL escaping SetCookie
// applied on the write side; base64 padding arrives as %3D otherwise.
func (s *CookieStore) peek(c *gin.Context) []flashMessage {
	value, err := c.Cookie(s.cookieName)
	if err != nil || value == "" {
		return nil
	}
	return decode(value)
}

func encode(messages []flashMessage) (string, error) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func decode(value string) []flashMessage {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var messages []flashMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}
