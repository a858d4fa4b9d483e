package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Minyanaing/item-market/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext returns a gin context backed by a recorder, with an
// optional cookie carried over from a previous response
func newTestContext(cookieValue string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/market", nil)
	if cookieValue != "" {
		c.Request.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: cookieValue})
	}
	return c, w
}

// flashCookieValue extracts the flash cookie set on the response
func flashCookieValue(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	response := http.Response{Header: w.Header()}
	for _, cookie := range response.Cookies() {
		if cookie.Name == DefaultCookieName {
			return cookie.Value
		}
	}
	t.Fatal("flash cookie not set on response")
	return ""
}

func TestCookieStoreAddThenPop(t *testing.T) {
	store := NewCookieStore()

	c, w := newTestContext("")
	store.Add(c,
		entity.NewSuccessNotification("Congratulations! You purchased %s for $%s", "Phone", "500.00"),
		entity.NewDangerNotification("Something went wrong with selling %s!", "Laptop"),
	)

	// next request carries the cookie back
	c2, _ := newTestContext(flashCookieValue(t, w))
	notifications := store.Pop(c2)

	require.Len(t, notifications, 2)
	assert.Equal(t, "Congratulations! You purchased Phone for $500.00", notifications[0].Message)
	assert.Equal(t, entity.CategorySuccess, notifications[0].Category)
	assert.Equal(t, "Something went wrong with selling Laptop!", notifications[1].Message)
	assert.Equal(t, entity.CategoryDanger, notifications[1].Category)
}

func TestCookieStorePopClearsCookie(t *testing.T) {
	store := NewCookieStore()

	c, w := newTestContext("")
	store.Add(c, entity.NewInfoNotification("You have been logged out!"))

	c2, w2 := newTestContext(flashCookieValue(t, w))
	notifications := store.Pop(c2)
	require.Len(t, notifications, 1)

	// the response clears the cookie
	response := http.Response{Header: w2.Header()}
	var cleared bool
	for _, cookie := range response.Cookies() {
		if cookie.Name == DefaultCookieName {
			cleared = cookie.MaxAge < 0
		}
	}
	assert.True(t, cleared)
}

func TestCookieStoreAddAccumulates(t *testing.T) {
	store := NewCookieStore()

	c, w := newTestContext("")
	store.Add(c, entity.NewSuccessNotification("first"))

	// a second Add on a later request appends to the pending messages
	c2, w2 := newTestContext(flashCookieValue(t, w))
	store.Add(c2, entity.NewDangerNotification("second"))

	c3, _ := newTestContext(flashCookieValue(t, w2))
	notifications := store.Pop(c3)

	require.Len(t, notifications, 2)
	assert.Equal(t, "first", notifications[0].Message)
	assert.Equal(t, "second", notifications[1].Message)
}

func TestCookieStoreSurvivesCookieEscaping(t *testing.T) {
	store := NewCookieStore()

	// this payload's base64 form is padded, so SetCookie escapes the
	// trailing "==" to %3D%3D on the wire; the read side must unescape
	// before decoding or the message is lost
	c, w := newTestContext("")
	store.Add(c, entity.NewInfoNotification("You have been logged out!"))

	raw := flashCookieValue(t, w)
	require.Contains(t, raw, "%3D")

	c2, _ := newTestContext(raw)
	notifications := store.Pop(c2)

	require.Len(t, notifications, 1)
	assert.Equal(t, "You have been logged out!", notifications[0].Message)
	assert.Equal(t, entity.CategoryInfo, notifications[0].Category)
}

func TestCookieStoreEmptyAndMalformed(t *testing.T) {
	store := NewCookieStore()

	t.Run("no cookie yields no notifications", func(t *testing.T) {
		c, _ := newTestContext("")
		assert.Nil(t, store.Pop(c))
	})

	t.Run("malformed cookie is treated as empty", func(t *testing.T) {
		c, _ := newTestContext("%%%not-base64%%%")
		assert.Nil(t, store.Pop(c))
	})

	t.Run("adding nothing sets no cookie", func(t *testing.T) {
		c, w := newTestContext("")
		store.Add(c)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})
}
