package i18n_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louiscollinsjr/miere-app/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrefs struct {
	stored map[string]string
	err    error
}

func (f *fakePrefs) Set(ctx context.Context, sessionID, locale string) error {
	if f.err != nil {
		return f.err
	}
	if f.stored == nil {
		f.stored = map[string]string{}
	}
	f.stored[sessionID] = locale
	return nil
}

func (f *fakePrefs) Get(ctx context.Context, sessionID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.stored[sessionID], nil
}

type fakeProfiles struct {
	lang string
	err  error
}

func (f *fakeProfiles) PreferredLanguage(ctx context.Context, userID string) (string, error) {
	return f.lang, f.err
}

func setupLocaleRouter(h *i18n.Handler, sessionID, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if sessionID != "" {
			c.Set("cart_session_id", sessionID)
		}
		if userID != "" {
			c.Set("user_id_validated", userID)
		}
		c.Next()
	})
	r.GET("/locale", h.Get)
	r.PUT("/locale", h.Set)
	return r
}

func localeFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Data i18n.LocaleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data.Locale
}

func TestLocaleHandler_Set(t *testing.T) {
	t.Run("persists_normalized_locale", func(t *testing.T) {
		prefs := &fakePrefs{}
		r := setupLocaleRouter(i18n.NewHandler(prefs, nil), "sess-1", "")

		req := httptest.NewRequest(http.MethodPut, "/locale", strings.NewReader(`{"locale":"RO-ro"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ro", localeFrom(t, w))
		assert.Equal(t, "ro", prefs.stored["sess-1"])
	})

	t.Run("storage_failure_is_best_effort", func(t *testing.T) {
		prefs := &fakePrefs{err: errors.New("redis down")}
		r := setupLocaleRouter(i18n.NewHandler(prefs, nil), "sess-1", "")

		req := httptest.NewRequest(http.MethodPut, "/locale", strings.NewReader(`{"locale":"ro"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ro", localeFrom(t, w))
	})

	t.Run("unsupported_locale_falls_back", func(t *testing.T) {
		prefs := &fakePrefs{}
		r := setupLocaleRouter(i18n.NewHandler(prefs, nil), "sess-1", "")

		req := httptest.NewRequest(http.MethodPut, "/locale", strings.NewReader(`{"locale":"fr-FR"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "en", localeFrom(t, w))
	})
}

func TestLocaleHandler_Get(t *testing.T) {
	t.Run("stored_preference_wins", func(t *testing.T) {
		prefs := &fakePrefs{stored: map[string]string{"sess-1": "ro"}}
		profiles := &fakeProfiles{lang: "en"}
		r := setupLocaleRouter(i18n.NewHandler(prefs, profiles), "sess-1", "user-1")

		req := httptest.NewRequest(http.MethodGet, "/locale", nil)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "ro", localeFrom(t, w))
	})

	t.Run("profile_language_when_no_preference", func(t *testing.T) {
		prefs := &fakePrefs{}
		profiles := &fakeProfiles{lang: "ro"}
		r := setupLocaleRouter(i18n.NewHandler(prefs, profiles), "sess-1", "user-1")

		req := httptest.NewRequest(http.MethodGet, "/locale", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "ro", localeFrom(t, w))
	})

	t.Run("accept_language_header_fallback", func(t *testing.T) {
		r := setupLocaleRouter(i18n.NewHandler(&fakePrefs{}, nil), "sess-1", "")

		req := httptest.NewRequest(http.MethodGet, "/locale", nil)
		req.Header.Set("Accept-Language", "ro-RO,ro;q=0.9,en;q=0.8")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "ro", localeFrom(t, w))
	})

	t.Run("default_when_nothing_known", func(t *testing.T) {
		r := setupLocaleRouter(i18n.NewHandler(&fakePrefs{}, nil), "sess-1", "")

		req := httptest.NewRequest(http.MethodGet, "/locale", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "en", localeFrom(t, w))
	})
}
