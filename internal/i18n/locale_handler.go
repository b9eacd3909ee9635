package i18n

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/louiscollinsjr/miere-app/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProfileLanguages reads the authenticated user's preferred language;
// "" means no preference on file.
type ProfileLanguages interface {
	PreferredLanguage(ctx context.Context, userID string) (string, error)
}

type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

type LocaleResponse struct {
	Locale string `json:"locale"`
}

type Handler struct {
	prefs    Preferences
	profiles ProfileLanguages
}

func NewHandler(prefs Preferences, profiles ProfileLanguages) *Handler {
	return &Handler{prefs: prefs, profiles: profiles}
}

// Get resolves the effective locale: stored preference, then profile
// language, then the Accept-Language header, then the default.
func (h *Handler) Get(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, "", LocaleResponse{Locale: h.resolve(ctx)})
}

// Set normalizes and persists the chosen locale. Persistence is
// best-effort; a storage failure is logged and the normalized locale is
// still returned.
func (h *Handler) Set(ctx *gin.Context) {
	var req SetLocaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	locale := Normalize(req.Locale)

	if sessionID := ctx.GetString("cart_session_id"); sessionID != "" && h.prefs != nil {
		if err := h.prefs.Set(ctx, sessionID, locale); err != nil {
			log.Printf("⚠️ Failed to persist locale preference: %v", err)
		}
	}

	response.Success(ctx, http.StatusOK, "", LocaleResponse{Locale: locale})
}

func (h *Handler) resolve(ctx *gin.Context) string {
	if sessionID := ctx.GetString("cart_session_id"); sessionID != "" && h.prefs != nil {
		pref, err := h.prefs.Get(ctx, sessionID)
		if err != nil {
			log.Printf("⚠️ Failed to read locale preference: %v", err)
		} else if pref != "" {
			return Normalize(pref)
		}
	}

	if userID := ctx.GetString("user_id_validated"); userID != "" && h.profiles != nil {
		lang, err := h.profiles.PreferredLanguage(ctx, userID)
		if err != nil {
			log.Printf("⚠️ Failed to read profile language: %v", err)
		} else if lang != "" {
			return Normalize(lang)
		}
	}

	if header := ctx.GetHeader("Accept-Language"); header != "" {
		// first tag only; weights don't matter for a two-language set
		first := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
		if i := strings.Index(first, ";"); i >= 0 {
			first = first[:i]
		}
		return Normalize(first)
	}

	return DefaultLocale
}
