package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/safedroid/safedroid/internal/http/viewmodels"
)

const noticeCookieName = "sd_notice"

// setNotice stores a one-shot notice in a short-lived cookie so it survives
// the post-redirect-get round trip.
func (h *Handlers) setNotice(c *echo.Context, notice viewmodels.NoticeViewData) {
	notice.Category = normalizeNoticeCategory(notice.Category)
	notice.Message = strings.TrimSpace(notice.Message)
	if notice.Message == "" {
		return
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     noticeCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   30,
		HttpOnly: true,
		Secure:   h.Cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) popNotice(c *echo.Context) *viewmodels.NoticeViewData {
	cookie, err := c.Cookie(noticeCookieName)
	if err != nil || cookie == nil {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     noticeCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.Cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var notice viewmodels.NoticeViewData
	if err := json.Unmarshal(raw, &notice); err != nil {
		return nil
	}

	notice.Category = normalizeNoticeCategory(notice.Category)
	notice.Message = strings.TrimSpace(notice.Message)
	if notice.Message == "" {
		return nil
	}

	return &notice
}

func normalizeNoticeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "success", "error", "warning", "info":
		return strings.ToLower(strings.TrimSpace(category))
	default:
		return "info"
	}
}
