package console

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/recordsync"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

type flashToast struct {
	Kind    recordsync.ToastKind `json:"k"`
	Title   string               `json:"t"`
	Message string               `json:"m"`
	TimerMS int64                `json:"d,omitempty"`
}

// setFlash carries a toast across the redirect that follows a form post.
func setFlash(c *gin.Context, t recordsync.Toast) {
	data, err := json.Marshal(flashToast{
		Kind:    t.Kind,
		Title:   t.Title,
		Message: t.Message,
		TimerMS: t.Timer.Milliseconds(),
	})
	if err != nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash returns and clears the pending toast, if any.
func takeFlash(c *gin.Context) *recordsync.Toast {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f flashToast
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	return &recordsync.Toast{
		Kind:    f.Kind,
		Title:   f.Title,
		Message: f.Message,
		Timer:   time.Duration(f.TimerMS) * time.Millisecond,
	}
}
