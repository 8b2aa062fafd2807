package rest

import (
	"net/http"
	"time"

	"github.com/rocketscienceinc/rockpaperscissors/internal/pkg"
)

const (
	sessionCookie   = "user_session"
	sessionLifetime = 24 * time.Hour
)

// session - returns the session id of the browser, issuing a new cookie when there is none.
func session(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err == nil && pkg.IsValidSessionID(cookie.Value) {
		return cookie.Value
	}

	sessionID := pkg.GenerateNewSessionID()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}
