package websocket

import (
	"log/slog"
	"net/http"

	ws "github.com/coder/websocket"
	"github.com/dukerupert/mealcart/internal/auth"
)

// TokenParser verifies the access token passed in the query string.
type TokenParser interface {
	Parse(raw string) (auth.AuthContext, error)
}

// HandleWebSocket authenticates ?token= and runs the connection as a Hub
// client for that user. Browsers cannot set headers on the upgrade request.
func HandleWebSocket(hub *Hub, tokens TokenParser, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac, err := tokens.Parse(r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Warn("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		logger.Debug("websocket connected", "user_id", ac.UserID)
		NewClient(hub, conn, ac.UserID).Run(r.Context())
	}
}
