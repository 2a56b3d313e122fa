// controllers/counter_ws_controller.go
package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/maverick001/EasyVocab/services"
	"github.com/maverick001/EasyVocab/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user app behind the site password; pages connect from the
	// same origin the API serves.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/counter?token=
//
// Pages subscribe here for the authoritative daily counter instead of
// caching their own. Browsers cannot set the Authorization header on a
// websocket upgrade, so the session token rides in the query string.
func CounterWS(c *gin.Context) {
	if os.Getenv("SITE_PASSWORD") != "" {
		if err := utils.ValidateJWT(c.Query("token")); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("counter ws: upgrade failed: %v", err)
		return
	}

	client := &services.WSClient{Conn: conn}
	services.Counter.Register(client)

	// Push the current state immediately so the page renders without a
	// second round-trip.
	if count, err := services.GetDailyCount(); err == nil {
		services.Counter.BroadcastCount(services.LedgerToday(), count)
	}

	go func() {
		defer services.Counter.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
