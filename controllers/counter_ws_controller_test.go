package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"
	"github.com/maverick001/EasyVocab/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func counterWSRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/counter", CounterWS)
	return r
}

func TestCounterWSRejectsMissingToken(t *testing.T) {
	t.Setenv("SITE_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	r := counterWSRouter(t)

	for _, target := range []string{"/ws/counter", "/ws/counter?token=not-a-token"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", target, w.Code)
		}
	}
}

func TestCounterWSAcceptsValidToken(t *testing.T) {
	t.Setenv("SITE_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file:TestCounterWSAcceptsValidToken?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.DailyStudyLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	config.LedgerTZ = time.FixedZone("LEDGER", 10*3600)

	server := httptest.NewServer(counterWSRouter(t))
	defer server.Close()

	token, err := utils.GenerateJWT()
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/counter?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v (resp: %+v)", err, resp)
	}
	defer conn.Close()

	// The handler pushes the current counter state on connect.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read initial state: %v", err)
	}
	if !strings.Contains(string(msg), `"count"`) {
		t.Fatalf("initial message = %s, want the counter payload", msg)
	}
}
