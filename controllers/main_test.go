package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-management/auth"
	"hotel-management/controllers"
	"hotel-management/models"
	"hotel-management/routes"
	"hotel-management/services"
)

const testSecret = "handler-test-secret"

type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	users    *services.UserService
	rooms    *services.RoomService
	items    *services.ItemService
	bookings *services.BookingService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Room{}, &models.Item{}))

	users := services.NewUserService(db, auth.BcryptHasher{}, auth.NewJWTIssuer(testSecret))
	rooms := services.NewRoomService(db)
	items := services.NewItemService(db)
	bookings := services.NewBookingService(db)

	router := routes.SetupRouter(
		controllers.NewUserController(users),
		controllers.NewRoomController(rooms, users, bookings),
		controllers.NewItemController(items),
		"",
		zap.NewNop(),
	)

	return &testServer{router: router, db: db, users: users, rooms: rooms, items: items, bookings: bookings}
}

// envelope mirrors utils.Envelope with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "every response body is an envelope")
	return w, env
}
