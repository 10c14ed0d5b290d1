package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/models"
	"hotel-reservation/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	db, err := config.ConnectDatabase(&config.Config{DBDriver: "sqlite", SQLiteDSN: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	demo := services.NewDemoService(db, log)
	require.NoError(t, demo.Seed(context.Background()))

	auth := services.NewAuthService(services.NewMemorySessionStore(), time.Hour, log)
	rooms := services.NewRoomService(db, log)
	reservations := services.NewReservationService(db, log)
	users := services.NewUserService(db, log)

	ctrls := Controllers{
		Auth:      controllers.NewAuthController(auth),
		Guest:     controllers.NewGuestController(rooms, reservations),
		Reception: controllers.NewReceptionController(rooms, reservations),
		Rooms:     controllers.NewRoomController(rooms),
		Users:     controllers.NewUserController(users),
		Admin: controllers.NewAdminController(
			services.NewReportService(),
			services.NewSettingsService(db),
			services.NewExportService(rooms, reservations, users),
			demo,
		),
	}
	return SetupRouter(ctrls, auth, "", log)
}

func call(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func login(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	w, resp := call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": "demo"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session models.Session
	require.NoError(t, json.Unmarshal(resp.Data, &session))
	return session.Token
}

func TestParseCorsOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseCorsOrigins(""))
	assert.Equal(t, []string{"*"}, parseCorsOrigins(" , "))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, parseCorsOrigins("http://a.test, http://b.test"))
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w, _ := call(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)

	w, resp := call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "someone@hotel.com", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.unknownRoleEmail", resp.Error.Code)
	assert.Equal(t, "email must contain @guest, @receptionist or @administrator", resp.Error.Message)

	w, resp = call(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "juan@guest"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.missingCredentials", resp.Error.Code)

	token := login(t, r, "anyone@guest")
	w, resp = call(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me models.AppUser
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, "juan@guest", me.Email)

	w, _ = call(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, resp = call(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error.invalidSession", resp.Error.Code)
}

func TestRoleGate(t *testing.T) {
	r := setupRouter(t)
	guest := login(t, r, "juan@guest")
	desk := login(t, r, "maria@receptionist")
	admin := login(t, r, "carlos@administrator")

	w, resp := call(t, r, http.MethodGet, "/api/guest/rooms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error.missingToken", resp.Error.Code)

	cases := []struct {
		token string
		path  string
		want  int
	}{
		{guest, "/api/guest/rooms", http.StatusOK},
		{guest, "/api/reception/stats", http.StatusForbidden},
		{guest, "/api/admin/users", http.StatusForbidden},
		{desk, "/api/reception/stats", http.StatusOK},
		{desk, "/api/guest/rooms", http.StatusForbidden},
		{desk, "/api/admin/report", http.StatusForbidden},
		{admin, "/api/admin/report", http.StatusOK},
		{admin, "/api/reception/rooms", http.StatusForbidden},
	}
	for _, tc := range cases {
		w, _ := call(t, r, http.MethodGet, tc.path, tc.token, nil)
		assert.Equal(t, tc.want, w.Code, tc.path)
	}
}

func TestGuestBookingFlow(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "juan@guest")

	stay := gin.H{"roomId": "5", "checkIn": "2025-03-01", "checkOut": "2025-03-03", "guests": 2}

	w, resp := call(t, r, http.MethodPost, "/api/guest/quote", token, stay)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote services.Quote
	require.NoError(t, json.Unmarshal(resp.Data, &quote))
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 400.0, quote.Total)

	w, resp = call(t, r, http.MethodPost, "/api/guest/reservations", token, stay)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res models.Reservation
	require.NoError(t, json.Unmarshal(resp.Data, &res))
	assert.Equal(t, models.ReservationPending, res.Status)
	assert.Equal(t, "Juan Pérez", res.GuestName)
	assert.Equal(t, 400.0, res.Total)

	w, resp = call(t, r, http.MethodGet, "/api/guest/reservations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Reservation
	require.NoError(t, json.Unmarshal(resp.Data, &mine))
	assert.Len(t, mine, 2)

	w, resp = call(t, r, http.MethodPost, "/api/guest/reservations/"+res.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &res))
	assert.Equal(t, models.ReservationCancelled, res.Status)

	w, resp = call(t, r, http.MethodPost, "/api/guest/reservations/"+res.ID+"/cancel", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error.reservationNotCancellable", resp.Error.Code)

	w, resp = call(t, r, http.MethodPost, "/api/guest/reservations", token,
		gin.H{"roomId": "5", "checkIn": "2025-03-03", "checkOut": "2025-03-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.invalidStay", resp.Error.Code)

	w, resp = call(t, r, http.MethodPost, "/api/guest/quote", token,
		gin.H{"roomId": "5", "checkIn": "tomorrow", "checkOut": "2025-03-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.invalidPayload", resp.Error.Code)
}

func TestReceptionFlow(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "maria@receptionist")

	w, resp := call(t, r, http.MethodGet, "/api/reception/reservations?q=juan", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Reservation
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "201", list[0].RoomNumber)

	w, _ = call(t, r, http.MethodPost, "/api/reception/reservations/1/check-in", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = call(t, r, http.MethodGet, "/api/reception/rooms", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &rooms))
	for _, room := range rooms {
		if room.Number == "201" {
			assert.Equal(t, models.RoomStatusOccupied, room.Status)
			assert.Equal(t, "Juan Pérez", room.CurrentGuest)
		}
	}

	w, _ = call(t, r, http.MethodPost, "/api/reception/reservations/1/check-out", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = call(t, r, http.MethodGet, "/api/reception/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.FrontDeskStats
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, 0, stats.PendingCheckIns)
	assert.Equal(t, 1, stats.PendingCheckOuts)

	w, resp = call(t, r, http.MethodPatch, "/api/reception/rooms/3/status", token, gin.H{"status": "available"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = call(t, r, http.MethodPatch, "/api/reception/reservations/1/status", token, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.invalidReservationStatus", resp.Error.Code)

	w, resp = call(t, r, http.MethodPost, "/api/reception/reservations/404/check-in", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error.reservationNotFound", resp.Error.Code)
}

func TestAdminRoomsAndUsers(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "carlos@administrator")

	w, resp := call(t, r, http.MethodPost, "/api/admin/rooms", token, gin.H{
		"number": "601", "type": "Loft", "price": 180, "capacity": 3, "amenities": "WiFi, Balcony, ",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var room models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &room))
	assert.Equal(t, []string{"WiFi", "Balcony"}, []string(room.Amenities))
	assert.Equal(t, models.RoomStatusAvailable, room.Status)

	w, resp = call(t, r, http.MethodPost, "/api/admin/rooms", token, gin.H{"number": "601", "type": "Loft"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error.duplicateRoomNumber", resp.Error.Code)

	w, resp = call(t, r, http.MethodPost, "/api/admin/rooms", token, gin.H{"type": "Loft"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.invalidPayload", resp.Error.Code)

	w, _ = call(t, r, http.MethodPut, "/api/admin/rooms/"+room.ID, token, gin.H{
		"number": "601", "type": "Loft", "price": 190, "amenities": []string{"WiFi"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, http.MethodDelete, "/api/admin/rooms/"+room.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = call(t, r, http.MethodDelete, "/api/admin/rooms/"+room.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error.roomNotFound", resp.Error.Code)

	w, resp = call(t, r, http.MethodPost, "/api/admin/users", token, gin.H{"name": "Lucía", "email": "lucia@receptionist", "role": "receptionist"})
	require.Equal(t, http.StatusCreated, w.Code)
	var user models.SystemUser
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, models.UserStatusActive, user.Status)

	w, resp = call(t, r, http.MethodPost, "/api/admin/users/"+user.ID+"/toggle-status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, models.UserStatusInactive, user.Status)

	w, _ = call(t, r, http.MethodDelete, "/api/admin/users/"+user.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminSettingsExportAndReset(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r, "carlos@administrator")

	w, resp := call(t, r, http.MethodGet, "/api/admin/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hotel models.HotelSetting
	require.NoError(t, json.Unmarshal(resp.Data, &hotel))
	assert.Equal(t, "Tierra Viva", hotel.Name)

	hotel.DepositPercent = 150
	w, resp = call(t, r, http.MethodPut, "/api/admin/settings", token, hotel)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error.invalidSetting", resp.Error.Code)

	w, _ = call(t, r, http.MethodGet, "/api/admin/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, w.Body.Len())

	w, _ = call(t, r, http.MethodDelete, "/api/admin/rooms/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = call(t, r, http.MethodPost, "/api/admin/reset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = call(t, r, http.MethodGet, "/api/admin/rooms", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &rooms))
	assert.Len(t, rooms, 7)
}
