package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/models"
	"hotel-reservation/routes"
	"hotel-reservation/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	db, err := config.ConnectDatabase(&config.Config{DBDriver: "sqlite", SQLiteDSN: ":memory:"}, log)
	require.NoError(t, err)
	demo := services.NewDemoService(db, log)
	require.NoError(t, demo.Seed(context.Background()))

	auth := services.NewAuthService(services.NewMemorySessionStore(), time.Hour, log)
	rooms := services.NewRoomService(db, log)
	reservations := services.NewReservationService(db, log)
	users := services.NewUserService(db, log)

	router := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(auth),
		Guest:     controllers.NewGuestController(rooms, reservations),
		Reception: controllers.NewReceptionController(rooms, reservations),
		Rooms:     controllers.NewRoomController(rooms),
		Users:     controllers.NewUserController(users),
		Admin: controllers.NewAdminController(services.NewReportService(), services.NewSettingsService(db),
			services.NewExportService(rooms, reservations, users), demo),
	}, auth, "", log)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return srv
}

func TestClient_GuestJourney(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	c := New(srv.URL, nil)

	session, err := c.Login(ctx, "juan@guest", "demo")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, session.User.Role)

	catalog, err := c.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 7)

	stay := StayRequest{RoomID: "1", CheckIn: "2025-06-10", CheckOut: "2025-06-13"}
	q, err := c.Quote(ctx, stay)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 240.0, q.Total)

	res, err := c.Book(ctx, stay)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, res.Status)

	res, err = c.Cancel(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, res.Status)

	_, err = c.Stats(ctx)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "error.forbidden", apiErr.Code)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Me(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestClient_LoginRejected(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL, zap.NewNop())

	_, err := c.Login(context.Background(), "juan@example.com", "demo")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "error.unknownRoleEmail", apiErr.Code)
}

func TestClient_FrontDesk(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	c := New(srv.URL, nil)
	_, err := c.Login(ctx, "maria@receptionist", "demo")
	require.NoError(t, err)

	list, err := c.Reservations(ctx, "carlos lópez")
	require.NoError(t, err)
	require.Len(t, list, 1)

	res, err := c.CheckIn(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCheckedIn, res.Status)

	rooms, err := c.FrontDeskRooms(ctx)
	require.NoError(t, err)
	for _, r := range rooms {
		if r.Number == "101" {
			assert.Equal(t, models.RoomStatusOccupied, r.Status)
		}
	}

	res, err = c.CheckOut(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCheckedOut, res.Status)
}

func TestClient_Admin(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	c := New(srv.URL, nil)
	_, err := c.Login(ctx, "carlos@administrator", "demo")
	require.NoError(t, err)

	report, err := c.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 156, report.TotalReservations)

	users, err := c.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	user, err := c.ToggleUser(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusInactive, user.Status)

	data, err := c.Export(ctx)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)

	require.NoError(t, c.Reset(ctx))
	users, err = c.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, users[0].Status)
}

func TestClient_FrontDeskStatusChanges(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	c := New(srv.URL, nil)
	_, err := c.Login(ctx, "maria@receptionist", "demo")
	require.NoError(t, err)

	arrivals, err := c.Arrivals(ctx)
	require.NoError(t, err)
	assert.Len(t, arrivals, 2)

	res, err := c.SetReservationStatus(ctx, "3", models.ReservationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	room, err := c.SetRoomStatus(ctx, "2", models.RoomStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)

	_, err = c.SetRoomStatus(ctx, "2", "flooded")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "error.invalidRoomStatus", apiErr.Code)
}

func TestClient_AdminManagement(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	c := New(srv.URL, nil)
	_, err := c.Login(ctx, "carlos@administrator", "demo")
	require.NoError(t, err)

	room, err := c.CreateRoom(ctx, RoomRequest{Number: "701", Type: "Studio", Price: 95, Capacity: 2, Amenities: []string{"WiFi"}})
	require.NoError(t, err)
	room, err = c.UpdateRoom(ctx, room.ID, RoomRequest{Number: "701", Type: "Studio", Price: 105, Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, 105.0, room.Price)

	rooms, err := c.Rooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 8)
	require.NoError(t, c.DeleteRoom(ctx, room.ID))

	user, err := c.CreateUser(ctx, UserRequest{Name: "Elena", Email: "elena@guest"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, user.Role)
	user, err = c.UpdateUser(ctx, user.ID, UserRequest{Name: "Elena R.", Email: "elena@receptionist", Role: "receptionist"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleReceptionist, user.Role)
	require.NoError(t, c.DeleteUser(ctx, user.ID))

	hotel, err := c.Settings(ctx)
	require.NoError(t, err)
	hotel.CheckOutTime = "12:00"
	hotel, err = c.UpdateSettings(ctx, hotel)
	require.NoError(t, err)
	assert.Equal(t, "12:00", hotel.CheckOutTime)
}
