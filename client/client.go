// Package client is a small Go client for the hotel reservation API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hotel-reservation/models"
	"hotel-reservation/services"
)

// APIError is the error envelope returned by the server.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, logger: logger}
}

// SetToken makes every following request carry the session token.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// do sends the request and decodes the data field of the envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("failed to decode %s %s response (status %d): %w", method, path, resp.StatusCode(), err)
	}
	if !env.Success || resp.IsError() {
		apiErr := env.Error
		if apiErr == nil {
			apiErr = &APIError{Code: "error.unknown", Message: resp.Status()}
		}
		apiErr.Status = resp.StatusCode()
		c.logger.Debug("api error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("code", apiErr.Code),
		)
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s data: %w", method, path, err)
	}
	return nil
}

// Login opens a session and keeps its token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, &session)
	if err != nil {
		return session, err
	}
	c.SetToken(session.Token)
	return session, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (models.AppUser, error) {
	var user models.AppUser
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user)
	return user, err
}

// StayRequest is the booking form. Dates use the YYYY-MM-DD layout.
type StayRequest struct {
	RoomID   string `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests,omitempty"`
}

func (c *Client) Catalog(ctx context.Context) ([]models.CatalogRoom, error) {
	var rooms []models.CatalogRoom
	err := c.do(ctx, http.MethodGet, "/api/guest/rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) Quote(ctx context.Context, stay StayRequest) (services.Quote, error) {
	var q services.Quote
	err := c.do(ctx, http.MethodPost, "/api/guest/quote", stay, &q)
	return q, err
}

func (c *Client) Book(ctx context.Context, stay StayRequest) (models.Reservation, error) {
	var res models.Reservation
	err := c.do(ctx, http.MethodPost, "/api/guest/reservations", stay, &res)
	return res, err
}

func (c *Client) MyReservations(ctx context.Context) ([]models.Reservation, error) {
	var list []models.Reservation
	err := c.do(ctx, http.MethodGet, "/api/guest/reservations", nil, &list)
	return list, err
}

func (c *Client) Cancel(ctx context.Context, id string) (models.Reservation, error) {
	var res models.Reservation
	err := c.do(ctx, http.MethodPost, "/api/guest/reservations/"+id+"/cancel", nil, &res)
	return res, err
}

// Reservations is the front desk list, filtered by query when non-empty.
func (c *Client) Reservations(ctx context.Context, query string) ([]models.Reservation, error) {
	var list []models.Reservation
	path := "/api/reception/reservations"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	err := c.do(ctx, http.MethodGet, path, nil, &list)
	return list, err
}

func (c *Client) Stats(ctx context.Context) (models.FrontDeskStats, error) {
	var stats models.FrontDeskStats
	err := c.do(ctx, http.MethodGet, "/api/reception/stats", nil, &stats)
	return stats, err
}

func (c *Client) CheckIn(ctx context.Context, id string) (models.Reservation, error) {
	var res models.Reservation
	err := c.do(ctx, http.MethodPost, "/api/reception/reservations/"+id+"/check-in", nil, &res)
	return res, err
}

func (c *Client) CheckOut(ctx context.Context, id string) (models.Reservation, error) {
	var res models.Reservation
	err := c.do(ctx, http.MethodPost, "/api/reception/reservations/"+id+"/check-out", nil, &res)
	return res, err
}

func (c *Client) FrontDeskRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := c.do(ctx, http.MethodGet, "/api/reception/rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) Arrivals(ctx context.Context) ([]models.Reservation, error) {
	var list []models.Reservation
	err := c.do(ctx, http.MethodGet, "/api/reception/arrivals", nil, &list)
	return list, err
}

func (c *Client) SetReservationStatus(ctx context.Context, id, status string) (models.Reservation, error) {
	var res models.Reservation
	err := c.do(ctx, http.MethodPatch, "/api/reception/reservations/"+id+"/status", map[string]string{"status": status}, &res)
	return res, err
}

func (c *Client) SetRoomStatus(ctx context.Context, id, status string) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodPatch, "/api/reception/rooms/"+id+"/status", map[string]string{"status": status}, &room)
	return room, err
}

// RoomRequest is the administrator's room form.
type RoomRequest struct {
	Number      string   `json:"number"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description,omitempty"`
}

func (c *Client) Rooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := c.do(ctx, http.MethodGet, "/api/admin/rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) CreateRoom(ctx context.Context, in RoomRequest) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodPost, "/api/admin/rooms", in, &room)
	return room, err
}

func (c *Client) UpdateRoom(ctx context.Context, id string, in RoomRequest) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodPut, "/api/admin/rooms/"+id, in, &room)
	return room, err
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/rooms/"+id, nil, nil)
}

// UserRequest is the administrator's user form. An empty role means guest.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, in UserRequest) (models.SystemUser, error) {
	var user models.SystemUser
	err := c.do(ctx, http.MethodPost, "/api/admin/users", in, &user)
	return user, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserRequest) (models.SystemUser, error) {
	var user models.SystemUser
	err := c.do(ctx, http.MethodPut, "/api/admin/users/"+id, in, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, nil, nil)
}

func (c *Client) Settings(ctx context.Context) (models.HotelSetting, error) {
	var hotel models.HotelSetting
	err := c.do(ctx, http.MethodGet, "/api/admin/settings", nil, &hotel)
	return hotel, err
}

func (c *Client) UpdateSettings(ctx context.Context, in models.HotelSetting) (models.HotelSetting, error) {
	var hotel models.HotelSetting
	err := c.do(ctx, http.MethodPut, "/api/admin/settings", in, &hotel)
	return hotel, err
}

func (c *Client) Users(ctx context.Context) ([]models.SystemUser, error) {
	var users []models.SystemUser
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &users)
	return users, err
}

func (c *Client) ToggleUser(ctx context.Context, id string) (models.SystemUser, error) {
	var user models.SystemUser
	err := c.do(ctx, http.MethodPost, "/api/admin/users/"+id+"/toggle-status", nil, &user)
	return user, err
}

func (c *Client) Report(ctx context.Context) (models.Report, error) {
	var report models.Report
	err := c.do(ctx, http.MethodGet, "/api/admin/report", nil, &report)
	return report, err
}

// Export downloads the xlsx workbook.
func (c *Client) Export(ctx context.Context) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/admin/export")
	if err != nil {
		return nil, fmt.Errorf("failed to download export: %w", err)
	}
	if resp.IsError() {
		var env envelope
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil && env.Error != nil {
			env.Error.Status = resp.StatusCode()
			return nil, env.Error
		}
		return nil, &APIError{Status: resp.StatusCode(), Code: "error.unknown", Message: resp.Status()}
	}
	return resp.Body(), nil
}

func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/admin/reset", nil, nil)
}
