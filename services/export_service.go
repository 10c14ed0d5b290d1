package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"hotel-reservation/utils"

	"github.com/xuri/excelize/v2"
)

var (
	RoomExportHeader        = []string{"ID", "Number", "Type", "Price", "Capacity", "Amenities", "Status", "Current Guest", "Description"}
	ReservationExportHeader = []string{"ID", "Guest", "Email", "Room", "Room Type", "Check-in", "Check-out", "Guests", "Total", "Status"}
	UserExportHeader        = []string{"ID", "Name", "Email", "Role", "Status", "Created At"}
)

const (
	RoomsSheet        = "Rooms"
	ReservationsSheet = "Reservations"
	UsersSheet        = "Users"
)

// ExportService builds the administrator's data export workbook.
type ExportService struct {
	Rooms        *RoomService
	Reservations *ReservationService
	Users        *UserService
}

func NewExportService(rooms *RoomService, reservations *ReservationService, users *UserService) *ExportService {
	return &ExportService{Rooms: rooms, Reservations: reservations, Users: users}
}

// Workbook returns an XLSX file with one sheet per entity.
func (s *ExportService) Workbook(ctx context.Context) ([]byte, error) {
	rooms, err := s.Rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.Reservations.List(ctx, "")
	if err != nil {
		return nil, err
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	roomRows := make([][]interface{}, 0, len(rooms))
	for _, r := range rooms {
		roomRows = append(roomRows, []interface{}{
			r.ID, r.Number, r.Type, r.Price, r.Capacity,
			strings.Join(r.Amenities, ", "), r.Status, r.CurrentGuest, r.Description,
		})
	}
	resRows := make([][]interface{}, 0, len(reservations))
	for _, r := range reservations {
		resRows = append(resRows, []interface{}{
			r.ID, r.GuestName, r.GuestEmail, r.RoomNumber, r.RoomType,
			r.CheckIn.Format(utils.DateLayout), r.CheckOut.Format(utils.DateLayout),
			r.Guests, r.Total, r.Status,
		})
	}
	userRows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		userRows = append(userRows, []interface{}{
			u.ID, u.Name, u.Email, u.Role, u.Status, u.CreatedAt.Format(utils.DateLayout),
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{RoomsSheet, RoomExportHeader, roomRows},
		{ReservationsSheet, ReservationExportHeader, resRows},
		{UsersSheet, UserExportHeader, userRows},
	}
	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sh.name, err)
		}
		if err := writeSheet(f, sh.name, sh.header, sh.rows, headerStyle); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int) error {
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
