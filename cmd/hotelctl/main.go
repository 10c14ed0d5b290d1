// Command hotelctl drives the hotel reservation API from a terminal.
//
//	hotelctl -email juan@guest rooms
//	hotelctl -email juan@guest book <roomId> 2025-03-01 2025-03-04
//	hotelctl -email maria@receptionist checkin <reservationId>
//	hotelctl -email carlos@administrator export report.xlsx
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"hotel-reservation/client"
	"hotel-reservation/config"
)

func main() {
	baseURL := flag.String("url", envOr("HOTEL_API_URL", "http://localhost:8080"), "API base URL")
	email := flag.String("email", "", "login email (must contain @guest, @receptionist or @administrator)")
	password := flag.String("password", "demo", "login password")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := config.NewLogger(level, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	args := flag.Args()
	if len(args) == 0 || *email == "" {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "commands: me, rooms, quote, book, mine, cancel, reservations, stats, checkin, checkout, users, toggle, report, export, reset")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*baseURL, logger)
	if _, err := c.Login(ctx, *email, *password); err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}

	out, err := run(ctx, c, args)
	if err != nil {
		logger.Fatal("command failed", zap.String("command", args[0]), zap.Error(err))
	}
	if out != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func need(args []string, n int, usage string) error {
	if len(args) < n+1 {
		return fmt.Errorf("usage: %s %s", args[0], usage)
	}
	return nil
}

func run(ctx context.Context, c *client.Client, args []string) (interface{}, error) {
	switch args[0] {
	case "me":
		return c.Me(ctx)
	case "rooms":
		return c.Catalog(ctx)
	case "quote", "book":
		if err := need(args, 3, "<roomId> <checkIn> <checkOut>"); err != nil {
			return nil, err
		}
		stay := client.StayRequest{RoomID: args[1], CheckIn: args[2], CheckOut: args[3]}
		if args[0] == "quote" {
			return c.Quote(ctx, stay)
		}
		return c.Book(ctx, stay)
	case "mine":
		return c.MyReservations(ctx)
	case "cancel":
		if err := need(args, 1, "<reservationId>"); err != nil {
			return nil, err
		}
		return c.Cancel(ctx, args[1])
	case "reservations":
		q := ""
		if len(args) > 1 {
			q = args[1]
		}
		return c.Reservations(ctx, q)
	case "stats":
		return c.Stats(ctx)
	case "checkin":
		if err := need(args, 1, "<reservationId>"); err != nil {
			return nil, err
		}
		return c.CheckIn(ctx, args[1])
	case "checkout":
		if err := need(args, 1, "<reservationId>"); err != nil {
			return nil, err
		}
		return c.CheckOut(ctx, args[1])
	case "users":
		return c.Users(ctx)
	case "toggle":
		if err := need(args, 1, "<userId>"); err != nil {
			return nil, err
		}
		return c.ToggleUser(ctx, args[1])
	case "report":
		return c.Report(ctx)
	case "export":
		if err := need(args, 1, "<file.xlsx>"); err != nil {
			return nil, err
		}
		data, err := c.Export(ctx)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", args[1], err)
		}
		return map[string]interface{}{"file": args[1], "bytes": len(data)}, nil
	case "reset":
		return nil, c.Reset(ctx)
	default:
		return nil, fmt.Errorf("unknown command %q", args[0])
	}
}
