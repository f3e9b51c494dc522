package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/myrjola/trackmate/internal/e2etest"
	"github.com/myrjola/trackmate/internal/logging"
)

// SmokeTest exercises the read-only surface of a running server.
func SmokeTest(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var program struct {
		Days []struct {
			Exercises []struct {
				Name string `json:"name"`
			} `json:"exercises"`
		} `json:"days"`
	}
	status, err := client.JSON(ctx, http.MethodGet, "/api/program", nil, &program)
	if err != nil {
		return fmt.Errorf("get program: %w", err)
	}
	if status != http.StatusOK || len(program.Days) == 0 || len(program.Days[0].Exercises) == 0 {
		return fmt.Errorf("unexpected program response with status %d", status)
	}

	if status, err = client.JSON(ctx, http.MethodGet, "/api/profile", nil, &struct{}{}); err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get profile: status %d", status)
	}

	name := program.Days[0].Exercises[0].Name
	doc, err := client.GetDoc(ctx, "/exercises/"+url.PathEscape(name)+"/info")
	if err != nil {
		return fmt.Errorf("get exercise info: %w", err)
	}
	if got, _ := e2etest.Text(doc, "h2"); got != name {
		return errors.New("exercise info does not name the exercise")
	}
	return nil
}

func main() {
	logger := logging.New(os.Stdout, slog.LevelDebug, false)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	serverURL := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		serverURL = "http://" + hostname
	}

	client := e2etest.NewClient(serverURL)
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = SmokeTest(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
