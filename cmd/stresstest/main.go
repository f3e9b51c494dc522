package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/myrjola/trackmate/internal/e2etest"
	"github.com/myrjola/trackmate/internal/envstruct"
	"github.com/myrjola/trackmate/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	requestTimeout          = 10 * time.Second
	maxConcurrentOperations = 20
	baseWeight              = 40.0
	baseReps                = 8
	bodyweightKg            = 80
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
)

type config struct {
	// ConfirmWipe must be set because the stress test starts by deleting every record on the server.
	ConfirmWipe bool `env:"TRACKMATE_STRESSTEST_CONFIRM_WIPE" envDefault:"false"`
}

type programShape struct {
	Weeks           int `json:"weeks"`
	SetsPerExercise int `json:"sets_per_exercise"`
	Days            []struct {
		Exercises []struct {
			Name string `json:"name"`
		} `json:"exercises"`
	} `json:"days"`
}

type daySummary struct {
	Completed bool `json:"completed"`
	Summary   struct {
		CompletedSets int `json:"completed_sets"`
		ExpectedSets  int `json:"expected_sets"`
	} `json:"summary"`
}

type counters struct {
	success atomic.Int64
	failure atomic.Int64
}

func (c *counters) rate() float64 {
	total := c.success.Load() + c.failure.Load()
	if total == 0 {
		return 0
	}
	return float64(c.success.Load()) / float64(total) * percentageMultiplier
}

// do sends one request expecting wantStatus and records the outcome.
func (c *counters) do(
	ctx context.Context,
	client *e2etest.Client,
	logger *slog.Logger,
	method, path string,
	body any,
	wantStatus int,
) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	status, err := client.JSON(ctx, method, path, body, nil)
	if err == nil && status != wantStatus {
		err = fmt.Errorf("status %d, want %d", status, wantStatus)
	}
	if err != nil {
		c.failure.Add(1)
		logger.LogAttrs(ctx, slog.LevelWarn, "request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return
	}
	c.success.Add(1)
}

// LogWholeBlock logs every set of every week concurrently while readers fetch the days being written.
func LogWholeBlock(ctx context.Context, client *e2etest.Client, program programShape, logger *slog.Logger) error {
	var c counters
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for week := 1; week <= program.Weeks; week++ {
		for day, d := range program.Days {
			g.Go(func() error {
				c.do(ctx, client, logger, http.MethodGet, fmt.Sprintf("/api/weeks/%d/days/%d", week, day), nil,
					http.StatusOK)
				return nil
			})
			for exercise := range d.Exercises {
				for set := range program.SetsPerExercise {
					g.Go(func() error {
						path := fmt.Sprintf("/api/weeks/%d/days/%d/exercises/%d/sets/%d", week, day, exercise, set)
						body := map[string]any{"weight": baseWeight + float64(week), "reps": baseReps}
						c.do(ctx, client, logger, http.MethodPut, path, body, http.StatusOK)
						return nil
					})
				}
			}
		}
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("log block: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Logged block",
		slog.Int64("successful", c.success.Load()),
		slog.Int64("failed", c.failure.Load()),
		slog.Float64("success_rate", c.rate()))
	if c.rate() < successRateThreshold {
		return fmt.Errorf("success rate %.1f%% below threshold", c.rate())
	}
	return nil
}

// VerifyNoLostUpdates checks that every acknowledged set write is visible.
func VerifyNoLostUpdates(ctx context.Context, client *e2etest.Client, program programShape) error {
	var errs []error
	for week := 1; week <= program.Weeks; week++ {
		for day := range program.Days {
			var got daySummary
			path := fmt.Sprintf("/api/weeks/%d/days/%d", week, day)
			if _, err := client.JSON(ctx, http.MethodGet, path, nil, &got); err != nil {
				errs = append(errs, fmt.Errorf("get %s: %w", path, err))
				continue
			}
			if got.Summary.CompletedSets != got.Summary.ExpectedSets {
				errs = append(errs, fmt.Errorf("%s: %d of %d sets logged", path,
					got.Summary.CompletedSets, got.Summary.ExpectedSets))
			}
		}
	}
	return errors.Join(errs...)
}

// CompleteAndProbeLock completes every day of the first week concurrently and checks that edits are refused.
func CompleteAndProbeLock(ctx context.Context, client *e2etest.Client, program programShape, logger *slog.Logger) error {
	var c counters
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)
	for day := range program.Days {
		g.Go(func() error {
			c.do(gctx, client, logger, http.MethodPost, fmt.Sprintf("/api/weeks/1/days/%d/complete", day), nil,
				http.StatusOK)
			c.do(gctx, client, logger, http.MethodPut, fmt.Sprintf("/api/weeks/1/days/%d/exercises/0/sets/0", day),
				map[string]any{"weight": 1, "reps": 1}, http.StatusConflict)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("complete days: %w", err)
	}
	if n := c.failure.Load(); n > 0 {
		return fmt.Errorf("%d completion or lock checks failed", n)
	}
	return nil
}

func main() {
	logger := logging.New(os.Stdout, slog.LevelInfo, false)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}
	var cfg config
	if err := envstruct.Populate(&cfg, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "invalid config", slog.Any("error", err))
		os.Exit(1)
	}
	if !cfg.ConfirmWipe {
		logger.LogAttrs(ctx, slog.LevelError,
			"the stress test deletes all data on the server, set TRACKMATE_STRESSTEST_CONFIRM_WIPE=true to proceed")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	serverURL := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		serverURL = "http://" + hostname
	}
	client := e2etest.NewClient(serverURL)

	if err := run(ctx, client, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "stress test failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Stress test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)))
}

func run(ctx context.Context, client *e2etest.Client, logger *slog.Logger) error {
	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return fmt.Errorf("server not ready in time: %w", err)
	}

	var program programShape
	if _, err := client.JSON(ctx, http.MethodGet, "/api/program", nil, &program); err != nil {
		return fmt.Errorf("get program: %w", err)
	}
	status, err := client.JSON(ctx, http.MethodDelete, "/api/data", nil, nil)
	if err != nil {
		return fmt.Errorf("wipe data: %w", err)
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("wipe data: status %d", status)
	}
	if _, err := client.JSON(ctx, http.MethodPut, "/api/profile", map[string]any{"weight": bodyweightKg}, nil); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	blockStart := time.Now()
	if err := LogWholeBlock(ctx, client, program, logger); err != nil {
		return err
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Block logged", slog.Duration("duration", time.Since(blockStart)))

	if err := VerifyNoLostUpdates(ctx, client, program); err != nil {
		return fmt.Errorf("lost updates: %w", err)
	}
	if err := CompleteAndProbeLock(ctx, client, program, logger); err != nil {
		return err
	}
	return nil
}
