package main

import (
	"net/url"
	"testing"

	"github.com/myrjola/trackmate/internal/e2etest"
	"github.com/myrjola/trackmate/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "TRACKMATE_SQLITE_URL":
		return ":memory:", true
	case "TRACKMATE_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func startTestServer(t *testing.T, lookupEnv func(string) (string, bool)) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	return server
}

func exercisePath(name string) string {
	return "/exercises/" + url.PathEscape(name)
}

func Test_newLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "defaults", env: map[string]string{}, wantErr: false},
		{name: "json debug", env: map[string]string{"TRACKMATE_LOG_LEVEL": "debug", "TRACKMATE_LOG_JSON": "true"}},
		{name: "unknown level", env: map[string]string{"TRACKMATE_LOG_LEVEL": "chatty"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLogger(func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("newLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_run_persistsAcrossRestarts(t *testing.T) {
	ctx := t.Context()
	dbPath := t.TempDir() + "/trackmate.sqlite3"
	lookupEnv := func(key string) (string, bool) {
		if key == "TRACKMATE_SQLITE_URL" {
			return dbPath, true
		}
		return testLookupEnv(key)
	}

	server := startTestServer(t, lookupEnv)
	status, err := server.Client().JSON(ctx, "PUT", "/api/profile", map[string]any{"weight": 72.5}, nil)
	if err != nil || status != 200 {
		t.Fatalf("PUT /api/profile = %d, %v", status, err)
	}
	server.Shutdown()

	server = startTestServer(t, lookupEnv)
	var profile struct {
		Weight *float64 `json:"weight"`
	}
	if _, err = server.Client().JSON(ctx, "GET", "/api/profile", nil, &profile); err != nil {
		t.Fatalf("GET /api/profile: %v", err)
	}
	if profile.Weight == nil || *profile.Weight != 72.5 {
		t.Errorf("weight after restart = %v, want 72.5", profile.Weight)
	}
}
