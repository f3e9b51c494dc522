package main

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_application_catalog(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t, testLookupEnv)
	client := server.Client()

	t.Run("program", func(t *testing.T) {
		var resp programResponse
		status, err := client.JSON(ctx, http.MethodGet, "/api/program", nil, &resp)
		if err != nil || status != http.StatusOK {
			t.Fatalf("GET /api/program = %d, %v", status, err)
		}
		var numbers []int
		for _, d := range resp.Days {
			numbers = append(numbers, d.DisplayNumber)
		}
		if diff := cmp.Diff([]int{1, 2, 3, 5, 6}, numbers); diff != "" {
			t.Errorf("display numbers mismatch (-want +got):\n%s", diff)
		}
		if resp.Weeks != 6 || resp.SetsPerExercise != 4 {
			t.Errorf("weeks = %d, sets = %d", resp.Weeks, resp.SetsPerExercise)
		}
	})

	t.Run("categories", func(t *testing.T) {
		var resp []categoryResponse
		status, err := client.JSON(ctx, http.MethodGet, "/api/categories", nil, &resp)
		if err != nil || status != http.StatusOK {
			t.Fatalf("GET /api/categories = %d, %v", status, err)
		}
		var names []string
		for _, c := range resp {
			names = append(names, c.Name)
		}
		if diff := cmp.Diff([]string{"Back", "Chest", "Shoulders", "Legs", "Arms", "Core"}, names); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("category", func(t *testing.T) {
		var resp categoryResponse
		status, err := client.JSON(ctx, http.MethodGet, "/api/categories/Core", nil, &resp)
		if err != nil || status != http.StatusOK {
			t.Fatalf("GET category = %d, %v", status, err)
		}
		if len(resp.Exercises) != 4 {
			t.Errorf("core exercises = %v", resp.Exercises)
		}
		status, err = client.JSON(ctx, http.MethodGet, "/api/categories/Cardio", nil, nil)
		if err != nil || status != http.StatusNotFound {
			t.Errorf("GET unknown category = %d, %v, want 404", status, err)
		}
	})

	tests := []struct {
		name string
		want alternativesResponse
	}{
		{
			name: "Russian Twists (Weighted)",
			want: alternativesResponse{
				Exercise:     "Russian Twists (Weighted)",
				Category:     "Core",
				Alternatives: []string{"Side Plank Reach-Throughs", "Cable Woodchoppers or Weighted Decline Sit-Ups"},
			},
		},
		{
			name: "Leg Press",
			want: alternativesResponse{
				Exercise: "Leg Press",
				Category: "Legs",
				Alternatives: []string{
					"Front Squats (BB or Goblet)",
					"Romanian Deadlift (BB or DB)",
					"Walking Lunges (DB)",
					"Leg Extensions (Slow Tempo)",
				},
			},
		},
		{
			name: "Zercher Carry",
			want: alternativesResponse{Exercise: "Zercher Carry", Category: "", Alternatives: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run("alternatives "+tt.name, func(t *testing.T) {
			var resp alternativesResponse
			path := "/api/exercises/" + url.PathEscape(tt.name) + "/alternatives"
			status, err := client.JSON(ctx, http.MethodGet, path, nil, &resp)
			if err != nil || status != http.StatusOK {
				t.Fatalf("GET %s = %d, %v", path, status, err)
			}
			if diff := cmp.Diff(tt.want, resp); diff != "" {
				t.Errorf("alternatives mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
