package main

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/trackmate/internal/e2etest"
)

func Test_application_exerciseInfo(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t, testLookupEnv)
	client := server.Client()

	t.Run("catalog exercise", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, exercisePath("Wide-Grip Pull-Ups or Lat Pulldown")+"/info")
		if err != nil {
			t.Fatalf("Failed to get exercise info: %v", err)
		}
		want := map[string]string{
			"h2":         "Wide-Grip Pull-Ups or Lat Pulldown",
			".category":  "Back",
			".equipment": "Machine/Cable",
			".muscles":   "Lats, upper back, biceps",
		}
		for selector, text := range want {
			if got, textErr := e2etest.Text(doc, selector); textErr != nil || got != text {
				t.Errorf("%s = %q, %v, want %q", selector, got, textErr, text)
			}
		}
		if got := doc.Find(".description strong").Text(); got != "down and back" {
			t.Errorf("rendered Markdown emphasis = %q, want %q", got, "down and back")
		}
		wantAlternatives := []string{
			"Bent-Over Barbell Rows",
			"One-Arm DB Rows or Machine Row (Superset)",
			"Straight-Arm Rope Pulldown",
		}
		if diff := cmp.Diff(wantAlternatives, e2etest.Texts(doc, ".alternatives li")); diff != "" {
			t.Errorf("alternatives mismatch (-want +got):\n%s", diff)
		}
	})

	tests := []struct {
		name            string
		wantDescription string
	}{
		{"Cable Woodchoppers or Weighted Decline Sit-Ups", "Core"},
		{"Leg Press", "Category: Legs."},
		{"Zercher Carry", "No additional description is available yet."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				doc *goquery.Document
				err error
			)
			if doc, err = client.GetDoc(ctx, exercisePath(tt.name)+"/info"); err != nil {
				t.Fatalf("Failed to get exercise info: %v", err)
			}
			if got, _ := e2etest.Text(doc, ".description"); got != tt.wantDescription {
				t.Errorf("description = %q, want %q", got, tt.wantDescription)
			}
		})
	}
}
