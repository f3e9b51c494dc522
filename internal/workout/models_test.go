package workout_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/trackmate/internal/ptr"
	"github.com/myrjola/trackmate/internal/workout"
)

func TestSetEntry_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want workout.SetEntry
	}{
		{name: "numbers", data: `{"w":80,"r":8}`, want: workout.SetEntry{Weight: ptr.Ref(80.0), Reps: ptr.Ref(8)}},
		{name: "strings", data: `{"w":"82.5","r":"6"}`, want: workout.SetEntry{Weight: ptr.Ref(82.5), Reps: ptr.Ref(6)}},
		{name: "empty strings are unset", data: `{"w":"","r":""}`, want: workout.SetEntry{Weight: nil, Reps: nil}},
		{name: "nulls are unset", data: `{"w":null,"r":null}`, want: workout.SetEntry{Weight: nil, Reps: nil}},
		{name: "missing fields", data: `{}`, want: workout.SetEntry{Weight: nil, Reps: nil}},
		{name: "zero is logged", data: `{"w":"00","r":"12"}`, want: workout.SetEntry{Weight: ptr.Ref(0.0), Reps: ptr.Ref(12)}},
		{name: "garbage string is unset", data: `{"w":"heavy","r":"8"}`, want: workout.SetEntry{Weight: nil, Reps: ptr.Ref(8)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got workout.SetEntry
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SetEntry mismatch (-want +got):\n%s", diff)
			}
		})
	}

	var entry workout.SetEntry
	if err := json.Unmarshal([]byte(`{"w":true}`), &entry); err == nil {
		t.Error("expected error for boolean weight")
	}
}

func TestSetEntry_Complete(t *testing.T) {
	tests := []struct {
		name  string
		entry workout.SetEntry
		want  bool
	}{
		{name: "weight and reps", entry: workout.SetEntry{Weight: ptr.Ref(80.0), Reps: ptr.Ref(8)}, want: true},
		{name: "bodyweight", entry: workout.SetEntry{Weight: ptr.Ref(0.0), Reps: ptr.Ref(12)}, want: true},
		{name: "zero reps", entry: workout.SetEntry{Weight: ptr.Ref(80.0), Reps: ptr.Ref(0)}, want: false},
		{name: "negative weight", entry: workout.SetEntry{Weight: ptr.Ref(-5.0), Reps: ptr.Ref(8)}, want: false},
		{name: "no weight", entry: workout.SetEntry{Weight: nil, Reps: ptr.Ref(8)}, want: false},
		{name: "no reps", entry: workout.SetEntry{Weight: ptr.Ref(80.0), Reps: nil}, want: false},
		{name: "infinite weight", entry: workout.SetEntry{Weight: ptr.Ref(math.Inf(1)), Reps: ptr.Ref(8)}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		units  workout.Units
		want   float64
		wantOK bool
	}{
		{name: "metric", weight: 80, height: 180, units: workout.UnitsMetric, want: 80 / (1.8 * 1.8), wantOK: true},
		{
			name: "imperial", weight: 176, height: 70, units: workout.UnitsImperial,
			want: 176 * 0.453592 / (70 * 0.0254 * 70 * 0.0254), wantOK: true,
		},
		{name: "no height", weight: 80, height: 0, units: workout.UnitsMetric, want: 0, wantOK: false},
		{name: "no weight", weight: 0, height: 180, units: workout.UnitsMetric, want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := workout.CalculateBMI(tt.weight, tt.height, tt.units)
			if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateBMI() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestProfile_WeightKg(t *testing.T) {
	metric := workout.Profile{Units: workout.UnitsMetric, Weight: ptr.Ref(80.0)} //nolint:exhaustruct // test
	if kg, ok := metric.WeightKg(); !ok || kg != 80 {
		t.Errorf("metric WeightKg() = %v, %v", kg, ok)
	}
	imperial := workout.Profile{Units: workout.UnitsImperial, Weight: ptr.Ref(200.0)} //nolint:exhaustruct // test
	if kg, ok := imperial.WeightKg(); !ok || math.Abs(kg-90.7184) > 1e-9 {
		t.Errorf("imperial WeightKg() = %v, %v", kg, ok)
	}
	var empty workout.Profile
	if _, ok := empty.WeightKg(); ok {
		t.Error("empty profile should have no weight")
	}
}
