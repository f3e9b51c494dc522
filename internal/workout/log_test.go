package workout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/trackmate/internal/ptr"
	"github.com/myrjola/trackmate/internal/workout"
)

func TestLog_GetOrCreate(t *testing.T) {
	var l workout.Log

	if _, ok := l.Day(2, 1); ok {
		t.Fatal("Day() found a day in an empty log")
	}
	day := l.GetOrCreateDay(2, 1)
	if day.Completed || len(day.Exercises) != 0 {
		t.Errorf("new day = %+v, want incomplete and empty", day)
	}
	if again := l.GetOrCreateDay(2, 1); again != day {
		t.Error("GetOrCreateDay returned a different day on second access")
	}

	set := l.GetOrCreateSet(2, 1, 3, 0)
	if set.Weight != nil || set.Reps != nil {
		t.Errorf("new set = %+v, want unlogged", set)
	}
	set.Weight = ptr.Ref(42.5)
	got, ok := l.Set(2, 1, 3, 0)
	if !ok || got.Weight == nil || *got.Weight != 42.5 {
		t.Errorf("Set() = %+v, %v, want the written weight", got, ok)
	}
	if _, ok = l.Set(1, 1, 3, 0); ok {
		t.Error("Set() created a missing entry")
	}
	if _, ok = l.Day(1, 1); ok {
		t.Error("Set() lookup created a missing day")
	}
}

func TestLog_Delete(t *testing.T) {
	var l workout.Log
	l.GetOrCreateSet(1, 0, 0, 0)
	l.GetOrCreateSet(1, 1, 0, 0)
	l.GetOrCreateSet(2, 0, 0, 0)

	if !l.DeleteDay(1, 0) {
		t.Error("DeleteDay(1, 0) removed nothing")
	}
	if l.DeleteDay(1, 0) {
		t.Error("DeleteDay(1, 0) removed twice")
	}
	if _, ok := l.Day(1, 1); !ok {
		t.Error("DeleteDay removed a sibling day")
	}
	if !l.DeleteWeek(2) || l.DeleteWeek(2) {
		t.Error("DeleteWeek(2) should remove exactly once")
	}
	l.DeleteAll()
	if len(l.Weeks) != 0 {
		t.Errorf("DeleteAll left %d weeks", len(l.Weeks))
	}
}

func TestDayState_Summarize(t *testing.T) {
	var l workout.Log
	log := func(ex, set int, w float64, r int) {
		e := l.GetOrCreateSet(1, 0, ex, set)
		e.Weight, e.Reps = ptr.Ref(w), ptr.Ref(r)
	}
	log(0, 0, 80, 8)
	log(0, 1, 80, 6)
	// Bodyweight sets count, sets without reps and unlogged sets do not.
	log(1, 0, 0, 12)
	log(1, 1, 20, 0)
	l.GetOrCreateSet(1, 0, 2, 0)

	got := l.GetOrCreateDay(1, 0).Summarize(28)
	want := workout.Summary{VolumeKg: 80*8 + 80*6, Reps: 26, CompletedSets: 3, ExpectedSets: 28}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestDayState_completion(t *testing.T) {
	var l workout.Log
	d := l.GetOrCreateDay(1, 0)
	if d.State() != workout.Incomplete {
		t.Fatalf("new day state = %s, want incomplete", d.State())
	}
	if !d.MarkComplete() || d.MarkComplete() {
		t.Error("MarkComplete should change state exactly once")
	}
	if d.State() != workout.Completed {
		t.Errorf("state = %s, want completed", d.State())
	}
	if !d.Unlock() || d.Unlock() {
		t.Error("Unlock should change state exactly once")
	}
	if d.Toggle() != workout.Completed || d.Toggle() != workout.Incomplete {
		t.Error("Toggle should alternate between completed and incomplete")
	}
}
