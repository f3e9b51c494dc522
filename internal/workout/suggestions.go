package workout

import (
	"context"

	"github.com/myrjola/trackmate/internal/program"
	"github.com/myrjola/trackmate/internal/training"
)

// suggestionEnv is the lifter data every suggestion of a request is derived from.
type suggestionEnv struct {
	bodyweightKg float64
	oneRMs       OneRMRecord
}

func (s *Service) suggestionEnv(ctx context.Context) suggestionEnv {
	bodyweight, _ := s.profile.Get(ctx).WeightKg()
	return suggestionEnv{bodyweightKg: bodyweight, oneRMs: s.oneRMs.Get(ctx)}
}

func (s *Service) dayView(ctx context.Context, l *Log, week, day int) DayView {
	tmpl, _ := s.program.Day(week, day)
	d, ok := l.Day(week, day)
	if !ok {
		d = newDayState()
	}
	env := s.suggestionEnv(ctx)

	view := DayView{
		Week:          week,
		Index:         day,
		DisplayNumber: tmpl.DisplayNumber,
		ID:            tmpl.ID,
		Theme:         tmpl.Theme,
		Goal:          tmpl.Goal,
		Completed:     d.Completed,
		Exercises:     make([]ExerciseView, 0, len(tmpl.Exercises)),
		Summary:       d.Summarize(len(tmpl.Exercises) * program.SetsPerExercise),
	}
	for i := range tmpl.Exercises {
		view.Exercises = append(view.Exercises, s.exerciseView(env, l, week, day, i))
	}
	return view
}

// exerciseView resolves equipment and suggestions for one exercise. It does not modify l.
func (s *Service) exerciseView(env suggestionEnv, l *Log, week, day, exercise int) ExerciseView {
	ex, _ := s.program.Exercise(week, day, exercise)
	category, _ := s.program.CategoryOf(ex.Name)
	lift, hasLift := s.program.LiftFor(ex.Name)

	view := ExerciseView{
		Index:             exercise,
		Name:              ex.Name,
		Prescription:      ex.Prescription,
		Notes:             ex.Notes,
		Category:          category,
		Equipment:         s.program.DefaultEquipment(ex.Name),
		EquipmentSelected: false,
		TargetReps:        training.TargetReps(ex.Prescription),
		Lift:              lift,
		Sets:              make([]SetView, 0, program.SetsPerExercise),
	}
	if d, ok := l.Day(week, day); ok {
		if state := d.Exercises[exercise]; state != nil && state.Equipment != nil {
			if eq, ok := training.ParseEquipment(string(*state.Equipment)); ok {
				view.Equipment = eq
				view.EquipmentSelected = true
			}
		}
	}

	req := training.Request{
		Movement:     training.Classify(ex.Name),
		Equipment:    view.Equipment,
		TargetReps:   view.TargetReps,
		OneRMKg:      0,
		BodyweightKg: env.bodyweightKg,
		Week:         week,
		Previous:     nil,
	}
	if hasLift {
		req.OneRMKg, _ = env.oneRMs.Kg(lift)
	}

	for set := range program.SetsPerExercise {
		req.Previous = nil
		if prev, ok := l.Set(week-1, day, exercise, set); ok {
			req.Previous, _ = prev.performance()
		}
		entry, _ := l.Set(week, day, exercise, set)
		view.Sets = append(view.Sets, SetView{
			Index:           set,
			Weight:          entry.Weight,
			Reps:            entry.Reps,
			SuggestedWeight: training.Suggest(req),
			SuggestedReps:   view.TargetReps,
			Complete:        entry.Complete(),
		})
	}
	return view
}
