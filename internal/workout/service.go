package workout

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/myrjola/trackmate/internal/errors"
	"github.com/myrjola/trackmate/internal/kv"
	"github.com/myrjola/trackmate/internal/program"
	"github.com/myrjola/trackmate/internal/ptr"
	"github.com/myrjola/trackmate/internal/training"
)

var (
	// ErrInvalidSlot is returned for coordinates outside the program.
	ErrInvalidSlot = errors.NewSentinel("no such week, day, exercise or set")
	// ErrInvalidInput is returned for values that cannot be stored.
	ErrInvalidInput = errors.NewSentinel("invalid input")
	// ErrNoOneRMs is returned after saving a 1RM record in which every lift is empty.
	ErrNoOneRMs = errors.NewSentinel("no 1RM values entered")
)

// Service handles the business logic of the training log.
type Service struct {
	program        *program.Program
	logger         *slog.Logger
	profile        *document[Profile]
	oneRMs         *document[OneRMRecord]
	oneRMEquipment *document[OneRMEquipment]
	log            *document[Log]
}

// NewService creates a service persisting its documents in store.
func NewService(store kv.Store, prog *program.Program, logger *slog.Logger) *Service {
	logDoc := newDocument(store, KeyWorkoutLog, logger, newLog)
	logDoc.normalize = (*Log).normalize
	return &Service{
		program: prog,
		logger:  logger,
		profile: newDocument(store, KeyProfile, logger, func() Profile {
			return Profile{Name: "", Sex: "", Units: UnitsMetric, Height: nil, Weight: nil, Age: nil, BMI: nil}
		}),
		oneRMs: newDocument(store, KeyOneRM, logger, func() OneRMRecord { return OneRMRecord{} }),
		oneRMEquipment: newDocument(store, KeyOneRMEquipment, logger, func() OneRMEquipment {
			return OneRMEquipment{}
		}),
		log: logDoc,
	}
}

// Program returns the training template and catalog the service works with.
func (s *Service) Program() *program.Program {
	return s.program
}

// Profile returns the stored profile.
func (s *Service) Profile(ctx context.Context) Profile {
	return s.profile.Get(ctx)
}

// SaveProfile replaces the profile. BMI is derived from height and weight. Blank or non-positive numbers are stored
// as absent.
func (s *Service) SaveProfile(ctx context.Context, p Profile) (Profile, error) {
	switch p.Units {
	case "":
		p.Units = UnitsMetric
	case UnitsMetric, UnitsImperial:
	default:
		return Profile{}, errors.Wrap(ErrInvalidInput, "unknown units", slog.String("units", string(p.Units)))
	}
	p.Height = positiveOrNil(p.Height)
	p.Weight = positiveOrNil(p.Weight)
	if p.Age != nil && *p.Age <= 0 {
		p.Age = nil
	}
	p.BMI = nil
	if p.Height != nil && p.Weight != nil {
		if bmi, ok := CalculateBMI(*p.Weight, *p.Height, p.Units); ok && isFinite(roundTenth(bmi)) {
			p.BMI = ptr.Ref(roundTenth(bmi))
		}
	}
	if err := s.profile.Set(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "saved profile", slog.String("units", string(p.Units)))
	return p, nil
}

// OneRMs returns the recorded 1RM per lift.
func (s *Service) OneRMs(ctx context.Context) OneRMRecord {
	return s.oneRMs.Get(ctx)
}

// SaveOneRMs estimates a 1RM for every attempted lift and replaces the stored record. Lifts without a usable attempt
// or with an estimate too large to store are stored as empty. The record is saved even when it is entirely empty, ErrNoOneRMs is returned in that case.
func (s *Service) SaveOneRMs(ctx context.Context, attempts map[training.Lift]LiftAttempt) (OneRMRecord, error) {
	record := OneRMRecord{}
	hasAny := false
	for _, lift := range training.AllLifts {
		record[lift] = nil
		attempt, ok := attempts[lift]
		if !ok {
			continue
		}
		estimate, ok := training.EstimateOneRM(attempt.WeightKg, attempt.Reps)
		if !ok {
			continue
		}
		if rounded := roundTenth(estimate); isFinite(rounded) {
			record[lift] = &rounded
			hasAny = true
		}
	}
	if err := s.oneRMs.Set(ctx, record); err != nil {
		return nil, fmt.Errorf("save 1RM record: %w", err)
	}
	if !hasAny {
		return record, ErrNoOneRMs
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "saved 1RM record")
	return record, nil
}

// OneRMEquipment returns the equipment chosen per lift on the 1RM entry screen.
func (s *Service) OneRMEquipment(ctx context.Context) OneRMEquipment {
	return s.oneRMEquipment.Get(ctx)
}

// SetOneRMEquipment remembers the equipment chosen for a lift on the 1RM entry screen.
func (s *Service) SetOneRMEquipment(
	ctx context.Context,
	lift training.Lift,
	equipment training.Equipment,
) (OneRMEquipment, error) {
	if _, ok := training.ParseLift(string(lift)); !ok {
		return nil, errors.Wrap(ErrInvalidInput, "unknown lift", slog.String("lift", string(lift)))
	}
	eq, ok := training.ParseEquipment(string(equipment))
	if !ok {
		return nil, errors.Wrap(ErrInvalidInput, "unknown equipment", slog.String("equipment", string(equipment)))
	}
	selection, err := s.oneRMEquipment.Update(ctx, func(sel *OneRMEquipment) (bool, error) {
		if *sel == nil {
			*sel = OneRMEquipment{}
		}
		if (*sel)[lift] == eq {
			return false, nil
		}
		(*sel)[lift] = eq
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update 1RM equipment: %w", err)
	}
	return selection, nil
}

// Day returns the view of one training day. The day's state is created on first access.
func (s *Service) Day(ctx context.Context, week, day int) (DayView, error) {
	if err := s.validateDay(week, day); err != nil {
		return DayView{}, err
	}
	l, err := s.log.Update(ctx, func(l *Log) (bool, error) {
		_, existed := l.Day(week, day)
		l.GetOrCreateDay(week, day)
		return !existed, nil
	})
	if err != nil {
		return DayView{}, fmt.Errorf("create day: %w", err)
	}
	return s.dayView(ctx, &l, week, day), nil
}

// LogSet stores what the lifter entered for a set. Blank fields commit the current suggestion: the weight
// suggestion, where the core placeholder commits zero, and the target reps.
func (s *Service) LogSet(ctx context.Context, slot Slot, input SetInput) (SetView, error) {
	if err := s.validateSlot(slot); err != nil {
		return SetView{}, err
	}
	if !(SetEntry{Weight: input.Weight, Reps: input.Reps}).inRange() {
		return SetView{}, errors.Wrap(ErrInvalidInput, "set value out of range")
	}

	env := s.suggestionEnv(ctx)
	l, err := s.log.Update(ctx, func(l *Log) (bool, error) {
		d := l.GetOrCreateDay(slot.Week, slot.Day)
		if err := d.checkEditable(); err != nil {
			return false, err
		}
		ex := s.exerciseView(env, l, slot.Week, slot.Day, slot.Exercise)
		suggestion := ex.Sets[slot.Set]

		entry := d.GetOrCreateExercise(slot.Exercise).GetOrCreateSet(slot.Set)
		entry.Weight = input.Weight
		if entry.Weight == nil {
			entry.Weight = committedWeight(suggestion.SuggestedWeight)
		}
		entry.Reps = input.Reps
		if entry.Reps == nil {
			entry.Reps = ptr.Ref(suggestion.SuggestedReps)
		}
		if !entry.inRange() {
			return false, errors.Wrap(ErrInvalidInput, "suggested set value out of range")
		}
		return true, nil
	})
	if err != nil {
		return SetView{}, fmt.Errorf("log set: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "logged set",
		slog.Int("week", slot.Week), slog.Int("day", slot.Day),
		slog.Int("exercise", slot.Exercise), slog.Int("set", slot.Set))
	return s.exerciseView(env, &l, slot.Week, slot.Day, slot.Exercise).Sets[slot.Set], nil
}

// SetEquipment selects the equipment for an exercise of a day and returns the exercise with recomputed suggestions.
// Already logged values are left as they are.
func (s *Service) SetEquipment(
	ctx context.Context,
	week, day, exercise int,
	equipment training.Equipment,
) (ExerciseView, error) {
	if err := s.validateSlot(Slot{Week: week, Day: day, Exercise: exercise, Set: 0}); err != nil {
		return ExerciseView{}, err
	}
	eq, ok := training.ParseEquipment(string(equipment))
	if !ok {
		return ExerciseView{}, errors.Wrap(ErrInvalidInput, "unknown equipment",
			slog.String("equipment", string(equipment)))
	}
	l, err := s.log.Update(ctx, func(l *Log) (bool, error) {
		d := l.GetOrCreateDay(week, day)
		if err := d.checkEditable(); err != nil {
			return false, err
		}
		d.GetOrCreateExercise(exercise).Equipment = &eq
		return true, nil
	})
	if err != nil {
		return ExerciseView{}, fmt.Errorf("set equipment: %w", err)
	}
	return s.exerciseView(s.suggestionEnv(ctx), &l, week, day, exercise), nil
}

// MarkComplete locks a day against edits.
func (s *Service) MarkComplete(ctx context.Context, week, day int) (DayView, error) {
	return s.updateCompletion(ctx, week, day, (*DayState).MarkComplete)
}

// Unlock reopens a completed day for edits.
func (s *Service) Unlock(ctx context.Context, week, day int) (DayView, error) {
	return s.updateCompletion(ctx, week, day, (*DayState).Unlock)
}

// ToggleCompletion completes an incomplete day and unlocks a completed one.
func (s *Service) ToggleCompletion(ctx context.Context, week, day int) (DayView, error) {
	return s.updateCompletion(ctx, week, day, func(d *DayState) bool {
		d.Toggle()
		return true
	})
}

func (s *Service) updateCompletion(ctx context.Context, week, day int, transition func(*DayState) bool) (DayView, error) {
	if err := s.validateDay(week, day); err != nil {
		return DayView{}, err
	}
	l, err := s.log.Update(ctx, func(l *Log) (bool, error) {
		_, existed := l.Day(week, day)
		changed := transition(l.GetOrCreateDay(week, day))
		return changed || !existed, nil
	})
	if err != nil {
		return DayView{}, fmt.Errorf("update completion: %w", err)
	}
	view := s.dayView(ctx, &l, week, day)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "updated day completion",
		slog.Int("week", week), slog.Int("day", day), slog.Bool("completed", view.Completed))
	return view, nil
}

// ResetDay clears everything logged for a day.
func (s *Service) ResetDay(ctx context.Context, week, day int) error {
	if err := s.validateDay(week, day); err != nil {
		return err
	}
	if _, err := s.log.Update(ctx, func(l *Log) (bool, error) {
		return l.DeleteDay(week, day), nil
	}); err != nil {
		return fmt.Errorf("reset day: %w", err)
	}
	return nil
}

// ResetWeek clears everything logged for a week.
func (s *Service) ResetWeek(ctx context.Context, week int) error {
	if !program.ValidWeek(week) {
		return errors.Wrap(ErrInvalidSlot, "week out of range", slog.Int("week", week))
	}
	if _, err := s.log.Update(ctx, func(l *Log) (bool, error) {
		return l.DeleteWeek(week), nil
	}); err != nil {
		return fmt.Errorf("reset week: %w", err)
	}
	return nil
}

// ResetAll removes every stored document.
func (s *Service) ResetAll(ctx context.Context) {
	s.profile.Delete(ctx)
	s.oneRMs.Delete(ctx)
	s.log.Delete(ctx)
	s.oneRMEquipment.Delete(ctx)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "reset all data")
}

func (s *Service) validateDay(week, day int) error {
	if !program.ValidWeek(week) {
		return errors.Wrap(ErrInvalidSlot, "week out of range", slog.Int("week", week))
	}
	if _, ok := s.program.Day(week, day); !ok {
		return errors.Wrap(ErrInvalidSlot, "day out of range", slog.Int("day", day))
	}
	return nil
}

func (s *Service) validateSlot(slot Slot) error {
	if err := s.validateDay(slot.Week, slot.Day); err != nil {
		return err
	}
	if _, ok := s.program.Exercise(slot.Week, slot.Day, slot.Exercise); !ok {
		return errors.Wrap(ErrInvalidSlot, "exercise out of range", slog.Int("exercise", slot.Exercise))
	}
	if !program.ValidSet(slot.Set) {
		return errors.Wrap(ErrInvalidSlot, "set out of range", slog.Int("set", slot.Set))
	}
	return nil
}

// committedWeight is the weight stored when the lifter leaves the weight blank.
func committedWeight(suggestion training.Suggestion) *float64 {
	switch suggestion.Kind() {
	case training.SuggestionPlaceholder:
		return ptr.Ref(0.0)
	case training.SuggestionWeight:
		kg, _ := suggestion.Kg()
		return &kg
	case training.SuggestionNone:
		return nil
	default:
		return nil
	}
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || !isFinite(*v) || *v <= 0 {
		return nil
	}
	return v
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10 //nolint:mnd // one decimal.
}
