package workout

// newLog returns an empty log.
func newLog() Log {
	return Log{Weeks: map[int]map[int]*DayState{}}
}

func newDayState() *DayState {
	return &DayState{Completed: false, Exercises: map[int]*ExerciseState{}}
}

func newExerciseState() *ExerciseState {
	return &ExerciseState{Equipment: nil, Sets: map[int]*SetEntry{}}
}

// normalize replaces nil containers left behind by decoding so that accessors never meet a nil map. Sets holding
// values outside the storable range are cleared.
func (l *Log) normalize() {
	if l.Weeks == nil {
		l.Weeks = map[int]map[int]*DayState{}
	}
	for w, days := range l.Weeks {
		if days == nil {
			l.Weeks[w] = map[int]*DayState{}
			continue
		}
		for d, day := range days {
			if day == nil {
				days[d] = newDayState()
				continue
			}
			if day.Exercises == nil {
				day.Exercises = map[int]*ExerciseState{}
			}
			for e, ex := range day.Exercises {
				if ex == nil {
					day.Exercises[e] = newExerciseState()
					continue
				}
				if ex.Sets == nil {
					ex.Sets = map[int]*SetEntry{}
				}
				for s, set := range ex.Sets {
					if set == nil || !set.inRange() {
						ex.Sets[s] = &SetEntry{Weight: nil, Reps: nil}
					}
				}
			}
		}
	}
}

// Day returns the state of a day without creating it.
func (l *Log) Day(week, day int) (*DayState, bool) {
	d, ok := l.Weeks[week][day]
	return d, ok && d != nil
}

// GetOrCreateDay returns the state of a day, inserting an incomplete one on first access.
func (l *Log) GetOrCreateDay(week, day int) *DayState {
	if l.Weeks == nil {
		l.Weeks = map[int]map[int]*DayState{}
	}
	days, ok := l.Weeks[week]
	if !ok || days == nil {
		days = map[int]*DayState{}
		l.Weeks[week] = days
	}
	d, ok := days[day]
	if !ok || d == nil {
		d = newDayState()
		days[day] = d
	}
	return d
}

// GetOrCreateExercise returns the state of an exercise, inserting an empty one on first access.
func (d *DayState) GetOrCreateExercise(exercise int) *ExerciseState {
	if d.Exercises == nil {
		d.Exercises = map[int]*ExerciseState{}
	}
	e, ok := d.Exercises[exercise]
	if !ok || e == nil {
		e = newExerciseState()
		d.Exercises[exercise] = e
	}
	return e
}

// GetOrCreateSet returns a set entry, inserting an unlogged one on first access.
func (e *ExerciseState) GetOrCreateSet(set int) *SetEntry {
	if e.Sets == nil {
		e.Sets = map[int]*SetEntry{}
	}
	s, ok := e.Sets[set]
	if !ok || s == nil {
		s = &SetEntry{Weight: nil, Reps: nil}
		e.Sets[set] = s
	}
	return s
}

// GetOrCreateSet returns the set entry at the given coordinates, creating every missing level on the way.
func (l *Log) GetOrCreateSet(week, day, exercise, set int) *SetEntry {
	return l.GetOrCreateDay(week, day).GetOrCreateExercise(exercise).GetOrCreateSet(set)
}

// Set returns the set entry at the given coordinates without creating it.
func (l *Log) Set(week, day, exercise, set int) (SetEntry, bool) {
	d, ok := l.Day(week, day)
	if !ok {
		return SetEntry{}, false //nolint:exhaustruct // zero value.
	}
	e, ok := d.Exercises[exercise]
	if !ok || e == nil {
		return SetEntry{}, false //nolint:exhaustruct // zero value.
	}
	s, ok := e.Sets[set]
	if !ok || s == nil {
		return SetEntry{}, false //nolint:exhaustruct // zero value.
	}
	return *s, true
}

// DeleteDay removes a day's state. It reports whether anything was removed.
func (l *Log) DeleteDay(week, day int) bool {
	days, ok := l.Weeks[week]
	if !ok {
		return false
	}
	if _, ok = days[day]; !ok {
		return false
	}
	delete(days, day)
	return true
}

// DeleteWeek removes every day of a week. It reports whether anything was removed.
func (l *Log) DeleteWeek(week int) bool {
	if _, ok := l.Weeks[week]; !ok {
		return false
	}
	delete(l.Weeks, week)
	return true
}

// DeleteAll clears the log.
func (l *Log) DeleteAll() {
	l.Weeks = map[int]map[int]*DayState{}
}

// Summary totals the complete sets of a day.
type Summary struct {
	VolumeKg      float64 `json:"volume_kg"`
	Reps          int     `json:"reps"`
	CompletedSets int     `json:"completed_sets"`
	ExpectedSets  int     `json:"expected_sets"`
}

// Summarize totals every complete set of the day. expectedSets is the number of set slots the template shows.
func (d *DayState) Summarize(expectedSets int) Summary {
	s := Summary{VolumeKg: 0, Reps: 0, CompletedSets: 0, ExpectedSets: expectedSets}
	for _, e := range d.Exercises {
		if e == nil {
			continue
		}
		for _, set := range e.Sets {
			if set == nil || !set.Complete() {
				continue
			}
			s.CompletedSets++
			s.VolumeKg += *set.Weight * float64(*set.Reps)
			s.Reps += *set.Reps
		}
	}
	return s
}
