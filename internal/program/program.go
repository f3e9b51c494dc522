// Package program holds the read-only training template and exercise catalog.
//
// Both are embedded YAML documents. The template describes one week and is repeated for every week of the block.
package program

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/myrjola/trackmate/internal/training"
	"gopkg.in/yaml.v3"
)

const (
	// Weeks is the length of the training block.
	Weeks = 6
	// SetsPerExercise is the number of set slots shown for every exercise.
	SetsPerExercise = 4
)

//go:embed program.yaml
var templateDocument []byte

//go:embed catalog.yaml
var catalogDocument []byte

// Exercise is one prescribed movement within a day.
type Exercise struct {
	Name         string `yaml:"name"`
	Prescription string `yaml:"prescription"`
	Notes        string `yaml:"notes"`
}

// Day is one training day of the weekly template.
type Day struct {
	ID string `yaml:"id"`
	// DisplayNumber is the weekday number shown to the lifter. Rest days leave gaps.
	DisplayNumber int        `yaml:"display_number"`
	Theme         string     `yaml:"theme"`
	Goal          string     `yaml:"goal"`
	Exercises     []Exercise `yaml:"exercises"`
}

// ExerciseInfo is catalog metadata for one exercise.
type ExerciseInfo struct {
	Category     string             `yaml:"category"`
	Equipment    training.Equipment `yaml:"equipment"`
	Alternatives []string           `yaml:"alternatives"`
	Muscles      string             `yaml:"muscles"`
	// Description is Markdown.
	Description string `yaml:"description"`
}

// Category groups exercises for browsing.
type Category struct {
	Name      string   `yaml:"name"`
	Exercises []string `yaml:"exercises"`
}

type templateFile struct {
	Days []Day `yaml:"days"`
}

type catalogFile struct {
	Exercises  map[string]ExerciseInfo  `yaml:"exercises"`
	Categories []Category               `yaml:"categories"`
	Lifts      map[string]training.Lift `yaml:"lifts"`
}

// Program is the weekly template together with the exercise catalog.
type Program struct {
	days       []Day
	exercises  map[string]ExerciseInfo
	categories []Category
	lifts      map[string]training.Lift
}

// Load parses the embedded template and catalog.
func Load() (*Program, error) {
	return parse(templateDocument, catalogDocument)
}

func parse(templateData, catalogData []byte) (*Program, error) {
	var (
		tmpl templateFile
		cat  catalogFile
	)
	if err := yaml.Unmarshal(templateData, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing program template: %w", err)
	}
	if err := yaml.Unmarshal(catalogData, &cat); err != nil {
		return nil, fmt.Errorf("parsing exercise catalog: %w", err)
	}

	p := &Program{
		days:       tmpl.Days,
		exercises:  cat.Exercises,
		categories: cat.Categories,
		lifts:      cat.Lifts,
	}
	if p.exercises == nil {
		p.exercises = map[string]ExerciseInfo{}
	}
	if p.lifts == nil {
		p.lifts = map[string]training.Lift{}
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("validate program: %w", err)
	}
	return p, nil
}

func (p *Program) validate() error {
	var errs []error
	if len(p.days) == 0 {
		errs = append(errs, errors.New("template has no days"))
	}
	for i, d := range p.days {
		if len(d.Exercises) == 0 {
			errs = append(errs, fmt.Errorf("day %d (%s) has no exercises", i, d.ID))
		}
		for j, e := range d.Exercises {
			if e.Name == "" {
				errs = append(errs, fmt.Errorf("day %d exercise %d has no name", i, j))
			}
		}
	}
	for name, info := range p.exercises {
		if info.Equipment == "" {
			continue
		}
		if _, ok := training.ParseEquipment(string(info.Equipment)); !ok {
			errs = append(errs, fmt.Errorf("exercise %q has unknown equipment %q", name, info.Equipment))
		}
	}
	for name, lift := range p.lifts {
		if _, ok := training.ParseLift(string(lift)); !ok {
			errs = append(errs, fmt.Errorf("exercise %q maps to unknown lift %q", name, lift))
		}
	}
	return errors.Join(errs...)
}

// Days returns the weekly template.
func (p *Program) Days() []Day {
	return slices.Clone(p.days)
}

// ForWeek returns the template for week. The template is identical for every week, weeks outside the block resolve
// to week one.
func (p *Program) ForWeek(_ int) []Day {
	return p.Days()
}

// Day returns the template day at index day.
func (p *Program) Day(week, day int) (Day, bool) {
	days := p.ForWeek(week)
	if day < 0 || day >= len(days) {
		return Day{}, false //nolint:exhaustruct // zero value.
	}
	return days[day], true
}

// Exercise returns the prescribed exercise at the given coordinates.
func (p *Program) Exercise(week, day, exercise int) (Exercise, bool) {
	d, ok := p.Day(week, day)
	if !ok || exercise < 0 || exercise >= len(d.Exercises) {
		return Exercise{}, false //nolint:exhaustruct // zero value.
	}
	return d.Exercises[exercise], true
}

// ValidWeek reports whether week is part of the block.
func ValidWeek(week int) bool {
	return week >= 1 && week <= Weeks
}

// ValidSet reports whether set addresses one of the set slots.
func ValidSet(set int) bool {
	return set >= 0 && set < SetsPerExercise
}
