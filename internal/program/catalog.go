package program

import (
	"fmt"
	"slices"
	"strings"

	"github.com/myrjola/trackmate/internal/training"
)

// maxAutoAlternatives caps alternatives derived from an exercise's category.
const maxAutoAlternatives = 8

// Info returns catalog metadata for name.
func (p *Program) Info(name string) (ExerciseInfo, bool) {
	info, ok := p.exercises[name]
	return info, ok
}

// CategoryOf resolves the category of an exercise, first from its metadata and then from the category lists.
func (p *Program) CategoryOf(name string) (string, bool) {
	if info, ok := p.exercises[name]; ok && info.Category != "" {
		return info.Category, true
	}
	for _, c := range p.categories {
		if slices.Contains(c.Exercises, name) {
			return c.Name, true
		}
	}
	return "", false
}

// Alternatives returns the curated alternatives for name, or up to eight other exercises from its category.
func (p *Program) Alternatives(name string) []string {
	if info, ok := p.exercises[name]; ok && len(info.Alternatives) > 0 {
		return slices.Clone(info.Alternatives)
	}
	category, ok := p.CategoryOf(name)
	if !ok {
		return []string{}
	}
	exercises, _ := p.Category(category)
	alternatives := slices.DeleteFunc(exercises, func(n string) bool { return n == name })
	if len(alternatives) > maxAutoAlternatives {
		alternatives = alternatives[:maxAutoAlternatives]
	}
	return alternatives
}

// Category returns the exercises listed under the named category.
func (p *Program) Category(name string) ([]string, bool) {
	for _, c := range p.categories {
		if c.Name == name {
			return slices.Clone(c.Exercises), true
		}
	}
	return nil, false
}

// Categories returns every category in display order.
func (p *Program) Categories() []Category {
	out := make([]Category, len(p.categories))
	for i, c := range p.categories {
		out[i] = Category{Name: c.Name, Exercises: slices.Clone(c.Exercises)}
	}
	return out
}

// DefaultEquipment is the equipment preselected for an exercise.
func (p *Program) DefaultEquipment(name string) training.Equipment {
	if info, ok := p.exercises[name]; ok && info.Equipment != "" {
		return info.Equipment
	}
	return training.Machine
}

// LiftFor returns the recorded lift whose 1RM drives suggestions for name.
func (p *Program) LiftFor(name string) (training.Lift, bool) {
	lift, ok := p.lifts[name]
	return lift, ok
}

// Description returns Markdown describing an exercise. It falls back to the prescription notes, then to a summary of
// the catalog metadata.
func (p *Program) Description(name, notes string) string {
	info, hasInfo := p.exercises[name]
	if hasInfo && strings.TrimSpace(info.Description) != "" {
		return info.Description
	}
	if notes != "" {
		return notes
	}

	var parts []string
	if category, ok := p.CategoryOf(name); ok {
		parts = append(parts, "Category: "+category)
	}
	if hasInfo && info.Equipment != "" {
		parts = append(parts, fmt.Sprintf("Equipment: %s", info.Equipment))
	}
	if len(parts) > 0 {
		return strings.Join(parts, " • ") + "."
	}
	return "No additional description is available yet."
}
