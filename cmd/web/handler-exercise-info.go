package main

import (
	"net/http"
)

type exerciseInfoTemplateData struct {
	Name         string
	Category     string
	Equipment    string
	Muscles      string
	Description  string
	Alternatives []string
}

// exerciseInfoGET renders the information fragment shown for an exercise, known to the catalog or not.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	info, _ := app.program.Info(name)
	category, _ := app.program.CategoryOf(name)

	data := exerciseInfoTemplateData{
		Name:         name,
		Category:     category,
		Equipment:    app.program.DefaultEquipment(name).Label(),
		Muscles:      info.Muscles,
		Description:  app.program.Description(name, app.exerciseNotes(name)),
		Alternatives: app.program.Alternatives(name),
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}

// exerciseNotes returns the notes the weekly template gives for name.
func (app *application) exerciseNotes(name string) string {
	for _, d := range app.program.Days() {
		for _, e := range d.Exercises {
			if e.Name == name {
				return e.Notes
			}
		}
	}
	return ""
}
