package main

import (
	"net/http"

	"github.com/myrjola/trackmate/internal/program"
)

type alternativesResponse struct {
	Exercise     string   `json:"exercise"`
	Category     string   `json:"category,omitempty"`
	Alternatives []string `json:"alternatives"`
}

type categoryResponse struct {
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

type programResponse struct {
	Weeks           int           `json:"weeks"`
	SetsPerExercise int           `json:"sets_per_exercise"`
	Days            []dayTemplate `json:"days"`
}

type dayTemplate struct {
	Index         int                `json:"index"`
	ID            string             `json:"id"`
	DisplayNumber int                `json:"display_number"`
	Theme         string             `json:"theme"`
	Goal          string             `json:"goal"`
	Exercises     []exerciseTemplate `json:"exercises"`
}

type exerciseTemplate struct {
	Name         string `json:"name"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes,omitempty"`
}

// programGET returns the weekly template shared by every week of the block.
func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	days := app.program.Days()
	resp := programResponse{
		Weeks:           program.Weeks,
		SetsPerExercise: program.SetsPerExercise,
		Days:            make([]dayTemplate, 0, len(days)),
	}
	for i, d := range days {
		exercises := make([]exerciseTemplate, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			exercises = append(exercises, exerciseTemplate(e))
		}
		resp.Days = append(resp.Days, dayTemplate{
			Index:         i,
			ID:            d.ID,
			DisplayNumber: d.DisplayNumber,
			Theme:         d.Theme,
			Goal:          d.Goal,
			Exercises:     exercises,
		})
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

func (app *application) categoriesGET(w http.ResponseWriter, r *http.Request) {
	categories := app.program.Categories()
	resp := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, categoryResponse(c))
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

func (app *application) categoryGET(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("category")
	exercises, ok := app.program.Category(name)
	if !ok {
		app.notFound(w, r)
		return
	}
	app.writeJSON(w, r, http.StatusOK, categoryResponse{Name: name, Exercises: exercises})
}

func (app *application) alternativesGET(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	category, _ := app.program.CategoryOf(name)
	app.writeJSON(w, r, http.StatusOK, alternativesResponse{
		Exercise:     name,
		Category:     category,
		Alternatives: app.program.Alternatives(name),
	})
}
