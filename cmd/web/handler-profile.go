package main

import (
	"net/http"

	"github.com/myrjola/trackmate/internal/workout"
)

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.workoutService.Profile(r.Context()))
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var p workout.Profile
	if !app.readJSON(w, r, &p) {
		return
	}
	saved, err := app.workoutService.SaveProfile(r.Context(), p)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, saved)
}
