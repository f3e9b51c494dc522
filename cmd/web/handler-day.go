package main

import (
	"context"
	"net/http"

	"github.com/myrjola/trackmate/internal/workout"
)

func (app *application) dayGET(w http.ResponseWriter, r *http.Request) {
	week, day, ok := app.parseDayParams(w, r)
	if !ok {
		return
	}
	view, err := app.workoutService.Day(r.Context(), week, day)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, view)
}

// setPUT logs a set. Omitted or null fields commit the current suggestion.
func (app *application) setPUT(w http.ResponseWriter, r *http.Request) {
	slot, ok := app.parseSlotParams(w, r)
	if !ok {
		return
	}
	var input workout.SetInput
	if !app.readJSON(w, r, &input) {
		return
	}
	set, err := app.workoutService.LogSet(r.Context(), slot, input)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, set)
}

func (app *application) equipmentPUT(w http.ResponseWriter, r *http.Request) {
	slot, ok := app.parseSlotParams(w, r)
	if !ok {
		return
	}
	var req equipmentRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	exercise, err := app.workoutService.SetEquipment(r.Context(), slot.Week, slot.Day, slot.Exercise, req.Equipment)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, exercise)
}

func (app *application) dayCompletePOST(w http.ResponseWriter, r *http.Request) {
	app.transitionDay(w, r, app.workoutService.MarkComplete)
}

func (app *application) dayUnlockPOST(w http.ResponseWriter, r *http.Request) {
	app.transitionDay(w, r, app.workoutService.Unlock)
}

func (app *application) dayTogglePOST(w http.ResponseWriter, r *http.Request) {
	app.transitionDay(w, r, app.workoutService.ToggleCompletion)
}

func (app *application) transitionDay(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, week, day int) (workout.DayView, error),
) {
	week, day, ok := app.parseDayParams(w, r)
	if !ok {
		return
	}
	view, err := transition(r.Context(), week, day)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, view)
}

func (app *application) dayDELETE(w http.ResponseWriter, r *http.Request) {
	week, day, ok := app.parseDayParams(w, r)
	if !ok {
		return
	}
	if err := app.workoutService.ResetDay(r.Context(), week, day); err != nil {
		app.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) weekDELETE(w http.ResponseWriter, r *http.Request) {
	week, ok := app.pathInt(w, r, "week")
	if !ok {
		return
	}
	if err := app.workoutService.ResetWeek(r.Context(), week); err != nil {
		app.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dataDELETE wipes the profile, the 1RMs and the whole log.
func (app *application) dataDELETE(w http.ResponseWriter, r *http.Request) {
	app.workoutService.ResetAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
