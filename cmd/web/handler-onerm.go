package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/myrjola/trackmate/internal/training"
	"github.com/myrjola/trackmate/internal/workout"
)

const noOneRMWarning = "Please enter at least one 1RM."

type oneRMResponse struct {
	OneRepMax workout.OneRMRecord `json:"one_rep_max"`
	// Warning is set when the saved record holds no lift at all.
	Warning string `json:"warning,omitempty"`
}

type estimateResponse struct {
	OneRepMax float64 `json:"one_rep_max"`
}

type equipmentRequest struct {
	Equipment training.Equipment `json:"equipment"`
}

func (app *application) oneRMGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, oneRMResponse{OneRepMax: app.workoutService.OneRMs(r.Context()), Warning: ""})
}

// oneRMPUT takes the weight and reps of a heavy set per lift and stores the estimated 1RMs.
func (app *application) oneRMPUT(w http.ResponseWriter, r *http.Request) {
	var attempts map[training.Lift]workout.LiftAttempt
	if !app.readJSON(w, r, &attempts) {
		return
	}
	record, err := app.workoutService.SaveOneRMs(r.Context(), attempts)
	resp := oneRMResponse{OneRepMax: record, Warning: ""}
	if errors.Is(err, workout.ErrNoOneRMs) {
		resp.Warning = noOneRMWarning
	} else if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

// oneRMEstimateGET previews the estimate for ?weight=&reps= without storing anything.
func (app *application) oneRMEstimateGET(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := strconv.ParseFloat(q.Get("weight"), 64)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, errors.New("weight must be a number"))
		return
	}
	reps, err := strconv.Atoi(q.Get("reps"))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, errors.New("reps must be an integer"))
		return
	}
	estimate, ok := training.EstimateOneRM(weight, reps)
	if !ok {
		app.clientError(w, r, http.StatusBadRequest, errors.New("weight and reps must be positive"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, estimateResponse{OneRepMax: estimate})
}

func (app *application) oneRMEquipmentGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.workoutService.OneRMEquipment(r.Context()))
}

func (app *application) oneRMEquipmentPUT(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	selection, err := app.workoutService.SetOneRMEquipment(r.Context(), training.Lift(r.PathValue("lift")), req.Equipment)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, selection)
}
