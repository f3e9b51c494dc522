package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/myrjola/trackmate/internal/errors"
	"github.com/myrjola/trackmate/internal/workout"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("encode response: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

// readJSON decodes the request body into dst. It responds with 400 Bad Request and returns false on failure.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, fmt.Errorf("decode request body: %w", err))
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		app.clientError(w, r, http.StatusBadRequest, errors.New("request body must hold a single JSON value"))
		return false
	}
	return true
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", apperrors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError,
		errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "client error", apperrors.SlogError(err))
	app.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound)})
}

// serviceError maps the workout service's sentinel errors to responses.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workout.ErrDayLocked):
		app.logger.LogAttrs(r.Context(), slog.LevelInfo, "refused edit of completed day", apperrors.SlogError(err))
		app.writeJSON(w, r, http.StatusConflict, errorResponse{Error: workout.LockedMessage})
	case errors.Is(err, workout.ErrInvalidSlot):
		app.clientError(w, r, http.StatusNotFound, err)
	case errors.Is(err, workout.ErrInvalidInput):
		app.clientError(w, r, http.StatusBadRequest, err)
	default:
		app.serverError(w, r, err)
	}
}

// pathInt parses the named path parameter. Non-integers respond with 404 Not Found.
func (app *application) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		app.notFound(w, r)
		return 0, false
	}
	return v, true
}

// parseDayParams parses the "week" and "day" path parameters.
func (app *application) parseDayParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	week, ok := app.pathInt(w, r, "week")
	if !ok {
		return 0, 0, false
	}
	day, ok := app.pathInt(w, r, "day")
	if !ok {
		return 0, 0, false
	}
	return week, day, true
}

// parseSlotParams parses the path parameters addressing a set. set is optional.
func (app *application) parseSlotParams(w http.ResponseWriter, r *http.Request) (workout.Slot, bool) {
	week, day, ok := app.parseDayParams(w, r)
	if !ok {
		return workout.Slot{}, false
	}
	exercise, ok := app.pathInt(w, r, "exercise")
	if !ok {
		return workout.Slot{}, false
	}
	slot := workout.Slot{Week: week, Day: day, Exercise: exercise, Set: 0}
	if r.PathValue("set") != "" {
		if slot.Set, ok = app.pathInt(w, r, "set"); !ok {
			return workout.Slot{}, false
		}
	}
	return slot, true
}
