package main

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio/internal/store"
)

type createRatingPayload struct {
	Rating int `json:"rating"`
}

func (app *application) createRatingHandler(w http.ResponseWriter, r *http.Request) {
	var payload createRatingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.Rating < 1 || payload.Rating > 5 {
		app.badRequestResponse(w, r, fmt.Errorf("rating must be between 1 and 5"))
		return
	}

	rating, err := app.store.Ratings.Create(r.Context(), payload.Rating)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidRating):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusCreated, rating)
}

func (app *application) getRatingsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.store.Ratings.GetAllWithStats(r.Context())
	if err != nil {
		// Fail open with the zero aggregate so the widget still renders.
		app.logger.Warnw("ratings read failed, serving zero aggregate", "error", err.Error())
		stats = &store.RatingStats{Ratings: []store.Rating{}}
	}

	app.jsonResponse(w, http.StatusOK, stats)
}
