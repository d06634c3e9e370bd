package main

import (
	"errors"
	"net/http"

	"portfolio/internal/store"
)

type createCommentPayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var payload createCommentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	comment, err := app.store.Comments.Create(r.Context(), payload.Name, payload.Comment)
	if err != nil {
		// Write failures surface to the visitor; silently dropping a
		// comment is worse than showing an error.
		switch {
		case errors.Is(err, store.ErrEmptyField):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusCreated, comment)
}

func (app *application) getCommentsHandler(w http.ResponseWriter, r *http.Request) {
	comments, err := app.store.Comments.GetAll(r.Context())
	if err != nil {
		// Fail open: the wall keeps rendering even when the store is down.
		app.logger.Warnw("comments read failed, serving empty wall", "error", err.Error())
		comments = []store.Comment{}
	}

	app.jsonResponse(w, http.StatusOK, comments)
}
