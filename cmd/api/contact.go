package main

import (
	"errors"
	"net/http"

	"portfolio/internal/mailer"
	"portfolio/internal/store"
)

type createContactMessagePayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (app *application) createContactMessageHandler(w http.ResponseWriter, r *http.Request) {
	var payload createContactMessagePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	msg := &store.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	}

	if err := app.store.ContactMessages.Create(r.Context(), msg); err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyField):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	// The message is durable at this point; the notification email is
	// best-effort only.
	if app.mailer != nil && app.config.mail.toEmail != "" {
		status, err := app.mailer.Send(mailer.ContactNotificationTemplate, msg.Name, app.config.mail.toEmail, msg)
		if err != nil {
			app.logger.Errorw("contact notification email failed", "error", err.Error(), "status", status)
		}
	}

	app.jsonResponse(w, http.StatusCreated, msg)
}
