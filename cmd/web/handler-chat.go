package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/errors"
)

const (
	busyMessage          = "Please wait a moment, the assistant is still responding."
	invalidChoiceMessage = "Please choose one of the options offered."
	emptyMessageMessage  = "Please type a message before sending."
)

// choose handles an option button or question answer.
func (app *application) choose(w http.ResponseWriter, r *http.Request) {
	c, err := app.currentConversation(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if err = r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	err = c.Choose(r.PostForm.Get("choice"))
	switch {
	case err == nil:
		redirectHome(w, r)
	case errors.Is(err, chat.ErrBusy):
		app.renderChat(w, r, http.StatusConflict, busyMessage)
	case errors.Is(err, assessment.ErrInvalidOption), errors.Is(err, chat.ErrUnknownChoice):
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "rejected choice", errors.SlogError(err))
		app.renderChat(w, r, http.StatusUnprocessableEntity, invalidChoiceMessage)
	default:
		app.serverError(w, r, errors.Wrap(err, "choose"))
	}
}

// message handles free text typed by the user.
func (app *application) message(w http.ResponseWriter, r *http.Request) {
	c, err := app.currentConversation(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if err = r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	err = c.Say(r.PostForm.Get("message"))
	switch {
	case err == nil:
		redirectHome(w, r)
	case errors.Is(err, chat.ErrBusy):
		app.renderChat(w, r, http.StatusConflict, busyMessage)
	case errors.Is(err, chat.ErrEmptyMessage):
		app.renderChat(w, r, http.StatusUnprocessableEntity, emptyMessageMessage)
	default:
		app.serverError(w, r, errors.Wrap(err, "say"))
	}
}

// reset discards the conversation's answers and transcript, including any pending step.
func (app *application) reset(w http.ResponseWriter, r *http.Request) {
	c, err := app.currentConversation(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	c.Reset()
	redirectHome(w, r)
}
