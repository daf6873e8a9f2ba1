package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/contexthelpers"
	"github.com/myrjola/wellcheck/internal/errors"
)

var errConversationGone = errors.NewSentinel("conversation gone")

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
		slog.String("method", method), slog.String("uri", uri))
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

// currentConversation returns the conversation bound by the conversation middleware.
func (app *application) currentConversation(r *http.Request) (*chat.Conversation, error) {
	id := contexthelpers.ConversationID(r.Context())
	c, ok := app.conversations.Get(id)
	if !ok {
		return nil, errors.Wrap(errConversationGone, "current conversation", slog.String("conversation_id", id))
	}
	return c, nil
}

// redirectHome follows the post/redirect/get pattern after a successful form submission.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
