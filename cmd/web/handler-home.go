package main

import (
	"net/http"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/myrjola/wellcheck/internal/models"
)

type homeTemplateData struct {
	BaseTemplateData

	Phase    string
	Pending  bool
	Messages []messageData
	Options  []models.Option
	Question *assessment.Question
	Answered int
	Total    int
	// Error is shown as an alert bubble below the transcript.
	Error     string
	HasReport bool
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	app.renderChat(w, r, http.StatusOK, "")
}

// renderChat renders the chat page with an optional error bubble.
func (app *application) renderChat(w http.ResponseWriter, r *http.Request, status int, errorMessage string) {
	c, err := app.currentConversation(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	view := c.View()

	messages, err := newMessagesData(view)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "prepare messages"))
		return
	}

	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Phase:            view.Phase.String(),
		Pending:          view.Pending,
		Messages:         messages,
		Options:          view.Options,
		Question:         view.Question,
		Answered:         view.Answered,
		Total:            view.Total,
		Error:            errorMessage,
		HasReport:        view.Phase == chat.PhaseReported && view.Result != nil,
	}
	if view.Pending {
		data.RefreshSeconds = pendingRefreshSeconds
	}

	app.render(w, r, status, "home", data)
}
