package main

import (
	"encoding/json"
	"net/http"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/errors"
)

// reportText serves the Markdown report as plain text once it has been revealed.
func (app *application) reportText(w http.ResponseWriter, r *http.Request) {
	c, err := app.currentConversation(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	view := c.View()
	if view.Result == nil {
		app.notFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(view.Result.Text))
}

type findingResponse struct {
	Category  assessment.Category `json:"category"`
	Name      string              `json:"name"`
	Score     int                 `json:"score"`
	Threshold int                 `json:"threshold"`
}

type reportResponse struct {
	Crisis    bool              `json:"crisis"`
	Wellness  bool              `json:"wellness"`
	Triggered []findingResponse `json:"triggered"`
	Text      string            `json:"text"`
}

type assessmentResponse struct {
	ConversationID string               `json:"conversation_id"`
	Phase          chat.Phase           `json:"phase"`
	Pending        bool                 `json:"pending"`
	Answered       int                  `json:"answered"`
	Total          int                  `json:"total"`
	Question       *assessment.Question `json:"question,omitempty"`
	Scores         assessment.ScoreMap  `json:"scores"`
	Report         *reportResponse      `json:"report,omitempty"`
}

func newAssessmentResponse(view chat.View) assessmentResponse {
	resp := assessmentResponse{
		ConversationID: view.ID,
		Phase:          view.Phase,
		Pending:        view.Pending,
		Answered:       view.Answered,
		Total:          view.Total,
		Question:       view.Question,
		Scores:         view.Scores,
		Report:         nil,
	}
	if view.Result == nil {
		return resp
	}
	report := reportResponse{
		Crisis:    view.Result.Crisis,
		Wellness:  view.Result.Wellness,
		Triggered: make([]findingResponse, 0, len(view.Result.Triggered)),
		Text:      view.Result.Text,
	}
	for _, f := range view.Result.Triggered {
		report.Triggered = append(report.Triggered, findingResponse{
			Category:  f.Condition.Category,
			Name:      f.Condition.Name,
			Score:     f.Score,
			Threshold: f.Condition.Threshold,
		})
	}
	resp.Report = &report
	return resp
}

// assessmentJSON exposes the conversation's progress and result for structured clients.
func (app *application) assessmentJSON(w http.ResponseWriter, r *http.Request) {
	c, err := app.currentConversation(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	body, err := json.Marshal(newAssessmentResponse(c.View()))
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "marshal assessment"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(body)
}
