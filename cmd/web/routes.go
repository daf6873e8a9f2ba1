package main

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/myrjola/wellcheck/ui"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", cacheHeaders(http.FileServerFS(ui.Files)))
	mux.HandleFunc("GET /api/healthy", app.healthy)

	session := alice.New(app.sessionManager.LoadAndSave, app.noSurf, commonContext, app.conversation)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /chat/choose", session.ThenFunc(app.choose))
	mux.Handle("POST /chat/message", session.ThenFunc(app.message))
	mux.Handle("POST /chat/reset", session.ThenFunc(app.reset))
	mux.Handle("GET /report.txt", session.ThenFunc(app.reportText))
	mux.Handle("GET /api/assessment", session.ThenFunc(app.assessmentJSON))

	common := alice.New(app.recoverPanic, app.logRequest, app.secureHeaders)
	return common.Then(mux)
}
