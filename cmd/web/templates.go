package main

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/contexthelpers"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/myrjola/wellcheck/internal/ssr"
	"github.com/myrjola/wellcheck/ui"
	"github.com/myrjola/wellcheck/ui/components"
)

// pendingRefreshSeconds is how often a page polls while the assistant is typing.
const pendingRefreshSeconds = 1

type BaseTemplateData struct {
	CurrentPath string
	// RefreshSeconds adds a meta refresh when positive.
	RefreshSeconds int
}

func newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		CurrentPath:    contexthelpers.CurrentPath(r.Context()),
		RefreshSeconds: 0,
	}
}

// messageData is a chat message prepared for the template.
type messageData struct {
	Role      string
	Assistant bool
	// HTML is the rendered Markdown of an assistant message.
	HTML template.HTML
	// Text is a user message, escaped by the template.
	Text   string
	Hint   string
	Report bool
}

// newMessagesData renders assistant Markdown server-side. Raw HTML is never passed through, so the result is safe.
func newMessagesData(view chat.View) ([]messageData, error) {
	messages := make([]messageData, 0, len(view.Messages))
	for _, m := range view.Messages {
		data := messageData{
			Role:      string(m.Role),
			Assistant: m.FromAssistant(),
			HTML:      "",
			Text:      "",
			Hint:      m.Hint,
			Report:    m.Report,
		}
		if data.Assistant {
			var sb strings.Builder
			if err := ssr.RenderMarkdown(&sb, m.Content); err != nil {
				return nil, errors.Wrap(err, "render message")
			}
			data.HTML = template.HTML(sb.String()) //nolint:gosec // markdown renderer drops raw HTML.
		} else {
			data.Text = m.Content
		}
		messages = append(messages, data)
	}
	return messages, nil
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to directory inside ui/templates/pages folder. It has to include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	patterns := []string{
		"templates/base.gohtml",
		fmt.Sprintf("templates/pages/%s/*.gohtml", pageName),
	}

	// We need to initialize the FuncMap before parsing the files. These will be overridden in the render function.
	funcs := components.Funcs()
	funcs["nonce"] = func() template.HTMLAttr {
		panic("not implemented")
	}
	funcs["csrf"] = func() template.HTML {
		panic("not implemented")
	}
	t, err := template.New(pageName).Funcs(funcs).ParseFS(ui.Files, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "parse template files")
	}
	return t, nil
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, file string, data any) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(file); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", file)))
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=\"%s\"", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // we trust the csrf since it's not provided by user.
		},
	})
	if err = t.ExecuteTemplate(buf, "base", data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", file)))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}
