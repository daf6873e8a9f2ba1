// Package ssr turns report Markdown into decorated HTML fragments on the server.
package ssr

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// CSS classes added by [Decorate].
const (
	HeadingClass = "report-heading"
	ListClass    = "report-list"
	LinkClass    = "report-link"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// RenderMarkdown converts source to an HTML fragment and decorates it. Raw HTML in source is not passed through.
func RenderMarkdown(w io.Writer, source string) error {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return errors.Wrap(err, "convert markdown")
	}
	if err := Decorate(w, &buf); err != nil {
		return errors.Wrap(err, "decorate html")
	}
	return nil
}

// Decorate styles an HTML fragment read from r and writes the fragment to w.
//
// A paragraph consisting of only bold text becomes a heading, lists get a class, and links open in a new tab.
func Decorate(w io.Writer, r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return errors.Wrap(err, "parse html")
	}

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		children := s.Children()
		if children.Length() == 1 && children.Is("strong") && s.Text() == children.Text() {
			s.AddClass(HeadingClass)
		}
	})
	doc.Find("ul").AddClass(ListClass)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		s.AddClass(LinkClass)
		s.SetAttr("target", "_blank")
		s.SetAttr("rel", "noopener noreferrer")
	})

	// Only the body's children are written back so the result embeds as a fragment.
	body := doc.Find("body")
	if len(body.Nodes) > 0 {
		for c := body.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
			if err = html.Render(w, c); err != nil {
				return errors.Wrap(err, "render html")
			}
		}
	}
	return nil
}
