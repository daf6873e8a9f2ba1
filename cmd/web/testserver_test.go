package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/wellcheck/internal/e2etest"
	"github.com/stretchr/testify/require"
)

// testLookupEnv runs the server on a free port without pprof and without pacing.
func testLookupEnv(key string) (string, bool) {
	switch key {
	case "WELLCHECK_ADDR":
		return "localhost:0", true
	case "WELLCHECK_PPROF_ADDR":
		return "", true
	case "WELLCHECK_ADVANCE_DELAY", "WELLCHECK_REVEAL_DELAY", "WELLCHECK_REPLY_DELAY":
		return "0s", true
	default:
		return "", false
	}
}

// withEnv overrides keys of testLookupEnv.
func withEnv(overrides map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := overrides[key]; ok {
			return v, true
		}
		return testLookupEnv(key)
	}
}

func startTestServer(t *testing.T, lookupEnv func(string) (string, bool)) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, io.Discard, lookupEnv, run)
	require.NoError(t, err)
	return server
}

// answerQuestions answers every open question on doc with pick and returns the final page.
func answerQuestions(
	ctx context.Context,
	t *testing.T,
	client *e2etest.Client,
	doc *goquery.Document,
	pick func(questionID string) int,
) *goquery.Document {
	t.Helper()
	var err error
	for {
		question := doc.Find("section.question")
		if question.Length() == 0 {
			return doc
		}
		id, ok := question.Attr("data-question-id")
		require.True(t, ok)
		doc, err = client.Choose(ctx, strconv.Itoa(pick(id)))
		require.NoError(t, err)
	}
}

func getAssessment(ctx context.Context, t *testing.T, client *e2etest.Client) assessmentResponse {
	t.Helper()
	resp, err := client.Get(ctx, "/api/assessment")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got assessmentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	return got
}
