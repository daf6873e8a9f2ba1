package contexthelpers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/myrjola/wellcheck/internal/contexthelpers"
	"github.com/stretchr/testify/assert"
)

func TestSettersAndGetters(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, contexthelpers.CurrentPath(r.Context()))
	assert.Empty(t, contexthelpers.CSRFToken(r.Context()))
	assert.Empty(t, contexthelpers.CSPNonce(r.Context()))
	assert.Empty(t, contexthelpers.ConversationID(r.Context()))

	r = contexthelpers.SetCurrentPath(r, "/report.txt")
	r = contexthelpers.SetCSRFToken(r, "token")
	r = contexthelpers.SetCSPNonce(r, "nonce")
	r = contexthelpers.SetConversationID(r, "abc")

	ctx := r.Context()
	assert.Equal(t, "/report.txt", contexthelpers.CurrentPath(ctx))
	assert.Equal(t, "token", contexthelpers.CSRFToken(ctx))
	assert.Equal(t, "nonce", contexthelpers.CSPNonce(ctx))
	assert.Equal(t, "abc", contexthelpers.ConversationID(ctx))
}
