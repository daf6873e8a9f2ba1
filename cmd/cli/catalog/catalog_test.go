package catalog

import (
	"bytes"
	"testing"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_writeCatalog(t *testing.T) {
	bank := testhelpers.DefaultBank(t)

	var out bytes.Buffer
	require.NoError(t, writeCatalog(&out, ""))

	var doc Document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Equal(t, bank.Questions(), doc.Questions)
	require.Equal(t, bank.Conditions(), doc.Conditions)
	require.Contains(t, out.String(), "professional_help:")
}

func Test_writeCatalog_Category(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCatalog(&out, assessment.Sleep))

	var doc Document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Questions, 1)
	require.Equal(t, "sleep_quality", doc.Questions[0].ID)
	require.Len(t, doc.Conditions, 1)
	require.Equal(t, assessment.Sleep, doc.Conditions[0].Category)

	require.ErrorIs(t, writeCatalog(&out, "astrology"), ErrUnknownCategory)
}

func TestNewCatalog(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCatalog()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--category", "crisis"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "id: self_harm")
}
