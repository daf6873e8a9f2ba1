package components

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortUID(t *testing.T) {
	a, b := shortUID(), shortUID()
	require.Len(t, a, 8)
	require.NotEqual(t, a, b)
}

func TestPercent(t *testing.T) {
	require.Equal(t, 0, percent(3, 0))
	require.Equal(t, 0, percent(0, 15))
	require.Equal(t, 33, percent(5, 15))
	require.Equal(t, 100, percent(15, 15))
}

func TestFuncs(t *testing.T) {
	tmpl := template.Must(template.New("t").Funcs(Funcs()).Parse(`{{inc 1}} {{percent 1 4}} {{len uid}}`))
	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, nil))
	require.Equal(t, "2 25 8", sb.String())
}
