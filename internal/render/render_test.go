package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/internal/render"
	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() formation.Result {
	ada := roster.Participant{ID: 1, Name: "Ada"}
	grace := roster.Participant{ID: 2, Name: "Grace"}
	ken := roster.Participant{ID: 3, Name: "Ken"}

	return formation.Result{
		Groups: []formation.Group{
			{Members: []roster.Participant{ada, grace}, Topic: "Compilers", Score: 19},
			{Members: []roster.Participant{ken}, Topic: "Networks", Residual: true},
		},
		Stats: formation.Stats{Groups: 2, Greedy: 1, Residual: 1, Placed: 3, Total: 3, MeanScore: 9.5, Candidates: 4},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, sample()))
	out := buf.String()

	assert.Contains(t, out, "Group 1 · Compilers")
	assert.Contains(t, out, "score 19.00")
	assert.Contains(t, out, "  - Ada (ID: 1)\n")
	assert.Contains(t, out, "Group 2 · Networks")
	assert.Contains(t, out, "(leftover)")
	assert.Contains(t, out, "Groups: 2 (greedy 1, leftover 1)\n")
	assert.Contains(t, out, "Placed: 3/3\n")
	assert.Contains(t, out, "Mean score: 9.50\n")
	assert.NotContains(t, out, "could not be placed")
	// A bytes.Buffer is not a terminal: no escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestText_UnplacedWarning(t *testing.T) {
	res := sample()
	res.Stats.Total = 5
	res.Stats.Unplaced = 2

	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, res))
	assert.Contains(t, buf.String(), "2 participants could not be placed")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Result(&buf, "JSON", sample()))

	var doc struct {
		Groups []struct {
			Topic    string  `json:"topic"`
			Score    float64 `json:"score"`
			Residual bool    `json:"residual"`
			Members  []struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"members"`
		} `json:"groups"`
		Stats formation.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Groups, 2)
	assert.Equal(t, "Compilers", doc.Groups[0].Topic)
	assert.Equal(t, 19.0, doc.Groups[0].Score)
	assert.Equal(t, "Grace", doc.Groups[0].Members[1].Name)
	assert.True(t, doc.Groups[1].Residual)
	assert.Equal(t, sample().Stats, doc.Stats)
	assert.Contains(t, buf.String(), `"mean_score": 9.5`)
}

func TestResult_UnknownFormat(t *testing.T) {
	err := render.Result(&bytes.Buffer{}, "xml", sample())
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestMatrix(t *testing.T) {
	r, err := roster.New([]string{"Ada", "Grace", "Ken"}, []string{"Compilers"})
	require.NoError(t, err)
	require.NoError(t, r.SetPreferences(1, []int{2}, "Compilers", ""))
	require.NoError(t, r.SetPreferences(2, []int{1}, "Compilers", ""))
	sm, err := scoring.Build(r.Participants(), scoring.DefaultTiered())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Matrix(&buf, sm, []string{"Ada", "Grace", "Ken"}))
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var adaRow string
	for _, l := range lines {
		if strings.Contains(l, "Ada") && !strings.Contains(l, "Grace") {
			adaRow = l
		}
	}
	require.NotEmpty(t, adaRow, out)
	assert.Equal(t, []string{"Ada", "0", "15", "0"}, strings.Fields(strings.ReplaceAll(adaRow, "│", " ")))

	err = render.Matrix(&buf, sm, []string{"Ada"})
	require.Error(t, err)
}
