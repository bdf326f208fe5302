// Package render prints formation results for the command line.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/scoring"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for an output format other than text or json.
var ErrUnknownFormat = errors.New("render: unknown format")

var (
	primaryColor = lipgloss.Color("#A78BFA")
	warningColor = lipgloss.Color("#F59E0B")
	mutedColor   = lipgloss.Color("#9CA3AF")
)

// styles are bound to one writer so color detection follows the destination.
type styles struct {
	title   lipgloss.Style
	residue lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		residue: r.NewStyle().Italic(true).Foreground(mutedColor),
		muted:   r.NewStyle().Foreground(mutedColor),
		warning: r.NewStyle().Bold(true).Foreground(warningColor),
	}
}

// Result writes res in the given format.
func Result(w io.Writer, format string, res formation.Result) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return Text(w, res)
	case FormatJSON:
		return JSON(w, res)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Text writes one block per group followed by the run statistics.
func Text(w io.Writer, res formation.Result) error {
	st := newStyles(w)
	var sb strings.Builder

	for i, g := range res.Groups {
		head := fmt.Sprintf("Group %d · %s", i+1, g.Topic)
		sb.WriteString(st.title.Render(head))
		if g.Residual {
			sb.WriteString(" " + st.residue.Render("(leftover)"))
		}
		sb.WriteString(st.muted.Render(fmt.Sprintf("  score %.2f", g.Score)))
		sb.WriteByte('\n')
		for _, m := range g.Members {
			fmt.Fprintf(&sb, "  - %s\n", m.String())
		}
		sb.WriteByte('\n')
	}

	s := res.Stats
	fmt.Fprintf(&sb, "Groups: %d (greedy %d, leftover %d)\n", s.Groups, s.Greedy, s.Residual)
	fmt.Fprintf(&sb, "Placed: %d/%d\n", s.Placed, s.Total)
	fmt.Fprintf(&sb, "Mean score: %.2f\n", s.MeanScore)
	fmt.Fprintf(&sb, "Candidates evaluated: %d\n", s.Candidates)
	if s.Unplaced > 0 {
		sb.WriteString(st.warning.Render(fmt.Sprintf("%d participants could not be placed", s.Unplaced)))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type jsonGroup struct {
	Topic    string       `json:"topic"`
	Score    float64      `json:"score"`
	Residual bool         `json:"residual"`
	Members  []jsonMember `json:"members"`
}

type jsonResult struct {
	Groups []jsonGroup     `json:"groups"`
	Stats  formation.Stats `json:"stats"`
}

// JSON writes res as an indented JSON document.
func JSON(w io.Writer, res formation.Result) error {
	out := jsonResult{Groups: make([]jsonGroup, len(res.Groups)), Stats: res.Stats}
	for i, g := range res.Groups {
		jg := jsonGroup{Topic: g.Topic, Score: g.Score, Residual: g.Residual, Members: make([]jsonMember, len(g.Members))}
		for j, m := range g.Members {
			jg.Members[j] = jsonMember{ID: m.ID, Name: m.Name}
		}
		out.Groups[i] = jg
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Matrix writes sm as a table labeled with names (row i is names[i]).
func Matrix(w io.Writer, sm *scoring.ScoreMatrix, names []string) error {
	n := sm.Size()
	if len(names) != n {
		return fmt.Errorf("render: %d names for %d rows", len(names), n)
	}

	headers := append([]string{""}, names...)
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = names[i]
		for j := 0; j < n; j++ {
			v, err := sm.At(i, j)
			if err != nil {
				return err
			}
			row[j+1] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())

	return err
}
