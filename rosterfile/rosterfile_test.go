package rosterfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/rosterfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := rosterfile.Load(filepath.Join("testdata", "class.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Compilers", "Networks", "Graphics"}, doc.Topics)
	assert.Equal(t, []string{"Ada", "Grace", "Edsger", "Barbara", "Ken", "Alan"}, doc.Names())
	assert.Equal(t, []rosterfile.PartnerRef{{Name: "Grace"}, {ID: 3}}, doc.Participants[0].Partners)
	assert.False(t, doc.Participants[4].HasPreferences())

	_, err = rosterfile.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	doc, err := rosterfile.Load(filepath.Join("testdata", "class.yaml"))
	require.NoError(t, err)

	prefs, err := doc.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []rosterfile.Preference{
		{ID: 1, Partners: []int{2, 3}, Primary: "Compilers", Secondary: "Networks"},
		{ID: 2, Partners: []int{1}, Primary: "Compilers"},
		{ID: 3, Partners: []int{1}, Primary: "Networks"},
		{ID: 4, Primary: "Graphics"},
		{ID: 6, Partners: []int{5}},
	}, prefs)
}

func TestNewSession(t *testing.T) {
	doc, err := rosterfile.Load(filepath.Join("testdata", "class.yaml"))
	require.NoError(t, err)

	s, err := doc.NewSession()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, s.Submitted())

	ada, err := s.Roster().Participant(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ada.Partners)

	res, _, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 6, res.Stats.Placed)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty document"},
		{"no participants", "topics: [A]\n", "Participants must not be empty"},
		{"blank name", "participants:\n  - name: ' '\n", "Participants[0].Name must not be blank"},
		{"duplicate names", "participants:\n  - name: A\n  - name: A\n", "Participants must not contain duplicates"},
		{"duplicate topics", "topics: [X, X]\nparticipants:\n  - name: A\n", "Topics must not contain duplicates"},
		{"blank topic", "topics: ['']\nparticipants:\n  - name: A\n", "Topics[0] must not be blank"},
		{"unknown key", "participants:\n  - name: A\n    colour: red\n", "colour"},
		{"bad partner", "participants:\n  - name: A\n    partners: [[1]]\n", "partner must be a name or an id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rosterfile.Parse(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, rosterfile.ErrInvalidDocument)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApply_Errors(t *testing.T) {
	doc, err := rosterfile.Parse(strings.NewReader(`
topics: [A]
participants:
  - name: Ann
    partners: [Bob]
  - name: Cat
`))
	require.NoError(t, err)
	_, err = doc.Resolve()
	require.ErrorIs(t, err, rosterfile.ErrUnknownPartner)

	doc, err = rosterfile.Parse(strings.NewReader(`
topics: [A]
participants:
  - name: Ann
    primary: A
  - name: Bob
    partners: [7]
`))
	require.NoError(t, err)
	r, err := roster.New(doc.Names(), doc.Topics)
	require.NoError(t, err)
	err = doc.Apply(r)
	require.ErrorIs(t, err, roster.ErrParticipantNotFound)
	assert.Contains(t, err.Error(), "Bob")

	// Entries before the failure are kept.
	ann, err := r.Participant(1)
	require.NoError(t, err)
	assert.Equal(t, "A", ann.PrimaryTopic)

	doc, err = rosterfile.Parse(strings.NewReader("topics: [A]\nparticipants:\n  - name: Ann\n    primary: B\n"))
	require.NoError(t, err)
	_, err = doc.NewSession()
	require.ErrorIs(t, err, roster.ErrUnknownTopic)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := rosterfile.Load(filepath.Join("testdata", "class.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	assert.Contains(t, buf.String(), "- Grace\n")
	assert.Contains(t, buf.String(), "- 3\n")

	back, err := rosterfile.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}
