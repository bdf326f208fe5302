package rosterfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/groupformer/session"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDocument wraps decode and validation failures.
	ErrInvalidDocument = errors.New("rosterfile: invalid document")

	// ErrUnknownPartner is returned when a partner reference matches nobody.
	ErrUnknownPartner = errors.New("rosterfile: unknown partner")
)

// documentValidate is shared by every Parse call.
var documentValidate *validator.Validate

func init() {
	documentValidate = validator.New()
	_ = documentValidate.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Document is a roster file.
type Document struct {
	Topics       []string `yaml:"topics" validate:"unique,dive,nonblank"`
	Participants []Entry  `yaml:"participants" validate:"required,min=1,unique=Name,dive"`
}

// Entry is one participant and their optional preferences.
type Entry struct {
	Name      string       `yaml:"name" validate:"nonblank"`
	Partners  []PartnerRef `yaml:"partners,omitempty"`
	Primary   string       `yaml:"primary,omitempty"`
	Secondary string       `yaml:"secondary,omitempty"`
}

// HasPreferences reports whether the entry states any preference.
func (e Entry) HasPreferences() bool {
	return len(e.Partners) > 0 || e.Primary != "" || e.Secondary != ""
}

// PartnerRef names a partner by 1-based id or by name.
type PartnerRef struct {
	ID   int
	Name string
}

// UnmarshalYAML accepts an integer id or a name.
func (p *PartnerRef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: partner must be a name or an id", n.Line)
	}
	if n.Tag == "!!int" {
		id, err := strconv.Atoi(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: partner id %q: %w", n.Line, n.Value, err)
		}
		*p = PartnerRef{ID: id}
		return nil
	}
	*p = PartnerRef{Name: n.Value}

	return nil
}

// MarshalYAML writes ids as integers and names as strings.
func (p PartnerRef) MarshalYAML() (any, error) {
	if p.Name != "" {
		return p.Name, nil
	}

	return p.ID, nil
}

// String implements fmt.Stringer.
func (p PartnerRef) String() string {
	if p.Name != "" {
		return p.Name
	}

	return "#" + strconv.Itoa(p.ID)
}

// Preference is an Entry with partner references resolved to ids.
type Preference struct {
	ID        int
	Partners  []int
	Primary   string
	Secondary string
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := documentValidate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, describe(err))
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: %w", err)
	}
	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes d as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("rosterfile: encode: %w", err)
	}

	return enc.Close()
}

// Names returns the participant names in document order.
func (d *Document) Names() []string {
	out := make([]string, len(d.Participants))
	for i, e := range d.Participants {
		out[i] = e.Name
	}

	return out
}

// Resolve converts every entry with preferences into a Preference.
// Ids are not range-checked here; the roster does that on apply.
//
// Errors: ErrUnknownPartner.
func (d *Document) Resolve() ([]Preference, error) {
	byName := make(map[string]int, len(d.Participants))
	for i, e := range d.Participants {
		byName[e.Name] = i + 1
	}

	var out []Preference
	for i, e := range d.Participants {
		if !e.HasPreferences() {
			continue
		}
		p := Preference{ID: i + 1, Primary: e.Primary, Secondary: e.Secondary}
		for _, ref := range e.Partners {
			if ref.Name == "" {
				p.Partners = append(p.Partners, ref.ID)
				continue
			}
			id, ok := byName[ref.Name]
			if !ok {
				return nil, fmt.Errorf("%s: partner %q: %w", e.Name, ref.Name, ErrUnknownPartner)
			}
			p.Partners = append(p.Partners, id)
		}
		out = append(out, p)
	}

	return out, nil
}

// PreferenceSetter is satisfied by *roster.Roster and *session.Session.
type PreferenceSetter interface {
	SetPreferences(id int, partners []int, primary, secondary string) error
}

// Apply resolves d and submits every preference to dst in document order.
// It stops at the first rejected entry.
func (d *Document) Apply(dst PreferenceSetter) error {
	prefs, err := d.Resolve()
	if err != nil {
		return err
	}
	for _, p := range prefs {
		if err := dst.SetPreferences(p.ID, p.Partners, p.Primary, p.Secondary); err != nil {
			return fmt.Errorf("%s: %w", d.Participants[p.ID-1].Name, err)
		}
	}

	return nil
}

// NewSession creates a session from d and applies its preferences.
func (d *Document) NewSession(opts ...session.Option) (*session.Session, error) {
	s, err := session.New(d.Names(), d.Topics, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.Apply(s); err != nil {
		return nil, err
	}

	return s, nil
}

// describe flattens validator errors into one line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Document.")
		switch fe.Tag() {
		case "required", "min":
			msgs[i] = field + " must not be empty"
		case "unique":
			msgs[i] = field + " must not contain duplicates"
		case "nonblank":
			msgs[i] = field + " must not be blank"
		default:
			msgs[i] = fmt.Sprintf("%s failed %q", field, fe.Tag())
		}
	}

	return strings.Join(msgs, "; ")
}
