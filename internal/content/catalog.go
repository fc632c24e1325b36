// Package content holds the copy of the landing page: typed records per
// section, the built-in pt-BR defaults and an optional YAML override.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("invalid content catalog")

// Catalog is the complete copy of the page. Treat it as read-only once built.
type Catalog struct {
	Brand        Brand        `yaml:"brand" validate:"required"`
	Nav          Nav          `yaml:"nav" validate:"required"`
	Hero         Hero         `yaml:"hero" validate:"required"`
	Problem      Problem      `yaml:"problem" validate:"required"`
	Solution     Solution     `yaml:"solution" validate:"required"`
	Squad        Squad        `yaml:"squad" validate:"required"`
	Metrics      Metrics      `yaml:"metrics" validate:"required"`
	Deliverables Deliverables `yaml:"deliverables" validate:"required"`
	FinalCTA     FinalCTA     `yaml:"final_cta" validate:"required"`
	FAQ          FAQ          `yaml:"faq" validate:"required"`
	Footer       Footer       `yaml:"footer" validate:"required"`
}

type Brand struct {
	Name         string `yaml:"name" validate:"required"`
	FallbackText string `yaml:"fallback_text" validate:"required"`
	Description  string `yaml:"description" validate:"required"`
}

type NavLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,startswith=#"`
}

type Nav struct {
	Links     []NavLink `yaml:"links" validate:"required,min=1,dive"`
	CTA       string    `yaml:"cta" validate:"required"`
	MobileCTA string    `yaml:"mobile_cta" validate:"required"`
}

type Hero struct {
	Eyebrow   string `yaml:"eyebrow" validate:"required"`
	Title     string `yaml:"title" validate:"required"`
	Highlight string `yaml:"highlight"`
	Subtitle  string `yaml:"subtitle" validate:"required"`
	CTA       string `yaml:"cta" validate:"required"`
	Assurance string `yaml:"assurance"`
}

type PainPoint struct {
	Text string `yaml:"text" validate:"required"`
}

type Problem struct {
	Title            string      `yaml:"title" validate:"required"`
	Highlight        string      `yaml:"highlight"`
	PainPoints       []PainPoint `yaml:"pain_points" validate:"required,min=1,dive"`
	ClosingTitle     string      `yaml:"closing_title"`
	ClosingText      string      `yaml:"closing_text"`
	ClosingHighlight string      `yaml:"closing_highlight"`
}

type Pillar struct {
	Title       string   `yaml:"title" validate:"required"`
	Icon        string   `yaml:"icon" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Items       []string `yaml:"items" validate:"dive,required"`
}

type Solution struct {
	Title    string   `yaml:"title" validate:"required"`
	Subtitle string   `yaml:"subtitle"`
	Pillars  []Pillar `yaml:"pillars" validate:"required,min=1,dive"`
	CTA      string   `yaml:"cta" validate:"required"`
}

type TeamMember struct {
	Role string `yaml:"role" validate:"required"`
	Icon string `yaml:"icon" validate:"required"`
}

type ComparisonRow struct {
	Text     string `yaml:"text" validate:"required"`
	Included bool   `yaml:"included"`
}

type Comparison struct {
	Ours          string          `yaml:"ours" validate:"required"`
	Versus        string          `yaml:"versus" validate:"required"`
	Theirs        string          `yaml:"theirs" validate:"required"`
	Rows          []ComparisonRow `yaml:"rows" validate:"required,min=1,dive"`
	FootnoteLabel string          `yaml:"footnote_label"`
	Footnote      string          `yaml:"footnote"`
}

type Squad struct {
	Title      string       `yaml:"title" validate:"required"`
	Subtitle   string       `yaml:"subtitle"`
	Members    []TeamMember `yaml:"members" validate:"required,min=1,dive"`
	Comparison Comparison   `yaml:"comparison" validate:"required"`
}

type Metric struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

type Metrics struct {
	Items []Metric `yaml:"items" validate:"required,min=1,dive"`
}

type Deliverable struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Icon        string `yaml:"icon" validate:"required"`
}

type Deliverables struct {
	Title    string        `yaml:"title" validate:"required"`
	Subtitle string        `yaml:"subtitle"`
	Items    []Deliverable `yaml:"items" validate:"required,min=1,dive"`
}

type Step struct {
	Title string `yaml:"title" validate:"required"`
	Text  string `yaml:"text" validate:"required"`
}

type FinalCTA struct {
	Title   string `yaml:"title" validate:"required"`
	Text    string `yaml:"text" validate:"required"`
	CTA     string `yaml:"cta" validate:"required"`
	Variant string `yaml:"variant" validate:"omitempty,oneof=primary secondary tertiary ghost"`
	Note    string `yaml:"note"`
	Steps   []Step `yaml:"steps" validate:"dive"`
}

type FAQEntry struct {
	Question string `yaml:"question" validate:"required"`
	// Answer is Markdown; plain text renders as a single paragraph.
	Answer string `yaml:"answer" validate:"required"`
}

type FAQ struct {
	Title   string     `yaml:"title" validate:"required"`
	Entries []FAQEntry `yaml:"entries" validate:"required,min=1,dive"`
}

type SocialLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,url"`
	Icon  string `yaml:"icon" validate:"required"`
}

type Footer struct {
	Company   string       `yaml:"company" validate:"required"`
	CNPJ      string       `yaml:"cnpj"`
	Copyright string       `yaml:"copyright" validate:"required"`
	Social    []SocialLink `yaml:"social" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the catalog and reports every failing field.
func (c *Catalog) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(fields, ", "))
}
