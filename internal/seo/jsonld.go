// Package seo builds the structured data embedded in the page head.
package seo

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/nfrund/cloudx/internal/content"
)

// Organization is the schema.org Organization payload.
type Organization struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	LegalName   string   `json:"legalName,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	TaxID       string   `json:"taxID,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

// NewOrganization describes the company behind the page. Relative logo URLs
// are resolved against baseURL; without a base URL they are left out.
func NewOrganization(cat *content.Catalog, baseURL, logoURL string) Organization {
	org := Organization{
		Context:     "https://schema.org",
		Type:        "Organization",
		Name:        cat.Brand.Name,
		LegalName:   cat.Footer.Company,
		Description: cat.Brand.Description,
		URL:         baseURL,
		Logo:        absolute(baseURL, logoURL),
		TaxID:       cat.Footer.CNPJ,
	}
	for _, s := range cat.Footer.Social {
		org.SameAs = append(org.SameAs, s.Href)
	}
	return org
}

func absolute(base, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// Script renders org as an application/ld+json script element.
func Script(org Organization) templ.Component {
	return templ.JSONScript("organization-ld", org).WithType("application/ld+json")
}
