package domain

import (
	"regexp"
	"strings"

	dErrors "helperhub/pkg/domain-errors"
)

// Metropolitan departments 01-95 (including Corsican 2A/2B) plus the
// overseas departments 971-974 and 976.
var departmentPattern = regexp.MustCompile(`^(0[1-9]|1[0-9]|2[1-9AB]|[3-8][0-9]|9[0-5]|97[1-4]|976)$`)

// foreignCountries lists the non-France countries helpers may reside in.
// Cross-border commuting is only supported from neighbouring countries.
var foreignCountries = map[string]struct{}{
	"Belgium":     {},
	"Germany":     {},
	"Italy":       {},
	"Luxembourg":  {},
	"Monaco":      {},
	"Netherlands": {},
	"Portugal":    {},
	"Spain":       {},
	"Switzerland": {},
}

const countryFrance = "France"

// Residence is a validated place of residence: either a French department or
// an allow-listed foreign country with no department.
type Residence struct {
	country    string
	department string
}

// NewFrenchResidence validates a French department code and fixes the
// country to France.
func NewFrenchResidence(department string) (Residence, error) {
	trimmed := strings.TrimSpace(department)
	if !departmentPattern.MatchString(trimmed) {
		return Residence{}, dErrors.Newf(dErrors.CodeResidenceDepartmentInvalid, "%q is not a French department code", trimmed).
			WithDetail("field", "residence").
			WithDetail("department", trimmed)
	}
	return Residence{country: countryFrance, department: trimmed}, nil
}

// NewForeignResidence validates a foreign country of residence. France is
// rejected on this path; use NewFrenchResidence with a department instead.
func NewForeignResidence(country string) (Residence, error) {
	trimmed := strings.TrimSpace(country)
	if strings.EqualFold(trimmed, countryFrance) {
		return Residence{}, dErrors.New(dErrors.CodeResidenceCountryNotAllowed, "French residence requires a department code").
			WithDetail("field", "residence").
			WithDetail("country", trimmed)
	}
	if _, ok := foreignCountries[trimmed]; !ok {
		return Residence{}, dErrors.Newf(dErrors.CodeResidenceCountryNotAllowed, "residence in %q is not supported", trimmed).
			WithDetail("field", "residence").
			WithDetail("country", trimmed)
	}
	return Residence{country: trimmed}, nil
}

func (r Residence) Country() string { return r.country }

// Department returns the French department code, empty for foreign
// residences.
func (r Residence) Department() string { return r.department }

func (r Residence) IsFrench() bool { return r.country == countryFrance }

func (r Residence) IsZero() bool { return r.country == "" }
