package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicantTypeIsValid(t *testing.T) {
	tests := []struct {
		name          string
		applicantType ApplicantType
		want          bool
	}{
		{"individual is valid", ApplicantTypeIndividual, true},
		{"joint is valid", ApplicantTypeJoint, true},
		{"corporate is valid", ApplicantTypeCorporate, true},
		{"empty is invalid", ApplicantType(""), false},
		{"lowercase is invalid", ApplicantType("individual"), false},
		{"unknown is invalid", ApplicantType("Partnership"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.applicantType.IsValid())
		})
	}
}

func TestApplicantTypeString(t *testing.T) {
	assert.Equal(t, "Individual", ApplicantTypeIndividual.String())
	assert.Equal(t, "Joint", ApplicantTypeJoint.String())
	assert.Equal(t, "Corporate", ApplicantTypeCorporate.String())
}

func TestAllApplicantTypes(t *testing.T) {
	all := AllApplicantTypes()
	assert.Len(t, all, 3)
	for _, at := range all {
		assert.True(t, at.IsValid())
	}
}

func TestTenorIsValid(t *testing.T) {
	tests := []struct {
		name  string
		tenor Tenor
		want  bool
	}{
		{"two year is valid", Tenor2Year, true},
		{"three year is valid", Tenor3Year, true},
		{"empty is invalid", Tenor(""), false},
		{"unpunctuated is invalid", Tenor("2 Year"), false},
		{"five year is invalid", Tenor("5-Year"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tenor.IsValid())
		})
	}
}

func TestTenorYears(t *testing.T) {
	assert.Equal(t, 2, Tenor2Year.Years())
	assert.Equal(t, 3, Tenor3Year.Years())
	assert.Equal(t, 0, Tenor("").Years())
	assert.Equal(t, 0, Tenor("10-Year").Years())
}

func TestAllTenors(t *testing.T) {
	all := AllTenors()
	assert.Len(t, all, 2)
	for _, tn := range all {
		assert.True(t, tn.IsValid())
	}
}
