package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgnsb/backend/internal/domain/shared/valueobject"
)

func mustMoney(t *testing.T, value float64) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromFloat(value)
	require.NoError(t, err)
	return m
}

func completeIndividualRecord(t *testing.T) SubscriptionRecord {
	t.Helper()
	return SubscriptionRecord{
		Tenor:         Tenor2Year,
		MonthOfOffer:  "March",
		BondValue:     mustMoney(t, 50000),
		ApplicantType: ApplicantTypeIndividual,
		Title:         "Mr.",
		FullName:      "Adewale Okonkwo",
		DateOfBirth:   "1985-04-12",
		PhoneNumber:   "08031234567",
		Email:         "adewale@example.com",
		Occupation:    "Engineer",
		NextOfKin:     "Funke Okonkwo",
		Address:       "12 Marina Road, Lagos",
		BankName:      "Zenith Bank",
		BankBranch:    "Victoria Island",
		AccountNumber: "0123456789",
		SortCode:      "057",
		BVN:           "22123456789",
		IsResident:    true,
		InvestorCategories: []string{
			"Individual",
		},
		AgentName:       "Meristem Securities",
		StockbrokerCode: "MER001",
	}
}

func completeJointRecord(t *testing.T) SubscriptionRecord {
	t.Helper()
	rec := completeIndividualRecord(t)
	rec.ApplicantType = ApplicantTypeJoint
	rec.JointTitle = "Mrs."
	rec.JointFullName = "Funke Okonkwo"
	rec.JointDateOfBirth = "1988-09-30"
	rec.JointPhoneNumber = "08097654321"
	rec.JointEmail = "funke@example.com"
	rec.JointOccupation = "Accountant"
	rec.JointNextOfKin = "Adewale Okonkwo"
	rec.JointAddress = "12 Marina Road, Lagos"
	return rec
}

func completeCorporateRecord(t *testing.T) SubscriptionRecord {
	t.Helper()
	return SubscriptionRecord{
		Tenor:           Tenor3Year,
		MonthOfOffer:    "July",
		BondValue:       mustMoney(t, 2500000),
		ApplicantType:   ApplicantTypeCorporate,
		CompanyName:     "Savannah Holdings Ltd",
		RCNumber:        "RC123456",
		BusinessType:    "Asset Management",
		ContactPerson:   "Ngozi Eze",
		CorpPhoneNumber: "09012345678",
		CorpEmail:       "info@savannah.example.com",
		Address:         "4 Broad Street, Lagos",
		BankName:        "Access Bank",
		AccountNumber:   "9876543210",
		BVN:             "22987654321",
		IsResident:      true,
		InvestorCategories: []string{
			"Corporate",
		},
	}
}

func TestClassify(t *testing.T) {
	t.Run("individual record classifies as individual", func(t *testing.T) {
		rec := completeIndividualRecord(t)

		kind := rec.Classify()

		individual, ok := kind.(IndividualApplicant)
		require.True(t, ok)
		assert.Equal(t, "Adewale Okonkwo", individual.Person.FullName)
		assert.Equal(t, "Mr.", individual.Person.Title)
		assert.Equal(t, "12 Marina Road, Lagos", individual.Person.Address)
	})

	t.Run("joint record carries both applicants", func(t *testing.T) {
		rec := completeJointRecord(t)

		kind := rec.Classify()

		joint, ok := kind.(JointApplicants)
		require.True(t, ok)
		assert.Equal(t, "Adewale Okonkwo", joint.Primary.FullName)
		assert.Equal(t, "Funke Okonkwo", joint.Joint.FullName)
		assert.Equal(t, "08097654321", joint.Joint.PhoneNumber)
		assert.Equal(t, "1988-09-30", joint.Joint.DateOfBirth)
	})

	t.Run("corporate record classifies as corporate", func(t *testing.T) {
		rec := completeCorporateRecord(t)

		kind := rec.Classify()

		corporate, ok := kind.(CorporateApplicant)
		require.True(t, ok)
		assert.Equal(t, "Savannah Holdings Ltd", corporate.Company.CompanyName)
		assert.Equal(t, "Ngozi Eze", corporate.Company.ContactPerson)
		assert.Equal(t, "09012345678", corporate.Company.PhoneNumber)
	})

	t.Run("corporate address comes from the shared address field", func(t *testing.T) {
		rec := completeCorporateRecord(t)
		rec.Address = "Plot 7, Abuja"

		corporate := rec.Classify().(CorporateApplicant)

		assert.Equal(t, "Plot 7, Abuja", corporate.Company.Address)
	})

	t.Run("missing applicant type defaults to individual", func(t *testing.T) {
		rec := completeIndividualRecord(t)
		rec.ApplicantType = ""

		_, ok := rec.Classify().(IndividualApplicant)

		assert.True(t, ok)
	})

	t.Run("unrecognized applicant type defaults to individual", func(t *testing.T) {
		rec := completeIndividualRecord(t)
		rec.ApplicantType = "Partnership"

		_, ok := rec.Classify().(IndividualApplicant)

		assert.True(t, ok)
	})
}

func TestSelectedCategories(t *testing.T) {
	t.Run("builds a membership set", func(t *testing.T) {
		rec := completeIndividualRecord(t)
		rec.InvestorCategories = []string{"Individual", "Staff Scheme"}

		set := rec.SelectedCategories()

		assert.True(t, set["Individual"])
		assert.True(t, set["Staff Scheme"])
		assert.False(t, set["Corporate"])
	})

	t.Run("empty selection yields empty set", func(t *testing.T) {
		rec := completeIndividualRecord(t)
		rec.InvestorCategories = nil

		assert.Empty(t, rec.SelectedCategories())
	})
}

func TestWithinBondLimits(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"minimum is allowed", 5000, true},
		{"maximum is allowed", 50000000, true},
		{"mid range is allowed", 250000, true},
		{"below minimum is rejected", 4999.99, false},
		{"above maximum is rejected", 50000000.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := completeIndividualRecord(t)
			rec.BondValue = mustMoney(t, tt.value)

			assert.Equal(t, tt.want, rec.WithinBondLimits())
		})
	}
}
