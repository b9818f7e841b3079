package subscription

import "github.com/shopspring/decimal"

// Bond value constraints published in the offer circular.
var (
	BondValueMin  = decimal.NewFromInt(5_000)
	BondValueMax  = decimal.NewFromInt(50_000_000)
	BondValueStep = decimal.NewFromInt(1_000)
)

// investorCategories is the closed vocabulary the form's category
// grid is built over, in the order the paper form prints it.
var investorCategories = []string{
	"Individual",
	"Insurance",
	"Corporate",
	"Others",
	"Foreign Investor",
	"Non-Bank Financial Institution",
	"Co-operative Society",
	"Government Agencies",
	"Staff Scheme",
	"Micro Finance Bank",
}

// InvestorCategories returns the closed vocabulary of investor
// classifications, in form order. Callers must not mutate the result
// beyond their copy.
func InvestorCategories() []string {
	out := make([]string, len(investorCategories))
	copy(out, investorCategories)
	return out
}

// IsInvestorCategory reports whether the label is part of the closed
// investor-category vocabulary.
func IsInvestorCategory(label string) bool {
	for _, c := range investorCategories {
		if c == label {
			return true
		}
	}
	return false
}

// banks is the receiving-bank vocabulary offered at intake.
var banks = []string{
	"Access Bank",
	"Citibank",
	"Ecobank",
	"Fidelity Bank",
	"First Bank",
	"First City Monument Bank",
	"Guaranty Trust Bank",
	"Heritage Bank",
	"Keystone Bank",
	"Polaris Bank",
	"Providus Bank",
	"Stanbic IBTC Bank",
	"Standard Chartered Bank",
	"Sterling Bank",
	"SunTrust Bank",
	"Union Bank",
	"United Bank for Africa",
	"Unity Bank",
	"Wema Bank",
	"Zenith Bank",
	"Jaiz Bank",
	"Other",
}

// AllBanks returns the intake bank vocabulary.
func AllBanks() []string {
	out := make([]string, len(banks))
	copy(out, banks)
	return out
}

// titles is the salutation vocabulary offered at intake.
var titles = []string{"Mr.", "Mrs.", "Miss", "Dr.", "Chief", "Prof.", "Alhaji", "Alhaja"}

// AllTitles returns the applicant title vocabulary.
func AllTitles() []string {
	out := make([]string, len(titles))
	copy(out, titles)
	return out
}

// months lists offer months in calendar order.
var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// AllMonths returns the months of offer in calendar order.
func AllMonths() []string {
	out := make([]string, len(months))
	copy(out, months)
	return out
}

// MonthIndex returns the 1-based calendar position of a month of
// offer, or 0 when the name is not a calendar month.
func MonthIndex(month string) int {
	for i, m := range months {
		if m == month {
			return i + 1
		}
	}
	return 0
}
