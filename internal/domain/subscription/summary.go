package subscription

import (
	"fmt"

	"github.com/fgnsb/backend/internal/domain/shared/valueobject"
)

// BatchSummary aggregates a batch of subscription records for the
// offer summary report.
type BatchSummary struct {
	Count        int
	TotalValue   valueobject.Money
	CountByType  map[ApplicantType]int
	CountByTenor map[Tenor]int
}

// Summarize folds the records into a BatchSummary. Applicant types
// are counted after classification, so unrecognized types land under
// Individual; records without a valid tenor are left out of the tenor
// breakdown. It fails only when the total bond value overflows the
// supported amount range.
func Summarize(records []SubscriptionRecord) (BatchSummary, error) {
	summary := BatchSummary{
		Count:        len(records),
		CountByType:  make(map[ApplicantType]int),
		CountByTenor: make(map[Tenor]int),
	}

	total := valueobject.ZeroMoney()
	for _, rec := range records {
		var err error
		total, err = total.Add(rec.BondValue)
		if err != nil {
			return BatchSummary{}, fmt.Errorf("total bond value: %w", err)
		}

		switch rec.Classify().(type) {
		case JointApplicants:
			summary.CountByType[ApplicantTypeJoint]++
		case CorporateApplicant:
			summary.CountByType[ApplicantTypeCorporate]++
		default:
			summary.CountByType[ApplicantTypeIndividual]++
		}

		if rec.Tenor.IsValid() {
			summary.CountByTenor[rec.Tenor]++
		}
	}
	summary.TotalValue = total
	return summary, nil
}
