package render

import (
	"fmt"
	"sort"
	"time"

	"github.com/fgnsb/backend/internal/domain/subscription"
)

// summaryBlocks lays a batch of records out as the offer summary
// report: a listing with one row per application, a totals row and
// count breakdowns by applicant type and tenor. The listing is
// emitted row by row so pagination can break between applications.
func (g *Generator) summaryBlocks(records []subscription.SubscriptionRecord, summary subscription.BatchSummary, generatedAt time.Time) []Block {
	cw := g.styles.Page.ContentWidth()
	pal := g.styles.Palette

	blocks := []Block{
		&Paragraph{Text: "FGN SAVINGS BOND SUBSCRIPTION SUMMARY", Style: g.styles.Subtitle(), Align: "C"},
		&Spacer{Height: 4},
		&Paragraph{Text: summaryCaption(records, summary), Style: g.styles.Small(), Align: "C"},
		&Spacer{Height: 12},
	}

	listWidths := []float64{cw * 0.3, cw * 0.13, cw * 0.12, cw * 0.2, cw * 0.25}
	blocks = append(blocks, &Table{
		Rows: [][]TableCell{{
			{Text: "Applicant", Bold: true, Color: &pal.White, Fill: &pal.Green},
			{Text: "Type", Bold: true, Color: &pal.White, Fill: &pal.Green},
			{Text: "Tenor", Bold: true, Color: &pal.White, Fill: &pal.Green},
			{Text: "Month of Offer", Bold: true, Color: &pal.White, Fill: &pal.Green},
			{Text: "Value", Bold: true, Align: "R", Color: &pal.White, Fill: &pal.Green},
		}},
		ColWidths: listWidths,
		GridColor: pal.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
	})

	for _, rec := range sortedForListing(records) {
		blocks = append(blocks, &Table{
			Rows: [][]TableCell{{
				{Text: applicantLabel(rec)},
				{Text: applicantKindName(rec)},
				{Text: rec.Tenor.String()},
				{Text: rec.MonthOfOffer},
				{Text: rec.BondValue.String(), Align: "R"},
			}},
			ColWidths: listWidths,
			GridColor: pal.Green,
			PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
		})
	}

	blocks = append(blocks, &Table{
		Rows: [][]TableCell{{
			{Text: fmt.Sprintf("Total (%d applications)", summary.Count), Bold: true, Fill: &pal.GreenLight},
			{Text: "", Fill: &pal.GreenLight},
			{Text: "", Fill: &pal.GreenLight},
			{Text: "", Fill: &pal.GreenLight},
			{Text: summary.TotalValue.String(), Bold: true, Align: "R", Fill: &pal.GreenLight},
		}},
		ColWidths: listWidths,
		GridColor: pal.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
	})

	blocks = append(blocks, &Spacer{Height: g.styles.SectionSpacing})
	blocks = append(blocks, g.breakdownByType(summary)...)
	blocks = append(blocks, &Spacer{Height: g.styles.FieldSpacing})
	blocks = append(blocks, g.breakdownByTenor(summary)...)

	blocks = append(blocks,
		&Spacer{Height: 12},
		&Paragraph{
			Text:  "Generated on: " + generatedAt.Format("2006-01-02 15:04:05"),
			Style: g.styles.Tiny(),
			Align: "C",
		},
	)
	return blocks
}

func (g *Generator) breakdownByType(summary subscription.BatchSummary) []Block {
	rows := [][]TableCell{}
	for _, at := range subscription.AllApplicantTypes() {
		rows = append(rows, []TableCell{
			{Text: at.String(), Bold: true, Fill: &g.styles.Palette.LightGray},
			{Text: fmt.Sprintf("%d", summary.CountByType[at])},
		})
	}
	return []Block{
		&SectionHeader{Title: "Applications by Type", Width: 300},
		&Spacer{Height: 4},
		&Table{
			Rows:      rows,
			ColWidths: []float64{200, 100},
			GridColor: g.styles.Palette.Green,
			PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
		},
	}
}

func (g *Generator) breakdownByTenor(summary subscription.BatchSummary) []Block {
	rows := [][]TableCell{}
	for _, tenor := range subscription.AllTenors() {
		rows = append(rows, []TableCell{
			{Text: tenor.String(), Bold: true, Fill: &g.styles.Palette.LightGray},
			{Text: fmt.Sprintf("%d", summary.CountByTenor[tenor])},
		})
	}
	return []Block{
		&SectionHeader{Title: "Applications by Tenor", Width: 300},
		&Spacer{Height: 4},
		&Table{
			Rows:      rows,
			ColWidths: []float64{200, 100},
			GridColor: g.styles.Palette.Green,
			PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
		},
	}
}

// summaryCaption names the offer month when the whole batch shares
// one, plus the generation scope.
func summaryCaption(records []subscription.SubscriptionRecord, summary subscription.BatchSummary) string {
	if summary.Count == 0 {
		return "No applications in this batch"
	}
	month := records[0].MonthOfOffer
	for _, rec := range records[1:] {
		if rec.MonthOfOffer != month {
			month = ""
			break
		}
	}
	if month == "" {
		return fmt.Sprintf("%d applications across offer months", summary.Count)
	}
	return fmt.Sprintf("%s Offer - %d applications", month, summary.Count)
}

// sortedForListing orders records by offer month then applicant name,
// leaving the caller's slice untouched. Unknown months sort last.
func sortedForListing(records []subscription.SubscriptionRecord) []subscription.SubscriptionRecord {
	sorted := make([]subscription.SubscriptionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		mi, mj := monthRank(sorted[i].MonthOfOffer), monthRank(sorted[j].MonthOfOffer)
		if mi != mj {
			return mi < mj
		}
		return applicantLabel(sorted[i]) < applicantLabel(sorted[j])
	})
	return sorted
}

func monthRank(month string) int {
	if idx := subscription.MonthIndex(month); idx > 0 {
		return idx
	}
	return 13
}

// applicantLabel is the name a record lists under: the company for
// corporate applications, the (primary) applicant otherwise.
func applicantLabel(rec subscription.SubscriptionRecord) string {
	switch kind := rec.Classify().(type) {
	case subscription.CorporateApplicant:
		return kind.Company.CompanyName
	case subscription.JointApplicants:
		return displayName(kind.Primary.FullName)
	case subscription.IndividualApplicant:
		return displayName(kind.Person.FullName)
	}
	return ""
}

func applicantKindName(rec subscription.SubscriptionRecord) string {
	switch rec.Classify().(type) {
	case subscription.CorporateApplicant:
		return subscription.ApplicantTypeCorporate.String()
	case subscription.JointApplicants:
		return subscription.ApplicantTypeJoint.String()
	default:
		return subscription.ApplicantTypeIndividual.String()
	}
}
