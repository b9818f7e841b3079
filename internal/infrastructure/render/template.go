package render

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fgnsb/backend/internal/domain/subscription"
)

const formTitle = "SUBSCRIPTION FORM FOR FEDERAL GOVERNMENT OF NIGERIA SAVINGS BOND (FGNSB)"

const formInstructions = "Applications must be made in accordance with the instructions set out " +
	"on the back of this application form. Care must be taken to follow these instructions as " +
	"applications that do not comply with the instructions may be rejected. If you are in any " +
	"doubt, please consult your Stockbroker, Banker, Solicitor, or any professional adviser for guidance."

const formDeclaration = "In response to the advertisement in both print and electronic media, " +
	"I/We hereby offer my/our subscription for FGNSB"

// FormTemplate assembles a subscription record into the ordered block
// sequence of the official DMO subscription form.
type FormTemplate struct {
	styles   *Styles
	logoPath string
}

// FormTemplateOption configures a FormTemplate.
type FormTemplateOption func(*FormTemplate)

// WithLogo points the header at the DMO logo image. When the file is
// missing the header falls back to the printed office name.
func WithLogo(path string) FormTemplateOption {
	return func(t *FormTemplate) {
		t.logoPath = path
	}
}

// WithStyles overrides the default form styling.
func WithStyles(styles *Styles) FormTemplateOption {
	return func(t *FormTemplate) {
		if styles != nil {
			t.styles = styles
		}
	}
}

// NewFormTemplate creates a template with the official form styling.
func NewFormTemplate(opts ...FormTemplateOption) *FormTemplate {
	t := &FormTemplate{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Blocks lays the record out as the complete form. Every row is
// emitted whether or not its value is present; only the joint and
// witness parts depend on the record.
func (t *FormTemplate) Blocks(rec subscription.SubscriptionRecord, generatedAt time.Time) []Block {
	blocks := t.header()
	blocks = append(blocks, t.guideSection(rec)...)

	switch kind := rec.Classify().(type) {
	case subscription.CorporateApplicant:
		blocks = append(blocks, t.corporateSection(kind.Company)...)
	case subscription.JointApplicants:
		blocks = append(blocks, t.personalSection("1. Primary Applicant Details", kind.Primary)...)
		blocks = append(blocks, t.jointSection(kind.Joint)...)
	case subscription.IndividualApplicant:
		blocks = append(blocks, t.personalSection("1. Individual Applicant Details", kind.Person)...)
	}

	blocks = append(blocks, t.bankSection(rec)...)
	blocks = append(blocks, t.residencySection(rec)...)
	blocks = append(blocks, t.investorSection(rec)...)
	blocks = append(blocks, t.agentsSection(rec)...)
	blocks = append(blocks, t.witnessSection(rec)...)
	blocks = append(blocks, t.signatureSection()...)
	blocks = append(blocks, t.footer(generatedAt)...)
	return blocks
}

func (t *FormTemplate) contentWidth() float64 {
	return t.styles.Page.ContentWidth()
}

func (t *FormTemplate) labelCell(s string) TableCell {
	return TableCell{Text: s, Bold: true, Fill: &t.styles.Palette.LightGray}
}

func valueCell(s string) TableCell {
	return TableCell{Text: s}
}

// displayName renders an applicant name in title case the way the
// completed paper forms are keyed in.
func displayName(name string) string {
	if name == "" {
		return ""
	}
	return cases.Title(language.English).String(name)
}

// displayCategory marks the foreign investor entry with the asterisk
// the printed form uses to reference its residency footnote.
func displayCategory(category string) string {
	if category == "Foreign Investor" {
		return "*Foreign Investor"
	}
	return category
}

func check(on bool) string {
	if on {
		return "X"
	}
	return " "
}

func (t *FormTemplate) header() []Block {
	logo := t.logoPath
	if logo != "" {
		if _, err := os.Stat(logo); err != nil {
			logo = ""
		}
	}

	return []Block{
		&formHeader{styles: t.styles, logoPath: logo},
		&Spacer{Height: 8},
		&Paragraph{
			Text:  formTitle,
			Style: TextStyle{Size: 11, Bold: true, Color: t.styles.Palette.Black},
			Align: "C",
		},
		&Spacer{Height: 4},
		&Paragraph{
			Text:    formInstructions,
			Style:   TextStyle{Size: t.styles.Sizes.Tiny, Color: t.styles.Palette.Gray},
			Align:   "C",
			Leading: 9,
		},
		&Spacer{Height: 4},
		&Paragraph{
			Text:  formDeclaration,
			Style: TextStyle{Size: t.styles.Sizes.Small, Italic: true, Color: t.styles.Palette.Black},
			Align: "C",
		},
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) guideSection(rec subscription.SubscriptionRecord) []Block {
	cw := t.contentWidth()
	green := t.styles.Palette.Green

	tenorRow := &Table{
		Rows: [][]TableCell{{
			{Text: "Tenor of Bond:", Bold: true},
			{Text: fmt.Sprintf("2-Year [%s]", check(rec.Tenor == subscription.Tenor2Year))},
			{Text: fmt.Sprintf("3-Year [%s]", check(rec.Tenor == subscription.Tenor3Year))},
			{Text: "Month of Offer:", Bold: true},
			{Text: rec.MonthOfOffer},
		}},
		ColWidths: []float64{80, 70, 70, 80, 100},
		GridColor: green,
		BoxWidth:  1.5,
		PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
	}

	valuesRow := &Table{
		Rows: [][]TableCell{
			{
				{Prefix: "Minimum Value:", Text: "N5,000.00"},
				{Prefix: "Value of Bonds Applied for:", Text: rec.BondValue.String()},
			},
			{
				{Prefix: "Maximum Value:", Text: "N50,000,000.00"},
				{Prefix: "Amount in Words:", Text: rec.AmountInWords},
			},
		},
		ColWidths: []float64{cw * 0.4, cw * 0.6},
		GridColor: green,
		BoxWidth:  1.5,
		PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
	}

	eAllotment := &Table{
		Rows: [][]TableCell{
			{{Text: "E-allotment Details", Bold: true, Align: "C", Fill: &t.styles.Palette.GreenLight}},
			{{Text: "Applicant's CSCS A/C No.:", Bold: true}, valueCell(rec.CSCSNumber)},
			{{Text: "Applicant's CHN No.:", Bold: true}, valueCell(rec.CHNNumber)},
		},
		ColWidths: []float64{cw * 0.4, cw * 0.6},
		GridColor: green,
		PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Letter: "A", Title: "Guide to Applications", Width: cw},
		&Spacer{Height: 4},
		tenorRow,
		valuesRow,
		eAllotment,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) personalSection(title string, p subscription.PersonalDetails) []Block {
	grid := &Table{
		Rows: [][]TableCell{
			{t.labelCell("Title:"), valueCell(p.Title), t.labelCell("Full Name:"), valueCell(displayName(p.FullName))},
			{t.labelCell("Date of Birth:"), valueCell(p.DateOfBirth), t.labelCell("Phone Number:"), valueCell(p.PhoneNumber)},
			{t.labelCell("Occupation:"), valueCell(p.Occupation), t.labelCell("Passport No:"), valueCell(p.PassportNo)},
			{t.labelCell("Next of Kin:"), valueCell(p.NextOfKin), t.labelCell("Mother's Maiden Name:"), valueCell(p.MothersMaidenName)},
			{t.labelCell("Address:"), valueCell(p.Address), t.labelCell("Email:"), valueCell(p.Email)},
		},
		ColWidths: []float64{70, 130, 80, 130},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 4, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Letter: "B", Title: title, Width: t.contentWidth()},
		&Spacer{Height: 4},
		grid,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) jointSection(j subscription.JointDetails) []Block {
	grid := &Table{
		Rows: [][]TableCell{
			{t.labelCell("Title:"), valueCell(j.Title), t.labelCell("Full Name:"), valueCell(displayName(j.FullName))},
			{t.labelCell("Phone Number:"), valueCell(j.PhoneNumber), t.labelCell("Email:"), valueCell(j.Email)},
			{t.labelCell("Occupation:"), valueCell(j.Occupation), t.labelCell("Passport No:"), valueCell(j.PassportNo)},
			{t.labelCell("Next of Kin:"), valueCell(j.NextOfKin), t.labelCell("Address:"), valueCell(j.Address)},
		},
		ColWidths: []float64{70, 130, 80, 130},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 4, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Title: "2. Joint Applicant Details", Width: t.contentWidth()},
		&Spacer{Height: 4},
		grid,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) corporateSection(comp subscription.CorporateDetails) []Block {
	grid := &Table{
		Rows: [][]TableCell{
			{t.labelCell("Company Name:"), valueCell(comp.CompanyName), t.labelCell("R/C No:"), valueCell(comp.RCNumber)},
			{t.labelCell("Type of Business:"), valueCell(comp.BusinessType), t.labelCell("Passport No:"), valueCell(comp.PassportNo)},
			{t.labelCell("Contact Person:"), valueCell(comp.ContactPerson), t.labelCell("Phone No:"), valueCell(comp.PhoneNumber)},
			{t.labelCell("Address:"), valueCell(comp.Address), t.labelCell("Email:"), valueCell(comp.Email)},
		},
		ColWidths: []float64{80, 150, 60, 120},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 4, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Letter: "B", Title: "Corporate Applicant Details", Width: t.contentWidth()},
		&Spacer{Height: 4},
		grid,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) bankSection(rec subscription.SubscriptionRecord) []Block {
	rows := [][]TableCell{
		{t.labelCell("Bank Name:"), valueCell(rec.BankName), t.labelCell("Bank Branch:"), valueCell(rec.BankBranch)},
		{t.labelCell("Account Number:"), valueCell(rec.AccountNumber), t.labelCell("Sort Code:"), valueCell(rec.SortCode)},
		{t.labelCell("BVN:"), valueCell(rec.BVN), t.labelCell(""), valueCell("")},
	}

	if _, ok := rec.Classify().(subscription.JointApplicants); ok {
		rows = append(rows,
			[]TableCell{t.labelCell("Joint Bank Name:"), valueCell(rec.JointBankName), t.labelCell("Joint Bank Branch:"), valueCell(rec.JointBankBranch)},
			[]TableCell{t.labelCell("Joint Account Number:"), valueCell(rec.JointAccountNumber), t.labelCell("Joint Sort Code:"), valueCell(rec.JointSortCode)},
			[]TableCell{t.labelCell("Joint BVN:"), valueCell(rec.JointBVN), t.labelCell(""), valueCell("")},
		)
	}

	grid := &Table{
		Rows:      rows,
		ColWidths: []float64{80, 150, 70, 110},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 4, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Letter: "C", Title: "Bank Details", Width: t.contentWidth()},
		&Spacer{Height: 4},
		grid,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) residencySection(rec subscription.SubscriptionRecord) []Block {
	row := &Table{
		Rows: [][]TableCell{{
			{Text: "Residency Classification of Applicant (tick the Appropriate box):", Bold: true},
			{Text: fmt.Sprintf("Resident [%s]", check(rec.IsResident))},
			{Text: fmt.Sprintf("Non-Resident [%s]", check(!rec.IsResident))},
		}},
		ColWidths: []float64{250, 80, 80},
		GridColor: t.styles.Palette.Green,
		PadTop:    6, PadBottom: 6, PadLeft: 6, PadRight: 6,
	}

	return []Block{row, &Spacer{Height: 8}}
}

func (t *FormTemplate) investorSection(rec subscription.SubscriptionRecord) []Block {
	cw := t.contentWidth()
	selected := rec.SelectedCategories()

	header := &Table{
		Rows: [][]TableCell{
			{{Text: "Investor Category (tick all that apply):", Bold: true, Fill: &t.styles.Palette.GreenLight}},
		},
		ColWidths: []float64{cw},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 6, PadRight: 6,
	}

	categories := subscription.InvestorCategories()
	var rows [][]TableCell
	for i := 0; i < len(categories); i += 2 {
		row := make([]TableCell, 2)
		for j := 0; j < 2 && i+j < len(categories); j++ {
			cat := categories[i+j]
			row[j] = TableCell{Text: fmt.Sprintf("[%s] %s", check(selected[cat]), displayCategory(cat))}
		}
		rows = append(rows, row)
	}

	grid := &Table{
		Rows:      rows,
		ColWidths: []float64{cw * 0.5, cw * 0.5},
		GridColor: t.styles.Palette.Green,
		PadTop:    3, PadBottom: 3, PadLeft: 6, PadRight: 6,
	}

	return []Block{header, grid, &Spacer{Height: 8}}
}

func (t *FormTemplate) agentsSection(rec subscription.SubscriptionRecord) []Block {
	grid := &Table{
		Rows: [][]TableCell{
			{t.labelCell("Name of Distribution Agent:"), valueCell(rec.AgentName)},
			{t.labelCell("Stockbroker Code:"), valueCell(rec.StockbrokerCode)},
		},
		ColWidths: []float64{150, 260},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 4, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Letter: "D", Title: "Distribution Agents", Width: t.contentWidth()},
		&Spacer{Height: 4},
		grid,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) witnessSection(rec subscription.SubscriptionRecord) []Block {
	if !rec.NeedsWitness {
		return nil
	}
	cw := t.contentWidth()

	ack := fmt.Sprintf(
		"[%s] I confirm that I have witnessed this application and the thumbprint belongs to the applicant",
		check(rec.WitnessAcknowledged),
	)
	grid := &Table{
		Rows: [][]TableCell{
			{t.labelCell("Witness Name:"), valueCell(rec.WitnessName)},
			{t.labelCell("Witness Address:"), valueCell(rec.WitnessAddress)},
			{t.labelCell("Acknowledgment:"), valueCell(ack)},
		},
		ColWidths: []float64{100, cw - 100},
		GridColor: t.styles.Palette.Green,
		PadTop:    4, PadBottom: 4, PadLeft: 4, PadRight: 6,
	}

	thumb := &Table{
		Rows: [][]TableCell{{
			{Text: "Witness Signature: _______________________", Size: t.styles.Sizes.Small, Align: "C"},
			{Text: "Applicant's Thumbprint\n\n\n\n\n", Bold: true, Size: t.styles.Sizes.Small, Align: "C"},
		}},
		ColWidths: []float64{cw * 0.5, cw * 0.5},
		GridColor: t.styles.Palette.Green,
		PadTop:    8, PadBottom: 8, PadLeft: 6, PadRight: 6,
	}

	return []Block{
		&SectionHeader{Title: "Witness Section (for applicants who cannot sign)", Width: cw},
		&Spacer{Height: 4},
		grid,
		thumb,
		&Spacer{Height: 8},
	}
}

func (t *FormTemplate) signatureSection() []Block {
	cw := t.contentWidth()

	sig := &Table{
		Rows: [][]TableCell{{
			{Text: "Usual Signature: _______________________\n\nDate: _______________", Size: t.styles.Sizes.Small},
			{Text: "Stamp of Receiving Agent", Bold: true, Size: t.styles.Sizes.Small, Align: "C"},
		}},
		ColWidths: []float64{cw * 0.5, cw * 0.5},
		GridColor: t.styles.Palette.Green,
		PadTop:    8, PadBottom: 8, PadLeft: 6, PadRight: 6,
		VAlign:    "T",
	}

	return []Block{sig}
}

func (t *FormTemplate) footer(generatedAt time.Time) []Block {
	return []Block{
		&Spacer{Height: 12},
		&Paragraph{
			Text:  "Generated on: " + generatedAt.Format("2006-01-02 15:04:05"),
			Style: t.styles.Tiny(),
			Align: "C",
		},
	}
}

// formHeader is the three column band at the top of the form: the
// addressee on the left, the DMO logo or printed office name in the
// middle and the form number box on the right.
type formHeader struct {
	styles   *Styles
	logoPath string
	width    float64
}

func (h *formHeader) Measure(_ Canvas, avail float64) (float64, float64) {
	h.width = avail
	if h.logoPath != "" {
		return avail, 45
	}
	return avail, 30
}

func (h *formHeader) Paint(c Canvas, x, y float64) {
	small := TextStyle{Size: h.styles.Sizes.Small, Color: h.styles.Palette.Black}
	smallBold := small
	smallBold.Bold = true
	const leading = 10.0
	base := y + 0.8*small.Size

	c.SetFont(smallBold)
	c.Text(x, base, "To:")
	c.SetFont(small)
	c.Text(x, base+leading, "Director-General,")
	c.Text(x, base+2*leading, "Debt Management Office, Abuja")

	colX := x + h.width*0.3
	colW := h.width * 0.4
	if h.logoPath != "" {
		c.Image(h.logoPath, colX+(colW-60)/2, y, 60, 45)
	} else {
		name := TextStyle{Size: h.styles.Sizes.Section, Bold: true, Color: h.styles.Palette.Black}
		c.SetFont(name)
		for i, line := range []string{"DEBT MANAGEMENT OFFICE", "NIGERIA"} {
			c.Text(colX+(colW-c.TextWidth(line))/2, y+float64(i)*12+8, line)
		}
	}

	right := x + h.width
	c.SetFont(smallBold)
	noW := c.TextWidth("No: ")
	c.SetFont(small)
	ruleW := c.TextWidth("____________")
	c.SetFont(smallBold)
	c.Text(right-noW-ruleW, base, "No:")
	c.SetFont(small)
	c.Text(right-ruleW, base, "____________")

	italic := small
	italic.Italic = true
	c.SetFont(italic)
	c.Text(right-c.TextWidth("Official use only"), base+2*leading, "Official use only")
}
