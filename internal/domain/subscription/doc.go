// Package subscription contains the bond-subscription bounded context.
// This context holds the applicant record submitted for an FGN Savings
// Bond offer, the closed vocabularies of the official paper form
// (tenors, applicant types, titles, banks, investor categories), and
// the soft required-field validation that mirrors the form's own
// expectations.
package subscription
