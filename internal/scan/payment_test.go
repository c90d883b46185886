package scan

import (
	"testing"

	"github.com/propintel/brochure-extractor/constants"
)

func TestPaymentParams_DownPayment(t *testing.T) {
	// WHAT: "20% down payment" yields 20 under both profiles; the bare
	// "20 down payment" only satisfies the loose diagnostic pattern.
	// WHY: The strict pattern requires the percent sign; the loose one
	// tolerates its absence. Both behaviors are load-bearing.
	basic := ProfileFor(constants.ProfileBasic)
	diag := ProfileFor(constants.ProfileDiagnostic)

	withSign := "Book now with 20% down payment"
	if got := PaymentParams(withSign, basic); got.DownPaymentPercent == nil || *got.DownPaymentPercent != 20 {
		t.Errorf("basic with %%: got %+v, want 20", got.DownPaymentPercent)
	}
	if got := PaymentParams(withSign, diag); got.DownPaymentPercent == nil || *got.DownPaymentPercent != 20 {
		t.Errorf("diagnostic with %%: got %+v, want 20", got.DownPaymentPercent)
	}

	withoutSign := "Book now with 20 down payment"
	if got := PaymentParams(withoutSign, basic); got.DownPaymentPercent != nil {
		t.Errorf("basic without %%: got %d, want absent", *got.DownPaymentPercent)
	}
	if got := PaymentParams(withoutSign, diag); got.DownPaymentPercent == nil || *got.DownPaymentPercent != 20 {
		t.Errorf("diagnostic without %%: got %+v, want 20", got.DownPaymentPercent)
	}
}

func TestPaymentParams_DurationFirstVsLast(t *testing.T) {
	// WHAT: With two duration mentions, basic keeps the last match and
	// diagnostic keeps the first.
	text := "Pay in 36 monthly installments or 12 quarterly installments"

	basic := PaymentParams(text, ProfileFor(constants.ProfileBasic))
	if basic.DurationMonths == nil || *basic.DurationMonths != 12 {
		t.Errorf("basic: got %+v, want last match 12", basic.DurationMonths)
	}

	diag := PaymentParams(text, ProfileFor(constants.ProfileDiagnostic))
	if diag.DurationMonths == nil || *diag.DurationMonths != 36 {
		t.Errorf("diagnostic: got %+v, want first match 36", diag.DurationMonths)
	}
}

func TestPaymentParams_MonthlyQuarterlySplit(t *testing.T) {
	// WHAT: Only the diagnostic profile fills the separate monthly and
	// quarterly counts.
	text := "48 monthly installments plus 16 quarterly installments"

	basic := PaymentParams(text, ProfileFor(constants.ProfileBasic))
	if basic.MonthlyInstallments != nil || basic.QuarterlyInstallments != nil {
		t.Errorf("basic should not split installments, got %+v", basic)
	}

	diag := PaymentParams(text, ProfileFor(constants.ProfileDiagnostic))
	if diag.MonthlyInstallments == nil || *diag.MonthlyInstallments != 48 {
		t.Errorf("diagnostic monthly: got %+v, want 48", diag.MonthlyInstallments)
	}
	if diag.QuarterlyInstallments == nil || *diag.QuarterlyInstallments != 16 {
		t.Errorf("diagnostic quarterly: got %+v, want 16", diag.QuarterlyInstallments)
	}
}

func TestPaymentParams_NoMentions(t *testing.T) {
	// WHAT: Text without payment vocabulary yields an empty plan.
	plan := PaymentParams("A lovely brochure about gardens.", ProfileFor(constants.ProfileBasic))
	if plan.DownPaymentPercent != nil || plan.DurationMonths != nil {
		t.Errorf("want empty plan, got %+v", plan)
	}
}
