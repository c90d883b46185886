package scan

import (
	"regexp"
	"strconv"

	"github.com/propintel/brochure-extractor/internal/entity"
)

var (
	reDuration  = regexp.MustCompile(`(?i)(\d+)\s*(?:monthly|quarterly|installments?)`)
	reMonthly   = regexp.MustCompile(`(?i)(\d+)\s*monthly\s*installments?`)
	reQuarterly = regexp.MustCompile(`(?i)(\d+)\s*quarterly\s*installments?`)
)

// PaymentParams extracts the text-level payment-plan summary: a
// percentage preceding down/advance/booking, and installment counts.
// The basic profile keeps the last duration match; the diagnostic
// profile keeps the first, plus separate monthly and quarterly counts.
func PaymentParams(text string, p Profile) entity.PaymentPlan {
	var plan entity.PaymentPlan

	if m := p.DownPaymentPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			plan.DownPaymentPercent = entity.IntPtr(v)
		}
	}

	if p.KeepLastDuration {
		matches := reDuration.FindAllStringSubmatch(text, -1)
		if len(matches) > 0 {
			if v, err := strconv.Atoi(matches[len(matches)-1][1]); err == nil {
				plan.DurationMonths = entity.IntPtr(v)
			}
		}
		return plan
	}

	if m := reDuration.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			plan.DurationMonths = entity.IntPtr(v)
		}
	}
	if m := reMonthly.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			plan.MonthlyInstallments = entity.IntPtr(v)
		}
	}
	if m := reQuarterly.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			plan.QuarterlyInstallments = entity.IntPtr(v)
		}
	}
	return plan
}
