package constants

// TableCategory is the semantic category assigned to an extracted table.
type TableCategory string

// Stable values. A table matching both keyword sets is always a payment
// schedule: the classifier tests categories in this order.
const (
	TablePaymentSchedule TableCategory = "PAYMENT_SCHEDULE"
	TableUnitSpec        TableCategory = "UNIT_SPEC"
	TableOther           TableCategory = "OTHER"
)
