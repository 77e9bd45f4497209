package finances

import "github.com/shopspring/decimal"

// Piggy bank adapter: a flat month-key to amount-string map, independent of
// the budget subtree, covering a fixed pre-generated window of months.

// PiggyBankMonths is the length of the piggy-bank window.
const PiggyBankMonths = 24

// SetPiggyValue merge-writes one entry into the piggy-bank map. The value is
// stored exactly as entered; parsing happens only in derived computations.
func (s *Store) SetPiggyValue(key MonthKey, value string) {
	s.Update(func(doc Document) Document {
		doc.PiggyBank[key.String()] = value
		return doc
	})
}

// PiggyMonth is one row of the piggy-bank projection: the entered value, its
// parsed amount and the running total up to and including this month. A month
// is filled iff its parsed value is strictly positive.
type PiggyMonth struct {
	Key          MonthKey
	Value        string
	Amount       decimal.Decimal
	RunningTotal decimal.Decimal
	Filled       bool
}

// PiggySummary is the derived view of the piggy bank over its fixed window.
// Nothing here is stored; it is recomputed from the map on demand.
type PiggySummary struct {
	Months       []PiggyMonth
	Total        decimal.Decimal
	FilledMonths int
}

// NewPiggySummary folds the fixed month window in chronological order,
// parsing each entry (missing entries count as zero) and accumulating the
// running total.
func NewPiggySummary(piggyBank map[string]string, start MonthKey, months int) PiggySummary {
	summary := PiggySummary{Months: make([]PiggyMonth, 0, months)}
	total := decimal.Zero
	for i := 0; i < months; i++ {
		key := start.AddMonths(i)
		value := piggyBank[key.String()]
		amount := ParseAmount(value)
		total = total.Add(amount)
		filled := amount.IsPositive()
		if filled {
			summary.FilledMonths++
		}
		summary.Months = append(summary.Months, PiggyMonth{
			Key:          key,
			Value:        value,
			Amount:       amount,
			RunningTotal: total,
			Filled:       filled,
		})
	}
	summary.Total = total
	return summary
}
