package finances

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_Failures(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "malformed json", in: "{not json"},
		{name: "empty", in: ""},
		{name: "wrong version", in: `{"meta":{"version":1}}`},
		{name: "missing meta", in: `{"piggyBank":{}}`},
		{name: "top level array", in: `[1,2,3]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestDecodeDocument_FiltersPiggyBank(t *testing.T) {
	in := fmt.Sprintf(`{
		"piggyBank": {"2025-01": "150,00", "2025-02": 42, "2025-03": null, "2025-04": "0,00"},
		"meta": {"version": %d}
	}`, SchemaVersion)

	doc, err := DecodeDocument([]byte(in))
	require.NoError(t, err)

	// only string-valued entries survive
	assert.Equal(t, map[string]string{"2025-01": "150,00", "2025-04": "0,00"}, doc.PiggyBank)
}

func TestDecodeDocument_NormalizesMonths(t *testing.T) {
	in := fmt.Sprintf(`{
		"budget": {
			"selectedMonthKey": "2025-03",
			"months": {
				"2025-03": {
					"incomes": [{"id": "a", "label": "Salário", "amount": "5.000,00", "bogus": true}],
					"fixedBills": "not a list",
					"cardExpenses": [{"id": "b", "category": "Jetpacks", "amount": "50,00"}, 7],
					"invested": {"amount": "100,00"}
				}
			}
		},
		"meta": {"version": %d}
	}`, SchemaVersion)

	doc, err := DecodeDocument([]byte(in))
	require.NoError(t, err)

	month, ok := doc.Budget.Months["2025-03"]
	require.True(t, ok)

	// valid siblings are kept, unknown fields dropped
	require.Len(t, month.Incomes, 1)
	assert.Equal(t, IncomeItem{ID: "a", Label: "Salário", Amount: "5.000,00"}, month.Incomes[0])

	// an ill-typed list falls back to empty without discarding the month
	assert.Empty(t, month.FixedBills)
	assert.NotNil(t, month.FixedBills)

	// out-of-set category coerced to uncategorized, non-object item dropped
	require.Len(t, month.CardExpenses, 1)
	assert.Equal(t, BudgetCategory(""), month.CardExpenses[0].Category)

	// absent miscExpenses reads as empty
	assert.Empty(t, month.MiscExpenses)

	assert.Equal(t, "100,00", month.Invested.Amount)
	assert.Equal(t, "2025-03", doc.Budget.SelectedMonthKey)
}

func TestDecodeDocument_NormalizesInvestments(t *testing.T) {
	in := fmt.Sprintf(`{
		"investments": {
			"fixedIncome": [{"id": "x", "name": "CDB", "appliedCents": 100000, "currentCents": "oops"}],
			"funds": null,
			"stocks": [{"name": "PETR4", "quantity": "10", "avgPriceCents": 1000, "currentQuoteCents": 1200}],
			"ui": {"activeTab": "bonds"}
		},
		"meta": {"version": %d}
	}`, SchemaVersion)

	doc, err := DecodeDocument([]byte(in))
	require.NoError(t, err)
	inv := doc.Investments

	require.Len(t, inv.FixedIncome, 1)
	assert.Equal(t, int64(100000), inv.FixedIncome[0].AppliedCents)
	// ill-typed field falls back to its zero value, siblings kept
	assert.Equal(t, int64(0), inv.FixedIncome[0].CurrentCents)

	assert.Empty(t, inv.Funds)
	assert.NotNil(t, inv.Funds)

	require.Len(t, inv.Stocks, 1)
	assert.NotEmpty(t, inv.Stocks[0].ID, "stock without id gets a fresh one")
	assert.Equal(t, "10", inv.Stocks[0].Quantity)

	// unknown tab falls back to the default
	assert.Equal(t, string(FixedIncome), inv.UI.ActiveTab)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := DefaultDocument()
	doc.PiggyBank["2025-01"] = "150,00"
	doc.Budget.SelectedMonthKey = "2025-01"
	doc.Budget.Months["2025-01"] = normalizeMonth(BudgetMonth{
		Incomes:  []IncomeItem{{ID: "i1", Label: "Salário", Amount: "5.000,00"}},
		Invested: InvestedSlot{Amount: "100,00"},
	})
	doc.Investments.Crypto = []FixedAmountItem{{ID: "c1", Name: "Bitcoin", AppliedCents: 5000, CurrentCents: 7500}}

	data, err := EncodeDocument(doc)
	require.NoError(t, err)

	decoded, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestNormalizeMonth_AssignsIDs(t *testing.T) {
	m := normalizeMonth(BudgetMonth{
		Incomes: []IncomeItem{{Label: "Extra", Amount: "10,00"}},
	})
	assert.NotEmpty(t, m.Incomes[0].ID)

	// already-assigned ids are never reassigned
	again := normalizeMonth(m)
	assert.Equal(t, m.Incomes[0].ID, again.Incomes[0].ID)
}

func TestBudgetCategory_Valid(t *testing.T) {
	assert.True(t, BudgetCategory("").Valid())
	assert.True(t, CategoryFood.Valid())
	assert.False(t, BudgetCategory("Jetpacks").Valid())
}
