package finances

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current version of the persisted app document. A
// persisted document carrying any other version is discarded wholesale and
// replaced by defaults; there is no partial migration across versions.
const SchemaVersion = 3

// Meta carries the version and last-write timestamp of the app document.
// It is stamped by the store on every update; callers cannot forge it.
type Meta struct {
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BudgetCategory is the closed set of card-expense category labels. The empty
// string means "uncategorized"; any out-of-set value is coerced to it on load.
type BudgetCategory string

const (
	CategoryFood          BudgetCategory = "Alimentação"
	CategoryGroceries     BudgetCategory = "Mercado"
	CategoryTransport     BudgetCategory = "Transporte"
	CategoryHealth        BudgetCategory = "Saúde"
	CategoryLeisure       BudgetCategory = "Lazer"
	CategorySubscriptions BudgetCategory = "Assinaturas"
	CategoryTravel        BudgetCategory = "Viagem"
	CategoryOther         BudgetCategory = "Outros"
)

// BudgetCategories lists every valid non-empty category.
var BudgetCategories = []BudgetCategory{
	CategoryFood,
	CategoryGroceries,
	CategoryTransport,
	CategoryHealth,
	CategoryLeisure,
	CategorySubscriptions,
	CategoryTravel,
	CategoryOther,
}

// Valid reports whether c is the empty category or one of BudgetCategories.
func (c BudgetCategory) Valid() bool {
	return c == "" || slices.Contains(BudgetCategories, c)
}

// IncomeItem is one income row of a budget month.
type IncomeItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// FixedBillItem is one fixed-bill row of a budget month.
type FixedBillItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// CardExpenseItem is one card-expense row of a budget month.
type CardExpenseItem struct {
	ID       string         `json:"id"`
	Category BudgetCategory `json:"category"`
	Amount   string         `json:"amount"`
}

// MiscExpenseItem is one miscellaneous-expense row of a budget month.
type MiscExpenseItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// InvestedSlot is the single invested-amount scalar of a budget month.
type InvestedSlot struct {
	Amount string `json:"amount"`
}

// BudgetMonth holds everything the user tracked for one calendar month.
// Every list item has a unique, stable id assigned at creation. Amounts are
// localized strings, never pre-parsed numbers (see ParseAmount).
type BudgetMonth struct {
	Incomes      []IncomeItem      `json:"incomes"`
	FixedBills   []FixedBillItem   `json:"fixedBills"`
	CardExpenses []CardExpenseItem `json:"cardExpenses"`
	MiscExpenses []MiscExpenseItem `json:"miscExpenses,omitempty"`
	Invested     InvestedSlot      `json:"invested"`
}

// BudgetState is the budget subtree of the app document. Months are keyed by
// "YYYY-MM" and created lazily on first write.
type BudgetState struct {
	SelectedMonthKey string                 `json:"selectedMonthKey,omitempty"`
	Months           map[string]BudgetMonth `json:"months"`
}

// FixedAmountItem is one row of the fixed-income, funds, treasury-direct and
// crypto investment lists. Past the money-input boundary, monetary fields are
// integer cents.
type FixedAmountItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AppliedCents int64  `json:"appliedCents"`
	CurrentCents int64  `json:"currentCents"`
}

// StockItem is one row of the stocks list. Cost and current value are derived
// from the quantity and per-share cents, never stored.
type StockItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Quantity          string `json:"quantity"` // localized decimal string
	AvgPriceCents     int64  `json:"avgPriceCents"`
	CurrentQuoteCents int64  `json:"currentQuoteCents"`
	DividendCents     int64  `json:"dividendCents"`
	DividendMonths    string `json:"dividendMonths"` // integer count as string
}

// InvestmentsUI is UI state persisted alongside the investment lists.
type InvestmentsUI struct {
	ActiveTab string `json:"activeTab"`
}

// InvestmentsState is the investments subtree of the app document.
type InvestmentsState struct {
	FixedIncome    []FixedAmountItem `json:"fixedIncome"`
	Funds          []FixedAmountItem `json:"funds"`
	TreasuryDirect []FixedAmountItem `json:"treasuryDirect"`
	Crypto         []FixedAmountItem `json:"crypto"`
	Stocks         []StockItem       `json:"stocks"`
	UI             InvestmentsUI     `json:"ui"`
}

// Document is the root persisted entity: the whole application state as one
// versioned JSON document.
type Document struct {
	PiggyBank   map[string]string `json:"piggyBank"`
	Budget      BudgetState       `json:"budget"`
	Investments InvestmentsState  `json:"investments"`
	Meta        Meta              `json:"meta"`
}

// DefaultDocument returns the document used when no valid persisted document
// exists: all collections empty, at the current schema version.
func DefaultDocument() Document {
	return Document{
		PiggyBank: map[string]string{},
		Budget: BudgetState{
			Months: map[string]BudgetMonth{},
		},
		Investments: InvestmentsState{
			FixedIncome:    []FixedAmountItem{},
			Funds:          []FixedAmountItem{},
			TreasuryDirect: []FixedAmountItem{},
			Crypto:         []FixedAmountItem{},
			Stocks:         []StockItem{},
			UI:             InvestmentsUI{ActiveTab: string(FixedIncome)},
		},
		Meta: Meta{Version: SchemaVersion},
	}
}

// newID returns a fresh unique id for a list item. Ids are assigned at
// creation and never reassigned.
func newID() string { return uuid.NewString() }

// emptyBudgetMonth returns an all-empty month. A month key with no stored
// data normalizes to exactly this shape.
func emptyBudgetMonth() BudgetMonth {
	return BudgetMonth{
		Incomes:      []IncomeItem{},
		FixedBills:   []FixedBillItem{},
		CardExpenses: []CardExpenseItem{},
		MiscExpenses: []MiscExpenseItem{},
	}
}

// normalizeMonth guarantees the full BudgetMonth shape regardless of what was
// stored or what a transform returned: nil lists become empty, out-of-set
// categories collapse to "", and items missing an id get a fresh one.
func normalizeMonth(m BudgetMonth) BudgetMonth {
	if m.Incomes == nil {
		m.Incomes = []IncomeItem{}
	}
	if m.FixedBills == nil {
		m.FixedBills = []FixedBillItem{}
	}
	if m.CardExpenses == nil {
		m.CardExpenses = []CardExpenseItem{}
	}
	if m.MiscExpenses == nil {
		m.MiscExpenses = []MiscExpenseItem{}
	}
	for i := range m.Incomes {
		if m.Incomes[i].ID == "" {
			m.Incomes[i].ID = newID()
		}
	}
	for i := range m.FixedBills {
		if m.FixedBills[i].ID == "" {
			m.FixedBills[i].ID = newID()
		}
	}
	for i := range m.CardExpenses {
		if m.CardExpenses[i].ID == "" {
			m.CardExpenses[i].ID = newID()
		}
		if !m.CardExpenses[i].Category.Valid() {
			m.CardExpenses[i].Category = ""
		}
	}
	for i := range m.MiscExpenses {
		if m.MiscExpenses[i].ID == "" {
			m.MiscExpenses[i].ID = newID()
		}
	}
	return m
}

// DecodeDocument decodes a persisted app document. It fails on malformed
// JSON, a wrong top-level shape, or a version other than SchemaVersion; any
// well-versed document is then normalized record by record, so partially
// shaped subtrees fall back to their defaults without discarding valid
// siblings.
func DecodeDocument(data []byte) (Document, error) {
	var raw struct {
		PiggyBank   map[string]json.RawMessage `json:"piggyBank"`
		Budget      json.RawMessage            `json:"budget"`
		Investments json.RawMessage            `json:"investments"`
		Meta        Meta                       `json:"meta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("could not decode app document: %w", err)
	}
	if raw.Meta.Version != SchemaVersion {
		return Document{}, fmt.Errorf("unsupported document version %d, want %d", raw.Meta.Version, SchemaVersion)
	}

	doc := DefaultDocument()
	doc.Meta = raw.Meta

	// Keep string-valued piggy-bank entries only.
	for key, value := range raw.PiggyBank {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			doc.PiggyBank[key] = s
		}
	}

	doc.Budget = decodeBudget(raw.Budget)
	doc.Investments = decodeInvestments(raw.Investments)
	return doc, nil
}

// EncodeDocument encodes the document in its canonical persisted form.
func EncodeDocument(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func decodeBudget(data json.RawMessage) BudgetState {
	state := BudgetState{Months: map[string]BudgetMonth{}}
	var raw struct {
		SelectedMonthKey string                     `json:"selectedMonthKey"`
		Months           map[string]json.RawMessage `json:"months"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return state
	}
	if _, err := ParseMonthKey(raw.SelectedMonthKey); err == nil {
		state.SelectedMonthKey = raw.SelectedMonthKey
	}
	for key, value := range raw.Months {
		if _, err := ParseMonthKey(key); err != nil {
			continue
		}
		state.Months[key] = decodeBudgetMonth(value)
	}
	return state
}

func decodeBudgetMonth(data json.RawMessage) BudgetMonth {
	month := emptyBudgetMonth()
	var raw struct {
		Incomes      []json.RawMessage `json:"incomes"`
		FixedBills   []json.RawMessage `json:"fixedBills"`
		CardExpenses []json.RawMessage `json:"cardExpenses"`
		MiscExpenses []json.RawMessage `json:"miscExpenses"`
		Invested     json.RawMessage   `json:"invested"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return month
	}
	for _, item := range raw.Incomes {
		fields := itemFields(item)
		if fields == nil {
			continue
		}
		month.Incomes = append(month.Incomes, IncomeItem{
			ID:     stringField(fields, "id"),
			Label:  stringField(fields, "label"),
			Amount: stringField(fields, "amount"),
		})
	}
	for _, item := range raw.FixedBills {
		fields := itemFields(item)
		if fields == nil {
			continue
		}
		month.FixedBills = append(month.FixedBills, FixedBillItem{
			ID:          stringField(fields, "id"),
			Description: stringField(fields, "description"),
			Amount:      stringField(fields, "amount"),
		})
	}
	for _, item := range raw.CardExpenses {
		fields := itemFields(item)
		if fields == nil {
			continue
		}
		month.CardExpenses = append(month.CardExpenses, CardExpenseItem{
			ID:       stringField(fields, "id"),
			Category: BudgetCategory(stringField(fields, "category")),
			Amount:   stringField(fields, "amount"),
		})
	}
	for _, item := range raw.MiscExpenses {
		fields := itemFields(item)
		if fields == nil {
			continue
		}
		month.MiscExpenses = append(month.MiscExpenses, MiscExpenseItem{
			ID:          stringField(fields, "id"),
			Description: stringField(fields, "description"),
			Amount:      stringField(fields, "amount"),
		})
	}
	if fields := itemFields(raw.Invested); fields != nil {
		month.Invested = InvestedSlot{Amount: stringField(fields, "amount")}
	}
	return normalizeMonth(month)
}

func decodeInvestments(data json.RawMessage) InvestmentsState {
	state := DefaultDocument().Investments
	var raw struct {
		FixedIncome    []json.RawMessage `json:"fixedIncome"`
		Funds          []json.RawMessage `json:"funds"`
		TreasuryDirect []json.RawMessage `json:"treasuryDirect"`
		Crypto         []json.RawMessage `json:"crypto"`
		Stocks         []json.RawMessage `json:"stocks"`
		UI             json.RawMessage   `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return state
	}
	state.FixedIncome = decodeFixedAmountItems(raw.FixedIncome)
	state.Funds = decodeFixedAmountItems(raw.Funds)
	state.TreasuryDirect = decodeFixedAmountItems(raw.TreasuryDirect)
	state.Crypto = decodeFixedAmountItems(raw.Crypto)
	for _, item := range raw.Stocks {
		fields := itemFields(item)
		if fields == nil {
			continue
		}
		stock := StockItem{
			ID:                stringField(fields, "id"),
			Name:              stringField(fields, "name"),
			Quantity:          stringField(fields, "quantity"),
			AvgPriceCents:     intField(fields, "avgPriceCents"),
			CurrentQuoteCents: intField(fields, "currentQuoteCents"),
			DividendCents:     intField(fields, "dividendCents"),
			DividendMonths:    stringField(fields, "dividendMonths"),
		}
		if stock.ID == "" {
			stock.ID = newID()
		}
		state.Stocks = append(state.Stocks, stock)
	}
	if fields := itemFields(raw.UI); fields != nil {
		if tab := stringField(fields, "activeTab"); ParseInvestmentKind(tab) != "" {
			state.UI.ActiveTab = tab
		}
	}
	return state
}

func decodeFixedAmountItems(items []json.RawMessage) []FixedAmountItem {
	decoded := []FixedAmountItem{}
	for _, item := range items {
		fields := itemFields(item)
		if fields == nil {
			continue
		}
		entry := FixedAmountItem{
			ID:           stringField(fields, "id"),
			Name:         stringField(fields, "name"),
			AppliedCents: intField(fields, "appliedCents"),
			CurrentCents: intField(fields, "currentCents"),
		}
		if entry.ID == "" {
			entry.ID = newID()
		}
		decoded = append(decoded, entry)
	}
	return decoded
}

// itemFields decodes a record into its raw fields, or nil if it is not a
// JSON object. Field-level decoding lets one ill-typed field fall back to its
// default without dropping its siblings.
func itemFields(data json.RawMessage) map[string]json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := fields[key]; ok {
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
	}
	return s
}

func intField(fields map[string]json.RawMessage, key string) int64 {
	var n int64
	if raw, ok := fields[key]; ok {
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0
		}
	}
	return n
}

// clone returns a deep copy of the document, so a transform can never reach
// back into the committed snapshot.
func (doc Document) clone() Document {
	out := doc
	out.PiggyBank = maps.Clone(doc.PiggyBank)
	out.Budget.Months = make(map[string]BudgetMonth, len(doc.Budget.Months))
	for key, month := range doc.Budget.Months {
		month.Incomes = slices.Clone(month.Incomes)
		month.FixedBills = slices.Clone(month.FixedBills)
		month.CardExpenses = slices.Clone(month.CardExpenses)
		month.MiscExpenses = slices.Clone(month.MiscExpenses)
		out.Budget.Months[key] = month
	}
	out.Investments.FixedIncome = slices.Clone(doc.Investments.FixedIncome)
	out.Investments.Funds = slices.Clone(doc.Investments.Funds)
	out.Investments.TreasuryDirect = slices.Clone(doc.Investments.TreasuryDirect)
	out.Investments.Crypto = slices.Clone(doc.Investments.Crypto)
	out.Investments.Stocks = slices.Clone(doc.Investments.Stocks)
	return out
}
