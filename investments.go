package finances

// Investments adapter: CRUD over five parallel category lists plus the
// active-tab UI field, all nested under the investments subtree.

// InvestmentKind names one investment category list (and one UI tab).
type InvestmentKind string

const (
	FixedIncome    InvestmentKind = "fixedIncome"
	Funds          InvestmentKind = "funds"
	TreasuryDirect InvestmentKind = "treasuryDirect"
	Crypto         InvestmentKind = "crypto"
	Stocks         InvestmentKind = "stocks"
)

// FixedAmountKinds are the categories sharing the FixedAmountItem shape.
// Stocks has its own richer item shape and dedicated operations.
var FixedAmountKinds = []InvestmentKind{FixedIncome, Funds, TreasuryDirect, Crypto}

// ParseInvestmentKind returns the kind named by s, or "" if unknown.
func ParseInvestmentKind(s string) InvestmentKind {
	switch InvestmentKind(s) {
	case FixedIncome, Funds, TreasuryDirect, Crypto, Stocks:
		return InvestmentKind(s)
	}
	return ""
}

// Label returns the human display name of the category.
func (k InvestmentKind) Label() string {
	switch k {
	case FixedIncome:
		return "Renda Fixa"
	case Funds:
		return "Fundos"
	case TreasuryDirect:
		return "Tesouro Direto"
	case Crypto:
		return "Cripto"
	case Stocks:
		return "Ações"
	}
	return string(k)
}

// seedName is the display name given to the single item seeded into an empty
// category list.
func seedName(kind InvestmentKind) string {
	switch kind {
	case FixedIncome:
		return "CDB"
	case Funds:
		return "Fundo"
	case TreasuryDirect:
		return "Tesouro Selic"
	case Crypto:
		return "Bitcoin"
	case Stocks:
		return "Ação"
	}
	return ""
}

// list returns the addressable category list for a fixed-amount kind, or nil
// for any other value.
func (inv *InvestmentsState) list(kind InvestmentKind) *[]FixedAmountItem {
	switch kind {
	case FixedIncome:
		return &inv.FixedIncome
	case Funds:
		return &inv.Funds
	case TreasuryDirect:
		return &inv.TreasuryDirect
	case Crypto:
		return &inv.Crypto
	}
	return nil
}

// Investments returns the current investments subtree. Callers treat it as
// read-only.
func (s *Store) Investments() InvestmentsState {
	return s.Snapshot().Document.Investments
}

// EnsureSeeded inserts exactly one default item into the list if it is empty,
// so the UI has something to render immediately. It is idempotent: once the
// list is non-empty it is a no-op, without an update or a notification.
func (s *Store) EnsureSeeded(kind InvestmentKind) {
	inv := s.Investments()
	if kind == Stocks {
		if len(inv.Stocks) > 0 {
			return
		}
		s.AddStock()
		return
	}
	list := inv.list(kind)
	if list == nil || len(*list) > 0 {
		return
	}
	s.AddInvestment(kind)
}

// AddInvestment appends one item with the category default name and zero
// monetary fields. It always succeeds; there is no capacity limit.
func (s *Store) AddInvestment(kind InvestmentKind) {
	s.Update(func(doc Document) Document {
		if list := doc.Investments.list(kind); list != nil {
			*list = append(*list, FixedAmountItem{ID: newID(), Name: seedName(kind)})
		}
		return doc
	})
}

// AddStock appends one stock row with the default name and zero fields.
func (s *Store) AddStock() {
	s.Update(func(doc Document) Document {
		doc.Investments.Stocks = append(doc.Investments.Stocks, StockItem{ID: newID(), Name: seedName(Stocks)})
		return doc
	})
}

// UpdateInvestment applies patch to the item matching id. A missing id is a
// no-op, not an error.
func (s *Store) UpdateInvestment(kind InvestmentKind, id string, patch func(*FixedAmountItem)) {
	s.Update(func(doc Document) Document {
		list := doc.Investments.list(kind)
		if list == nil {
			return doc
		}
		for i := range *list {
			if (*list)[i].ID == id {
				patch(&(*list)[i])
				(*list)[i].ID = id // ids are never reassigned
				break
			}
		}
		return doc
	})
}

// UpdateStock applies patch to the stock matching id. A missing id is a
// no-op, not an error.
func (s *Store) UpdateStock(id string, patch func(*StockItem)) {
	s.Update(func(doc Document) Document {
		for i := range doc.Investments.Stocks {
			if doc.Investments.Stocks[i].ID == id {
				patch(&doc.Investments.Stocks[i])
				doc.Investments.Stocks[i].ID = id
				break
			}
		}
		return doc
	})
}

// RemoveInvestment removes the item matching id, but refuses to remove the
// last remaining item: once seeded, a list never becomes empty through user
// deletion.
func (s *Store) RemoveInvestment(kind InvestmentKind, id string) {
	s.Update(func(doc Document) Document {
		list := doc.Investments.list(kind)
		if list == nil || len(*list) <= 1 {
			return doc
		}
		for i := range *list {
			if (*list)[i].ID == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				break
			}
		}
		return doc
	})
}

// RemoveStock removes the stock matching id, holding the same floor-of-one
// invariant as RemoveInvestment.
func (s *Store) RemoveStock(id string) {
	s.Update(func(doc Document) Document {
		stocks := doc.Investments.Stocks
		if len(stocks) <= 1 {
			return doc
		}
		for i := range stocks {
			if stocks[i].ID == id {
				doc.Investments.Stocks = append(stocks[:i], stocks[i+1:]...)
				break
			}
		}
		return doc
	})
}

// ActiveTab returns the persisted investments tab.
func (s *Store) ActiveTab() InvestmentKind {
	return ParseInvestmentKind(s.Investments().UI.ActiveTab)
}

// SetActiveTab writes the investments tab. Setting the already-active tab is
// a no-op, so subscribers see no spurious notification.
func (s *Store) SetActiveTab(tab InvestmentKind) {
	if ParseInvestmentKind(string(tab)) == "" || s.ActiveTab() == tab {
		return
	}
	s.Update(func(doc Document) Document {
		doc.Investments.UI.ActiveTab = string(tab)
		return doc
	})
}

// ActiveTabKey is the storage key holding the selected investments tab as a
// bare string, read and written independently of the app document.
const ActiveTabKey = "invest-tab"

// LoadActiveTab reads the independently persisted tab selection, falling back
// to FixedIncome when absent or unknown.
func LoadActiveTab(storage Storage) InvestmentKind {
	value, ok, err := storage.Read(ActiveTabKey)
	if err != nil || !ok {
		return FixedIncome
	}
	if kind := ParseInvestmentKind(value); kind != "" {
		return kind
	}
	return FixedIncome
}

// SaveActiveTab writes the independently persisted tab selection.
func SaveActiveTab(storage Storage, kind InvestmentKind) error {
	return storage.Write(ActiveTabKey, string(kind))
}
