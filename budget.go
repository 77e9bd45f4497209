package finances

import "slices"

// Budget adapter: operations over the budget subtree of the app document.
// Every accessed month has the full BudgetMonth shape regardless of what is
// stored; after a read, a month with no stored data is indistinguishable from
// one with explicitly empty lists.

func cloneMonth(m BudgetMonth) BudgetMonth {
	m.Incomes = slices.Clone(m.Incomes)
	m.FixedBills = slices.Clone(m.FixedBills)
	m.CardExpenses = slices.Clone(m.CardExpenses)
	m.MiscExpenses = slices.Clone(m.MiscExpenses)
	return m
}

// BudgetMonth returns the shape-ensured month for key. Absent months
// synthesize an all-empty month without mutating the store; the read is
// idempotent and side-effect-free.
func (s *Store) BudgetMonth(key MonthKey) BudgetMonth {
	s.mu.RLock()
	month, ok := s.doc.Budget.Months[key.String()]
	s.mu.RUnlock()
	if !ok {
		return emptyBudgetMonth()
	}
	return normalizeMonth(cloneMonth(month))
}

// UpdateBudgetMonth reads the current month for key, applies transform and
// writes the result back. The result is shape-ensured again, so a transform
// returning a partial month cannot corrupt the document.
func (s *Store) UpdateBudgetMonth(key MonthKey, transform func(BudgetMonth) BudgetMonth) {
	s.Update(func(doc Document) Document {
		month, ok := doc.Budget.Months[key.String()]
		if !ok {
			month = emptyBudgetMonth()
		}
		doc.Budget.Months[key.String()] = normalizeMonth(transform(normalizeMonth(month)))
		return doc
	})
}

// SetSelectedMonth records the month the user is looking at.
func (s *Store) SetSelectedMonth(key MonthKey) {
	s.Update(func(doc Document) Document {
		doc.Budget.SelectedMonthKey = key.String()
		return doc
	})
}

// SelectedMonth returns the recorded selection, falling back to the current
// month key when none is stored.
func (s *Store) SelectedMonth() MonthKey {
	snap := s.Snapshot()
	if key, err := ParseMonthKey(snap.Document.Budget.SelectedMonthKey); err == nil {
		return key
	}
	return snap.CurrentMonthKey
}

// AddIncome appends an income row to the month.
func (s *Store) AddIncome(key MonthKey, label, amount string) {
	s.UpdateBudgetMonth(key, func(m BudgetMonth) BudgetMonth {
		m.Incomes = append(m.Incomes, IncomeItem{ID: newID(), Label: label, Amount: amount})
		return m
	})
}

// AddFixedBill appends a fixed-bill row to the month.
func (s *Store) AddFixedBill(key MonthKey, description, amount string) {
	s.UpdateBudgetMonth(key, func(m BudgetMonth) BudgetMonth {
		m.FixedBills = append(m.FixedBills, FixedBillItem{ID: newID(), Description: description, Amount: amount})
		return m
	})
}

// AddCardExpense appends a card-expense row to the month. An out-of-set
// category is stored as uncategorized.
func (s *Store) AddCardExpense(key MonthKey, category BudgetCategory, amount string) {
	if !category.Valid() {
		category = ""
	}
	s.UpdateBudgetMonth(key, func(m BudgetMonth) BudgetMonth {
		m.CardExpenses = append(m.CardExpenses, CardExpenseItem{ID: newID(), Category: category, Amount: amount})
		return m
	})
}

// AddMiscExpense appends a miscellaneous-expense row to the month.
func (s *Store) AddMiscExpense(key MonthKey, description, amount string) {
	s.UpdateBudgetMonth(key, func(m BudgetMonth) BudgetMonth {
		m.MiscExpenses = append(m.MiscExpenses, MiscExpenseItem{ID: newID(), Description: description, Amount: amount})
		return m
	})
}

// SetInvested writes the month's single invested-amount slot.
func (s *Store) SetInvested(key MonthKey, amount string) {
	s.UpdateBudgetMonth(key, func(m BudgetMonth) BudgetMonth {
		m.Invested = InvestedSlot{Amount: amount}
		return m
	})
}

// CanCopyFixedBills is the caller-side guard for CopyFixedBillsFromPrevious:
// true only when the month has no fixed bills yet and the previous month has
// some to copy.
func (s *Store) CanCopyFixedBills(key MonthKey) bool {
	return len(s.BudgetMonth(key).FixedBills) == 0 &&
		len(s.BudgetMonth(key.Prev()).FixedBills) > 0
}

// CopyFixedBillsFromPrevious copies the previous month's fixed bills into the
// month, each with a freshly generated id so per-month identity stays
// independent. The call is unconditionally additive; callers gate it with
// CanCopyFixedBills.
func (s *Store) CopyFixedBillsFromPrevious(key MonthKey) {
	previous := s.BudgetMonth(key.Prev()).FixedBills
	s.UpdateBudgetMonth(key, func(m BudgetMonth) BudgetMonth {
		for _, bill := range previous {
			m.FixedBills = append(m.FixedBills, FixedBillItem{
				ID:          newID(),
				Description: bill.Description,
				Amount:      bill.Amount,
			})
		}
		return m
	})
}
