package finances

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// InstallmentsKey is the storage key holding the installment-plan list,
// persisted independently of the app document.
const InstallmentsKey = "installments"

// InstallmentPlan is one purchase paid in equal monthly installments.
type InstallmentPlan struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	InstallmentCents int64  `json:"installmentCents"`
	Count            int    `json:"count"`
	FirstDueDateISO  string `json:"firstDueDateISO"`
	Paid             []bool `json:"paid"`
}

// TotalCents is the full price of the plan.
func (p InstallmentPlan) TotalCents() int64 {
	return p.InstallmentCents * int64(p.Count)
}

// PaidCount is the number of installments marked paid.
func (p InstallmentPlan) PaidCount() int {
	var n int
	for _, paid := range p.Paid {
		if paid {
			n++
		}
	}
	return n
}

// RemainingCents is what is still owed on the plan.
func (p InstallmentPlan) RemainingCents() int64 {
	return p.InstallmentCents * int64(p.Count-p.PaidCount())
}

// DueDate returns the due date of installment i (zero-based), derived from
// the first due date. The zero time is returned when the date is unreadable.
func (p InstallmentPlan) DueDate(i int) time.Time {
	first, err := time.Parse("2006-01-02", p.FirstDueDateISO)
	if err != nil {
		return time.Time{}
	}
	return first.AddDate(0, i, 0)
}

// normalize pads or truncates the paid flags to the installment count.
func (p InstallmentPlan) normalize() InstallmentPlan {
	if p.Count < 0 {
		p.Count = 0
	}
	paid := make([]bool, p.Count)
	copy(paid, p.Paid)
	p.Paid = paid
	if p.ID == "" {
		p.ID = newID()
	}
	return p
}

// InstallmentBook is the self-contained store for installment plans. It
// follows the same discipline as the app-document Store: loading never
// fails, every mutation persists best-effort, and referencing an unknown id
// is a no-op.
type InstallmentBook struct {
	storage Storage
	log     zerolog.Logger
	plans   []InstallmentPlan
}

// OpenInstallments loads the installment book from storage. A missing or
// malformed list starts empty.
func OpenInstallments(storage Storage, opts ...BookOption) *InstallmentBook {
	b := &InstallmentBook{storage: storage, log: zerolog.Nop(), plans: []InstallmentPlan{}}
	for _, opt := range opts {
		opt(b)
	}
	raw, ok, err := storage.Read(InstallmentsKey)
	if err != nil {
		b.log.Debug().Err(err).Msg("could not read installment plans, starting empty")
		return b
	}
	if !ok {
		return b
	}
	var plans []InstallmentPlan
	if err := json.Unmarshal([]byte(raw), &plans); err != nil {
		b.log.Debug().Err(err).Msg("discarding persisted installment plans")
		return b
	}
	for _, p := range plans {
		b.plans = append(b.plans, p.normalize())
	}
	return b
}

// BookOption customizes an InstallmentBook at construction.
type BookOption func(*InstallmentBook)

// WithBookLogger sets the logger used to trace silent recoveries.
func WithBookLogger(log zerolog.Logger) BookOption {
	return func(b *InstallmentBook) { b.log = log }
}

// Plans returns the current plans. Callers treat the result as read-only.
func (b *InstallmentBook) Plans() []InstallmentPlan {
	return b.plans
}

// Add appends a new plan with all installments unpaid and returns it.
func (b *InstallmentBook) Add(name string, installmentCents int64, count int, firstDueDateISO string) InstallmentPlan {
	plan := InstallmentPlan{
		ID:               newID(),
		Name:             name,
		InstallmentCents: installmentCents,
		Count:            count,
		FirstDueDateISO:  firstDueDateISO,
	}.normalize()
	b.plans = append(b.plans, plan)
	b.persist()
	return plan
}

// TogglePaid flips the paid flag of installment index on the plan matching
// id. An unknown id or out-of-range index is a no-op.
func (b *InstallmentBook) TogglePaid(id string, index int) {
	for i := range b.plans {
		if b.plans[i].ID != id {
			continue
		}
		if index < 0 || index >= len(b.plans[i].Paid) {
			return
		}
		b.plans[i].Paid[index] = !b.plans[i].Paid[index]
		b.persist()
		return
	}
}

// Remove deletes the plan matching id. An unknown id is a no-op.
func (b *InstallmentBook) Remove(id string) {
	for i := range b.plans {
		if b.plans[i].ID == id {
			b.plans = append(b.plans[:i], b.plans[i+1:]...)
			b.persist()
			return
		}
	}
}

func (b *InstallmentBook) persist() {
	data, err := json.MarshalIndent(b.plans, "", "  ")
	if err == nil {
		err = b.storage.Write(InstallmentsKey, string(data))
	}
	if err != nil {
		b.log.Debug().Err(err).Msg("could not persist installment plans")
	}
}
