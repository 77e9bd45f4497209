package finances

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallmentBook_AddAndReload(t *testing.T) {
	storage := NewMemStorage()
	book := OpenInstallments(storage)

	plan := book.Add("Notebook", 25000, 10, "2025-02-05")
	assert.NotEmpty(t, plan.ID)
	assert.Len(t, plan.Paid, 10)
	assert.Equal(t, int64(250000), plan.TotalCents())

	// mutations persist through the storage key
	reloaded := OpenInstallments(storage)
	require.Len(t, reloaded.Plans(), 1)
	assert.Equal(t, plan, reloaded.Plans()[0])
}

func TestInstallmentBook_TogglePaid(t *testing.T) {
	book := OpenInstallments(NewMemStorage())
	plan := book.Add("Sofá", 30000, 6, "2025-01-10")

	book.TogglePaid(plan.ID, 0)
	book.TogglePaid(plan.ID, 2)
	got := book.Plans()[0]
	assert.Equal(t, 2, got.PaidCount())
	assert.Equal(t, int64(120000), got.RemainingCents())

	book.TogglePaid(plan.ID, 0) // toggling back
	assert.Equal(t, 1, book.Plans()[0].PaidCount())

	book.TogglePaid(plan.ID, 99)  // out of range: no-op
	book.TogglePaid("nope", 0)    // unknown id: no-op
	assert.Equal(t, 1, book.Plans()[0].PaidCount())
}

func TestInstallmentBook_Remove(t *testing.T) {
	book := OpenInstallments(NewMemStorage())
	a := book.Add("A", 1000, 2, "2025-01-01")
	b := book.Add("B", 2000, 3, "2025-01-01")

	book.Remove(a.ID)
	require.Len(t, book.Plans(), 1)
	assert.Equal(t, b.ID, book.Plans()[0].ID)

	book.Remove("nope") // unknown id: no-op
	assert.Len(t, book.Plans(), 1)
}

func TestOpenInstallments_MalformedList(t *testing.T) {
	storage := NewMemStorage()
	require.NoError(t, storage.Write(InstallmentsKey, "{broken"))

	book := OpenInstallments(storage)
	assert.Empty(t, book.Plans())
}

func TestInstallmentPlan_NormalizesPaidLength(t *testing.T) {
	storage := NewMemStorage()
	raw := `[{"id":"p1","name":"TV","installmentCents":10000,"count":4,"firstDueDateISO":"2025-03-01","paid":[true]}]`
	require.NoError(t, storage.Write(InstallmentsKey, raw))

	book := OpenInstallments(storage)
	require.Len(t, book.Plans(), 1)
	plan := book.Plans()[0]
	assert.Len(t, plan.Paid, 4, "paid flags are padded to the installment count")
	assert.True(t, plan.Paid[0])
	assert.Equal(t, 1, plan.PaidCount())
}

func TestInstallmentPlan_DueDate(t *testing.T) {
	plan := InstallmentPlan{FirstDueDateISO: "2024-12-15", Count: 3}
	assert.Equal(t, "2025-01-15", plan.DueDate(1).Format("2006-01-02"))
	assert.True(t, InstallmentPlan{FirstDueDateISO: "junk"}.DueDate(0).IsZero())
}
