package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/leadboard/internal/model"
)

func lead(name, company, email string, status model.Status) model.Lead {
	return model.Lead{Name: name, Company: company, Email: email, Status: status}
}

func names(leads []model.Lead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.Name
	}
	return out
}

func TestComputeDefaultFilterReturnsInputOrder(t *testing.T) {
	leads := []model.Lead{
		lead("Bob", "Acme", "bob@acme.com", model.StatusInactive),
		lead("Ann", "Zeta", "ann@zeta.io", model.StatusActive),
		lead("Cyd", "Mids", "cyd@mids.org", model.StatusActive),
	}

	got := Compute(leads, NewFilterState())
	assert.Equal(t, []string{"Bob", "Ann", "Cyd"}, names(got))
}

func TestComputeSearchIsCaseInsensitive(t *testing.T) {
	leads := []model.Lead{
		lead("Bob", "Acme", "bob@acme.com", model.StatusInactive),
		lead("Ann", "Zeta", "ann@zeta.io", model.StatusActive),
	}

	f := NewFilterState()
	f.Search = "acme"
	assert.Equal(t, []string{"Bob"}, names(Compute(leads, f)))

	f.Search = "zzz"
	assert.Empty(t, Compute(leads, f))
}

func TestComputeSearchMatchesNameEmailCompany(t *testing.T) {
	leads := []model.Lead{
		lead("Needle One", "Acme", "one@acme.com", model.StatusActive),
		lead("Two", "Needle Corp", "two@corp.com", model.StatusActive),
		lead("Three", "Mids", "three@needle.io", model.StatusActive),
		lead("Four", "Else", "four@else.io", model.StatusActive),
	}

	f := NewFilterState()
	f.Search = "needle"
	assert.Equal(t, []string{"Needle One", "Two", "Three"}, names(Compute(leads, f)))
}

func TestComputeStatusFilter(t *testing.T) {
	leads := []model.Lead{
		lead("Bob", "Acme", "bob@acme.com", model.StatusInactive),
		lead("Ann", "Zeta", "ann@zeta.io", model.StatusActive),
	}

	f := NewFilterState()
	f.Status = StatusActive
	got := Compute(leads, f)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)

	f.Status = StatusInactive
	got = Compute(leads, f)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)
}

func TestComputeSortByName(t *testing.T) {
	leads := []model.Lead{
		lead("charlie", "C", "c@c.c", model.StatusActive),
		lead("Alice", "A", "a@a.a", model.StatusActive),
		lead("bob", "B", "b@b.b", model.StatusActive),
	}

	f := NewFilterState()
	f.SortColumn = ColumnName
	assert.Equal(t, []string{"Alice", "bob", "charlie"}, names(Compute(leads, f)))

	f.SortDirection = Desc
	assert.Equal(t, []string{"charlie", "bob", "Alice"}, names(Compute(leads, f)))
}

func TestComputeSortByStatus(t *testing.T) {
	leads := []model.Lead{
		lead("I1", "A", "a@a.a", model.StatusInactive),
		lead("A1", "B", "b@b.b", model.StatusActive),
		lead("I2", "C", "c@c.c", model.StatusInactive),
		lead("A2", "D", "d@d.d", model.StatusActive),
	}

	f := NewFilterState()
	f.SortColumn = ColumnStatus

	// active before inactive, ties keep input order
	assert.Equal(t, []string{"A1", "A2", "I1", "I2"}, names(Compute(leads, f)))

	f.SortDirection = Desc
	assert.Equal(t, []string{"I1", "I2", "A1", "A2"}, names(Compute(leads, f)))
}

func TestComputeSortIsStable(t *testing.T) {
	leads := []model.Lead{
		lead("Same", "First", "1@x.x", model.StatusActive),
		lead("Same", "Second", "2@x.x", model.StatusActive),
		lead("Aaa", "Third", "3@x.x", model.StatusActive),
	}

	f := NewFilterState()
	f.SortColumn = ColumnName
	got := Compute(leads, f)
	assert.Equal(t, []string{"Third", "First", "Second"}, []string{got[0].Company, got[1].Company, got[2].Company})
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	leads := []model.Lead{
		lead("B", "B", "b@b.b", model.StatusActive),
		lead("A", "A", "a@a.a", model.StatusActive),
	}

	f := NewFilterState()
	f.SortColumn = ColumnName
	Compute(leads, f)

	assert.Equal(t, []string{"B", "A"}, names(leads))
}

func TestToggleSort(t *testing.T) {
	f := NewFilterState()

	f.ToggleSort(ColumnName)
	assert.Equal(t, ColumnName, f.SortColumn)
	assert.Equal(t, Asc, f.SortDirection)

	f.ToggleSort(ColumnName)
	assert.Equal(t, Desc, f.SortDirection)

	f.ToggleSort(ColumnName)
	assert.Equal(t, Asc, f.SortDirection)

	// Switching columns resets to ascending
	f.ToggleSort(ColumnName)
	require.Equal(t, Desc, f.SortDirection)
	f.ToggleSort(ColumnCompany)
	assert.Equal(t, ColumnCompany, f.SortColumn)
	assert.Equal(t, Asc, f.SortDirection)
}

func TestCycleStatus(t *testing.T) {
	f := NewFilterState()
	assert.Equal(t, StatusAll, f.Status)
	f.CycleStatus()
	assert.Equal(t, StatusActive, f.Status)
	f.CycleStatus()
	assert.Equal(t, StatusInactive, f.Status)
	f.CycleStatus()
	assert.Equal(t, StatusAll, f.Status)
}

func TestComputeEndToEndScenario(t *testing.T) {
	leads := []model.Lead{
		lead("Bob", "Acme", "bob@acme.com", model.StatusInactive),
		lead("Ann", "Zeta", "ann@zeta.io", model.StatusActive),
	}

	f := NewFilterState()
	f.Status = StatusActive
	got := Compute(leads, f)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)
	assert.Equal(t, "Zeta", got[0].Company)
}
