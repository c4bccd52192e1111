// Package view is the in-memory query engine behind the leads table: it
// filters, searches, and sorts the fetched records on every input change.
// Everything here is pure and stable so the TUI can re-run it per keystroke.
package view

import (
	"sort"
	"strings"

	"github.com/existflow/leadboard/internal/model"
)

// Column identifies the active sort column
type Column string

const (
	ColumnNone    Column = ""
	ColumnName    Column = "name"
	ColumnCompany Column = "company"
	ColumnEmail   Column = "email"
	ColumnStatus  Column = "lead_status"
)

// Direction is the sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// StatusFilter narrows the list to one lead status; StatusAll disables it
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = StatusFilter(model.StatusActive)
	StatusInactive StatusFilter = StatusFilter(model.StatusInactive)
)

// FilterState is the ephemeral search/filter/sort configuration of the
// table view. It is never sent to the backend.
type FilterState struct {
	Search        string
	Status        StatusFilter
	SortColumn    Column
	SortDirection Direction
}

// NewFilterState returns the state of a freshly opened view
func NewFilterState() FilterState {
	return FilterState{
		Status:        StatusAll,
		SortColumn:    ColumnNone,
		SortDirection: Asc,
	}
}

// ToggleSort applies a header click: the active column flips direction,
// any other column becomes active ascending.
func (f *FilterState) ToggleSort(col Column) {
	if f.SortColumn == col {
		if f.SortDirection == Asc {
			f.SortDirection = Desc
		} else {
			f.SortDirection = Asc
		}
		return
	}
	f.SortColumn = col
	f.SortDirection = Asc
}

// CycleStatus advances the status filter all -> active -> inactive -> all
func (f *FilterState) CycleStatus() {
	switch f.Status {
	case StatusAll:
		f.Status = StatusActive
	case StatusActive:
		f.Status = StatusInactive
	default:
		f.Status = StatusAll
	}
}

// Compute produces the filtered, sorted view list. The input slice is not
// mutated, filtering preserves input order, and the sort is stable so ties
// keep their relative order.
func Compute(leads []model.Lead, f FilterState) []model.Lead {
	search := strings.ToLower(f.Search)

	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if !matchesSearch(&l, search) {
			continue
		}
		if f.Status != StatusAll && l.Status != model.Status(f.Status) {
			continue
		}
		out = append(out, l)
	}

	if f.SortColumn == ColumnNone {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareLeads(&out[i], &out[j], f.SortColumn)
		if f.SortDirection == Desc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// matchesSearch is a case-insensitive substring match over name, email,
// and company; an empty search matches everything.
func matchesSearch(l *model.Lead, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), search) ||
		strings.Contains(strings.ToLower(l.Email), search) ||
		strings.Contains(strings.ToLower(l.Company), search)
}

func compareLeads(a, b *model.Lead, col Column) int {
	switch col {
	case ColumnName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case ColumnCompany:
		return strings.Compare(strings.ToLower(a.Company), strings.ToLower(b.Company))
	case ColumnEmail:
		return strings.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
	case ColumnStatus:
		// active ranks before inactive
		return statusRank(a.Status) - statusRank(b.Status)
	default:
		return 0
	}
}

func statusRank(s model.Status) int {
	if s == model.StatusActive {
		return 0
	}
	return 1
}
