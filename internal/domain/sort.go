package domain

import (
	"sort"
	"strings"
)

// SortKey names the field tasks are ordered by.
type SortKey string

// Supported sort keys.
const (
	SortByCreated = SortKey("created_at")
	SortByUpdated = SortKey("updated_at")
	SortByTitle   = SortKey("title")
	SortByStatus  = SortKey("status")
)

// Order is the sort direction.
type Order string

// Sort directions.
const (
	Asc  = Order("asc")
	Desc = Order("desc")
)

// ParseSortKey maps user input to a SortKey. Empty input means SortByCreated.
func ParseSortKey(v string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(v))); k {
	case "":
		return SortByCreated, nil
	case SortByCreated, SortByUpdated, SortByTitle, SortByStatus:
		return k, nil
	}
	return "", invalid("sort key", "unknown field %q (want created_at, updated_at, title or status)", v)
}

// ParseOrder maps user input to an Order. Empty input means Asc.
func ParseOrder(v string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(v))); o {
	case "":
		return Asc, nil
	case Asc, Desc:
		return o, nil
	}
	return "", invalid("order", "unknown order %q (want asc or desc)", v)
}

// SortTasks orders tasks in place by key and order.
// Ties on the key are broken by id ascending in both directions, so the
// result does not depend on input order.
func SortTasks(tasks []Task, key SortKey, order Order) {
	cmp := compareBy(key)
	sort.Slice(tasks, func(i, j int) bool {
		c := cmp(tasks[i], tasks[j])
		if order == Desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func compareBy(key SortKey) func(a, b Task) int {
	switch key {
	case SortByUpdated:
		return func(a, b Task) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case SortByTitle:
		return func(a, b Task) int { return strings.Compare(a.Title, b.Title) }
	case SortByStatus:
		return func(a, b Task) int { return a.Status.rank() - b.Status.rank() }
	default:
		return func(a, b Task) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}
