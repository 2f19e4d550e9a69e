// Package repeater implements the ordered item-list operations behind the
// repeater control. Every operation is a pure function from the current list
// to a new list; the caller owns the state and commits the result. Invalid
// input (unknown ids, missing drop targets) degrades to a no-op rather than
// an error so a stray UI event can never corrupt the document.
package repeater

import "github.com/blockpad/blockpad-cli/pkg/models"

// NextID returns the id for the next item: one past the current maximum.
// Freed ids are never reused, so ids stay stable for the list's lifetime.
func NextID(items []models.RepeaterItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

// Add appends a new collapsed item with a fresh id and returns the new list.
func Add(items []models.RepeaterItem, label, value string) []models.RepeaterItem {
	result := make([]models.RepeaterItem, len(items), len(items)+1)
	copy(result, items)
	return append(result, models.RepeaterItem{
		ID:        NextID(items),
		Label:     label,
		Value:     value,
		Collapsed: true,
	})
}

// Remove returns the list without the item matching id. When preventEmpty is
// set and the list holds exactly one item, removal is blocked and the list is
// returned unchanged. An unknown id matches nothing.
func Remove(items []models.RepeaterItem, id int, preventEmpty bool) []models.RepeaterItem {
	if preventEmpty && len(items) == 1 {
		return items
	}
	result := make([]models.RepeaterItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			result = append(result, item)
		}
	}
	return result
}

// Duplicate copies the item matching id, assigns it a fresh id, and appends
// the copy at the end of the list. An unknown id is a no-op.
func Duplicate(items []models.RepeaterItem, id int) []models.RepeaterItem {
	for _, item := range items {
		if item.ID == id {
			clone := item
			clone.ID = NextID(items)
			result := make([]models.RepeaterItem, len(items), len(items)+1)
			copy(result, items)
			return append(result, clone)
		}
	}
	return items
}

// ToggleCollapse flips the collapsed flag of the item matching id and leaves
// every other field of every item untouched.
func ToggleCollapse(items []models.RepeaterItem, id int) []models.RepeaterItem {
	result := make([]models.RepeaterItem, len(items))
	copy(result, items)
	for i := range result {
		if result[i].ID == id {
			result[i].Collapsed = !result[i].Collapsed
		}
	}
	return result
}

// Move takes the item matching activeID out of the list and reinserts it at
// the position currently occupied by overID, preserving the relative order of
// everything else. If either id is missing or they are equal, the list is
// returned unchanged.
func Move(items []models.RepeaterItem, activeID, overID int) []models.RepeaterItem {
	if activeID == overID {
		return items
	}
	from, to := -1, -1
	for i, item := range items {
		switch item.ID {
		case activeID:
			from = i
		case overID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return items
	}
	result := make([]models.RepeaterItem, 0, len(items))
	result = append(result, items[:from]...)
	result = append(result, items[from+1:]...)
	moved := items[from]
	result = append(result[:to], append([]models.RepeaterItem{moved}, result[to:]...)...)
	return result
}

// ReorderEvent describes a completed reorder gesture. Over is nil when the
// gesture ended without a drop target.
type ReorderEvent struct {
	Active int
	Over   *int
}

// Reorder applies a reorder gesture to the list. Gestures without a drop
// target, or that start and end on the same item, leave the list unchanged.
func Reorder(items []models.RepeaterItem, ev ReorderEvent) []models.RepeaterItem {
	if ev.Over == nil || *ev.Over == ev.Active {
		return items
	}
	return Move(items, ev.Active, *ev.Over)
}
