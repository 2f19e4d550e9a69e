package repeater

import (
	"reflect"
	"testing"

	"github.com/blockpad/blockpad-cli/pkg/models"
)

func makeItems(ids ...int) []models.RepeaterItem {
	items := make([]models.RepeaterItem, len(ids))
	for i, id := range ids {
		items[i] = models.RepeaterItem{
			ID:        id,
			Label:     "Item",
			Value:     "2024-01-01",
			Collapsed: true,
		}
	}
	return items
}

func ids(items []models.RepeaterItem) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func intPtr(v int) *int {
	return &v
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		items []models.RepeaterItem
		want  int
	}{
		{"empty list starts at 1", nil, 1},
		{"single item", makeItems(1), 2},
		{"follows maximum not length", makeItems(5), 6},
		{"gaps are not reused", makeItems(1, 7, 3), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.items); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	items := makeItems(1, 2)
	result := Add(items, "New item", "2024-06-01")

	if len(result) != 3 {
		t.Fatalf("expected 3 items after add, got %d", len(result))
	}
	added := result[2]
	if added.ID != 3 {
		t.Errorf("expected new id 3, got %d", added.ID)
	}
	if !added.Collapsed {
		t.Error("new items should start collapsed")
	}
	if added.Label != "New item" || added.Value != "2024-06-01" {
		t.Errorf("unexpected new item contents: %+v", added)
	}
	// Input list must be untouched
	if len(items) != 2 {
		t.Errorf("input list mutated, length now %d", len(items))
	}
}

func TestAddEmptyList(t *testing.T) {
	result := Add(nil, "First", "")
	if len(result) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result))
	}
	if result[0].ID != 1 {
		t.Errorf("first id should be 1, got %d", result[0].ID)
	}
}

func TestAddNewMaximum(t *testing.T) {
	items := makeItems(2, 9, 4)
	result := Add(items, "Item", "")
	if result[len(result)-1].ID != 10 {
		t.Errorf("expected max+1 = 10, got %d", result[len(result)-1].ID)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.RepeaterItem
		id           int
		preventEmpty bool
		wantIDs      []int
	}{
		{"removes matching item", makeItems(1, 2, 3), 2, true, []int{1, 3}},
		{"last item blocked by policy", makeItems(1), 1, true, []int{1}},
		{"last item removable without policy", makeItems(1), 1, false, []int{}},
		{"unknown id is a no-op", makeItems(1, 2), 9, true, []int{1, 2}},
		{"order preserved", makeItems(4, 1, 3), 1, true, []int{4, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remove(tt.items, tt.id, tt.preventEmpty)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("Remove() ids = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestRemoveLastItemLeavesListIdentical(t *testing.T) {
	items := makeItems(1)
	items[0].Collapsed = false
	got := Remove(items, 1, true)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("blocked removal changed the list: %+v", got)
	}
}

func TestDuplicate(t *testing.T) {
	items := makeItems(1, 2, 3)
	items[1].Label = "Middle"
	items[1].Collapsed = false

	result := Duplicate(items, 2)

	if len(result) != 4 {
		t.Fatalf("expected 4 items, got %d", len(result))
	}
	clone := result[3]
	if clone.ID != 4 {
		t.Errorf("clone should get fresh id 4, got %d", clone.ID)
	}
	if clone.Label != "Middle" || clone.Collapsed != false {
		t.Errorf("clone should match source except id: %+v", clone)
	}
	// Clone is appended at the end, not adjacent to the source
	if !reflect.DeepEqual(ids(result), []int{1, 2, 3, 4}) {
		t.Errorf("unexpected order after duplicate: %v", ids(result))
	}
}

func TestDuplicateUnknownID(t *testing.T) {
	items := makeItems(1, 2)
	result := Duplicate(items, 9)
	if !reflect.DeepEqual(ids(result), []int{1, 2}) {
		t.Errorf("duplicate of unknown id should be a no-op, got %v", ids(result))
	}
}

func TestToggleCollapse(t *testing.T) {
	items := makeItems(1, 2, 3)

	result := ToggleCollapse(items, 2)

	if result[1].Collapsed {
		t.Error("expected item 2 expanded after toggle")
	}
	if !result[0].Collapsed || !result[2].Collapsed {
		t.Error("toggle must not touch other items")
	}

	// Toggling twice restores the original list
	back := ToggleCollapse(result, 2)
	if !reflect.DeepEqual(back, items) {
		t.Errorf("double toggle should restore original list, got %+v", back)
	}
}

func TestToggleCollapseUnknownID(t *testing.T) {
	items := makeItems(1, 2)
	result := ToggleCollapse(items, 9)
	if !reflect.DeepEqual(result, items) {
		t.Errorf("toggle of unknown id should yield identical list")
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.RepeaterItem
		activeID int
		overID   int
		wantIDs  []int
	}{
		{"move forward", makeItems(1, 2, 3, 4), 1, 3, []int{2, 3, 1, 4}},
		{"move backward", makeItems(1, 2, 3, 4), 4, 2, []int{1, 4, 2, 3}},
		{"move to front", makeItems(1, 2, 3), 3, 1, []int{3, 1, 2}},
		{"move to back", makeItems(1, 2, 3), 1, 3, []int{2, 3, 1}},
		{"same source and target", makeItems(1, 2, 3), 2, 2, []int{1, 2, 3}},
		{"unknown active id", makeItems(1, 2, 3), 9, 2, []int{1, 2, 3}},
		{"unknown over id", makeItems(1, 2, 3), 1, 9, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(tt.items, tt.activeID, tt.overID)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("Move() ids = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestMoveLandsAtTargetPosition(t *testing.T) {
	// The moved item must end up at the target's original index, with all
	// other relative orders preserved.
	items := makeItems(10, 20, 30, 40, 50)
	got := Move(items, 20, 40)
	if got[3].ID != 20 {
		t.Errorf("expected item 20 at index 3, got %v", ids(got))
	}
	if !reflect.DeepEqual(ids(got), []int{10, 30, 40, 20, 50}) {
		t.Errorf("unexpected order: %v", ids(got))
	}
}

func TestReorder(t *testing.T) {
	items := makeItems(1, 2, 3)

	if got := Reorder(items, ReorderEvent{Active: 1, Over: nil}); !reflect.DeepEqual(ids(got), []int{1, 2, 3}) {
		t.Errorf("reorder without drop target should be a no-op, got %v", ids(got))
	}
	if got := Reorder(items, ReorderEvent{Active: 2, Over: intPtr(2)}); !reflect.DeepEqual(ids(got), []int{1, 2, 3}) {
		t.Errorf("reorder onto itself should be a no-op, got %v", ids(got))
	}
	if got := Reorder(items, ReorderEvent{Active: 1, Over: intPtr(3)}); !reflect.DeepEqual(ids(got), []int{2, 3, 1}) {
		t.Errorf("unexpected order after reorder: %v", ids(got))
	}
}

func TestReorderPreservesItemSet(t *testing.T) {
	items := makeItems(1, 2, 3, 4, 5)
	got := Move(items, 5, 1)
	if len(got) != len(items) {
		t.Fatalf("reorder changed list length: %d", len(got))
	}
	seen := make(map[int]bool)
	for _, item := range got {
		if seen[item.ID] {
			t.Errorf("duplicate id %d after reorder", item.ID)
		}
		seen[item.ID] = true
	}
	for _, item := range items {
		if !seen[item.ID] {
			t.Errorf("id %d lost during reorder", item.ID)
		}
	}
}

// TestRepeaterLifecycle walks the full add/remove/duplicate scenario from a
// single-item list with the default prevent-empty policy.
func TestRepeaterLifecycle(t *testing.T) {
	items := makeItems(1)

	// Removal of the last item is blocked
	items = Remove(items, 1, true)
	if !reflect.DeepEqual(ids(items), []int{1}) {
		t.Fatalf("expected blocked removal, got %v", ids(items))
	}

	// Add a second item
	items = Add(items, "Item", "")
	if !reflect.DeepEqual(ids(items), []int{1, 2}) {
		t.Fatalf("expected ids {1,2}, got %v", ids(items))
	}

	// Now the first item can go
	items = Remove(items, 1, true)
	if !reflect.DeepEqual(ids(items), []int{2}) {
		t.Fatalf("expected ids {2}, got %v", ids(items))
	}

	// Duplicate the survivor; the clone gets a fresh id, never a reused one
	items = Duplicate(items, 2)
	if !reflect.DeepEqual(ids(items), []int{2, 3}) {
		t.Fatalf("expected ids {2,3}, got %v", ids(items))
	}
	if items[1].Label != items[0].Label || items[1].Value != items[0].Value {
		t.Errorf("clone should equal source except id: %+v vs %+v", items[1], items[0])
	}
}
