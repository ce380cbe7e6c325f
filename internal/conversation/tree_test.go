package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// msg builds a tree node. parent == "" means root. Timestamps follow the
// given step so later steps are strictly newer.
func msg(id, parent string, step int) domain.Message {
	m := domain.Message{
		ID:        id,
		Role:      domain.RoleUser,
		Content:   "content " + id,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(step) * time.Second),
	}
	if parent != "" {
		p := parent
		m.ParentID = &p
	}
	return m
}

func TestAncestorsRootFirst(t *testing.T) {
	forest := []domain.Message{
		msg("a", "", 0),
		msg("b", "a", 1),
		msg("c", "b", 2),
		msg("x", "", 3), // unrelated root
	}

	chain := Ancestors(forest, "c")
	if len(chain) != 3 {
		t.Fatalf("expected 3 ancestors, got %d", len(chain))
	}
	for i, want := range []string{"a", "b", "c"} {
		if chain[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, chain[i].ID)
		}
	}
	if chain[len(chain)-1].ID != "c" {
		t.Fatal("last element must be the requested message")
	}
}

func TestAncestorsUnknownID(t *testing.T) {
	forest := []domain.Message{msg("a", "", 0)}
	if chain := Ancestors(forest, "nope"); len(chain) != 0 {
		t.Fatalf("expected empty chain, got %+v", chain)
	}
}

func TestAncestorsCycleTerminates(t *testing.T) {
	// a -> b -> a: corrupt data, the walk must stop once a repeats.
	forest := []domain.Message{
		msg("a", "b", 0),
		msg("b", "a", 1),
	}
	chain := Ancestors(forest, "a")
	if len(chain) > len(forest) {
		t.Fatalf("chain longer than distinct ids: %d", len(chain))
	}
	if chain[len(chain)-1].ID != "a" {
		t.Fatalf("last element must be the requested message, got %s", chain[len(chain)-1].ID)
	}
}

func TestAncestorsDanglingParent(t *testing.T) {
	forest := []domain.Message{msg("b", "ghost", 0)}
	chain := Ancestors(forest, "b")
	if len(chain) != 1 || chain[0].ID != "b" {
		t.Fatalf("expected the node alone, got %+v", chain)
	}
}

func TestLatestLeafPicksNewestDescendant(t *testing.T) {
	// root -> old branch (leaf old), root -> new branch (leaf new)
	forest := []domain.Message{
		msg("root", "", 0),
		msg("old", "root", 1),
		msg("oldLeaf", "old", 2),
		msg("new", "root", 3),
		msg("newLeaf", "new", 4),
	}

	leaf := LatestLeaf(forest, "root")
	if leaf == nil || leaf.ID != "newLeaf" {
		t.Fatalf("expected newLeaf, got %+v", leaf)
	}
}

func TestLatestLeafOfLeafIsItself(t *testing.T) {
	forest := []domain.Message{
		msg("root", "", 0),
		msg("leaf", "root", 1),
	}
	got := LatestLeaf(forest, "leaf")
	if got == nil || got.ID != "leaf" {
		t.Fatalf("expected the node itself, got %+v", got)
	}
}

func TestLatestLeafUnknownID(t *testing.T) {
	forest := []domain.Message{msg("a", "", 0)}
	if leaf := LatestLeaf(forest, "nope"); leaf != nil {
		t.Fatalf("expected nil, got %+v", leaf)
	}
}

func TestLatestLeafHasNoChildren(t *testing.T) {
	// Larger forest: the returned leaf must be childless and reachable.
	var forest []domain.Message
	forest = append(forest, msg("r", "", 0))
	parent := "r"
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("n%d", i)
		forest = append(forest, msg(id, parent, i))
		if i%2 == 0 {
			parent = id // extend chain on even steps, branch on odd
		}
	}

	leaf := LatestLeaf(forest, "r")
	if leaf == nil {
		t.Fatal("expected a leaf")
	}
	for _, m := range forest {
		if m.ParentID != nil && *m.ParentID == leaf.ID {
			t.Fatalf("returned node %s has child %s", leaf.ID, m.ID)
		}
	}
	for _, m := range forest {
		if !leaf.CreatedAt.Before(m.CreatedAt) {
			continue
		}
		// Any strictly newer node must not be a reachable leaf.
		if len(Ancestors(forest, m.ID)) > 0 && Ancestors(forest, m.ID)[0].ID == "r" {
			hasChild := false
			for _, other := range forest {
				if other.ParentID != nil && *other.ParentID == m.ID {
					hasChild = true
					break
				}
			}
			if !hasChild {
				t.Fatalf("node %s is a newer reachable leaf than %s", m.ID, leaf.ID)
			}
		}
	}
}

func TestIsCheckpoint(t *testing.T) {
	forest := []domain.Message{
		msg("root", "", 0),
		msg("mid", "root", 1),
		msg("leaf", "mid", 2),
	}

	if !IsCheckpoint(forest, "mid") {
		t.Fatal("mid has a newer descendant leaf, expected checkpoint")
	}
	if IsCheckpoint(forest, "leaf") {
		t.Fatal("a leaf is never a checkpoint")
	}
	if IsCheckpoint(forest, "nope") {
		t.Fatal("unknown id is never a checkpoint")
	}
}
