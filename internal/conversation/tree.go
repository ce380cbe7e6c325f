// Package conversation implements the queries over the lyrics version
// tree: messages linked by parent references form a forest, and the UI
// navigates it through ancestor paths and latest-leaf lookups.
//
// All functions are pure: they take the full message slice as loaded by
// the repository, build their indexes from scratch, and hold no state
// between calls. Callers must pass a freshly loaded slice after every
// mutation.
package conversation

import "github.com/kamilio/song-builder-sub001/internal/domain"

// Ancestors returns the root-first chain of messages ending at id. The
// result is empty when id is unknown. A visited set bounds the walk by
// the number of distinct ids, so a corrupt parent cycle terminates
// instead of looping.
func Ancestors(messages []domain.Message, id string) []domain.Message {
	byID := make(map[string]*domain.Message, len(messages))
	for i := range messages {
		byID[messages[i].ID] = &messages[i]
	}

	node, ok := byID[id]
	if !ok {
		return nil
	}

	visited := make(map[string]bool, len(messages))
	var chain []domain.Message
	for {
		chain = append(chain, *node)
		visited[node.ID] = true
		if node.ParentID == nil {
			break
		}
		parent, ok := byID[*node.ParentID]
		if !ok || visited[parent.ID] {
			break
		}
		node = parent
	}

	// Walked leaf-to-root; callers want root-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// LatestLeaf returns the newest leaf reachable from id, by CreatedAt,
// with ties broken by traversal order. It returns the node itself when
// it has no descendants and nil when id is unknown. Soft-deleted nodes
// participate: they are still part of the tree.
func LatestLeaf(messages []domain.Message, id string) *domain.Message {
	byID := make(map[string]*domain.Message, len(messages))
	children := make(map[string][]*domain.Message)
	for i := range messages {
		m := &messages[i]
		byID[m.ID] = m
		if m.ParentID != nil {
			children[*m.ParentID] = append(children[*m.ParentID], m)
		}
	}

	start, ok := byID[id]
	if !ok {
		return nil
	}

	var best *domain.Message
	visited := make(map[string]bool, len(messages))
	stack := []*domain.Message{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node.ID] {
			continue
		}
		visited[node.ID] = true

		kids := children[node.ID]
		if len(kids) == 0 {
			if best == nil || node.CreatedAt.After(best.CreatedAt) {
				best = node
			}
			continue
		}
		stack = append(stack, kids...)
	}
	return best
}

// IsCheckpoint reports whether the message has a strictly newer
// descendant leaf, i.e. the UI is viewing a non-latest branch point.
func IsCheckpoint(messages []domain.Message, id string) bool {
	leaf := LatestLeaf(messages, id)
	if leaf == nil || leaf.ID == id {
		return false
	}
	node := Ancestors(messages, id)
	if len(node) == 0 {
		return false
	}
	return leaf.CreatedAt.After(node[len(node)-1].CreatedAt)
}
