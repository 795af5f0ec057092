// Package hierarchy holds the pure functions over the group tree: building
// the two-level hierarchy from a flat list and resolving membership, role
// category and effective permissions for a user.
package hierarchy

import "staffadmin/internal/admin/model"

// Build converts a flat group list into the two-level tree: groups without a
// parent become roots, each carrying the groups whose ParentGroupID points at
// it in SubGroups.
//
// A group referencing a missing parent, or a parent that is itself a
// sub-group, is dropped from the output entirely: orphans are never promoted
// to roots. Duplicate ids resolve last-write-wins. The input is not mutated.
func Build(flat []*model.Group) []*model.Group {
	roots := make([]*model.Group, 0, len(flat))
	children := make([]*model.Group, 0)
	rootByID := make(map[string]*model.Group, len(flat))

	for _, g := range flat {
		if g == nil {
			continue
		}
		if g.ParentGroupID == "" {
			cp := *g
			cp.SubGroups = []*model.Group{}
			cp.MemberCount = len(cp.Members)
			if prev, ok := rootByID[cp.ID]; ok {
				// last write wins on duplicate ids
				*prev = cp
				continue
			}
			root := cp
			rootByID[root.ID] = &root
			roots = append(roots, &root)
		} else {
			children = append(children, g)
		}
	}

	for _, g := range children {
		parent, ok := rootByID[g.ParentGroupID]
		if !ok {
			continue // orphan: parent missing or itself a sub-group
		}
		cp := *g
		cp.SubGroups = nil
		cp.MemberCount = len(cp.Members)
		parent.SubGroups = append(parent.SubGroups, &cp)
	}

	return roots
}

// Flatten walks a built tree back into a single list of roots and sub-groups.
func Flatten(roots []*model.Group) []*model.Group {
	out := make([]*model.Group, 0, len(roots))
	for _, root := range roots {
		out = append(out, root)
		out = append(out, root.SubGroups...)
	}
	return out
}
