package domain

import (
	"github.com/google/uuid"
)

const (
	// SystemGroupID is reserved for the synthetic group that stands for the
	// OS hosts file itself. It is never persisted.
	SystemGroupID = 0

	// SystemGroupName is the label shown for the synthetic system group.
	SystemGroupName = "系统"
)

// Group is a named set of hosts rules toggled on and off as a unit.
type Group struct {
	ID         int
	UUID       uuid.UUID
	Name       string
	Status     Status
	Lifecycle  Lifecycle
	UpdateTime int64 // Unix seconds
}

// IsDeleted reports whether the group has been soft-deleted.
func (g *Group) IsDeleted() bool {
	return g.Lifecycle == LifecycleDeleted
}

// IsEnabled reports whether the group is live and switched on.
func (g *Group) IsEnabled() bool {
	return !g.IsDeleted() && g.Status == StatusOn
}

// MarkDeleted moves the group to the Deleted lifecycle. It reports false and
// leaves the group untouched if it was already deleted.
func (g *Group) MarkDeleted(now int64) bool {
	if g.IsDeleted() {
		return false
	}
	g.Lifecycle = LifecycleDeleted
	g.UpdateTime = now
	return true
}

// SetStatus switches the group on or off and refreshes UpdateTime.
func (g *Group) SetStatus(status Status, now int64) {
	g.Status = status
	g.UpdateTime = now
}

// Rename changes the label of the group and refreshes UpdateTime.
func (g *Group) Rename(name string, now int64) {
	g.Name = name
	g.UpdateTime = now
}

// GroupList is the ordered collection of groups. Order is display and merge order.
type GroupList []Group

// Visible returns the groups that have not been soft-deleted, order preserved.
func (l GroupList) Visible() GroupList {
	out := make(GroupList, 0, len(l))
	for _, g := range l {
		if !g.IsDeleted() {
			out = append(out, g)
		}
	}
	return out
}

// Contains reports whether any group, deleted or not, has the given id.
func (l GroupList) Contains(id int) bool {
	for i := range l {
		if l[i].ID == id {
			return true
		}
	}
	return false
}

// MaxID returns the largest id in the list, deleted groups included. 0 for an empty list.
func (l GroupList) MaxID() int {
	maxID := 0
	for _, g := range l {
		if g.ID > maxID {
			maxID = g.ID
		}
	}
	return maxID
}

// GroupDetail is the rule text of one group.
type GroupDetail struct {
	ID         int
	UUID       uuid.UUID
	Content    string
	UpdateTime int64 // Unix seconds
}
