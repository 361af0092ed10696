package lineedit

// UndoTree is an append-only list of snapshots plus a current index (§3).
// It generalizes the teacher's two-stack Editor.history/redoHistory
// (kungfusheep-browse/lineedit/editor.go) into the spec's single list with a
// pointer: NewState truncates any redo tail before appending, rather than
// keeping undone states on a separate stack, which is what lets Redo
// reapply the exact sequence of future states after an intervening NewState
// (the two-stack version loses that once a fresh edit is made after undo).
type UndoTree struct {
	snapshots []Snapshot
	index     int // index of the committed snapshot
}

// NewUndoTree creates a tree seeded with the initial state.
func NewUndoTree(initial Snapshot) *UndoTree {
	return &UndoTree{snapshots: []Snapshot{initial}, index: 0}
}

// NewState truncates any redo tail and appends s as the new committed
// state.
func (u *UndoTree) NewState(s Snapshot) {
	u.snapshots = append(u.snapshots[:u.index+1], s)
	u.index = len(u.snapshots) - 1
}

// Undo moves the pointer back one state and returns it. ok is false if
// already at the oldest state.
func (u *UndoTree) Undo() (s Snapshot, ok bool) {
	if u.index == 0 {
		return Snapshot{}, false
	}
	u.index--
	return u.snapshots[u.index], true
}

// Redo moves the pointer forward one state and returns it. ok is false if
// already at the newest state.
func (u *UndoTree) Redo() (s Snapshot, ok bool) {
	if u.index >= len(u.snapshots)-1 {
		return Snapshot{}, false
	}
	u.index++
	return u.snapshots[u.index], true
}

// Current returns the committed snapshot at the current index.
func (u *UndoTree) Current() Snapshot { return u.snapshots[u.index] }
