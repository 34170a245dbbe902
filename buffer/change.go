package buffer

// AppliedEdit describes one effective edit.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a versioned mutation payload for change hooks.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore Selection
	SelectionAfter  Selection
	Edit            AppliedEdit
}

type changeBuilder struct {
	versionBefore   uint64
	selectionBefore Selection
	edit            AppliedEdit
}

// LastChange returns the most recent text mutation. Pure caret or selection
// moves bump Version but are not recorded here.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:   b.version,
		selectionBefore: b.sel,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.sel,
		Edit:            cb.edit,
	}
	b.hasLastChange = true
}
