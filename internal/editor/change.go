package editor

// ChangeKind names what happened to the list.
type ChangeKind int

const (
	ChangeReordered ChangeKind = iota
	ChangeAdded
	ChangeEdited
	ChangeArmed
	ChangeDisarmed
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeReordered:
		return "reordered"
	case ChangeAdded:
		return "added"
	case ChangeEdited:
		return "edited"
	case ChangeArmed:
		return "armed"
	case ChangeDisarmed:
		return "disarmed"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is delivered to observers after a mutation has been applied.
// From is the previous position for reorders and re-arms, -1 when an arm starts from idle.
// ScrollTo is set on ChangeAdded: the row the render surface should bring into view.
type Change struct {
	Kind     ChangeKind
	Index    int
	From     int
	ScrollTo int
}

// Observer is called synchronously after each change.
type Observer func(Change)

// DeleteOutcome reports what ToggleDeleteSelection did.
type DeleteOutcome int

const (
	OutcomeNone DeleteOutcome = iota
	OutcomeArmed
	OutcomeRearmed
	OutcomeDeleted
)

func (o DeleteOutcome) String() string {
	switch o {
	case OutcomeArmed:
		return "armed"
	case OutcomeRearmed:
		return "re-armed"
	case OutcomeDeleted:
		return "deleted"
	default:
		return "none"
	}
}
