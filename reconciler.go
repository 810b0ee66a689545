package widget

// Decision is the reconciler's verdict for one inbound snapshot.
type Decision int

const (
	// DecisionAdopt replaces the local projection with the snapshot.
	DecisionAdopt Decision = iota
	// DecisionKeep retains the local projection; the host has not yet
	// caught up with the widget's emitted edits.
	DecisionKeep
	// DecisionResync discards everything: the state generation changed,
	// so all pending local predictions are invalid.
	DecisionResync
)

func (d Decision) String() string {
	switch d {
	case DecisionAdopt:
		return "adopt"
	case DecisionKeep:
		return "keep"
	case DecisionResync:
		return "resync"
	default:
		return "unknown"
	}
}

// Reconciler decides, per inbound snapshot, whether the authoritative
// state supersedes the local prediction. It tracks only the last seen
// state-generation id; the caller owns the sequence counters.
type Reconciler struct {
	lastStateID string
}

// Decide compares the snapshot's generation id and acknowledgement against
// the local high-water mark of emitted sequences.
//
// A generation change always wins: it is the designed invalidation path
// for in-flight optimistic edits. Within a generation, the snapshot is
// adopted once the host acknowledgement has reached the high-water mark;
// a lagging acknowledgement keeps the local projection so a prediction is
// never visually rolled back mid-flight.
func (r *Reconciler) Decide(stateID string, ackSeq, highWater uint64) Decision {
	previous := r.lastStateID
	r.lastStateID = stateID

	if previous != "" && stateID != previous {
		return DecisionResync
	}
	if previous == "" {
		return DecisionAdopt
	}
	if ackSeq >= highWater {
		return DecisionAdopt
	}
	return DecisionKeep
}

// Reset forgets the tracked generation, forcing the next snapshot to be
// adopted as the first of a session.
func (r *Reconciler) Reset() {
	r.lastStateID = ""
}
