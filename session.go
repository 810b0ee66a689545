package widget

import (
	"context"

	"septago-crossword/widget/internal/net/proto"
	"septago-crossword/widget/logging"
	lognav "septago-crossword/widget/logging/navigation"
	lognet "septago-crossword/widget/logging/network"
	logsync "septago-crossword/widget/logging/sync"
)

// Presenter paints the grid from the local projected state. Repaint is
// called before the corresponding event is emitted to the host, so the
// user never waits on the round trip.
type Presenter interface {
	Repaint(LocalState)
	// Clear surfaces the "no data" placeholder when a snapshot carries
	// no usable grid.
	Clear()
}

// PresenterFunc adapts a repaint function into a Presenter with a no-op Clear.
type PresenterFunc func(LocalState)

func (f PresenterFunc) Repaint(st LocalState) {
	if f == nil {
		return
	}
	f(st)
}

func (PresenterFunc) Clear() {}

type nopPresenter struct{}

func (nopPresenter) Repaint(LocalState) {}
func (nopPresenter) Clear()             {}

// Session is the single controller instance owning the widget's local
// projection and sync counters. It is not safe for concurrent use: the
// embedding loop feeds it exactly one stimulus at a time, which is the
// only concurrency discipline the widget needs.
type Session struct {
	cfg       Config
	presenter Presenter
	sink      EventSink
	emitter   *Emitter
	publisher logging.Publisher

	reconciler Reconciler
	state      LocalState
	hasState   bool

	// clientSeq is the last emitted sequence number; it doubles as the
	// high-water mark the reconciler compares acknowledgements against.
	clientSeq uint64
	// lastAck is the highest acknowledgement seen from the host.
	lastAck uint64
}

// NewSession constructs a controller. Nil collaborators default to no-ops.
func NewSession(cfg Config, presenter Presenter, sink EventSink, publisher logging.Publisher) *Session {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	if sink == nil {
		sink = NopSink()
	}
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	return &Session{
		cfg:       cfg.normalized(),
		presenter: presenter,
		sink:      sink,
		emitter:   NewEmitter(),
		publisher: publisher,
	}
}

// HandleSnapshot processes one inbound authoritative snapshot: project it,
// reconcile against local predictions, and repaint when the projection
// changes. Malformed snapshots mutate nothing.
func (s *Session) HandleSnapshot(ctx context.Context, snap proto.Snapshot) {
	meta, ok := BuildGridMetadata(snap, s.cfg)
	if !ok {
		logsync.SnapshotInvalid(ctx, s.publisher, s.clientSeq, logsync.SnapshotPayload{HighWater: s.clientSeq})
		s.presenter.Clear()
		return
	}

	var ack uint64
	if snap.Sync != nil {
		ack = snap.Sync.LastClientSeq
	}
	if ack > s.lastAck {
		lognet.AckAdvanced(ctx, s.publisher, s.clientSeq, lognet.AckPayload{Previous: s.lastAck, Ack: ack})
		s.lastAck = ack
	}
	payload := logsync.SnapshotPayload{
		StateID:   meta.StateID,
		PuzzleID:  meta.PuzzleID,
		AckSeq:    ack,
		HighWater: s.clientSeq,
	}

	switch s.reconciler.Decide(meta.StateID, ack, s.clientSeq) {
	case DecisionResync:
		s.clientSeq = 0
		s.lastAck = ack
		s.adopt(meta, snap)
		logsync.Resync(ctx, s.publisher, s.clientSeq, payload)
	case DecisionAdopt:
		s.adopt(meta, snap)
		logsync.SnapshotAdopted(ctx, s.publisher, s.clientSeq, payload)
	case DecisionKeep:
		logsync.SnapshotKept(ctx, s.publisher, s.clientSeq, payload)
	}
}

func (s *Session) adopt(meta GridMetadata, snap proto.Snapshot) {
	s.state = ProjectLocalState(meta, snap, s.cfg)
	s.hasState = true
	s.presenter.Repaint(s.state)
}

// HandleAction applies one user action to the local projection. On accept
// the repaint happens first, then the sequence-tagged event is emitted to
// the host; rejected actions do neither.
func (s *Session) HandleAction(ctx context.Context, action Action) bool {
	if action == nil || !s.hasState {
		return false
	}

	next, ok := Apply(s.state, action)
	if !ok {
		lognav.ActionRejected(ctx, s.publisher, s.clientSeq, action.EventType())
		return false
	}

	s.state = next
	s.presenter.Repaint(s.state)

	s.clientSeq++
	ev := s.emitter.Event(action, s.clientSeq, s.state.Meta.StateID)
	s.sink.Emit(ev)

	lognav.ActionApplied(ctx, s.publisher, s.clientSeq, ev.EventID, lognav.ActionPayload{
		Action:      action.EventType(),
		ActiveCell:  string(s.state.Focus.ActiveCell),
		ActiveSlot:  string(s.state.Focus.ActiveSlot),
		Orientation: string(s.state.Focus.Orientation),
	})
	return true
}

// State returns the current local projection; ok is false before the
// first usable snapshot.
func (s *Session) State() (LocalState, bool) {
	return s.state, s.hasState
}

// ClientSeq returns the last emitted client sequence number.
func (s *Session) ClientSeq() uint64 {
	return s.clientSeq
}
