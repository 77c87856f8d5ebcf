package skin

import (
	"context"

	"github.com/unifiedui/docskin/internal/core/docdb"
)

// StepKind tags the outcome of a single stream pull.
type StepKind int

const (
	// StepDocument carries the next document in cursor order.
	StepDocument StepKind = iota + 1
	// StepEnd marks normal exhaustion of the cursor.
	StepEnd
	// StepError carries the error that stopped the stream.
	StepError
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepDocument:
		return "document"
	case StepEnd:
		return "end"
	case StepError:
		return "error"
	default:
		return "unknown"
	}
}

// Step is one result of pulling from a Stream.
type Step struct {
	Kind     StepKind
	Document Document
	Err      error
}

// Terminal reports whether no further steps follow this one.
func (s Step) Terminal() bool {
	return s.Kind != StepDocument
}

type streamState int

const (
	stateNotStarted streamState = iota
	stateStreaming
	stateDone
	stateFailed
)

// Stream pulls documents from a cursor one at a time. The cursor is opened
// on the first call to Next. Once a Stream has ended or failed it keeps
// returning the same terminal step.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	coll  *Collection
	query *query

	state  streamState
	cursor docdb.Cursor
	err    error
}

// Stream prepares a pull-based iteration over the documents matching q.
// No driver call is made until the first Next.
func (c *Collection) Stream(q ...QueryOption) *Stream {
	return &Stream{
		coll:  c,
		query: newQuery(q),
	}
}

// Next pulls the next step. A cancelled ctx fails the stream with
// ctx.Err().
func (s *Stream) Next(ctx context.Context) Step {
	switch s.state {
	case stateDone:
		return Step{Kind: StepEnd}
	case stateFailed:
		return Step{Kind: StepError, Err: s.err}
	}

	if err := ctx.Err(); err != nil {
		return s.fail(ctx, err)
	}

	if s.state == stateNotStarted {
		cursor, err := s.coll.Collection.Find(ctx, s.query.filter, s.query.options())
		if err != nil {
			return s.fail(ctx, err)
		}
		s.cursor = cursor
		s.state = stateStreaming
	}

	if !s.cursor.Next(ctx) {
		if err := s.cursor.Err(); err != nil {
			return s.fail(ctx, err)
		}
		s.state = stateDone
		s.closeCursor(ctx)
		return Step{Kind: StepEnd}
	}

	var doc Document
	if err := s.cursor.Decode(&doc); err != nil {
		return s.fail(ctx, err)
	}
	return Step{Kind: StepDocument, Document: doc}
}

func (s *Stream) fail(ctx context.Context, err error) Step {
	s.state = stateFailed
	s.err = err
	s.closeCursor(ctx)
	return Step{Kind: StepError, Err: err}
}

func (s *Stream) closeCursor(ctx context.Context) {
	if s.cursor == nil {
		return
	}
	// The stream may be failing because ctx is done; the cursor still
	// needs to be released.
	if err := s.cursor.Close(context.WithoutCancel(ctx)); err != nil {
		s.coll.logger.Debug().Err(err).Msg("failed to close cursor")
	}
	s.cursor = nil
}

// Close releases the cursor if the stream has not reached a terminal step.
// A closed stream reports StepEnd from then on.
func (s *Stream) Close(ctx context.Context) error {
	if s.state == stateDone || s.state == stateFailed {
		return nil
	}
	s.state = stateDone
	if s.cursor == nil {
		return nil
	}
	err := s.cursor.Close(ctx)
	s.cursor = nil
	return err
}

// Err returns the error that failed the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// FindEach calls fn once per document matching q, in cursor order, and
// then exactly once more with a StepEnd or StepError step. The next
// document is not pulled until fn returns. Cancelling ctx stops the
// iteration with a StepError carrying ctx.Err().
func (c *Collection) FindEach(ctx context.Context, fn func(Step), q ...QueryOption) {
	s := c.Stream(q...)
	defer s.Close(ctx)

	for {
		step := s.Next(ctx)
		fn(step)
		if step.Terminal() {
			return
		}
	}
}
