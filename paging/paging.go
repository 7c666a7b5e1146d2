package paging

import (
	"fmt"

	"github.com/ncobase/relaypage/ecode"
	"github.com/ncobase/relaypage/paging/cursor"
	"github.com/ncobase/relaypage/validation"
)

var (
	// ErrValidation is returned for contradictory or out-of-range arguments.
	ErrValidation = ecode.New(ecode.ParamErr)
	// ErrInvalidCursor is returned when after/before cannot be decoded.
	ErrInvalidCursor = cursor.ErrInvalidCursor
	// ErrPositionNotFound is returned when a decoded cursor references a
	// position the collection no longer contains.
	ErrPositionNotFound = ecode.New(ecode.PositionNotFound)
)

// Args holds the Relay pagination arguments. Nil means "not supplied".
type Args struct {
	First  *int    `json:"first,omitempty" form:"first" validate:"omitempty,gte=0"`
	Last   *int    `json:"last,omitempty" form:"last" validate:"omitempty,gte=0"`
	After  *string `json:"after,omitempty" form:"after"`
	Before *string `json:"before,omitempty" form:"before"`
}

// Validate rejects first together with last, and negative limits.
func (a Args) Validate() error {
	if a.First != nil && a.Last != nil {
		return fmt.Errorf("%w: %s", ErrValidation, ecode.MutuallyExclusive("first", "last"))
	}
	if errs := validation.ValidateStruct(&a); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, validation.Join(errs))
	}
	return nil
}

// NormalizeArgs applies a default page size when neither first nor last is
// given and caps first/last at max. Zero disables either rule.
func NormalizeArgs(args Args, defaultFirst, max int) Args {
	if args.First == nil && args.Last == nil && defaultFirst > 0 {
		n := defaultFirst
		args.First = &n
	}
	if max > 0 {
		if args.First != nil && *args.First > max {
			n := max
			args.First = &n
		}
		if args.Last != nil && *args.Last > max {
			n := max
			args.Last = &n
		}
	}
	return args
}

// Window is the half-open index range [Start, End) selected for output.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of positions in the window
func (w Window) Len() int {
	return w.End - w.Start
}

// Empty reports whether the window selects nothing
func (w Window) Empty() bool {
	return w.End <= w.Start
}

// Edge is one cursor/item pair inside the window.
type Edge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// PageInfo describes the window relative to the whole collection.
// StartCursor and EndCursor are nil iff the window is empty.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Connection is the pagination result.
type Connection[T any] struct {
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"pageInfo"`
	TotalCount int       `json:"totalCount"`
}

// Nodes returns the items of the window in order
func (c *Connection[T]) Nodes() []T {
	nodes := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		nodes[i] = e.Node
	}
	return nodes
}
