package paging

import (
	"fmt"

	"github.com/ncobase/relaypage/ecode"
	"github.com/ncobase/relaypage/paging/cursor"
)

// ResolveWindow computes the window selected by args over ordering.
// It is a pure function of its inputs and never touches the items.
//
// after/before bound the window exclusively; first then keeps the head of
// what remains and last keeps the tail. The result always satisfies
// 0 <= Start <= End <= Len().
func ResolveWindow[P cursor.Position](ordering Ordering[P], codec cursor.Codec[P], args Args) (Window, error) {
	if err := args.Validate(); err != nil {
		return Window{}, err
	}

	n := ordering.Len()
	start, end := 0, n

	if args.After != nil {
		idx, err := locate(ordering, codec, "after", *args.After)
		if err != nil {
			return Window{}, err
		}
		start = idx + 1
	}

	if args.Before != nil {
		idx, err := locate(ordering, codec, "before", *args.Before)
		if err != nil {
			return Window{}, err
		}
		end = min(end, idx)
	}

	start = max(start, 0)
	end = min(end, n)
	if start > end {
		end = start
	}

	// Compare against the width first; start+first overflows for huge limits.
	if args.First != nil && *args.First < end-start {
		end = start + *args.First
	}

	if args.Last != nil && *args.Last < end-start {
		start = end - *args.Last
	}

	return Window{Start: start, End: end}, nil
}

// locate decodes a cursor and finds its index in ordering.
func locate[P cursor.Position](ordering Ordering[P], codec cursor.Codec[P], name, c string) (int, error) {
	pos, err := codec.Decode(c)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	idx, ok := ordering.IndexOf(pos)
	if !ok {
		return 0, fmt.Errorf("%s: %w: %s", name, ErrPositionNotFound, ecode.NotExist(fmt.Sprintf("position %v", pos)))
	}
	return idx, nil
}
