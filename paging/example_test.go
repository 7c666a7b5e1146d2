package paging_test

import (
	"fmt"

	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/types"
)

func ExamplePaginateSlice() {
	items := []string{"alpha", "bravo", "charlie", "delta", "echo"}

	conn, err := paging.PaginateSlice(items, paging.Args{First: types.ToPointer(2)}, paging.Options[int]{})
	if err != nil {
		panic(err)
	}
	fmt.Println(conn.Nodes(), *conn.PageInfo.EndCursor, conn.PageInfo.HasNextPage)

	conn, err = paging.PaginateSlice(items, paging.Args{First: types.ToPointer(2), After: conn.PageInfo.EndCursor}, paging.Options[int]{})
	if err != nil {
		panic(err)
	}
	fmt.Println(conn.Nodes(), conn.PageInfo.HasPreviousPage, conn.TotalCount)
	// Output:
	// [alpha bravo] 1 true
	// [charlie delta] true 5
}

func ExamplePaginateMap() {
	m := paging.NewOrderedMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	conn, err := paging.PaginateMap(m, paging.Args{Last: types.ToPointer(2)}, paging.Options[string]{})
	if err != nil {
		panic(err)
	}
	for _, e := range conn.Edges {
		fmt.Println(e.Cursor, e.Node.Value)
	}
	// Output:
	// b 2
	// c 3
}
