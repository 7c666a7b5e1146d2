// Package types provides small generic helpers shared by the other packages:
// pointers for optional pagination arguments and conversions for values
// read from databases.
//
//	args := paging.Args{First: types.ToPointer(10)}
//	key := types.ToString(row[0]) // int64, []byte, string, ...
package types
