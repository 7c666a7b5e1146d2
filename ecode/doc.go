// Package ecode defines the error codes returned by pagination calls and
// provides helpers to turn them into messages and HTTP statuses.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -400 to -499: Request errors
//   - -500: Server errors
//   - -1100 to -1199: Pagination errors
//
// # Pagination Codes
//
//	ecode.ParamErr          // -401: both first and last, negative limits
//	ecode.InvalidCursor     // -1101: cursor text malformed or tampered
//	ecode.PositionNotFound  // -1102: cursor decodes to a position not in the collection
//
// # Coded Errors
//
// Sentinels are created once with New and wrapped at call sites:
//
//	var ErrInvalidCursor = ecode.New(ecode.InvalidCursor)
//
//	return fmt.Errorf("decode after: %w", ErrInvalidCursor)
//
// CodeOf walks the wrap chain and returns the code:
//
//	code := ecode.CodeOf(err)          // -1101
//	status := ecode.ToHTTPStatus(code) // 400
//	message := ecode.Text(code)        // "Invalid cursor"
//
// # Custom Error Codes
//
//	ecode.Register(-1201, "Dataset not loaded")
package ecode
