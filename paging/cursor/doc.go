// Package cursor converts pagination positions into opaque cursor strings.
//
// A position is either an int index (sequences) or a string key (mappings).
// Every codec guarantees Decode(Encode(p)) == p; decoding anything else
// fails with ErrInvalidCursor.
//
//   - Plain: decimal index / raw key, used when cursors are not encoded
//   - Signed: HMAC-SHA256 signed payload, default for sequences
//   - Sealed: XChaCha20-Poly1305 encrypted payload, default for mappings
//   - Func: caller-supplied encode/decode pair
//
// Secrets are passed to the constructors; codecs built from different
// secrets coexist in one process and reject each other's cursors.
package cursor
