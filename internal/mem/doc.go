// Package mem provides the storage primitives behind the list types.
//
// # Accounting
//
// Element sizes are taken from the type parameter once (SizeOf) and byte
// counts are computed with overflow checks (Bytes), so a capacity that cannot
// be represented is reported as ErrOverflow instead of wrapping.
//
// # Growth and Shifting
//
// NextCapacity implements geometric growth with a ceiling. Grow copies the
// live prefix of a backing slice into a fresh one. ShiftRight and ShiftLeft
// open and close a single slot with bulk copies.
package mem
