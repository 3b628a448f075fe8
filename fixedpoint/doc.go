/*
Package fixedpoint provides the bounded integer and decimal types used by the
reward ledger and the mixer functions.

Uint128 and Int128 behave like fixed-width 128-bit integers: every operation
that produces a value outside of the type range fails with ErrOverflow instead
of wrapping. Conversions between the signed and the unsigned type are always
explicit and checked.

Decimal is a non-negative number with 18 fractional digits. It is used for
function parameters such as curve shape and steepness.

# Binary encoding

Both integer types implement io.Serializable from neo-go. Values are written
as variable-length byte arrays holding the little-endian two's complement
representation produced by the bigint package, so zero is encoded as an empty
array.
*/
package fixedpoint
