/*
Package distribution implements pull-based reward accounting for weighted
members.

The ledger keeps a single points-per-weight accumulator scaled by 2^PointsShift.
Every distribution increases the accumulator by the distributed amount divided
by the total weight. A member entitlement is then the accumulator multiplied by
member weight, shifted back, plus a signed per-member correction and minus what
was already withdrawn. Corrections are adjusted on every weight change, so
entitlements computed before a change stay the same after it.

Remainders of the division are kept in the leftover counter and added to the
numerator of the next distribution, so no funds are lost to rounding.

Halflife describes the periodic weight decay. It only tells when decay is due
and how a single weight is reduced; applying it to the members is up to the
owner of the membership records, who must pass every reduction through
UpdateWeight.

All methods are transactional on the receiver: if an error is returned, neither
Distribution nor WithdrawAdjustment is changed.
*/
package distribution
