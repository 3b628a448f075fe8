package distribution

import (
	"time"

	"github.com/nspcc-dev/neo-go/pkg/io"
)

// maxDenomLen limits denom length on decoding.
const maxDenomLen = 128

// EncodeBinary implements io.Serializable.
func (d *Distribution) EncodeBinary(w *io.BinWriter) {
	w.WriteString(d.Denom)
	d.PointsPerWeight.EncodeBinary(w)
	w.WriteU64LE(d.PointsLeftover)
	d.DistributedTotal.EncodeBinary(w)
	d.WithdrawableTotal.EncodeBinary(w)
}

// DecodeBinary implements io.Serializable.
func (d *Distribution) DecodeBinary(r *io.BinReader) {
	d.Denom = r.ReadString(maxDenomLen)
	d.PointsPerWeight.DecodeBinary(r)
	d.PointsLeftover = r.ReadU64LE()
	d.DistributedTotal.DecodeBinary(r)
	d.WithdrawableTotal.DecodeBinary(r)
}

// EncodeBinary implements io.Serializable.
func (a *WithdrawAdjustment) EncodeBinary(w *io.BinWriter) {
	a.PointsCorrection.EncodeBinary(w)
	a.WithdrawnFunds.EncodeBinary(w)
	a.Delegated.EncodeBinary(w)
}

// DecodeBinary implements io.Serializable.
func (a *WithdrawAdjustment) DecodeBinary(r *io.BinReader) {
	a.PointsCorrection.DecodeBinary(r)
	a.WithdrawnFunds.DecodeBinary(r)
	a.Delegated.DecodeBinary(r)
}

// EncodeBinary implements io.Serializable. Time is kept as Unix nanoseconds,
// zero time is written as 0.
func (h *Halflife) EncodeBinary(w *io.BinWriter) {
	w.WriteU64LE(uint64(h.Period))
	var ts int64
	if !h.LastApplied.IsZero() {
		ts = h.LastApplied.UnixNano()
	}
	w.WriteU64LE(uint64(ts))
}

// DecodeBinary implements io.Serializable. Decoded time is in UTC.
func (h *Halflife) DecodeBinary(r *io.BinReader) {
	h.Period = time.Duration(r.ReadU64LE())
	h.LastApplied = time.Time{}
	if ts := int64(r.ReadU64LE()); ts != 0 {
		h.LastApplied = time.Unix(0, ts).UTC()
	}
}
