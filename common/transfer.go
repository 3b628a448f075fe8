package common

import (
	"fmt"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Transfer is an outbound token transfer produced by a contract call. The
// host is expected to execute it in the same transaction.
type Transfer struct {
	To     util.Uint160
	Denom  string
	Amount fixedpoint.Uint128
}

func (t Transfer) String() string {
	return fmt.Sprintf("%s%s to %s", t.Amount, t.Denom, address.Uint160ToString(t.To))
}
