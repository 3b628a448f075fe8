package common

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ErrUnauthorized is returned when the sender is not allowed to call the
// method.
var ErrUnauthorized = errors.New("unauthorized")

// CheckAdmin checks that sender is the admin. If admin is not set, nobody
// passes the check.
func CheckAdmin(admin *util.Uint160, sender util.Uint160) error {
	if admin == nil {
		return fmt.Errorf("%w: admin is not set", ErrUnauthorized)
	}
	if !admin.Equals(sender) {
		return fmt.Errorf("%w: %s is not the admin", ErrUnauthorized, address.Uint160ToString(sender))
	}
	return nil
}

// CheckOwnerWitness checks that sender is either the owner of some assets or
// the account the owner delegated them to.
func CheckOwnerWitness(owner, delegated, sender util.Uint160) error {
	if sender.Equals(owner) || sender.Equals(delegated) {
		return nil
	}
	return fmt.Errorf("%w: %s is neither owner nor delegate of %s", ErrUnauthorized,
		address.Uint160ToString(sender), address.Uint160ToString(owner))
}
