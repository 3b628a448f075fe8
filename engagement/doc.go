/*
Engagement contract is a weighted group of engagement points holders which
distributes rewards proportionally to member weights.

Members are managed by the admin. Funds sent to the contract are distributed
by anyone calling DistributeFunds and then each member (or the account the
member delegated to) withdraws its share with WithdrawFunds. Rewards are
accounted lazily with the distribution package, so neither distribution nor
withdrawal depends on the number of members.

If half-life is configured, EndBlock halves the weight of every member once
per period. Members keep rewards earned before the decay.

Every method is executed atomically: state changes are written into the
store only if the method succeeds.

# Contract notifications

update_members notification. This notification is produced when membership
is changed by the admin or by the host.

	update_members:
	  - name: added
	    type: Integer
	  - name: removed
	    type: Integer

distribute_funds notification. This notification is produced when funds are
distributed between members.

	distribute_funds:
	  - name: sender
	    type: Address
	  - name: amount
	    type: Integer

withdraw_funds notification. This notification is produced on every
withdrawal, including empty ones.

	withdraw_funds:
	  - name: owner
	    type: Address
	  - name: receiver
	    type: Address
	  - name: amount
	    type: Integer

delegate_withdrawal notification.

	delegate_withdrawal:
	  - name: owner
	    type: Address
	  - name: delegated
	    type: Address

slash notification. This notification is produced when the member weight is
slashed.

	slash:
	  - name: addr
	    type: Address
	  - name: portion
	    type: Decimal
	  - name: weight
	    type: Integer

halflife notification. This notification is produced by EndBlock when the
decay is applied.

	halflife:
	  - name: reduction
	    type: Integer
	  - name: members
	    type: Integer

# Contract storage model

	'v'                   -> contract version, uint64 LE
	'a'                   -> admin address, absent if there is no admin
	't'                   -> total weight, uint64 LE
	'h'                   -> distribution.Halflife
	'd'                   -> distribution.Distribution
	'm' + address (BE)    -> member weight, uint64 LE
	'w' + address (BE)    -> distribution.WithdrawAdjustment
*/
package engagement
