package auction

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is wrapped by Next with the offending status/action pair.
var ErrInvalidTransition = errors.New("invalid auction transition")

// transitions is the single transition table for the auction lifecycle.
// Both admin endpoints that mutate player status go through Next, so the
// clearing rules cannot drift between call sites.
var transitions = map[PlayerStatus]map[Action]PlayerStatus{
	StatusPending: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionMarkAvailable: StatusAvailable,
		ActionReject:        StatusRejected,
	},
	StatusAvailable: {
		ActionMarkSold:   StatusSold,
		ActionMarkUnsold: StatusUnsold,
	},
	StatusSold: {
		ActionMarkAvailable: StatusAvailable, // refunds the buying team
		ActionMarkUnsold:    StatusUnsold,    // refunds the buying team
	},
	StatusUnsold: {
		ActionMarkAvailable: StatusAvailable,
		ActionMarkSold:      StatusSold, // re-auction of an unsold player
	},
}

// Next returns the state a player moves to for the given action, or an error
// wrapping ErrInvalidTransition if the pair is not in the table.
func Next(current PlayerStatus, action Action) (PlayerStatus, error) {
	allowed, ok := transitions[current]
	if !ok {
		return "", fmt.Errorf("%w: no actions allowed from %s", ErrInvalidTransition, current)
	}
	next, ok := allowed[action]
	if !ok {
		return "", fmt.Errorf("%w: %s is not allowed from %s", ErrInvalidTransition, action, current)
	}
	return next, nil
}
