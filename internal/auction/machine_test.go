package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAllowedTransitions(t *testing.T) {
	cases := []struct {
		from   PlayerStatus
		action Action
		want   PlayerStatus
	}{
		{StatusPending, ActionApprove, StatusApproved},
		{StatusPending, ActionReject, StatusRejected},
		{StatusApproved, ActionMarkAvailable, StatusAvailable},
		{StatusApproved, ActionReject, StatusRejected},
		{StatusAvailable, ActionMarkSold, StatusSold},
		{StatusAvailable, ActionMarkUnsold, StatusUnsold},
		{StatusSold, ActionMarkAvailable, StatusAvailable},
		{StatusSold, ActionMarkUnsold, StatusUnsold},
		{StatusUnsold, ActionMarkAvailable, StatusAvailable},
		{StatusUnsold, ActionMarkSold, StatusSold},
	}

	for _, tc := range cases {
		got, err := Next(tc.from, tc.action)
		require.NoError(t, err, "%s + %s", tc.from, tc.action)
		assert.Equal(t, tc.want, got, "%s + %s", tc.from, tc.action)
	}
}

func TestNextRejectsInvalidTransitions(t *testing.T) {
	cases := []struct {
		from   PlayerStatus
		action Action
	}{
		{StatusPending, ActionMarkSold},
		{StatusPending, ActionMarkAvailable},
		{StatusPending, ActionMarkUnsold},
		{StatusApproved, ActionApprove},
		{StatusApproved, ActionMarkSold},
		{StatusAvailable, ActionApprove},
		{StatusAvailable, ActionReject},
		{StatusSold, ActionMarkSold},
		{StatusSold, ActionApprove},
		{StatusSold, ActionReject},
		{StatusUnsold, ActionMarkUnsold},
		{StatusRejected, ActionApprove},
		{StatusRejected, ActionMarkAvailable},
		{StatusRejected, ActionMarkSold},
	}

	for _, tc := range cases {
		_, err := Next(tc.from, tc.action)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s + %s should be rejected", tc.from, tc.action)
	}
}

func TestNextUnknownAction(t *testing.T) {
	_, err := Next(StatusAvailable, Action("SELL"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
