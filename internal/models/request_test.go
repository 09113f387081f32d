package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus_Valid(t *testing.T) {
	require.True(t, RequestStatusPending.Valid())
	require.True(t, RequestStatusAccepted.Valid())
	require.True(t, RequestStatusRejected.Valid())
	require.False(t, RequestStatus("cancelled").Valid())
	require.False(t, RequestStatus("").Valid())
}

func TestRequestStatus_CanTransition(t *testing.T) {
	require.True(t, RequestStatusPending.CanTransition(RequestStatusAccepted))
	require.True(t, RequestStatusPending.CanTransition(RequestStatusRejected))

	// Pending is not a transition target
	require.False(t, RequestStatusPending.CanTransition(RequestStatusPending))

	// Accepted and rejected are final
	require.False(t, RequestStatusAccepted.CanTransition(RequestStatusRejected))
	require.False(t, RequestStatusAccepted.CanTransition(RequestStatusPending))
	require.False(t, RequestStatusRejected.CanTransition(RequestStatusAccepted))
	require.False(t, RequestStatusRejected.CanTransition(RequestStatusPending))
}

func TestRequestStatus_Terminal(t *testing.T) {
	require.False(t, RequestStatusPending.Terminal())
	require.True(t, RequestStatusAccepted.Terminal())
	require.True(t, RequestStatusRejected.Terminal())
}
