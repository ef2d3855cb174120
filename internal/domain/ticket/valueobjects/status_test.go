package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{StatusReceived, StatusInProgress, true},
		{StatusReceived, StatusClosed, true},
		{StatusReceived, StatusDelivered, false},
		{StatusInProgress, StatusRepaired, true},
		{StatusInProgress, StatusReceived, false},
		{StatusRepaired, StatusDelivered, true},
		{StatusRepaired, StatusInProgress, true},
		{StatusDelivered, StatusClosed, true},
		{StatusDelivered, StatusReceived, false},
		{StatusClosed, StatusReceived, false},
		{StatusClosed, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewTicketStatus(t *testing.T) {
	status, err := NewTicketStatus("Received")
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, status)
	assert.True(t, status.IsReceived())

	_, err = NewTicketStatus("Lost")
	assert.Error(t, err)

	_, err = NewTicketStatus("received")
	assert.Error(t, err, "status values are case sensitive")
}

func TestNewPriority(t *testing.T) {
	priority, err := NewPriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityNormal, priority, "empty priority defaults to Normal")

	priority, err = NewPriority("Urgent")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, priority)

	_, err = NewPriority("Critical")
	assert.Error(t, err)
}

func TestAllTicketStatuses(t *testing.T) {
	statuses := AllTicketStatuses()
	require.Len(t, statuses, 5)
	for _, s := range statuses {
		assert.True(t, s.IsValid())
	}
}
