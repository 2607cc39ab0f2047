package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus_Normalizes(t *testing.T) {
	tests := []struct {
		raw  string
		want OrderStatus
	}{
		{"confirmed", OrderStatusConfirmed},
		{"CONFIRMED", OrderStatusConfirmed},
		{"Confirmed", OrderStatusConfirmed},
		{"  pending ", OrderStatusPending},
		{"canceled", OrderStatusCanceled},
		{"completed", OrderStatusCompleted},
	}
	for _, tt := range tests {
		got, ok := ParseOrderStatus(tt.raw)
		assert.True(t, ok, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got, "raw %q", tt.raw)
	}
}

func TestParseOrderStatus_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "shipped", "PENDINGG", "cancelled", "done"} {
		_, ok := ParseOrderStatus(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestParsePaymentStatus(t *testing.T) {
	got, ok := ParsePaymentStatus("approved")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusApproved, got)

	_, ok = ParsePaymentStatus("CONFIRMED")
	assert.False(t, ok)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("MANAGER").Valid())
	assert.False(t, Role("").Valid())

	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleCustomer.IsStaff())
}
