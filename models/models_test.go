package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("moderator")
	assert.NoError(t, err)
	assert.Equal(t, RoleModerator, role)

	_, err = ParseRole("owner")
	assert.Error(t, err)

	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleModerator.IsStaff())
	assert.False(t, RoleUser.IsStaff())
	assert.False(t, Role("").IsStaff())
}

func TestParseRegistrationStatus(t *testing.T) {
	status, ok := ParseRegistrationStatus("approved")
	assert.True(t, ok)
	assert.Equal(t, RegistrationApproved, status)

	_, ok = ParseRegistrationStatus("paid")
	assert.False(t, ok)
}

func TestPaymentIsActive(t *testing.T) {
	assert.True(t, (&Payment{Status: PaymentPending}).IsActive())
	assert.True(t, (&Payment{Status: PaymentCompleted}).IsActive())
	assert.False(t, (&Payment{Status: PaymentFailed}).IsActive())
}

func TestBaseAssignsID(t *testing.T) {
	b := &Base{}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.Len(t, b.ID, 36)

	b = &Base{ID: "fixed"}
	assert.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, "fixed", b.ID)
}
