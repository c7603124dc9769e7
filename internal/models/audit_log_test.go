package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	log := &AuditLog{}
	log.SetMetadata("budget_plan", "Monthly")
	log.SetMetadata("amount", "5000.00")

	assert.Equal(t, Metadata{"budget_plan": "Monthly", "amount": "5000.00"}, log.Metadata)
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{Action: AuditActionSavingPlanRenewed, Resource: "saving_plan"}
	require.NoError(t, log.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())

	assert.Error(t, (&AuditLog{Action: AuditActionLogin}).BeforeCreate(nil))
}

func TestMetadata_ValueScanRoundTrip(t *testing.T) {
	original := Metadata{"bank": "Kuda", "amount": "2500.00"}

	value, err := original.Value()
	require.NoError(t, err)
	require.IsType(t, "", value)

	var scanned Metadata
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	var fromBytes Metadata
	require.NoError(t, fromBytes.Scan([]byte(value.(string))))
	assert.Equal(t, original, fromBytes)
}

func TestMetadata_EmptyAndInvalid(t *testing.T) {
	value, err := Metadata{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var m Metadata
	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	assert.Error(t, m.Scan(42))
}
