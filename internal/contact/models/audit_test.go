package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampCreateThenUpdate(t *testing.T) {
	created := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	var audit Audit
	audit.StampCreate("CREATOR", created)
	require.Nil(t, audit.UpdatedBy)
	require.Nil(t, audit.UpdatedTime)

	audit.StampUpdate("EDITOR", updated)

	assert.Equal(t, "CREATOR", audit.CreatedBy)
	assert.Equal(t, created, audit.CreatedTime)
	assert.Equal(t, "EDITOR", *audit.UpdatedBy)
	assert.Equal(t, updated, *audit.UpdatedTime)
}

func TestStampUpdateNeverTouchesCreation(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var audit Audit
	audit.StampCreate("CREATOR", created)
	audit.StampUpdate("FIRST_EDITOR", created.Add(time.Hour))
	audit.StampUpdate("SECOND_EDITOR", created.Add(2*time.Hour))

	assert.Equal(t, "CREATOR", audit.CreatedBy)
	assert.Equal(t, created, audit.CreatedTime)
	assert.Equal(t, "SECOND_EDITOR", *audit.UpdatedBy)
	assert.Equal(t, created.Add(2*time.Hour), *audit.UpdatedTime)
}
