package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeads(t *testing.T) {
	h := newHarness(t)
	svc := NewLeadService(repository.NewLeadRepository(h.db))

	_, err := svc.Create(context.Background(), LeadInput{Name: "A", Email: "a@x.com", Message: "too short"})
	require.Error(t, err)
	assert.Contains(t, utils.GetAppError(err).Fields, "message")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), LeadInput{
			Name:    fmt.Sprintf("Fan %d", i),
			Email:   fmt.Sprintf("Fan%d@X.com", i),
			Message: "When does the next trial start?",
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	p := utils.NewPagination(1, 2)
	leads, err := svc.List(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, int64(3), p.Total)
	assert.Equal(t, "fan2@x.com", leads[0].Email)
}
