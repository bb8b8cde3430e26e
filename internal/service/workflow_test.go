package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/contract"
)

// The full study workflow against one shared store: seed, check status,
// plan with a saved run, and read it back through history.
func TestWorkflow_SeedPlanHistory(t *testing.T) {
	skills, outlook, runs, uow := setupRepos(t)
	ctx := context.Background()

	catalogSvc := NewCatalogService(skills, outlook, uow)
	planSvc := NewPlanService(skills, runs)
	statusSvc := NewStatusService(skills, outlook, runs)

	seeded, err := catalogSvc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, seeded.Skills)

	before, err := statusSvc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, before.CatalogValid)
	assert.Zero(t, before.RunCount)

	req := contract.NewPlanRequest(nil)
	req.Save = true
	req.Label = "first pass"
	planned, err := planSvc.Optimize(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, planned.SavedRunID)

	history, err := planSvc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, planned.SavedRunID, history[0].ID)
	assert.Equal(t, "first pass", history[0].Label)
	assert.Equal(t, planned.Plan.Sequence, history[0].Sequence)

	after, err := statusSvc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after.RunCount)
	require.NotNil(t, after.LastRun)
	assert.Equal(t, planned.SavedRunID, after.LastRun.ID)

	// The stored run reassembles into the exact plan that was saved.
	reread, err := planSvc.Run(ctx, planned.SavedRunID)
	require.NoError(t, err)
	assert.Equal(t, planned.Plan, reread.Plan())
}
