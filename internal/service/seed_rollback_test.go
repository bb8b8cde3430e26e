package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/testutil"
)

func TestCatalogService_Seed_RollbackKeepsPreviousCatalog(t *testing.T) {
	database := testutil.NewTestDB(t)
	skills := repository.NewSQLiteSkillRepo(database)
	outlook := repository.NewSQLiteOutlookRepo(database)
	ctx := context.Background()

	require.NoError(t, skills.ReplaceAll(ctx, []domain.Skill{
		testutil.NewTestSkill("KEEP1"),
		testutil.NewTestSkill("KEEP2"),
	}))

	// The fourth dataset skill insert fails, leaving the replacement half
	// done inside the transaction.
	failUoW := &testutil.FailingUoW{
		DB:    database,
		Match: "INSERT INTO skills",
		Skip:  3,
		Err:   fmt.Errorf("injected seed failure"),
	}
	svc := NewCatalogService(skills, outlook, failUoW)

	_, err := svc.Seed(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected seed failure")

	// The transaction rolled back, so the old catalog is untouched.
	stored, err := skills.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "KEEP1", stored[0].ID)
	assert.Equal(t, "KEEP2", stored[1].ID)
}
