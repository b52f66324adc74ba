package usecase_test

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/testutil"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompanySearcher struct {
	queries []string
}

func (s *stubCompanySearcher) Search(_ context.Context, q string) ([]string, error) {
	s.queries = append(s.queries, q)
	return []string{q + "株式会社"}, nil
}

func TestSearchUsecase(t *testing.T) {
	db := testutil.NewDB(t)
	for i, name := range []string{"k01", "k02", "k03", "k04", "k05", "k06", "k07", "k08", "k09", "k10", "k11"} {
		require.NoError(t, db.Create(&model.JobType{Name: name}).Error, i)
	}
	companies := &stubCompanySearcher{}
	uc := usecase.NewSearchUsecase(companies, repository.NewJobTypeRepository(db))
	ctx := context.Background()

	names, err := uc.JobTypes(ctx, "k")
	require.NoError(t, err)
	assert.Len(t, names, 10)
	assert.Equal(t, "k01", names[0])

	names, err = uc.JobTypes(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, names)

	results, err := uc.Companies(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme株式会社"}, results)
	assert.Equal(t, []string{"Acme"}, companies.queries)
}
