package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/service"
)

const jobTypeSearchLimit = 10

type SearchUsecase struct {
	companies service.CompanySearcher
	jobTypes  *repository.JobTypeRepository
}

func NewSearchUsecase(companies service.CompanySearcher, jobTypes *repository.JobTypeRepository) *SearchUsecase {
	return &SearchUsecase{companies: companies, jobTypes: jobTypes}
}

func (uc *SearchUsecase) Companies(ctx context.Context, query string) ([]string, error) {
	return uc.companies.Search(ctx, query)
}

// JobTypes returns up to ten existing tag names containing query. A blank
// query matches nothing.
func (uc *SearchUsecase) JobTypes(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	return uc.jobTypes.SearchNames(ctx, query, jobTypeSearchLimit)
}
