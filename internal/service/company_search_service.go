package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// MinCompanyQueryLength is the shortest query forwarded to the search API.
const MinCompanyQueryLength = 2

type CompanySearcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// CompanySearchService looks up company names through a MediaWiki
// wbsearchentities endpoint.
type CompanySearchService struct {
	client   *resty.Client
	url      string
	language string
}

func NewCompanySearchService(cfg *config.SearchConfig) *CompanySearchService {
	return &CompanySearchService{
		client:   resty.New().SetTimeout(cfg.Timeout),
		url:      cfg.CompanySearchURL,
		language: cfg.Language,
	}
}

// Search returns candidate labels for query. Queries shorter than
// MinCompanyQueryLength characters return an empty list without a request.
func (s *CompanySearchService) Search(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinCompanyQueryLength {
		return []string{}, nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":   "wbsearchentities",
			"search":   query,
			"language": s.language,
			"uselang":  s.language,
			"type":     "item",
			"format":   "json",
		}).
		Get(s.url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search API returned %d", resp.StatusCode())
	}

	labels := []string{}
	seen := map[string]bool{}
	gjson.Get(resp.String(), "search.#.label").ForEach(func(_, v gjson.Result) bool {
		label := strings.TrimSpace(v.String())
		if label != "" && !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
		return true
	})
	return labels, nil
}
