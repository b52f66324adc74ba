package config

import (
	"sync"
	"time"
)

type SearchConfig struct {
	CompanySearchURL string
	Language         string
	Timeout          time.Duration
}

var (
	searchConfig *SearchConfig
	searchOnce   sync.Once
)

func LoadSearchConfig() *SearchConfig {
	searchOnce.Do(func() {
		searchConfig = &SearchConfig{
			CompanySearchURL: getEnv("COMPANY_SEARCH_URL", "https://www.wikidata.org/w/api.php"),
			Language:         getEnv("COMPANY_SEARCH_LANGUAGE", "ja"),
			Timeout:          5 * time.Second,
		}
	})
	return searchConfig
}
