package model_test

import (
	"encoding/json"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_JSONCarriesExtractedText(t *testing.T) {
	b, err := json.Marshal(model.Document{Name: "CV", PageCount: 2, ExtractedText: "Go engineer"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"extracted_text":"Go engineer"`)
	assert.Contains(t, string(b), `"page_count":2`)

	b, err = json.Marshal(model.Document{Name: "scan"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "extracted_text")
}
