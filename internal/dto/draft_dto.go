package dto

// DraftRequest optionally overrides the skills text used for a cover letter.
// Blank falls back to the caller's stored profile.
type DraftRequest struct {
	UserSkills string `json:"user_skills" form:"user_skills"`
}

// DraftResponse carries generated text or a user-visible error string.
// Generated is false whenever Text is an error message.
type DraftResponse struct {
	Text            string `json:"text"`
	Generated       bool   `json:"generated"`
	Persisted       bool   `json:"persisted"`
	SubmittedSkills string `json:"submitted_skills,omitempty"`
}

type SearchResponse struct {
	Results []string `json:"results"`
}
