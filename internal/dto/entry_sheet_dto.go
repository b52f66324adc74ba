package dto

import (
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
)

type EntrySheetRequest struct {
	Question string `json:"question" form:"question"`
	Answer   string `json:"answer" form:"answer"`
}

func (r *EntrySheetRequest) Validate() error {
	errs := util.NewFormError("invalid entry sheet data", nil)
	r.Question = requireText(errs, "question", r.Question, 2000)
	maxLength(errs, "answer", r.Answer, 20000)
	return errs.OrNil()
}

func (r *EntrySheetRequest) ApplyTo(e *model.EntrySheet) {
	e.Question = r.Question
	e.Answer = r.Answer
}
