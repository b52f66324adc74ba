package dto

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
)

type InterviewLogRequest struct {
	Stage          string `json:"stage" form:"stage"`
	InterviewDate  string `json:"interview_date" form:"interview_date"`
	QuestionsAsked string `json:"questions_asked" form:"questions_asked"`
	MyAnswers      string `json:"my_answers" form:"my_answers"`
	Reflection     string `json:"reflection" form:"reflection"`
}

type InterviewLogInput struct {
	Stage          string
	InterviewDate  time.Time
	QuestionsAsked string
	MyAnswers      string
	Reflection     string
}

func (r *InterviewLogRequest) Validate() (*InterviewLogInput, error) {
	errs := util.NewFormError("invalid interview log data", nil)
	in := &InterviewLogInput{
		Stage:          requireText(errs, "stage", r.Stage, 100),
		InterviewDate:  requireDate(errs, "interview_date", r.InterviewDate),
		QuestionsAsked: r.QuestionsAsked,
		MyAnswers:      r.MyAnswers,
		Reflection:     r.Reflection,
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *InterviewLogInput) ApplyTo(l *model.InterviewLog) {
	l.Stage = in.Stage
	l.InterviewDate = in.InterviewDate
	l.QuestionsAsked = in.QuestionsAsked
	l.MyAnswers = in.MyAnswers
	l.Reflection = in.Reflection
}
