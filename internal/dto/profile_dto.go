package dto

import (
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
)

const maxProfileText = 10000

type ProfileRequest struct {
	Skills     string `json:"skills" form:"skills"`
	Experience string `json:"experience" form:"experience"`
	SelfPR     string `json:"self_pr" form:"self_pr"`
}

func (r *ProfileRequest) Validate() error {
	errs := util.NewFormError("invalid profile data", nil)
	maxLength(errs, "skills", r.Skills, maxProfileText)
	maxLength(errs, "experience", r.Experience, maxProfileText)
	maxLength(errs, "self_pr", r.SelfPR, maxProfileText)
	return errs.OrNil()
}

func (r *ProfileRequest) ApplyTo(p *model.Profile) {
	p.Skills = r.Skills
	p.Experience = r.Experience
	p.SelfPR = r.SelfPR
}
