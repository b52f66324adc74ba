package dto

import (
	"strings"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
)

type JobApplicationRequest struct {
	CompanyName         string `json:"company_name" form:"company_name"`
	JobTitle            string `json:"job_title" form:"job_title"`
	Status              string `json:"status" form:"status"`
	JobTypesInput       string `json:"job_types_input" form:"job_types_input"`
	CorporatePhilosophy string `json:"corporate_philosophy" form:"corporate_philosophy"`
	IdealCandidate      string `json:"ideal_candidate" form:"ideal_candidate"`
	JobDescription      string `json:"job_description" form:"job_description"`
	NextAction          string `json:"next_action" form:"next_action"`
	NextActionDate      string `json:"next_action_date" form:"next_action_date"`
	Notes               string `json:"notes" form:"notes"`
}

// JobApplicationInput is a validated JobApplicationRequest. An empty Status
// leaves the stored status untouched.
type JobApplicationInput struct {
	CompanyName         string
	JobTitle            string
	Status              model.ApplicationStatus
	JobTypeNames        []string
	CorporatePhilosophy string
	IdealCandidate      string
	JobDescription      string
	NextAction          string
	NextActionDate      *time.Time
	Notes               string
}

func (r *JobApplicationRequest) Validate() (*JobApplicationInput, error) {
	errs := util.NewFormError("invalid job application data", nil)

	in := &JobApplicationInput{
		CompanyName:         requireText(errs, "company_name", r.CompanyName, 255),
		JobTitle:            requireText(errs, "job_title", r.JobTitle, 255),
		JobTypeNames:        ParseJobTypes(r.JobTypesInput),
		CorporatePhilosophy: r.CorporatePhilosophy,
		IdealCandidate:      r.IdealCandidate,
		JobDescription:      r.JobDescription,
		NextAction:          strings.TrimSpace(r.NextAction),
		NextActionDate:      optionalDate(errs, "next_action_date", r.NextActionDate),
		Notes:               r.Notes,
	}
	maxLength(errs, "next_action", in.NextAction, 255)

	if status := strings.TrimSpace(r.Status); status != "" {
		in.Status = model.ApplicationStatus(status)
		if !in.Status.Valid() {
			errs.Add("status", "Select a valid choice. "+status+" is not one of the available choices.")
		}
	}
	for _, name := range in.JobTypeNames {
		maxLength(errs, "job_types_input", name, 100)
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *JobApplicationInput) ApplyTo(app *model.JobApplication) {
	app.CompanyName = in.CompanyName
	app.JobTitle = in.JobTitle
	switch {
	case in.Status != "":
		app.Status = in.Status
	case app.Status == "":
		app.Status = model.DefaultAppStatus
	}
	app.CorporatePhilosophy = in.CorporatePhilosophy
	app.IdealCandidate = in.IdealCandidate
	app.JobDescription = in.JobDescription
	app.NextAction = in.NextAction
	app.NextActionDate = in.NextActionDate
	app.Notes = in.Notes
}

// ParseJobTypes splits a comma-separated category list into trimmed,
// non-empty names, keeping the first occurrence of each.
func ParseJobTypes(input string) []string {
	names := []string{}
	seen := map[string]struct{}{}
	for _, token := range strings.Split(input, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// JobTypesInputOf renders the tags of an application back into the form field.
func JobTypesInputOf(app *model.JobApplication) string {
	names := make([]string, 0, len(app.JobTypes))
	for _, t := range app.JobTypes {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

type ApplicationListResponse struct {
	Applications   []model.JobApplication `json:"applications"`
	UpcomingEvents []model.JobApplication `json:"upcoming_events"`
}

type ApplicationDetailResponse struct {
	Application   *model.JobApplication      `json:"application"`
	JobTypesInput string                    `json:"job_types_input"`
	Statuses      []model.ApplicationStatus `json:"statuses"`
}
