package dto

import (
	"mime/multipart"

	"github.com/fadilmartias/job-tracker/internal/util"
)

const MaxDocumentSize = 10 * 1024 * 1024

type DocumentRequest struct {
	Name string `json:"name" form:"name"`
}

func (r *DocumentRequest) Validate(file *multipart.FileHeader) error {
	errs := util.NewFormError("invalid document data", nil)
	r.Name = requireText(errs, "name", r.Name, 255)
	switch {
	case file == nil:
		errs.Add("uploaded_file", msgRequired)
	case file.Size == 0:
		errs.Add("uploaded_file", "The submitted file is empty.")
	case file.Size > MaxDocumentSize:
		errs.Add("uploaded_file", "File size is too large (max 10MB).")
	}
	return errs.OrNil()
}
