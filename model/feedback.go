package model

type Feedback struct {
	Rating  int    `json:"rating"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

func (f Feedback) Validate() error {
	errs := FieldErrors{}

	if f.Rating < 1 || f.Rating > 5 {
		errs["rating"] = "rating must be between 1 and 5"
	}

	if f.Message == "" {
		errs["message"] = "message is required"
	}

	return errs.OrNil()
}
