package dto

import (
	"death-registry/app/models"

	validation "github.com/go-ozzo/ozzo-validation"
)

// DateLayout is the wire format for record dates.
const DateLayout = "2006-01-02"

type DeathRequest struct {
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Profession string `json:"profession"`
}

func (r DeathRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.EndDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Profession, validation.Required),
	)
}

type DecisionRequest struct {
	Status string `json:"status"`
}

func (r DecisionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(models.StatusApproved, models.StatusRejected)),
	)
}
