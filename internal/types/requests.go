package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest represents the parsed upload form for a matching run.
type MatchRequest struct {
	JobDescription string   `json:"job_description" validate:"required"`
	Mandatory      []string `json:"mandatory_keywords" validate:"required,min=1,dive,required"`
	Optional       []string `json:"optional_keywords" validate:"dive,required"`
	MinExperience  float64  `json:"min_experience" validate:"gte=0"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
