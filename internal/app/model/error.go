package model

type ErrorReason string

const (
	ReasonValidation        ErrorReason = `validation`
	ReasonUnauthorized      ErrorReason = `unauthorized`
	ReasonForbidden         ErrorReason = `forbidden`
	ReasonNotFound          ErrorReason = `not_found`
	ReasonConflict          ErrorReason = `conflict`
	ReasonInvalidTransition ErrorReason = `invalid_transition`
	ReasonUpstream          ErrorReason = `upstream`
	ReasonStorage           ErrorReason = `storage`
)

type ErrorResponse struct {
	Reason  ErrorReason `json:"reason"`
	Message string      `json:"message"`
}
