package models

// ApplicationStatus represents the review state of a submitted application.
// under_review is only used by vendor applications.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsPending() bool     { return s == ApplicationPending }
func (s ApplicationStatus) IsUnderReview() bool { return s == ApplicationUnderReview }
func (s ApplicationStatus) IsApproved() bool    { return s == ApplicationApproved }
func (s ApplicationStatus) IsRejected() bool    { return s == ApplicationRejected }

// Decided reports whether the application has reached a terminal decision.
func (s ApplicationStatus) Decided() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}
