package models

import "testing"

func TestApplicationStatusPredicates(t *testing.T) {
	cases := []struct {
		status      ApplicationStatus
		pending     bool
		underReview bool
		approved    bool
		rejected    bool
		decided     bool
	}{
		{ApplicationPending, true, false, false, false, false},
		{ApplicationUnderReview, false, true, false, false, false},
		{ApplicationApproved, false, false, true, false, true},
		{ApplicationRejected, false, false, false, true, true},
	}

	for _, tc := range cases {
		if tc.status.IsPending() != tc.pending {
			t.Errorf("IsPending(%s) = %v", tc.status, !tc.pending)
		}
		if tc.status.IsUnderReview() != tc.underReview {
			t.Errorf("IsUnderReview(%s) = %v", tc.status, !tc.underReview)
		}
		if tc.status.IsApproved() != tc.approved {
			t.Errorf("IsApproved(%s) = %v", tc.status, !tc.approved)
		}
		if tc.status.IsRejected() != tc.rejected {
			t.Errorf("IsRejected(%s) = %v", tc.status, !tc.rejected)
		}
		if tc.status.Decided() != tc.decided {
			t.Errorf("Decided(%s) = %v", tc.status, !tc.decided)
		}
	}
}
