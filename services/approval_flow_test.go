package services

import (
	"testing"

	"staff-promotion-api/models"
)

func TestNextStatusOnApprovalCoversTheChain(t *testing.T) {
	cases := []struct {
		role models.Role
		want models.RequestStatus
	}{
		{models.RoleHOD, models.StatusUnderDeanReview},
		{models.RoleDean, models.StatusUnderDVCReview},
		{models.RoleDVC, models.StatusApproved},
	}

	for _, tc := range cases {
		next, ok := NextStatusOnApproval(tc.role)
		if !ok {
			t.Fatalf("expected %s to be an approval-chain role", tc.role)
		}
		if next != tc.want {
			t.Fatalf("approval by %s: got %s, want %s", tc.role, next, tc.want)
		}
	}

	if len(approvalTransitions) != len(cases) {
		t.Fatalf("transition table has %d entries, want %d", len(approvalTransitions), len(cases))
	}
}

func TestNextStatusOnApprovalRejectsNonChainRoles(t *testing.T) {
	for _, role := range []models.Role{
		models.RoleAcademic,
		models.RoleHR,
		models.RoleAdmin,
		models.Role("INTERN"),
	} {
		if _, ok := NextStatusOnApproval(role); ok {
			t.Fatalf("role %s must not participate in the approval chain", role)
		}
	}
}
