package services

import (
	"staff-promotion-api/models"
)

// approvalTransitions is the entire approval chain: the status a request
// moves to when a reviewer holding the given role approves it. Roles absent
// from the table are not approval-stage actors.
var approvalTransitions = map[models.Role]models.RequestStatus{
	models.RoleHOD:  models.StatusUnderDeanReview,
	models.RoleDean: models.StatusUnderDVCReview,
	models.RoleDVC:  models.StatusApproved,
}

// NextStatusOnApproval returns the status an APPROVED decision by the given
// role advances a request to. ok is false for roles outside the chain.
func NextStatusOnApproval(role models.Role) (next models.RequestStatus, ok bool) {
	next, ok = approvalTransitions[role]
	return next, ok
}
