package services

import (
	"errors"
	"testing"

	"staff-promotion-api/models"
)

func submittedRequest(t *testing.T, env *testEnv) *models.PromotionRequest {
	t.Helper()
	request, err := env.requestService.Create(applicantID, CreateRequestInput{
		CurrentRank: "Lecturer",
		AppliedRank: "Senior Lecturer",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	request, err = env.requestService.Submit(request.ID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return request
}

func decide(t *testing.T, env *testEnv, requestID, reviewerID uint, decision, comments string) *models.PromotionReview {
	t.Helper()
	review, err := env.reviewService.SubmitDecision(SubmitDecisionInput{
		RequestID:  requestID,
		ReviewerID: reviewerID,
		Decision:   decision,
		Comments:   comments,
	})
	if err != nil {
		t.Fatalf("decision %s by user %d failed: %v", decision, reviewerID, err)
	}
	return review
}

func requestStatus(t *testing.T, env *testEnv, id uint) models.RequestStatus {
	t.Helper()
	request, err := env.requestService.Get(id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	return request.Status
}

func TestApprovalChainAdvancesByReviewerRole(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	review := decide(t, env, request.ID, hodID, "APPROVED", "Strong teaching record")
	if review.ReviewerRole != models.RoleHOD {
		t.Fatalf("role snapshot = %s, want HOD", review.ReviewerRole)
	}
	if got := requestStatus(t, env, request.ID); got != models.StatusUnderDeanReview {
		t.Fatalf("after HOD approval: %s, want UNDER_DEAN_REVIEW", got)
	}

	decide(t, env, request.ID, deanID, "APPROVED", "Concur with the department")
	if got := requestStatus(t, env, request.ID); got != models.StatusUnderDVCReview {
		t.Fatalf("after Dean approval: %s, want UNDER_DVC_REVIEW", got)
	}

	decide(t, env, request.ID, dvcID, "APPROVED", "Approved for promotion")
	if got := requestStatus(t, env, request.ID); got != models.StatusApproved {
		t.Fatalf("after DVC approval: %s, want APPROVED", got)
	}
}

func TestRejectionIsUnconditionalAndTerminalValued(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	// Any role may reject, including one outside the approval chain.
	decide(t, env, request.ID, hrID, "REJECTED", "Incomplete documentation")
	if got := requestStatus(t, env, request.ID); got != models.StatusRejected {
		t.Fatalf("after rejection: %s, want REJECTED", got)
	}

	// A rejection lands even on a DRAFT request.
	draft, _ := env.requestService.Create(applicantID, CreateRequestInput{CurrentRank: "Lecturer", AppliedRank: "Senior Lecturer"})
	decide(t, env, draft.ID, deanID, "REJECTED", "Not eligible this cycle")
	if got := requestStatus(t, env, draft.ID); got != models.StatusRejected {
		t.Fatalf("draft rejection: %s, want REJECTED", got)
	}
}

func TestRecommendRecordsWithoutTransition(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	review := decide(t, env, request.ID, hodID, "RECOMMEND", "Worth considering next cycle")
	if review.ID == 0 {
		t.Fatalf("review not persisted")
	}
	if got := requestStatus(t, env, request.ID); got != models.StatusSubmitted {
		t.Fatalf("status after RECOMMEND: %s, want SUBMITTED", got)
	}
}

func TestResubmissionOverwritesTheExistingReview(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	first := decide(t, env, request.ID, hodID, "RECOMMEND", "Need the full dossier")
	second := decide(t, env, request.ID, hodID, "APPROVED", "Dossier complete, supported")

	if second.ID != first.ID {
		t.Fatalf("resubmission created a new row: %d then %d", first.ID, second.ID)
	}
	rows, _ := env.reviews.FindByRequest(request.ID)
	if len(rows) != 1 {
		t.Fatalf("ledger holds %d rows for the pair, want 1", len(rows))
	}
	if rows[0].Decision != models.DecisionApproved || rows[0].Comments != "Dossier complete, supported" {
		t.Fatalf("overwrite incomplete: %+v", rows[0])
	}
	if rows[0].ReviewDate.Before(first.ReviewDate) {
		t.Fatalf("review date not refreshed")
	}
}

func TestRoleSnapshotFollowsTheReviewOnResubmission(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	decide(t, env, request.ID, hodID, "RECOMMEND", "Initial view")

	// The reviewer is promoted to Dean; the stored snapshot only changes
	// when they review again.
	hod, _ := env.users.FindByID(hodID)
	hod.Role = models.RoleDean
	env.users.put(hod)

	stored, _ := env.reviews.FindByRequestAndReviewer(request.ID, hodID)
	if stored.ReviewerRole != models.RoleHOD {
		t.Fatalf("historical snapshot rewritten: %s", stored.ReviewerRole)
	}

	updated := decide(t, env, request.ID, hodID, "APPROVED", "Approving as dean now")
	if updated.ReviewerRole != models.RoleDean {
		t.Fatalf("snapshot after resubmission = %s, want DEAN", updated.ReviewerRole)
	}
	if got := requestStatus(t, env, request.ID); got != models.StatusUnderDVCReview {
		t.Fatalf("approval used stale role: status %s", got)
	}
}

func TestApprovalByNonChainRoleFailsButKeepsTheReview(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	_, err := env.reviewService.SubmitDecision(SubmitDecisionInput{
		RequestID:  request.ID,
		ReviewerID: hrID,
		Decision:   "APPROVED",
		Comments:   "Looks fine to me",
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("got %v, want ErrInvalidState", err)
	}

	// The review upsert happens before the transition branch, so the row
	// exists even though the decision failed.
	stored, _ := env.reviews.FindByRequestAndReviewer(request.ID, hrID)
	if stored == nil {
		t.Fatalf("review row missing after failed approval")
	}
	if got := requestStatus(t, env, request.ID); got != models.StatusSubmitted {
		t.Fatalf("status moved on failed approval: %s", got)
	}
}

func TestNoCrossCheckBetweenRoleAndStage(t *testing.T) {
	env := newTestEnv()

	// A DVC approval on a DRAFT request jumps straight to APPROVED.
	draft, _ := env.requestService.Create(applicantID, CreateRequestInput{CurrentRank: "Lecturer", AppliedRank: "Senior Lecturer"})
	decide(t, env, draft.ID, dvcID, "APPROVED", "Fast-tracked")
	if got := requestStatus(t, env, draft.ID); got != models.StatusApproved {
		t.Fatalf("status = %s, want APPROVED", got)
	}
}

func TestSubmitDecisionInputValidation(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)

	cases := []struct {
		name string
		in   SubmitDecisionInput
		want error
	}{
		{"unknown decision", SubmitDecisionInput{RequestID: request.ID, ReviewerID: hodID, Decision: "MAYBE", Comments: "x"}, ErrInvalidArgument},
		{"blank comments", SubmitDecisionInput{RequestID: request.ID, ReviewerID: hodID, Decision: "APPROVED", Comments: "   "}, ErrInvalidArgument},
		{"unknown request", SubmitDecisionInput{RequestID: 999, ReviewerID: hodID, Decision: "APPROVED", Comments: "x"}, ErrNotFound},
		{"unknown reviewer", SubmitDecisionInput{RequestID: request.ID, ReviewerID: 999, Decision: "APPROVED", Comments: "x"}, ErrNotFound},
	}
	for _, tc := range cases {
		if _, err := env.reviewService.SubmitDecision(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	// Decisions are case-insensitive.
	review := decide(t, env, request.ID, hodID, "approved", "Lower-case client")
	if review.Decision != models.DecisionApproved {
		t.Fatalf("decision = %s, want APPROVED", review.Decision)
	}
}

func TestReviewReadsAndDeletion(t *testing.T) {
	env := newTestEnv()
	request := submittedRequest(t, env)
	review := decide(t, env, request.ID, hodID, "RECOMMEND", "On record")

	loaded, err := env.reviewService.Get(review.ID)
	if err != nil || loaded.ID != review.ID {
		t.Fatalf("get review: %v", err)
	}

	byReviewer, err := env.reviewService.ListByReviewer(hodID)
	if err != nil || len(byReviewer) != 1 {
		t.Fatalf("list by reviewer: %v (%d rows)", err, len(byReviewer))
	}
	if _, err := env.reviewService.ListByReviewer(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown reviewer: got %v, want ErrNotFound", err)
	}

	byDecision, err := env.reviewService.ListByDecision("RECOMMEND")
	if err != nil || len(byDecision) != 1 {
		t.Fatalf("list by decision: %v (%d rows)", err, len(byDecision))
	}
	if _, err := env.reviewService.ListByDecision("MAYBE"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("invalid decision filter: got %v, want ErrInvalidArgument", err)
	}

	if err := env.reviewService.Delete(review.ID); err != nil {
		t.Fatalf("delete review: %v", err)
	}
	if err := env.reviewService.Delete(review.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: got %v, want ErrNotFound", err)
	}
}

// Full walkthrough: draft, submit, three-stage review ending in rejection.
func TestPromotionRequestEndToEnd(t *testing.T) {
	env := newTestEnv()

	request, err := env.requestService.Create(applicantID, CreateRequestInput{
		CurrentRank: "Lecturer",
		AppliedRank: "Senior Lecturer",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if request.Status != models.StatusDraft {
		t.Fatalf("status = %s, want DRAFT", request.Status)
	}

	request, _ = env.requestService.Submit(request.ID)
	if request.Status != models.StatusSubmitted || request.SubmissionDate == nil {
		t.Fatalf("submission incomplete: %+v", request)
	}

	decide(t, env, request.ID, hodID, "APPROVED", "Department supports")
	if got := requestStatus(t, env, request.ID); got != models.StatusUnderDeanReview {
		t.Fatalf("stage 1: %s", got)
	}

	decide(t, env, request.ID, deanID, "APPROVED", "School supports")
	if got := requestStatus(t, env, request.ID); got != models.StatusUnderDVCReview {
		t.Fatalf("stage 2: %s", got)
	}

	decide(t, env, request.ID, dvcID, "REJECTED", "Quota exhausted this year")
	if got := requestStatus(t, env, request.ID); got != models.StatusRejected {
		t.Fatalf("final: %s, want REJECTED", got)
	}

	// Late non-binding or rejecting reviews leave the terminal status alone.
	decide(t, env, request.ID, deanID, "RECOMMEND", "For next year")
	decide(t, env, request.ID, dvcID, "REJECTED", "Still closed")
	if got := requestStatus(t, env, request.ID); got != models.StatusRejected {
		t.Fatalf("terminal status disturbed: %s", got)
	}

	rows, _ := env.reviews.FindByRequest(request.ID)
	if len(rows) != 3 {
		t.Fatalf("ledger rows = %d, want 3 (one per reviewer)", len(rows))
	}
}
