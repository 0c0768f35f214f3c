// Package usecase defines the application's business operation interfaces.
package usecase

import (
	"context"

	"iloveyou/internal/domain/entity"
)

// DispatchErrorKind classifies why a dispatch did not deliver. Batch jobs
// inspect outcomes through these values instead of exception-style control
// flow, so a single record can never abort a batch.
type DispatchErrorKind string

const (
	// KindNone means the dispatch succeeded.
	KindNone DispatchErrorKind = ""
	// KindNotFound means the target user or couple document is missing.
	KindNotFound DispatchErrorKind = "not_found"
	// KindPrecondition means delivery was skipped before calling the push API
	// (no token, category disabled, quiet hours, invalid couple membership).
	KindPrecondition DispatchErrorKind = "precondition_failed"
	// KindTokenInvalid means the push API rejected the token as unregistered;
	// the stored token has been cleared.
	KindTokenInvalid DispatchErrorKind = "token_invalid"
	// KindDelivery means the push API failed for any other reason.
	KindDelivery DispatchErrorKind = "delivery_failure"
	// KindConfiguration means the notification could not be built
	// (e.g. no template for the type).
	KindConfiguration DispatchErrorKind = "configuration_error"
)

// DispatchResult is the outcome of one push attempt to one user.
type DispatchResult struct {
	Success   bool
	MessageID string
	Kind      DispatchErrorKind
	Reason    string
}

// Sent builds a successful result.
func Sent(messageID string) *DispatchResult {
	return &DispatchResult{Success: true, MessageID: messageID}
}

// Skipped builds a failed result with the given classification.
func Skipped(kind DispatchErrorKind, reason string) *DispatchResult {
	return &DispatchResult{Success: false, Kind: kind, Reason: reason}
}

// CoupleDispatchResult holds the independent outcomes of a couple-reminder
// dispatch: the partner receives the "from creator" variant and the creator a
// personal-style one. Failure of one never blocks the other.
type CoupleDispatchResult struct {
	Partner *DispatchResult
	Creator *DispatchResult
}

// AnySuccess reports whether at least one member received the push.
func (r *CoupleDispatchResult) AnySuccess() bool {
	return (r.Partner != nil && r.Partner.Success) || (r.Creator != nil && r.Creator.Success)
}

// FailureReason summarizes the failures for bookkeeping; empty when any
// delivery succeeded.
func (r *CoupleDispatchResult) FailureReason() string {
	if r.AnySuccess() {
		return ""
	}
	if r.Partner != nil && r.Partner.Reason != "" {
		return r.Partner.Reason
	}
	if r.Creator != nil {
		return r.Creator.Reason
	}

	return ""
}

// DispatchUsecase is the notification dispatcher. Methods return results, not
// errors: every failure mode is a classified outcome.
type DispatchUsecase interface {
	// DispatchReminder pushes a personal reminder notification to userID.
	DispatchReminder(ctx context.Context, userID string, reminder *entity.Reminder) *DispatchResult

	// DispatchCoupleReminder pushes a couple reminder to the non-creator
	// partner and a personal-style copy to the creator.
	DispatchCoupleReminder(ctx context.Context, reminder *entity.Reminder) *CoupleDispatchResult

	// DispatchMilestone pushes a peaceful-days milestone celebration to every
	// member of the couple.
	DispatchMilestone(ctx context.Context, couple *entity.Couple, days int) []*DispatchResult

	// DispatchTest pushes a test notification to userID, bypassing category
	// preferences but honoring the master switch and token preconditions.
	DispatchTest(ctx context.Context, userID string) *DispatchResult
}
