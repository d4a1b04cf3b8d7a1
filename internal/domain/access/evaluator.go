// Package access decides what a viewer may see of an article. All
// publication and premium gating rules live here; handlers and use cases
// never re-derive them.
package access

import (
	"context"
	"fmt"
	"time"

	"inkpress/internal/domain/article"
	"inkpress/internal/domain/subscription"
)

// Decision classifies a viewer's access to an article.
type Decision int

const (
	// DecisionNotFound hides the article entirely. Indistinguishable from a
	// slug that does not resolve.
	DecisionNotFound Decision = iota
	// DecisionTeaser grants the restricted projection without content.
	DecisionTeaser
	// DecisionFull grants the complete article.
	DecisionFull
)

func (d Decision) String() string {
	switch d {
	case DecisionFull:
		return "full"
	case DecisionTeaser:
		return "teaser"
	default:
		return "not_found"
	}
}

// Viewer is the requesting identity. A nil *Viewer means anonymous.
type Viewer struct {
	ID      uint
	IsAdmin bool
}

// EntitlementReader is the slice of the subscription ledger the evaluator
// consults: the most relevant effectively-active premium subscription for a
// user at a given instant, or nil.
type EntitlementReader interface {
	FindActiveByUser(ctx context.Context, userID uint, now time.Time) (*subscription.Subscription, error)
}

// Evaluator classifies viewer access to articles. It is stateless: the
// result is a pure function of the article flags, the viewer identity and
// the ledger answer for the given instant.
type Evaluator struct {
	entitlements EntitlementReader
}

func NewEvaluator(entitlements EntitlementReader) *Evaluator {
	return &Evaluator{entitlements: entitlements}
}

// Classify applies the gating rules in order:
//
//  1. Unpublished articles resolve to not-found for everyone except the
//     owning author and administrators, who see them in full.
//  2. Published non-premium articles are full for everyone.
//  3. Published premium articles are full only behind an effectively-active
//     premium subscription; everyone else gets the teaser.
func (e *Evaluator) Classify(ctx context.Context, a *article.Article, viewer *Viewer, now time.Time) (Decision, error) {
	if a == nil {
		return DecisionNotFound, nil
	}

	if !a.IsPublished() {
		if viewer != nil && (viewer.IsAdmin || viewer.ID == a.AuthorID()) {
			return DecisionFull, nil
		}
		return DecisionNotFound, nil
	}

	if !a.IsPremium() {
		return DecisionFull, nil
	}

	if viewer == nil {
		return DecisionTeaser, nil
	}

	sub, err := e.entitlements.FindActiveByUser(ctx, viewer.ID, now)
	if err != nil {
		return DecisionNotFound, fmt.Errorf("failed to look up entitlement for user %d: %w", viewer.ID, err)
	}
	if sub != nil && sub.IsPremium() && sub.IsEffectivelyActive(now) {
		return DecisionFull, nil
	}

	return DecisionTeaser, nil
}

// CanMutate is the companion write-side predicate: only administrators and
// the owning author may edit or delete an article.
func CanMutate(a *article.Article, viewer *Viewer) bool {
	if a == nil || viewer == nil {
		return false
	}
	return viewer.IsAdmin || viewer.ID == a.AuthorID()
}
