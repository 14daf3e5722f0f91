package checkout

import (
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/cart"
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"
	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
)

// ErrNothingToCheckout signals a truly empty session: no submitted
// draft and no cart lines. The client redirects back to the cart page.
var ErrNothingToCheckout = apperror.New(apperror.CodeConflict, "Nothing to check out", http.StatusConflict)

type SourceType string

const (
	SourceRegular SourceType = "regular"
	SourceCustom  SourceType = "custom"
)

// Source is the resolved order origin for one checkout session.
// Exactly one of Draft or Lines is meaningful, per Type.
type Source struct {
	Type  SourceType
	Draft customorder.Draft
	Lines []cart.Line
}

// ResolveSource picks the active order source. A submitted custom-order
// draft always wins, even over a non-empty cart; an unfinished draft is
// ignored so a browsing customer can still check out their cart. Pure
// so it can be tested without any store behind it.
func ResolveSource(draft customorder.Draft, hasDraft bool, lines []cart.Line) (Source, error) {
	if hasDraft && draft.Submitted() {
		return Source{Type: SourceCustom, Draft: draft}, nil
	}
	if len(lines) > 0 {
		return Source{Type: SourceRegular, Lines: lines}, nil
	}
	return Source{}, ErrNothingToCheckout
}
