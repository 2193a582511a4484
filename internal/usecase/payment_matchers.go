package usecase

import (
	"math"
	"strings"

	"maison_brioche/internal/domain/entities"
)

// The fallback search is inherently heuristic. It is expressed as an ordered
// list of matcher strategies rather than inline branching so a new strategy
// can be added without reshuffling precedence. The first tier to yield a
// candidate wins; extra candidates in the same tier are surfaced to the
// caller for warning logs only.

const (
	// metadata key carrying the quote request id on gateway objects.
	metadataRequestIDKey = "custom_request_id"

	matchTierMetadata    = "metadata"
	matchTierEmailAmount = "email_amount"
	matchTierAmountOnly  = "amount_only"

	emailAmountTolerance = 1.00
	amountOnlyTolerance  = 0.05
)

// matchCriteria is what the search knows about the payment it is hunting for.

type matchCriteria struct {
	RequestID      string
	Email          string
	ExpectedAmount float64
}

type paymentMatcher struct {
	tier  string
	match func(rec entities.PaymentRecord, c matchCriteria) bool
}

// fallbackMatchers in precedence order: exact metadata reference, then
// email plus amount within a dollar, then same-amount-only as a last resort.
var fallbackMatchers = []paymentMatcher{
	{
		tier: matchTierMetadata,
		match: func(rec entities.PaymentRecord, c matchCriteria) bool {
			return c.RequestID != "" && rec.Metadata[metadataRequestIDKey] == c.RequestID
		},
	},
	{
		tier: matchTierEmailAmount,
		match: func(rec entities.PaymentRecord, c matchCriteria) bool {
			if c.Email == "" || !strings.EqualFold(rec.Email, c.Email) {
				return false
			}
			return amountsWithin(rec.Amount, c.ExpectedAmount, emailAmountTolerance)
		},
	},
	{
		tier: matchTierAmountOnly,
		match: func(rec entities.PaymentRecord, c matchCriteria) bool {
			return amountsWithin(rec.Amount, c.ExpectedAmount, amountOnlyTolerance)
		},
	},
}

// matchResult carries the winning candidate plus any other candidates the
// same tier produced (ambiguity is logged, never auto-resolved).

type matchResult struct {
	tier      string
	record    entities.PaymentRecord
	ambiguous []entities.PaymentRecord
}

// findFallbackMatch scans paid candidates tier by tier. Candidates are
// expected in preference order (sessions, then payment intents, then
// charges) so ties keep the first found.
func findFallbackMatch(candidates []entities.PaymentRecord, c matchCriteria) (matchResult, bool) {
	for _, m := range fallbackMatchers {
		var hits []entities.PaymentRecord
		for _, rec := range candidates {
			if !rec.Paid {
				continue
			}
			if m.match(rec, c) {
				hits = append(hits, rec)
			}
		}
		if len(hits) > 0 {
			return matchResult{tier: m.tier, record: hits[0], ambiguous: hits[1:]}, true
		}
	}
	return matchResult{}, false
}

func amountsWithin(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance+1e-9
}
