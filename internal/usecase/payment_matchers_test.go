package usecase

import (
	"testing"

	"maison_brioche/internal/domain/entities"
)

func TestFindFallbackMatch(t *testing.T) {
	criteria := matchCriteria{RequestID: "qr-1", Email: "ana@example.com", ExpectedAmount: 162.38}

	t.Run("metadata beats every other signal", func(t *testing.T) {
		candidates := []entities.PaymentRecord{
			{Source: "session", ID: "cs_email", Email: "ana@example.com", Amount: 162.38, Paid: true},
			{Source: "payment_intent", ID: "pi_meta", Amount: 9.99, Paid: true,
				Metadata: map[string]string{"custom_request_id": "qr-1"}},
		}
		m, ok := findFallbackMatch(candidates, criteria)
		if !ok || m.tier != matchTierMetadata || m.record.ID != "pi_meta" {
			t.Fatalf("expected metadata match on pi_meta, got %+v ok=%v", m, ok)
		}
	})

	t.Run("email match ignores case and tolerates a dollar", func(t *testing.T) {
		candidates := []entities.PaymentRecord{
			{Source: "session", ID: "cs_1", Email: "ANA@Example.COM", Amount: 163.30, Paid: true},
		}
		m, ok := findFallbackMatch(candidates, criteria)
		if !ok || m.tier != matchTierEmailAmount {
			t.Fatalf("expected email_amount match, got %+v ok=%v", m, ok)
		}
	})

	t.Run("email match rejects beyond a dollar", func(t *testing.T) {
		candidates := []entities.PaymentRecord{
			{Source: "session", ID: "cs_1", Email: "ana@example.com", Amount: 163.50, Paid: true},
		}
		if m, ok := findFallbackMatch(candidates, criteria); ok {
			t.Fatalf("expected no match, got %+v", m)
		}
	})

	t.Run("amount-only tolerates five cents", func(t *testing.T) {
		candidates := []entities.PaymentRecord{
			{Source: "charge", ID: "ch_1", Email: "other@example.com", Amount: 162.41, Paid: true},
		}
		m, ok := findFallbackMatch(candidates, criteria)
		if !ok || m.tier != matchTierAmountOnly {
			t.Fatalf("expected amount_only match, got %+v ok=%v", m, ok)
		}
	})

	t.Run("unpaid candidates never match", func(t *testing.T) {
		candidates := []entities.PaymentRecord{
			{Source: "session", ID: "cs_1", Amount: 162.38, Paid: false,
				Metadata: map[string]string{"custom_request_id": "qr-1"}},
		}
		if m, ok := findFallbackMatch(candidates, criteria); ok {
			t.Fatalf("expected no match, got %+v", m)
		}
	})

	t.Run("ties keep the first candidate and surface the rest", func(t *testing.T) {
		candidates := []entities.PaymentRecord{
			{Source: "session", ID: "cs_1", Email: "ana@example.com", Amount: 162.38, Paid: true},
			{Source: "charge", ID: "ch_2", Email: "ana@example.com", Amount: 162.38, Paid: true},
		}
		m, ok := findFallbackMatch(candidates, criteria)
		if !ok || m.record.ID != "cs_1" {
			t.Fatalf("expected first candidate to win, got %+v ok=%v", m, ok)
		}
		if len(m.ambiguous) != 1 || m.ambiguous[0].ID != "ch_2" {
			t.Fatalf("expected ch_2 reported ambiguous, got %+v", m.ambiguous)
		}
	})

	t.Run("no email in criteria skips the email tier", func(t *testing.T) {
		c := matchCriteria{RequestID: "qr-1", ExpectedAmount: 162.38}
		candidates := []entities.PaymentRecord{
			{Source: "session", ID: "cs_1", Email: "ana@example.com", Amount: 162.38, Paid: true},
		}
		m, ok := findFallbackMatch(candidates, c)
		if !ok || m.tier != matchTierAmountOnly {
			t.Fatalf("expected amount_only without criteria email, got %+v ok=%v", m, ok)
		}
	})
}
