package interfaces

import (
	"context"
	"maison_brioche/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteRequest.
//
// MarkConverted must be conditional on the request not already being
// converted so that concurrent conversions collapse to one winner.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.QuoteRequest, error)
	ListQuotedByDate(ctx context.Context, date string) ([]entities.QuoteRequest, error)
	SetQuote(ctx context.Context, id string, quote entities.Quote) (entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error)
	SetOverrideCapacity(ctx context.Context, id string, override bool) (entities.QuoteRequest, error)
	MarkConverted(ctx context.Context, id string, orderNumber int64) (entities.QuoteRequest, error)
}
