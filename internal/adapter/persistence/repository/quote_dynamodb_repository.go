package repository

import (
	"context"
	"errors"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName  = "quote_requests"
	quotesRequestedDateIndex = "requested_date-index"
	quotesSessionIDIndex     = "session_id-index"
)

type quoteItem struct {
	ID               string  `dynamodbav:"id"`
	RequestNumber    int64   `dynamodbav:"request_number"`
	Kind             string  `dynamodbav:"kind"`
	Status           string  `dynamodbav:"status"`
	RequestedDate    string  `dynamodbav:"requested_date"`
	FulfillmentType  string  `dynamodbav:"fulfillment_type"`
	CustomerName     string  `dynamodbav:"customer_name"`
	CustomerEmail    string  `dynamodbav:"customer_email"`
	CustomerPhone    string  `dynamodbav:"customer_phone,omitempty"`
	EventDetails     string  `dynamodbav:"event_details,omitempty"`
	QuotePrice       float64 `dynamodbav:"quote_price,omitempty"`
	SessionID        string  `dynamodbav:"session_id,omitempty"` // sparse GSI key
	QuotedAt         string  `dynamodbav:"quoted_at,omitempty"`
	OverrideCapacity bool    `dynamodbav:"override_capacity"`
	OrderNumber      int64   `dynamodbav:"order_number,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requested_date-index (PK: requested_date)
//   - GSI: session_id-index (PK: session_id, sparse)
//
// MarkConverted is conditional on status <> converted: concurrent
// conversions collapse to exactly one winner at the store level.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListQuotedByDate(ctx context.Context, date string) ([]entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRequestedDateIndex),
		KeyConditionExpression: aws.String("requested_date = :date"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date":   &types.AttributeValueMemberS{Value: date},
			":status": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) SetQuote(ctx context.Context, id string, quote entities.Quote) (entities.QuoteRequest, error) {
	return r.update(ctx, id, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, quote_price = :price, session_id = :sid, quoted_at = :qat, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
			":price":      &types.AttributeValueMemberN{Value: floatToString(quote.Price)},
			":sid":        &types.AttributeValueMemberS{Value: quote.SessionID},
			":qat":        &types.AttributeValueMemberS{Value: quote.QuotedAt.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error) {
	return r.update(ctx, id, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) SetOverrideCapacity(ctx context.Context, id string, override bool) (entities.QuoteRequest, error) {
	return r.update(ctx, id, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET override_capacity = :oc, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":oc":         &types.AttributeValueMemberBOOL{Value: override},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) MarkConverted(ctx context.Context, id string, orderNumber int64) (entities.QuoteRequest, error) {
	return r.update(ctx, id, "attribute_exists(#id) AND #status <> :converted", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :converted, order_number = :on, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":converted":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusConverted)},
			":on":         &types.AttributeValueMemberN{Value: int64ToString(orderNumber)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.QuoteRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRequest{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	it := quoteItem{
		ID:               q.ID,
		RequestNumber:    q.RequestNumber,
		Kind:             string(q.Kind),
		Status:           string(q.Status),
		RequestedDate:    q.RequestedDate,
		FulfillmentType:  string(q.FulfillmentType),
		CustomerName:     q.Customer.Name,
		CustomerEmail:    q.Customer.Email,
		CustomerPhone:    q.Customer.Phone,
		EventDetails:     q.EventDetails,
		OverrideCapacity: q.OverrideCapacity,
		OrderNumber:      q.OrderNumber,
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.Quote != nil {
		it.QuotePrice = q.Quote.Price
		it.SessionID = q.Quote.SessionID
		it.QuotedAt = q.Quote.QuotedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.QuoteRequest{
		ID:              it.ID,
		RequestNumber:   it.RequestNumber,
		Kind:            entities.QuoteKind(it.Kind),
		Status:          entities.QuoteStatus(it.Status),
		RequestedDate:   it.RequestedDate,
		FulfillmentType: entities.FulfillmentType(it.FulfillmentType),
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Email: it.CustomerEmail,
			Phone: it.CustomerPhone,
		},
		EventDetails:     it.EventDetails,
		OverrideCapacity: it.OverrideCapacity,
		OrderNumber:      it.OrderNumber,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.SessionID != "" {
		quotedAt, _ := time.Parse(time.RFC3339Nano, it.QuotedAt)
		q.Quote = &entities.Quote{
			Price:     it.QuotePrice,
			SessionID: it.SessionID,
			QuotedAt:  quotedAt,
		}
	}
	return q
}
