package repository

import (
	"context"
	"encoding/json"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "pending_carts"

type cartItem struct {
	SessionID     string `dynamodbav:"session_id"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	Items         string `dynamodbav:"items"` // JSON
	CreatedAt     string `dynamodbav:"created_at"`
}

// CartDynamoRepository persists PendingCart entities in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// Cart lines are stored as a JSON blob: they are written once before the
// gateway redirect and read back whole at reconciliation, never queried by
// field.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Put(ctx context.Context, cart entities.PendingCart) error {
	b, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}
	it := cartItem{
		SessionID:     cart.SessionID,
		CustomerName:  cart.Customer.Name,
		CustomerEmail: cart.Customer.Email,
		CustomerPhone: cart.Customer.Phone,
		Items:         string(b),
		CreatedAt:     cart.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CartDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.PendingCart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingCart{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingCart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingCart{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	cart := entities.PendingCart{
		SessionID: it.SessionID,
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Email: it.CustomerEmail,
			Phone: it.CustomerPhone,
		},
		CreatedAt: createdAt,
	}
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &cart.Items); err != nil {
			return entities.PendingCart{}, err
		}
	}
	return cart, nil
}

func (r *CartDynamoRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	return err
}
