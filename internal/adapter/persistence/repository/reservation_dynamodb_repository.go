package repository

import (
	"context"
	"encoding/json"
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
	defaultReservationsTableName = "reservations"
	reservationsDateIndex        = "date-index"
	reservationsSessionIDIndex   = "session_id-index"
)

type reservationItem struct {
	ID              string  `dynamodbav:"id"`
	OrderNumber     int64   `dynamodbav:"order_number"`
	RequestID       string  `dynamodbav:"request_id,omitempty"`
	Date            string  `dynamodbav:"date"`
	PickupTime      string  `dynamodbav:"pickup_time,omitempty"`
	FulfillmentType string  `dynamodbav:"fulfillment_type"`
	Status          string  `dynamodbav:"status"`
	CustomerName    string  `dynamodbav:"customer_name"`
	CustomerEmail   string  `dynamodbav:"customer_email"`
	CustomerPhone   string  `dynamodbav:"customer_phone,omitempty"`
	ProductID       string  `dynamodbav:"product_id,omitempty"`
	ProductName     string  `dynamodbav:"product_name"`
	Size            string  `dynamodbav:"size,omitempty"`
	Customizations  string  `dynamodbav:"customizations,omitempty"`
	Price           float64 `dynamodbav:"price"`
	AddOns          string  `dynamodbav:"add_ons,omitempty"`  // JSON
	SessionID       string  `dynamodbav:"session_id,omitempty"` // sparse GSI key
	Payment         string  `dynamodbav:"payment,omitempty"`  // JSON
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// ReservationDynamoRepository persists Reservation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: date-index (PK: date)
//   - GSI: session_id-index (PK: session_id, sparse)
//
// session_id is promoted to a top-level attribute so the idempotency lookup
// (one query by session id) stays a single indexed read.

type ReservationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReservationRepository = (*ReservationDynamoRepository)(nil)

func NewReservationDynamoRepository(ddb *dynamodb.Client) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESERVATIONS_TABLE", defaultReservationsTableName),
	}
}

func (r *ReservationDynamoRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	it, err := toReservationItem(res)
	if err != nil {
		return entities.Reservation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Reservation{}, err
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
		return entities.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reservation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reservation{}, nil
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it)
}

func (r *ReservationDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Reservation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Reservation{}, nil
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it)
}

func (r *ReservationDynamoRepository) ListByDate(ctx context.Context, date string) ([]entities.Reservation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservationsDateIndex),
		KeyConditionExpression: aws.String("#date = :date"),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date": &types.AttributeValueMemberS{Value: date},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Reservation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reservationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		res, err := fromReservationItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}

func (r *ReservationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus) (entities.Reservation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
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

func (r *ReservationDynamoRepository) UpdateSchedule(ctx context.Context, id string, date string, pickupTime string) (entities.Reservation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #date = :date, #pickup_time = :pickup_time, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":date":        &types.AttributeValueMemberS{Value: date},
			":pickup_time": &types.AttributeValueMemberS{Value: pickupTime},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#date":        "date",
			"#pickup_time": "pickup_time",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ReservationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Reservation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reservation{}, nil
		}
		return entities.Reservation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reservation{}, nil
	}
	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it)
}

func toReservationItem(res entities.Reservation) (reservationItem, error) {
	it := reservationItem{
		ID:              res.ID,
		OrderNumber:     res.OrderNumber,
		RequestID:       res.RequestID,
		Date:            res.Date,
		PickupTime:      res.PickupTime,
		FulfillmentType: string(res.FulfillmentType),
		Status:          string(res.Status),
		CustomerName:    res.Customer.Name,
		CustomerEmail:   res.Customer.Email,
		CustomerPhone:   res.Customer.Phone,
		ProductID:       res.ProductID,
		ProductName:     res.ProductName,
		Size:            res.Size,
		Customizations:  res.Customizations,
		Price:           res.Price,
		CreatedAt:       res.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       res.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(res.AddOns) > 0 {
		b, err := json.Marshal(res.AddOns)
		if err != nil {
			return reservationItem{}, err
		}
		it.AddOns = string(b)
	}
	if res.Payment != nil {
		b, err := json.Marshal(res.Payment)
		if err != nil {
			return reservationItem{}, err
		}
		it.Payment = string(b)
		it.SessionID = res.Payment.SessionID
	}
	return it, nil
}

func fromReservationItem(it reservationItem) (entities.Reservation, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	res := entities.Reservation{
		ID:              it.ID,
		OrderNumber:     it.OrderNumber,
		RequestID:       it.RequestID,
		Date:            it.Date,
		PickupTime:      it.PickupTime,
		FulfillmentType: entities.FulfillmentType(it.FulfillmentType),
		Status:          entities.ReservationStatus(it.Status),
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Email: it.CustomerEmail,
			Phone: it.CustomerPhone,
		},
		ProductID:      it.ProductID,
		ProductName:    it.ProductName,
		Size:           it.Size,
		Customizations: it.Customizations,
		Price:          it.Price,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.AddOns != "" {
		if err := json.Unmarshal([]byte(it.AddOns), &res.AddOns); err != nil {
			return entities.Reservation{}, err
		}
	}
	if it.Payment != "" {
		var p entities.PaymentInfo
		if err := json.Unmarshal([]byte(it.Payment), &p); err != nil {
			return entities.Reservation{}, err
		}
		res.Payment = &p
	}
	return res, nil
}
