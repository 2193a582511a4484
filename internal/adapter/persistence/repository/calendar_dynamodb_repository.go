package repository

import (
	"context"
	"time"

	"maison_brioche/internal/domain/entities"
	"maison_brioche/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCalendarTableName = "calendar_overrides"

type calendarItem struct {
	Date      string `dynamodbav:"date"`
	Status    string `dynamodbav:"status"`
	Capacity  *int   `dynamodbav:"capacity,omitempty"`
	Note      string `dynamodbav:"note,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CalendarDynamoRepository persists CalendarOverride entities in DynamoDB.
//
// Table requirements:
//   - PK: date (string, "2006-01-02")
//
// One override per date, so the date itself is the key and Upsert is a plain
// put. Range listing scans with a BETWEEN filter; override volume is tiny
// (staff-curated exceptions), so a scan is acceptable.

type CalendarDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalendarRepository = (*CalendarDynamoRepository)(nil)

func NewCalendarDynamoRepository(ddb *dynamodb.Client) *CalendarDynamoRepository {
	return &CalendarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDAR_TABLE", defaultCalendarTableName),
	}
}

func (r *CalendarDynamoRepository) Upsert(ctx context.Context, o entities.CalendarOverride) (entities.CalendarOverride, error) {
	av, err := attributevalue.MarshalMap(toCalendarItem(o))
	if err != nil {
		return entities.CalendarOverride{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CalendarOverride{}, err
	}
	return o, nil
}

func (r *CalendarDynamoRepository) GetByDate(ctx context.Context, date string) (entities.CalendarOverride, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"date": &types.AttributeValueMemberS{Value: date},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalendarOverride{}, err
	}
	if len(out.Item) == 0 {
		return entities.CalendarOverride{}, nil
	}

	var it calendarItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalendarOverride{}, err
	}
	return fromCalendarItem(it), nil
}

func (r *CalendarDynamoRepository) ListRange(ctx context.Context, from, to string) ([]entities.CalendarOverride, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#date BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: from},
			":to":   &types.AttributeValueMemberS{Value: to},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CalendarOverride, 0, len(out.Items))
	for _, raw := range out.Items {
		var it calendarItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCalendarItem(it))
	}
	return items, nil
}

func (r *CalendarDynamoRepository) Delete(ctx context.Context, date string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"date": &types.AttributeValueMemberS{Value: date},
		},
	})
	return err
}

func toCalendarItem(o entities.CalendarOverride) calendarItem {
	return calendarItem{
		Date:      o.Date,
		Status:    string(o.Status),
		Capacity:  o.Capacity,
		Note:      o.Note,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCalendarItem(it calendarItem) entities.CalendarOverride {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CalendarOverride{
		Date:      it.Date,
		Status:    entities.OverrideStatus(it.Status),
		Capacity:  it.Capacity,
		Note:      it.Note,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
