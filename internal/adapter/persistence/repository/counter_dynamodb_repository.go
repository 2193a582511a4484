package repository

import (
	"context"
	"errors"
	"strconv"

	"maison_brioche/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository hands out sequence numbers (order numbers, request
// numbers) from single-row counters.
//
// Table requirements:
//   - PK: name (string)
//
// Next is one atomic ADD: the returned value is unique even under concurrent
// callers, and a number is never reissued. Numbering starts at 1001 so
// customer-facing ids don't look like a day-one shop.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

const counterSeed = 1000

var errMissingCounterValue = errors.New("counter update returned no value")

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["value"]
	if !ok {
		return 0, errMissingCounterValue
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, err
	}
	return counterSeed + v, nil
}
