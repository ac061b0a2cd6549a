package repository

import (
	"context"
	"errors"
	"time"

	"invoicesync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCreationLedgerTableName = "invoice_task_creation_ledger"

type creationLedgerItem struct {
	Key       string `dynamodbav:"key"`
	ClaimedAt string `dynamodbav:"claimed_at"`
}

// CreationLedgerDynamoRepository is the idempotency guard for invoice-task
// creation. The key is encounterID#taskType; a conditional put means only
// one of two racing pipeline runs wins the claim.
//
// Table requirements:
//   - PK: key (string)

type CreationLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreationLedger = (*CreationLedgerDynamoRepository)(nil)

func NewCreationLedgerDynamoRepository(ddb *dynamodb.Client) *CreationLedgerDynamoRepository {
	return &CreationLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREATION_LEDGER_TABLE", defaultCreationLedgerTableName),
	}
}

func (r *CreationLedgerDynamoRepository) ClaimCreation(ctx context.Context, encounterID, taskType string) (bool, error) {
	it := creationLedgerItem{
		Key:       encounterID + "#" + taskType,
		ClaimedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "key",
		},
	})
	if err != nil {
		var conflict *types.ConditionalCheckFailedException
		if errors.As(err, &conflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
