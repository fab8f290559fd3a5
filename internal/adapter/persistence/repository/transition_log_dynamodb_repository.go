package repository

import (
	"context"
	"time"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransitionsTableName = "status_transitions"
	transitionsSaleIDIndex      = "sale_id-index"
)

type statusTransitionItem struct {
	ID             string `dynamodbav:"id"`
	SaleID         string `dynamodbav:"sale_id"`
	VehicleID      string `dynamodbav:"vehicle_id"`
	Action         string `dynamodbav:"action"`
	SaleStatus     string `dynamodbav:"sale_status"`
	VehicleStatus  string `dynamodbav:"vehicle_status"`
	StepsCompleted int    `dynamodbav:"steps_completed"`
	Failure        string `dynamodbav:"failure,omitempty"`
	Date           string `dynamodbav:"date"`
}

// TransitionLogDynamoRepository persists StatusTransition records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sale_id-index (PK: sale_id)

type TransitionLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransitionLogRepository = (*TransitionLogDynamoRepository)(nil)

func NewTransitionLogDynamoRepository(ddb *dynamodb.Client) *TransitionLogDynamoRepository {
	return &TransitionLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSITIONS_TABLE", defaultTransitionsTableName),
	}
}

func (r *TransitionLogDynamoRepository) Record(ctx context.Context, t entities.StatusTransition) (entities.StatusTransition, error) {
	it := toStatusTransitionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StatusTransition{}, err
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
		return entities.StatusTransition{}, err
	}
	return t, nil
}

func (r *TransitionLogDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.StatusTransition, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transitionsSaleIDIndex),
		KeyConditionExpression: aws.String("sale_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: saleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.StatusTransition, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusTransitionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStatusTransitionItem(it))
	}
	return items, nil
}

func toStatusTransitionItem(t entities.StatusTransition) statusTransitionItem {
	return statusTransitionItem{
		ID:             t.ID,
		SaleID:         t.SaleID,
		VehicleID:      t.VehicleID,
		Action:         string(t.Action),
		SaleStatus:     string(t.SaleStatus),
		VehicleStatus:  string(t.VehicleStatus),
		StepsCompleted: t.StepsCompleted,
		Failure:        t.Failure,
		Date:           t.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromStatusTransitionItem(it statusTransitionItem) entities.StatusTransition {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.StatusTransition{
		ID:             it.ID,
		SaleID:         it.SaleID,
		VehicleID:      it.VehicleID,
		Action:         entities.TransitionAction(it.Action),
		SaleStatus:     entities.PaymentStatus(it.SaleStatus),
		VehicleStatus:  entities.VehicleStatus(it.VehicleStatus),
		StepsCompleted: it.StepsCompleted,
		Failure:        it.Failure,
		Date:           dt,
	}
}
