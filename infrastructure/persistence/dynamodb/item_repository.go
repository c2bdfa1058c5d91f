package dynamodb

import (
	"context"
	"fmt"

	"learnermax/application/ports"
	"learnermax/domain/core/entities"
	pkgerrors "learnermax/pkg/errors"
	"learnermax/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ItemsAPI is the subset of the DynamoDB client used by the item
// repository. The concrete client is constructed once at process
// start; tests substitute a fake.
type ItemsAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// ItemRepository implements the ItemRepository port against a single
// DynamoDB table keyed directly on the item id.
type ItemRepository struct {
	client    ItemsAPI
	tableName string
	logger    *zap.Logger
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(client ItemsAPI, tableName string, logger *zap.Logger) ports.ItemRepository {
	return &ItemRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// itemRecord represents the DynamoDB item structure
type itemRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// List retrieves every item in the table. No pagination: the table is
// bounded by the backend's response-size limit, matching the
// published contract.
func (r *ItemRepository) List(ctx context.Context) ([]*entities.Item, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		r.logger.Error("Failed to scan items table",
			zap.String("table", r.tableName),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("list items", err)
	}

	var records []itemRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		r.logger.Error("Failed to unmarshal items", zap.Error(err))
		return nil, pkgerrors.NewDatabaseError("list items", err)
	}

	items := make([]*entities.Item, 0, len(records))
	for _, rec := range records {
		item, err := rec.toEntity()
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("list items", err)
		}
		items = append(items, item)
	}

	r.logger.Info("Listed items", zap.Int("count", len(items)))
	return items, nil
}

// GetByID retrieves a single item, or a NotFound error when no record
// matches. Reads never create records.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("id is required")
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		r.logger.Error("Failed to get item",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("get item", err)
	}

	if len(out.Item) == 0 {
		r.logger.Info("Item not found", zap.String("id", id))
		return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("item '%s'", id))
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		r.logger.Error("Failed to unmarshal item", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.NewDatabaseError("get item", err)
	}

	item, err := rec.toEntity()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get item", err)
	}

	r.logger.Info("Retrieved item", zap.String("id", id))
	return item, nil
}

// Upsert creates or replaces the record for id. CreatedAt is written
// with if_not_exists so it survives rewrites; UpdatedAt is stamped on
// every write. Concurrent upserts to the same id are last-write-wins.
func (r *ItemRepository) Upsert(ctx context.Context, id, name string) (*entities.Item, error) {
	if err := entities.ValidateKey(id, name); err != nil {
		return nil, err
	}

	now := utils.NowRFC3339()

	update := expression.
		Set(expression.Name("name"), expression.Value(name)).
		Set(expression.Name("updatedAt"), expression.Value(now)).
		Set(expression.Name("createdAt"), expression.IfNotExists(expression.Name("createdAt"), expression.Value(now)))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build update expression").WithCause(err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		r.logger.Error("Failed to upsert item",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("upsert item", err)
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		r.logger.Error("Failed to unmarshal upsert result", zap.String("id", id), zap.Error(err))
		return nil, pkgerrors.NewDatabaseError("upsert item", err)
	}

	item, err := rec.toEntity()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("upsert item", err)
	}

	r.logger.Info("Upserted item",
		zap.String("id", id),
		zap.String("name", name),
	)
	return item, nil
}

// toEntity converts a stored record into the domain entity
func (rec itemRecord) toEntity() (*entities.Item, error) {
	createdAt, err := utils.ParseRFC3339(rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid createdAt on item %q: %w", rec.ID, err)
	}
	updatedAt, err := utils.ParseRFC3339(rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updatedAt on item %q: %w", rec.ID, err)
	}

	return &entities.Item{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
