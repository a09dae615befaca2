package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/goccy/go-json"
)

const defaultCartTableName = "cart_items"

type cartItem struct {
	ID            string `dynamodbav:"id"`
	SessionID     string `dynamodbav:"session_id"`
	Configuration string `dynamodbav:"configuration"`
	Breakdown     string `dynamodbav:"breakdown"`
	Price         int64  `dynamodbav:"price"`
	MonthlyRate   int64  `dynamodbav:"monthly_rate"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CartItemDynamoRepository persists CartItem snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
type CartItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ICartRepository = (*CartItemDynamoRepository)(nil)

func NewCartItemDynamoRepository(ddb DynamoAPI, tableName string) *CartItemDynamoRepository {
	return &CartItemDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCartTableName),
		now:       time.Now,
	}
}

func (r *CartItemDynamoRepository) Create(ctx context.Context, item entities.CartItem) (entities.CartItem, error) {
	it, err := toCartItem(item)
	if err != nil {
		return entities.CartItem{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CartItem{}, err
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
		return entities.CartItem{}, err
	}
	return item, nil
}

func (r *CartItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.CartItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CartItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CartItem{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CartItem{}, err
	}
	return fromCartItem(it)
}

// UpdateStatus returns a zero CartItem when id does not exist.
func (r *CartItemDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CartItemStatus) (entities.CartItem, error) {
	now := r.now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CartItem{}, nil
		}
		return entities.CartItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CartItem{}, nil
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CartItem{}, err
	}
	return fromCartItem(it)
}

func toCartItem(c entities.CartItem) (cartItem, error) {
	cfg, err := json.Marshal(c.Configuration)
	if err != nil {
		return cartItem{}, fmt.Errorf("encode configuration: %w", err)
	}
	breakdown, err := json.Marshal(c.Breakdown)
	if err != nil {
		return cartItem{}, fmt.Errorf("encode breakdown: %w", err)
	}
	return cartItem{
		ID:            c.ID,
		SessionID:     c.SessionID,
		Configuration: string(cfg),
		Breakdown:     string(breakdown),
		Price:         c.Price,
		MonthlyRate:   c.MonthlyRate,
		Status:        string(c.Status),
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}, nil
}

func fromCartItem(it cartItem) (entities.CartItem, error) {
	out := entities.CartItem{
		ID:          it.ID,
		SessionID:   it.SessionID,
		Price:       it.Price,
		MonthlyRate: it.MonthlyRate,
		Status:      entities.CartItemStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.Configuration != "" {
		if err := json.Unmarshal([]byte(it.Configuration), &out.Configuration); err != nil {
			return entities.CartItem{}, fmt.Errorf("decode configuration of cart item %s: %w", it.ID, err)
		}
	}
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &out.Breakdown); err != nil {
			return entities.CartItem{}, fmt.Errorf("decode breakdown of cart item %s: %w", it.ID, err)
		}
	}
	return out, nil
}
