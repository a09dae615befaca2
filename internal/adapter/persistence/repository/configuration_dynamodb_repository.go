package repository

import (
	"context"
	"fmt"

	"nest_configurator/internal/domain/entities"
	"nest_configurator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/goccy/go-json"
)

const defaultConfigurationsTableName = "configurations"

// configurationItem keeps the selection maps as one JSON document; the scalar
// attributes next to it are there for inspection and filtering in the console.
type configurationItem struct {
	SessionID     string `dynamodbav:"session_id"`
	Snapshot      string `dynamodbav:"snapshot"`
	Phase         string `dynamodbav:"phase"`
	HasInteracted bool   `dynamodbav:"has_interacted"`
	TotalPrice    int64  `dynamodbav:"total_price"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ConfigurationDynamoRepository persists session snapshots in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// Saves overwrite; the latest snapshot of a session is the only one kept.
type ConfigurationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IConfigurationRepository = (*ConfigurationDynamoRepository)(nil)

func NewConfigurationDynamoRepository(ddb DynamoAPI, tableName string) *ConfigurationDynamoRepository {
	return &ConfigurationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultConfigurationsTableName),
	}
}

func (r *ConfigurationDynamoRepository) Save(ctx context.Context, snap entities.SessionSnapshot) error {
	it, err := toConfigurationItem(snap)
	if err != nil {
		return err
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

func (r *ConfigurationDynamoRepository) Load(ctx context.Context, sessionID string) (entities.SessionSnapshot, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SessionSnapshot{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.SessionSnapshot{}, false, nil
	}

	var it configurationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SessionSnapshot{}, false, err
	}
	snap, err := fromConfigurationItem(it)
	if err != nil {
		return entities.SessionSnapshot{}, false, err
	}
	return snap, true, nil
}

func toConfigurationItem(snap entities.SessionSnapshot) (configurationItem, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return configurationItem{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return configurationItem{
		SessionID:     snap.Configuration.SessionID,
		Snapshot:      string(b),
		Phase:         string(snap.State.Phase),
		HasInteracted: snap.State.HasInteracted,
		TotalPrice:    snap.Configuration.TotalPrice,
		UpdatedAt:     formatTime(snap.Configuration.Timestamp),
	}, nil
}

func fromConfigurationItem(it configurationItem) (entities.SessionSnapshot, error) {
	var snap entities.SessionSnapshot
	if err := json.Unmarshal([]byte(it.Snapshot), &snap); err != nil {
		return entities.SessionSnapshot{}, fmt.Errorf("decode snapshot %s: %w", it.SessionID, err)
	}
	if snap.Configuration.SessionID == "" {
		snap.Configuration.SessionID = it.SessionID
	}
	return snap, nil
}
