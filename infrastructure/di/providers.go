package di

import (
	"context"

	"learnermax/application/ports"
	"learnermax/application/services"
	"learnermax/infrastructure/config"
	"learnermax/infrastructure/persistence/dynamodb"
	"learnermax/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	ItemRepo    ports.ItemRepository
	ItemService *services.ItemService
	Metrics     *observability.Metrics
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideItemRepository creates the DynamoDB-backed item repository
func ProvideItemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ItemRepository {
	return dynamodb.NewItemRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideItemService creates the item service
func ProvideItemService(repo ports.ItemRepository, logger *zap.Logger) *services.ItemService {
	return services.NewItemService(repo, logger)
}

// ProvideMetrics creates the CloudWatch metrics publisher. Metrics are
// disabled (nil client) unless the feature flag is on.
func ProvideMetrics(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	var client observability.MetricsAPI
	if cfg.EnableMetrics {
		client = awscloudwatch.NewFromConfig(awsCfg)
	}
	return observability.NewMetrics(cfg.MetricsNamespace, client, logger)
}
