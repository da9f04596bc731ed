package es

import (
	"CareerBridge/internal/api/config"
	"CareerBridge/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var JobIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient 初始化 Elasticsearch 客户端并确保岗位索引存在
func InitClient() error {
	elasticCfg := config.Cfg.Elastic

	JobIndex = elasticCfg.Indices.JobIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	ctx := context.Background()
	info, err := Client.Info().Do(ctx)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}
	log.Info("Connected to Elasticsearch", "version", info.Version.Int)

	return ensureJobIndex(ctx)
}

func ensureJobIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(JobIndex).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = Client.Indices.Create(JobIndex).
		Mappings(&types.TypeMapping{
			Properties: map[string]types.Property{
				"id":          types.NewLongNumberProperty(),
				"title":       types.NewTextProperty(),
				"company":     types.NewTextProperty(),
				"location":    types.NewKeywordProperty(),
				"job_type":    types.NewKeywordProperty(),
				"description": types.NewTextProperty(),
				"skills":      types.NewTextProperty(),
				"status":      types.NewKeywordProperty(),
				"created_at":  types.NewDateProperty(),
			},
		}).
		Do(ctx)
	if err != nil {
		return err
	}

	log.Info("Created Elasticsearch index", "index", JobIndex)
	return nil
}
