package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量优先
func LoadConfig() error {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)

	v.SetDefault("database.dsn", "root:@tcp(localhost:3306)/career_platform?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 20)

	v.SetDefault("minio.main_bucket", "career-bridge")

	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "career_bridge")

	v.SetDefault("elastic.address", "http://localhost:9200")
	v.SetDefault("elastic.indices.job_index", "career_jobs")

	v.SetDefault("kafka.consumer.session_timeout", 30)
	v.SetDefault("kafka.consumer.heartbeat_interval", 3)
	v.SetDefault("kafka.consumer.rebalance_timeout", 60)
	v.SetDefault("kafka.consumer.max_processing_time", 10)
	v.SetDefault("kafka_application.topic", "career.application.submitted")
	v.SetDefault("kafka_application.group_id", "career-application-notifier")

	v.SetDefault("logstash.index", "logstash-career-bridge")

	v.SetDefault("jwt.secret", "career_platform_secret")
	v.SetDefault("jwt.issuer", "CareerBridge")
	v.SetDefault("jwt.expiration_hours", 24)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.email", "admin@career-platform.local")

	v.SetDefault("recommend.job_min_score", 0.2)
	v.SetDefault("recommend.course_max_overlap", 0.8)

	v.SetDefault("mail.from", "no-reply@career-platform.local")
	v.SetDefault("mail.timeout", 5)

	v.SetDefault("seed.sample_data", true)
}
