package config

// Config 配置主体
type Config struct {
	Server           ServerConfig           `mapstructure:"server"`
	DB               DBConfig               `mapstructure:"database"`
	Redis            RedisConfig            `mapstructure:"redis"`
	MinIO            MinIOConfig            `mapstructure:"minio"`
	Mongo            MongoConfig            `mapstructure:"mongo"`
	Elastic          ElasticConfig          `mapstructure:"elastic"`
	Kafka            KafkaConfig            `mapstructure:"kafka"`
	KafkaApplication KafkaApplicationConfig `mapstructure:"kafka_application"`
	Logstash         LogstashConfig         `mapstructure:"logstash"`
	JWT              JWTConfig              `mapstructure:"jwt"`
	Admin            AdminConfig            `mapstructure:"admin"`
	Recommend        RecommendConfig        `mapstructure:"recommend"`
	Mail             MailConfig             `mapstructure:"mail"`
	Seed             SeedConfig             `mapstructure:"seed"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	ExternalUseSSL   bool   `mapstructure:"external_use_ssl"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	JobIndex string `mapstructure:"job_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaApplicationConfig struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	Issuer          string `mapstructure:"issuer"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// AdminConfig 启动时保证存在的管理员账号
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Email    string `mapstructure:"email"`
}

// RecommendConfig 推荐阈值
type RecommendConfig struct {
	JobMinScore      float64 `mapstructure:"job_min_score"`
	CourseMaxOverlap float64 `mapstructure:"course_max_overlap"`
}

type MailConfig struct {
	RelayURL string `mapstructure:"relay_url"`
	From     string `mapstructure:"from"`
	Timeout  int    `mapstructure:"timeout"`
}

type SeedConfig struct {
	SampleData bool `mapstructure:"sample_data"`
}
