package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Unsplash  UnsplashConfig  `mapstructure:"unsplash"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port   int    `mapstructure:"port"`
	ApiKey string `mapstructure:"api_key"`
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
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	ArticleGenerate string `mapstructure:"article_generate"`
}

// UnsplashConfig 图片搜索配置
type UnsplashConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	AccessKey string `mapstructure:"access_key"`
}

// StorageConfig 图片存储后端配置，backend 取值 minio 或 local
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	Folder   string `mapstructure:"folder"`
	LocalDir string `mapstructure:"local_dir"`
	LocalURL string `mapstructure:"local_url"`
}

// GeneratorConfig 生成管线配置
type GeneratorConfig struct {
	PlaceholderURL         string `mapstructure:"placeholder_url"`
	FeaturedPlaceholderURL string `mapstructure:"featured_placeholder_url"`
	MaxRetries             int    `mapstructure:"max_retries"`
	CronSpec               string `mapstructure:"cron_spec"`
}
