package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)

	UploadRateLimit RateLimitConfig `mapstructure:"upload_rate_limit" validate:"required"`
}

// RateLimitConfig configures the token bucket guarding uploads.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"required,gt=0"`
	Burst int     `mapstructure:"burst" validate:"required,min=1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,loglevel"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig bounds what a single upload may contain.
type IngestionConfig struct {
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"required,min=1"`
	MaxLineBytes   int   `mapstructure:"max_line_bytes" validate:"required,min=64"`
}

// AggregationConfig holds aggregation configuration.
type AggregationConfig struct {
	TopN int `mapstructure:"top_n" validate:"required,min=1,max=20"`
	// OthersThreshold is the share (0..1) below which a token is collapsed into "Others".
	OthersThreshold float64 `mapstructure:"others_threshold" validate:"required,gt=0,lt=1"`
}
