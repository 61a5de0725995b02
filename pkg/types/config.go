package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"30"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`

	// Session
	CookieName       string `envconfig:"SESSION_COOKIE_NAME" default:"inspection_session"`
	SessionMaxAgeSec int    `envconfig:"SESSION_MAX_AGE_SEC" default:"86400"` // 1 day

	// Cookie keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Photos
	MaxPhotoBytes    int64 `envconfig:"MAX_PHOTO_BYTES" default:"8388608"` // 8 MiB
	PhotoConcurrency int   `envconfig:"PHOTO_CONCURRENCY" default:"4"`

	// Report
	BrandName string `envconfig:"BRAND_NAME" default:"Unit Inspection"`

	// S3 report archive, disabled when empty
	S3BucketName string `envconfig:"S3_BUCKET_NAME"`
	S3Endpoint   string `envconfig:"S3_ENDPOINT"`
	S3PathStyle  bool   `envconfig:"S3_PATH_STYLE"`
}
