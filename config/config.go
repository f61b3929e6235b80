package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPort               = 3000
	defaultMaxRequestBodySize = "10MB"
	defaultAPIRoot            = "/api/v1"
	defaultTokenTTL           = 24 * time.Hour
	defaultBucketURL          = "file:///tmp/eshop/uploads?create_dir=true"
	defaultMaxGalleryImages   = 10
)

// Config is read from config.yaml and overridden by environment variables
// named after the YAML path, e.g. SECRETKEY_ACCESS or API_ROOT.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize bounds every request body, uploads included (e.g. "10MB").
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	API APIConfig `json:"api" yaml:"api"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Uploads *UploadsConfig `json:"uploads" yaml:"uploads"`

	// QRCode configuration for product QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// APIConfig defines the public REST surface.
type APIConfig struct {
	// Root is the path prefix every resource group is mounted under, e.g. /api/v1.
	Root string `json:"root" yaml:"root"`
	// PublicBaseURL is the externally reachable origin used when building
	// image and storefront links. Falls back to the request's scheme and host.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// UploadsConfig defines where product images are stored.
type UploadsConfig struct {
	// BucketURL is a gocloud.dev blob URL: file://, mem://, s3:// or gs://.
	BucketURL        string `json:"bucketUrl" yaml:"bucketUrl"`
	MaxGalleryImages int    `json:"maxGalleryImages" yaml:"maxGalleryImages"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// StorefrontURL is the product page prefix encoded in QR codes.
	StorefrontURL string `json:"storefrontUrl" yaml:"storefrontUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New loads .env when present, then config.yaml from the working directory
// or a config/ folder up to two levels above it.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := new(Config)
	if err := load(cfg, "config", ".", "config", "../config", "../../config"); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.API.Root = NormalizeAPIRoot(cfg.API.Root)

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Uploads == nil {
		cfg.Uploads = &UploadsConfig{}
	}
	if cfg.Uploads.BucketURL == "" {
		cfg.Uploads.BucketURL = defaultBucketURL
	}
	if cfg.Uploads.MaxGalleryImages <= 0 {
		cfg.Uploads.MaxGalleryImages = defaultMaxGalleryImages
	}
}

// NormalizeAPIRoot returns root with exactly one leading slash and no trailing slash.
func NormalizeAPIRoot(root string) string {
	root = strings.Trim(strings.TrimSpace(root), "/")
	if root == "" {
		return defaultAPIRoot
	}

	return "/" + root
}

func (c *Config) validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d out of range", c.HTTP.Port)
	}
	if c.Postgres == nil {
		return errors.New("postgres section is required")
	}
	if c.Auth.BcryptCost != 0 && (c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31) {
		return errors.Errorf("auth.bcryptCost %d outside 4..31", c.Auth.BcryptCost)
	}

	return nil
}
