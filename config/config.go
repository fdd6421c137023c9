package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "20MB"
	defaultPresignTTL         = time.Hour
	defaultStatsTTL           = 30 * time.Second
	defaultSlowQuery          = 200 * time.Millisecond
	defaultBucketURL          = "mem://"
	defaultOrganizationName   = "BRAND Scientific Equipment Pvt. Ltd."

	// IdentityProviderJWT verifies HS256 session tokens with a shared secret.
	IdentityProviderJWT = "jwt"
	// IdentityProviderFirebase verifies Firebase ID tokens and manages accounts there.
	IdentityProviderFirebase = "firebase"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins enables credentialed CORS for the listed origins.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Identity IdentityConfig `json:"identity" yaml:"identity"`

	ObjectStore ObjectStoreConfig `json:"objectStore" yaml:"objectStore"`

	// Redis enables the dashboard statistics cache when set.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Report ReportConfig `json:"report" yaml:"report"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig controls schema management at startup.
type DatabaseConfig struct {
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	Seed               bool          `json:"seed" yaml:"seed"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// IdentityConfig selects how session tokens are verified.
type IdentityConfig struct {
	Provider string          `json:"provider" yaml:"provider"`
	JWT      JWTConfig       `json:"jwt" yaml:"jwt"`
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// ResetRedirectURL is where a password reset link lands once the new
	// password is set.
	ResetRedirectURL string `json:"resetRedirectUrl" yaml:"resetRedirectUrl"`
}

// JWTConfig holds the shared secret of the session issuer.
type JWTConfig struct {
	Secret   string `json:"secret" yaml:"secret"`
	Issuer   string `json:"issuer" yaml:"issuer"`
	Audience string `json:"audience" yaml:"audience"`
}

// FirebaseConfig points at the service account used for Firebase Auth.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ObjectStoreConfig addresses the bucket holding attachments. BucketURL uses
// the gocloud.dev URL form: s3://bucket?region=..., file:///path or mem://.
type ObjectStoreConfig struct {
	BucketURL     string        `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string        `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	PresignTTL    time.Duration `json:"presignTtl" yaml:"presignTtl"`
}

// RedisConfig addresses the statistics cache.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	StatsTTL time.Duration `json:"statsTtl" yaml:"statsTtl"`
}

// ReportConfig is printed on rendered service reports. OrganizationName also
// stands in for the author name of reports filed by admins.
type ReportConfig struct {
	OrganizationName string   `json:"organizationName" yaml:"organizationName"`
	AddressLines     []string `json:"addressLines" yaml:"addressLines"`
	// LinkBaseURL, when set, adds a QR code pointing at
	// {LinkBaseURL}/service-reports/{id} to each rendered report.
	LinkBaseURL string       `json:"linkBaseUrl" yaml:"linkBaseUrl"`
	QRCode      QRCodeConfig `json:"qrCode" yaml:"qrCode"`
}

// QRCodeConfig sizes the report QR image. RecoveryLevel is one of L, M, Q, H.
type QRCodeConfig struct {
	Size          int    `json:"size" yaml:"size"`
	RecoveryLevel string `json:"recoveryLevel" yaml:"recoveryLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQuery
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = IdentityProviderJWT
	}
	if cfg.ObjectStore.BucketURL == "" {
		cfg.ObjectStore.BucketURL = defaultBucketURL
	}
	if cfg.ObjectStore.PresignTTL <= 0 {
		cfg.ObjectStore.PresignTTL = defaultPresignTTL
	}
	if cfg.Redis != nil && cfg.Redis.StatsTTL <= 0 {
		cfg.Redis.StatsTTL = defaultStatsTTL
	}
	if strings.TrimSpace(cfg.Report.OrganizationName) == "" {
		cfg.Report.OrganizationName = defaultOrganizationName
	}
}

func (cfg *Config) validate() error {
	switch cfg.Identity.Provider {
	case IdentityProviderJWT:
		if cfg.Identity.JWT.Secret == "" {
			return errors.New("identity.jwt.secret is required for the jwt provider")
		}
	case IdentityProviderFirebase:
		if cfg.Identity.Firebase == nil {
			return errors.New("identity.firebase is required for the firebase provider")
		}
	default:
		return errors.Errorf("unknown identity provider %q", cfg.Identity.Provider)
	}

	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
