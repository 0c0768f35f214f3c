package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration shared by Firestore, FCM and ID-token
	// verification.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Scheduler configuration for the periodic pipeline jobs.
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Notification configuration for dispatch behavior.
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for reminder event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for couple invite QR codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase project settings.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SchedulerConfig defines the cadence and bounds of the pipeline jobs.
type SchedulerConfig struct {
	// How often the due-reminder check runs.
	DueCheckInterval time.Duration `json:"dueCheckInterval" yaml:"dueCheckInterval"`

	// Lookahead window: reminders due within now+window are dispatched.
	DueWindow time.Duration `json:"dueWindow" yaml:"dueWindow"`

	// Maximum reminders processed per due-check run.
	DueBatchSize int `json:"dueBatchSize" yaml:"dueBatchSize"`

	// Cron expression for the daily cleanup job.
	CleanupCron string `json:"cleanupCron" yaml:"cleanupCron"`

	// Completed reminders older than this many days are deleted.
	CleanupRetentionDays int `json:"cleanupRetentionDays" yaml:"cleanupRetentionDays"`

	// Maximum documents deleted per cleanup run.
	CleanupBatchSize int `json:"cleanupBatchSize" yaml:"cleanupBatchSize"`

	// Cron expression for the daily milestone check.
	MilestoneCron string `json:"milestoneCron" yaml:"milestoneCron"`

	// IANA timezone the cron schedules are evaluated in.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// NotificationConfig defines dispatch behavior.
type NotificationConfig struct {
	// Fallback wall-clock timezone for quiet-hours evaluation when the user
	// has not set one.
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`

	// URL opened when the user taps the notification.
	ClickURL string `json:"clickUrl" yaml:"clickUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing.
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

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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
			// Example: SCHEDULER_DUEWINDOW -> scheduler.dueWindow (not scheduler.duewindow)
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

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	sched := cfg.Scheduler
	if sched.DueCheckInterval <= 0 {
		sched.DueCheckInterval = time.Minute
	}
	if sched.DueWindow <= 0 {
		sched.DueWindow = 5 * time.Minute
	}
	if sched.DueBatchSize <= 0 {
		sched.DueBatchSize = 200
	}
	if sched.CleanupCron == "" {
		sched.CleanupCron = "0 2 * * *"
	}
	if sched.CleanupRetentionDays <= 0 {
		sched.CleanupRetentionDays = 30
	}
	if sched.CleanupBatchSize <= 0 {
		sched.CleanupBatchSize = 100
	}
	if sched.MilestoneCron == "" {
		sched.MilestoneCron = "0 9 * * *"
	}
	if sched.Timezone == "" {
		sched.Timezone = "Asia/Ho_Chi_Minh"
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.DefaultTimezone == "" {
		cfg.Notification.DefaultTimezone = "Asia/Ho_Chi_Minh"
	}
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
