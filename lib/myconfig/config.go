package myconfig

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	SiteURL     string
	LogFormat   string
	LogLevel    string
	Stripe      StripeConfig
	ObjectStore ObjectStoreConfig
	Downloads   DownloadConfig
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// APIURL overrides the Stripe API location, only used against fakes.
	APIURL string
}

type ObjectStoreConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
}

// DownloadConfig holds how long minted download links stay valid.
type DownloadConfig struct {
	DirectLinkExpiry time.Duration
	EmailLinkExpiry  time.Duration
}

// Load reads configuration from the environment, optionally seeded from a
// local .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8888")
	v.SetDefault("SITE_URL", "https://asuperbfairywren.com")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOWNLOAD_LINK_EXPIRY", "24h")
	v.SetDefault("EMAIL_LINK_EXPIRY", "48h")

	config := Config{
		Port:      v.GetString("PORT"),
		SiteURL:   strings.TrimSuffix(v.GetString("SITE_URL"), "/"),
		LogFormat: v.GetString("LOG_FORMAT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		Stripe: StripeConfig{
			SecretKey:     v.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
			APIURL:        v.GetString("STRIPE_API_URL"),
		},
		ObjectStore: ObjectStoreConfig{
			AccountID:       v.GetString("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     v.GetString("CLOUDFLARE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("CLOUDFLARE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("CLOUDFLARE_BUCKET_NAME"),
			Endpoint:        v.GetString("CLOUDFLARE_R2_ENDPOINT"),
		},
		Downloads: DownloadConfig{
			DirectLinkExpiry: v.GetDuration("DOWNLOAD_LINK_EXPIRY"),
			EmailLinkExpiry:  v.GetDuration("EMAIL_LINK_EXPIRY"),
		},
	}

	if config.ObjectStore.Endpoint == "" && config.ObjectStore.AccountID != "" {
		config.ObjectStore.Endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", config.ObjectStore.AccountID)
	}

	if config.Downloads.DirectLinkExpiry <= 0 || config.Downloads.EmailLinkExpiry <= 0 {
		return config, fmt.Errorf("download link expiries must be positive durations")
	}

	return config, nil
}

// Validate reports every required setting that is missing.
func (c Config) Validate() error {
	missing := []string{}
	for name, value := range map[string]string{
		"STRIPE_SECRET_KEY":            c.Stripe.SecretKey,
		"STRIPE_WEBHOOK_SECRET":        c.Stripe.WebhookSecret,
		"CLOUDFLARE_R2_ENDPOINT":       c.ObjectStore.Endpoint,
		"CLOUDFLARE_ACCESS_KEY_ID":     c.ObjectStore.AccessKeyID,
		"CLOUDFLARE_SECRET_ACCESS_KEY": c.ObjectStore.SecretAccessKey,
		"CLOUDFLARE_BUCKET_NAME":       c.ObjectStore.BucketName,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
