package myconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// given
		t.Setenv("SITE_URL", "https://asuperbfairywren.com/")
		t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acc123")
		t.Setenv("CLOUDFLARE_R2_ENDPOINT", "")

		// when
		config, err := Load()

		// then
		assert.NoError(t, err)
		assert.Equal(t, "https://asuperbfairywren.com", config.SiteURL)
		assert.Equal(t, "https://acc123.r2.cloudflarestorage.com", config.ObjectStore.Endpoint)
		assert.Equal(t, 24*time.Hour, config.Downloads.DirectLinkExpiry)
		assert.Equal(t, 48*time.Hour, config.Downloads.EmailLinkExpiry)
	})

	t.Run("overrides", func(t *testing.T) {
		// given
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
		t.Setenv("CLOUDFLARE_R2_ENDPOINT", "http://localhost:9000")
		t.Setenv("CLOUDFLARE_BUCKET_NAME", "books")
		t.Setenv("DOWNLOAD_LINK_EXPIRY", "1h")

		// when
		config, err := Load()

		// then
		assert.NoError(t, err)
		assert.Equal(t, "sk_test_123", config.Stripe.SecretKey)
		assert.Equal(t, "whsec_123", config.Stripe.WebhookSecret)
		assert.Equal(t, "http://localhost:9000", config.ObjectStore.Endpoint)
		assert.Equal(t, "books", config.ObjectStore.BucketName)
		assert.Equal(t, time.Hour, config.Downloads.DirectLinkExpiry)
	})

	t.Run("invalid expiry", func(t *testing.T) {
		t.Setenv("EMAIL_LINK_EXPIRY", "0s")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	config := Config{
		Stripe: StripeConfig{SecretKey: "sk_test_123"},
		ObjectStore: ObjectStoreConfig{
			Endpoint:        "http://localhost:9000",
			AccessKeyID:     "id",
			SecretAccessKey: "secret",
		},
	}

	err := config.Validate()

	assert.EqualError(t, err, "missing configuration: CLOUDFLARE_BUCKET_NAME, STRIPE_WEBHOOK_SECRET")

	config.Stripe.WebhookSecret = "whsec_123"
	config.ObjectStore.BucketName = "books"
	assert.NoError(t, config.Validate())
}
