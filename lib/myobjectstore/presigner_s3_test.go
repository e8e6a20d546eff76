package myobjectstore

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/fairywrenstore/lib/myconfig"
)

func TestPresigner(t *testing.T) {
	t.Run("presign get", func(t *testing.T) {
		// setup
		sut, err := NewPresigner(myconfig.ObjectStoreConfig{
			AccessKeyID:     "access",
			SecretAccessKey: "secret",
			BucketName:      "books",
			Endpoint:        "https://acc123.r2.cloudflarestorage.com",
		})
		assert.NoError(t, err)

		// when
		signed, err := sut.PresignGet(context.TODO(), "A Superb Fairywren.pdf", 48*time.Hour)

		// then
		assert.NoError(t, err)
		u, err := url.Parse(signed)
		assert.NoError(t, err)
		assert.Equal(t, "acc123.r2.cloudflarestorage.com", u.Host)
		assert.Equal(t, "/books/A Superb Fairywren.pdf", u.Path)
		assert.Equal(t, "172800", u.Query().Get("X-Amz-Expires"))
		assert.Equal(t, "AWS4-HMAC-SHA256", u.Query().Get("X-Amz-Algorithm"))
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	})

	t.Run("expiry is part of the signed url", func(t *testing.T) {
		sut, _ := NewPresigner(myconfig.ObjectStoreConfig{
			AccessKeyID:     "access",
			SecretAccessKey: "secret",
			BucketName:      "books",
			Endpoint:        "https://acc123.r2.cloudflarestorage.com",
		})

		short, err := sut.PresignGet(context.TODO(), "A Superb Fairywren.epub", time.Hour)
		assert.NoError(t, err)
		long, err := sut.PresignGet(context.TODO(), "A Superb Fairywren.epub", 2*time.Hour)
		assert.NoError(t, err)

		assert.Contains(t, short, "X-Amz-Expires=3600")
		assert.Contains(t, long, "X-Amz-Expires=7200")
	})

	t.Run("missing bucket", func(t *testing.T) {
		_, err := NewPresigner(myconfig.ObjectStoreConfig{Endpoint: "https://acc123.r2.cloudflarestorage.com"})
		assert.Error(t, err)
	})
}

func TestUnavailable(t *testing.T) {
	sut := NewUnavailable(fmt.Errorf("object store endpoint and bucket are required"))

	_, err := sut.PresignGet(context.TODO(), "A Superb Fairywren.pdf", time.Hour)

	assert.EqualError(t, err, "object store unavailable, cannot sign A Superb Fairywren.pdf: object store endpoint and bucket are required")
}
