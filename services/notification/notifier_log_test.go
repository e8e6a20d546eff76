package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogNotifier(t *testing.T) {
	sut := NewLogNotifier()

	err := sut.SendDownloadLinks(context.TODO(), "buyer@example.com", "ebook", map[string]string{
		"pdf":  "https://r2/pdf?sig",
		"epub": "https://r2/epub?sig",
	})

	assert.NoError(t, err)
}
