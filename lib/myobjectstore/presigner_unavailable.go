package myobjectstore

import (
	"context"
	"fmt"
	"time"
)

type unavailablePresigner struct {
	reason error
}

// NewUnavailable returns a presigner that fails every call with reason. It
// keeps endpoints that do not need the bucket usable while it is not configured.
func NewUnavailable(reason error) Presigner {
	return &unavailablePresigner{
		reason: reason,
	}
}

func (p *unavailablePresigner) PresignGet(c context.Context, key string, expiry time.Duration) (string, error) {
	return "", fmt.Errorf("object store unavailable, cannot sign %s: %s", key, p.reason)
}
