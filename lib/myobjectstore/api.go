package myobjectstore

import (
	"context"
	"time"
)

//go:generate mockgen -source=api.go -package myobjectstore -destination presigner_mock.go Presigner
type Presigner interface {
	// PresignGet returns a url that allows anyone to fetch key until expiry has passed.
	PresignGet(c context.Context, key string, expiry time.Duration) (string, error)
}
