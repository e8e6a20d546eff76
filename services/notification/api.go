package notification

import (
	"context"
)

//go:generate mockgen -source=api.go -package notification -destination notifier_mock.go Notifier
type Notifier interface {
	// SendDownloadLinks tells the buyer where to fetch what they bought.
	SendDownloadLinks(c context.Context, email string, productType string, links map[string]string) error
}
