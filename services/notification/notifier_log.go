package notification

import (
	"context"
	"sort"

	"github.com/MarcGrol/fairywrenstore/lib/mylog"
)

type logNotifier struct {
	logger mylog.Logger
}

// NewLogNotifier returns a notifier that only logs what it would have sent.
// TODO: deliver through a transactional mail provider once one is chosen.
func NewLogNotifier() Notifier {
	return &logNotifier{
		logger: mylog.New("notification"),
	}
}

func (n *logNotifier) SendDownloadLinks(c context.Context, email string, productType string, links map[string]string) error {
	labels := make([]string, 0, len(links))
	for label := range links {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	n.logger.Log(c, email, mylog.SeverityInfo, "Would send %s download links %v to %s", productType, labels, email)

	return nil
}
