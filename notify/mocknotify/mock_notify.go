package mocknotify

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gregkash16/ncx-sub000/notify"
)

type Notifier struct {
	mock.Mock
}

func (n *Notifier) MatchReported(ctx context.Context, evt *notify.MatchEvent) {
	n.Called(ctx, evt)
}
