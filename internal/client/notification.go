package client

import (
	"context"
	"net/http"

	"sportshub-recruit-api/internal/entity"

	"go.uber.org/zap"
)

type NotificationClient struct {
	*httpClient
}

func NewNotificationClient(opts Options, log *zap.Logger) *NotificationClient {
	return &NotificationClient{newHTTPClient(opts, log.Named("notification_client"))}
}

type notificationRequest struct {
	ReceiverProfileId int64  `json:"receiverProfileId"`
	ReceiverId        int64  `json:"receiverId"`
	Type              string `json:"type"`
	Message           string `json:"message"`
	RelatedType       string `json:"relatedType"`
	RelatedId         int64  `json:"relatedId"`
}

func (c *NotificationClient) Send(ctx context.Context, n entity.Notification) error {
	body := notificationRequest{
		ReceiverProfileId: n.ReceiverProfileId,
		ReceiverId:        n.ReceiverProfileId,
		Type:              string(n.Type),
		Message:           n.Message,
		RelatedType:       n.RelatedType,
		RelatedId:         n.RelatedId,
	}

	return c.do(ctx, http.MethodPost, "/api/notifications", body, nil)
}
