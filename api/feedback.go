package api

import (
	"context"
	"net/http"

	"github.com/casaview/dashboard/model"
)

func (c *Client) SendFeedback(ctx context.Context, feedback model.Feedback) error {
	return c.call(ctx, http.MethodPost, "/feedback", nil, feedback, nil)
}
