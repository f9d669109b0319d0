package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/casaview/dashboard/model"
)

func (c *Client) ListAutomationsByHome(ctx context.Context, homeId string) ([]model.Automation, error) {
	var automations []model.Automation

	query := url.Values{"homeId": []string{homeId}}

	if err := c.call(ctx, http.MethodGet, "/automation", query, nil, &automations); err != nil {
		return nil, err
	}

	return automations, nil
}

func (c *Client) GetAutomation(ctx context.Context, id string) (model.Automation, error) {
	var automation model.Automation

	if err := c.call(ctx, http.MethodGet, "/automation/"+id, nil, nil, &automation); err != nil {
		return model.Automation{}, err
	}

	return automation, nil
}

func (c *Client) CreateAutomation(ctx context.Context, input model.AutomationInput) (model.Automation, error) {
	var automation model.Automation

	if err := c.call(ctx, http.MethodPost, "/automation", nil, input, &automation); err != nil {
		return model.Automation{}, err
	}

	return automation, nil
}

func (c *Client) UpdateAutomation(ctx context.Context, id string, input model.AutomationInput) (model.Automation, error) {
	var automation model.Automation

	if err := c.call(ctx, http.MethodPut, "/automation/"+id, nil, input, &automation); err != nil {
		return model.Automation{}, err
	}

	return automation, nil
}

// ToggleAutomation flips the active flag server side and returns the settled
// record.
func (c *Client) ToggleAutomation(ctx context.Context, id string) (model.Automation, error) {
	var automation model.Automation

	if err := c.call(ctx, http.MethodPatch, "/automation/"+id+"/toggle", nil, nil, &automation); err != nil {
		return model.Automation{}, err
	}

	return automation, nil
}

func (c *Client) DeleteAutomation(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/automation/"+id, nil, nil, nil)
}
