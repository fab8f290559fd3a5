package catalog

import (
	"context"
	"net/http"
	"strings"

	"revenda_xpto/internal/domain/entities"
)

// Payments ride on the vehicle service base URL and always answer with the
// {data: T} envelope, unlike the sales service's bare bodies. The envelope is
// absorbed here and never reaches the domain model.

func (c *Client) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	var out []entities.Payment
	if err := c.do(ctx, http.MethodGet, "/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePayment(ctx context.Context, p entities.PaymentCreate) (entities.Payment, error) {
	var out entities.Payment
	if err := c.do(ctx, http.MethodPost, "/payments", p, &out); err != nil {
		return entities.Payment{}, err
	}
	return out, nil
}

func (c *Client) UpdatePayment(ctx context.Context, id string, p entities.PaymentUpdate) (entities.Payment, error) {
	var out entities.Payment
	if err := c.do(ctx, http.MethodPut, "/payments/"+id, p, &out); err != nil {
		return entities.Payment{}, err
	}
	return out, nil
}

func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/payments/"+id, nil, nil)
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	var out entities.Payment
	path := "/payments/" + id + "/status/" + strings.ToLower(string(status))
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		return entities.Payment{}, err
	}
	return out, nil
}
