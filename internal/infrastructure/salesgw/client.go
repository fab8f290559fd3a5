package salesgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"
)

// ErrNotFound aliases the shared sentinel so callers can match either name.
var ErrNotFound = interfaces.ErrNotFound

// Client is the typed wrapper around the sales REST service. Bodies are bare
// JSON, never enveloped.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.ISalesService = (*Client)(nil)

func NewClient() *Client {
	return NewClientWithBaseURL(getenvDefault("SALES_API_URL", "http://localhost:8001"))
}

func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) List(ctx context.Context) ([]entities.Sale, error) {
	var out []entities.Sale
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	var out entities.Sale
	if err := c.do(ctx, http.MethodGet, "/sales/"+id, nil, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, s entities.SaleCreate) (entities.Sale, error) {
	var out entities.Sale
	if err := c.do(ctx, http.MethodPost, "/sales", s, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

// Update issues a full PUT; the sales service has no partial update, so the
// caller merges changed fields into the current sale first.
func (c *Client) Update(ctx context.Context, id string, s entities.Sale) (entities.Sale, error) {
	payload := map[string]any{
		"vehicle_id":     s.VehicleID,
		"buyer_cpf":      s.BuyerCPF,
		"sale_price":     s.SalePrice,
		"payment_code":   s.PaymentCode,
		"payment_status": s.PaymentStatus,
	}

	var out entities.Sale
	if err := c.do(ctx, http.MethodPut, "/sales/"+id, payload, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sales/"+id, nil, nil)
}

func (c *Client) MarkAsPending(ctx context.Context, id string) (entities.Sale, error) {
	return c.patchStatus(ctx, id, entities.PaymentStatusPending)
}

func (c *Client) MarkAsPaid(ctx context.Context, id string) (entities.Sale, error) {
	return c.patchStatus(ctx, id, entities.PaymentStatusPaid)
}

func (c *Client) MarkAsCancelled(ctx context.Context, id string) (entities.Sale, error) {
	return c.patchStatus(ctx, id, entities.PaymentStatusCancelled)
}

func (c *Client) patchStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Sale, error) {
	var out entities.Sale
	path := "/sales/" + id + "/status/" + strings.ToLower(string(status))
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

func (c *Client) CreatePayment(ctx context.Context, saleID, paymentCode string) (entities.Sale, error) {
	body := map[string]string{"payment_code": paymentCode}
	var out entities.Sale
	if err := c.do(ctx, http.MethodPost, "/sales/"+saleID+"/payment", body, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, saleID string) (entities.Sale, error) {
	var out entities.Sale
	if err := c.do(ctx, http.MethodPatch, "/sales/"+saleID+"/payment/confirm", nil, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

// CancelPayment hits the dedicated mark-as-canceled endpoint (single "l",
// upstream spelling).
func (c *Client) CancelPayment(ctx context.Context, saleID string) (entities.Sale, error) {
	var out entities.Sale
	if err := c.do(ctx, http.MethodPatch, "/sales/"+saleID+"/mark-as-canceled", nil, &out); err != nil {
		return entities.Sale{}, err
	}
	return out, nil
}

// NotifyPaymentWebhook stands in for a true server-to-server callback: it
// informs the sales service of a payment outcome keyed by the payment code.
func (c *Client) NotifyPaymentWebhook(ctx context.Context, paymentCode string, status entities.PaymentStatus, vehicleID string) error {
	body := map[string]string{
		"payment_code": paymentCode,
		"status":       string(status),
		"vehicle_id":   vehicleID,
	}
	return c.do(ctx, http.MethodPost, "/sales/webhook/payment", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[sales][client] %s %s failed err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[sales][client] %s %s unexpected status=%d", method, path, resp.StatusCode)
		return fmt.Errorf("sales service %s %s failed with status code: %d", method, path, resp.StatusCode)
	}

	if dst == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
