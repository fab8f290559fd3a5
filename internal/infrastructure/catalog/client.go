package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"
)

// ErrNotFound aliases the shared sentinel so callers can match either name.
var ErrNotFound = interfaces.ErrNotFound

// Client is the typed wrapper around the vehicle catalog REST service.
//
// Some catalog endpoints answer with a bare body and some with a {data: T}
// envelope; decodeBody unwraps either so callers never see the difference.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IVehicleCatalog = (*Client)(nil)
var _ interfaces.IPaymentsAPI = (*Client)(nil)

func NewClient() *Client {
	return NewClientWithBaseURL(getenvDefault("CATALOG_API_URL", "http://localhost:8000"))
}

func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) List(ctx context.Context) ([]entities.Vehicle, error) {
	var out []entities.Vehicle
	if err := c.do(ctx, http.MethodGet, "/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var out entities.Vehicle
	if err := c.do(ctx, http.MethodGet, "/vehicles/"+id, nil, &out); err != nil {
		return entities.Vehicle{}, err
	}
	return out, nil
}

func (c *Client) ListByStatus(ctx context.Context, status entities.VehicleStatus) ([]entities.Vehicle, error) {
	var out []entities.Vehicle
	if err := c.do(ctx, http.MethodGet, "/vehicles/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, v entities.VehicleCreate) (entities.Vehicle, error) {
	var out entities.Vehicle
	if err := c.do(ctx, http.MethodPost, "/vehicles", v, &out); err != nil {
		return entities.Vehicle{}, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, id string, v entities.VehicleUpdate) (entities.Vehicle, error) {
	var out entities.Vehicle
	if err := c.do(ctx, http.MethodPut, "/vehicles/"+id, v, &out); err != nil {
		return entities.Vehicle{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/vehicles/"+id, nil, nil)
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error) {
	body := map[string]entities.VehicleStatus{"status": status}
	var out entities.Vehicle
	if err := c.do(ctx, http.MethodPatch, "/vehicles/"+id+"/status", body, &out); err != nil {
		return entities.Vehicle{}, err
	}
	return out, nil
}

func (c *Client) MarkAsReserved(ctx context.Context, id string) (entities.Vehicle, error) {
	return c.markAs(ctx, id, "mark-as-reserved")
}

func (c *Client) MarkAsAvailable(ctx context.Context, id string) (entities.Vehicle, error) {
	return c.markAs(ctx, id, "mark-as-available")
}

func (c *Client) MarkAsSold(ctx context.Context, id string) (entities.Vehicle, error) {
	return c.markAs(ctx, id, "mark-as-sold")
}

func (c *Client) markAs(ctx context.Context, id, action string) (entities.Vehicle, error) {
	var out entities.Vehicle
	if err := c.do(ctx, http.MethodPost, "/vehicles/"+id+"/"+action, nil, &out); err != nil {
		return entities.Vehicle{}, err
	}
	return out, nil
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
		log.Printf("[catalog][client] %s %s failed err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[catalog][client] %s %s unexpected status=%d", method, path, resp.StatusCode)
		return fmt.Errorf("vehicle service %s %s failed with status code: %d", method, path, resp.StatusCode)
	}

	if dst == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeBody(raw, dst)
}

// decodeBody unwraps the {data: T} envelope when present and decodes the bare
// body otherwise.
func decodeBody(raw []byte, dst any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, dst)
	}
	return json.Unmarshal(raw, dst)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
