package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the Supabase PostgREST API for the three named tables
// (users, leads, reports). Authentication is the project URL plus a secret
// key sent on every request.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(projectURL, apiKey string) (*Client, error) {
	if projectURL == "" || apiKey == "" {
		return nil, fmt.Errorf("supabase: url and key are required")
	}
	if _, err := url.Parse(projectURL); err != nil {
		return nil, fmt.Errorf("supabase: invalid url: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(projectURL, "/") + "/rest/v1",
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// SelectAll reads every row of table into dest. order is a PostgREST order
// clause ("timestamp.desc") or empty.
func (c *Client) SelectAll(ctx context.Context, table, order string, dest any) error {
	endpoint := fmt.Sprintf("%s/%s?select=*", c.baseURL, table)
	if order != "" {
		endpoint += "&order=" + order
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return apiError(table, resp.StatusCode, body)
	}
	return json.Unmarshal(body, dest)
}

// Upsert inserts or replaces rows keyed by id. payload is a single record or
// a slice of records.
func (c *Client) Upsert(ctx context.Context, table string, payload any) error {
	return c.write(ctx, table, payload, "resolution=merge-duplicates")
}

// Insert appends rows without conflict handling.
func (c *Client) Insert(ctx context.Context, table string, payload any) error {
	return c.write(ctx, table, payload, "")
}

// DeleteIn deletes the rows whose id is in ids.
func (c *Client) DeleteIn(ctx context.Context, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	endpoint := fmt.Sprintf("%s/%s?id=in.(%s)", c.baseURL, table, strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return apiError(table, resp.StatusCode, body)
	}
	return nil
}

func (c *Client) write(ctx context.Context, table string, payload any, prefer string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+table, bytes.NewBuffer(raw))
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return apiError(table, resp.StatusCode, body)
	}
	return nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
