package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Astemirdum/reading-tracker/pkg/circuit_breaker"
	"github.com/Astemirdum/reading-tracker/tracker/internal/errs"
	"github.com/Astemirdum/reading-tracker/tracker/internal/model"
)

const isbn13 = "ISBN_13"

type Config struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" default:"https://www.googleapis.com/books/v1"`
	APIKey  string        `envconfig:"CATALOG_API_KEY"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	Breaker circuit_breaker.Config
}

// Client talks to the Google Books volumes API.
type Client struct {
	log    *zap.Logger
	client *resty.Client
	cb     circuit_breaker.CircuitBreaker
}

func New(cfg Config, log *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetQueryParam("key", cfg.APIKey)
	}
	return &Client{
		log:    log.Named("catalog"),
		client: client,
		cb:     circuit_breaker.New(cfg.Breaker),
	}
}

func (c *Client) CB() circuit_breaker.CircuitBreaker {
	return c.cb
}

type volumesResponse struct {
	Items []volume `json:"items"`
}

type volume struct {
	ID         string      `json:"id"`
	VolumeInfo *volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string   `json:"title"`
	Authors             []string `json:"authors"`
	PageCount           *int     `json:"pageCount"`
	Description         string   `json:"description"`
	IndustryIdentifiers []struct {
		Type       string `json:"type"`
		Identifier string `json:"identifier"`
	} `json:"industryIdentifiers"`
	ImageLinks *struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

func (c *Client) Search(ctx context.Context, query string) ([]model.CatalogVolume, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation("query is required")
	}

	var resp volumesResponse
	if err := c.get(ctx, "/volumes", map[string]string{"q": query}, &resp); err != nil {
		return nil, errs.Catalog("search", err)
	}

	volumes := make([]model.CatalogVolume, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.VolumeInfo == nil {
			c.log.Warn("search: volume without volumeInfo", zap.String("id", item.ID))
			continue
		}
		volumes = append(volumes, item.VolumeInfo.toVolume(item.ID))
	}
	return volumes, nil
}

func (c *Client) FetchDetails(ctx context.Context, id string) (model.CatalogDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.CatalogDetails{}, errs.Validation("volume id is required")
	}

	var resp volume
	if err := c.get(ctx, "/volumes/"+url.PathEscape(id), nil, &resp); err != nil {
		return model.CatalogDetails{}, errs.Catalog("fetch details", err)
	}
	if resp.VolumeInfo == nil {
		return model.CatalogDetails{}, errs.Catalog("fetch details", fmt.Errorf("volume %s has no volumeInfo", id))
	}

	info := resp.VolumeInfo
	details := model.CatalogDetails{CatalogVolume: info.toVolume(id)}
	if info.Description != "" {
		details.Description = &info.Description
	}
	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
		details.ThumbnailURL = &info.ImageLinks.Thumbnail
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, result any) error {
	return c.cb.Call(func() error {
		res, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(path)
		if err != nil {
			c.log.Error("client.R.Get", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("client.R.Get > %w", err)
		}
		if res.StatusCode() != http.StatusOK {
			c.log.Error("unexpected status", zap.String("path", path), zap.Int("status", res.StatusCode()))
			return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
		}
		// decoded regardless of Content-Type: proxies answer 200 with html
		if err = json.Unmarshal(res.Body(), result); err != nil {
			c.log.Error("decode body", zap.String("path", path),
				zap.String("contentType", res.Header().Get("Content-Type")), zap.Error(err))
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		return nil
	})
}

func (info *volumeInfo) toVolume(id string) model.CatalogVolume {
	v := model.CatalogVolume{
		ID:        id,
		Title:     info.Title,
		Authors:   info.Authors,
		PageCount: info.PageCount,
	}
	if v.Authors == nil {
		v.Authors = []string{}
	}
	for _, ident := range info.IndustryIdentifiers {
		if ident.Type == isbn13 {
			isbn := ident.Identifier
			v.ISBN13 = &isbn
			break
		}
	}
	return v
}

// Metadata converts catalog details into what the library stores.
func Metadata(d model.CatalogDetails) model.CatalogMetadata {
	md := model.CatalogMetadata{
		CatalogID: d.ID,
		Title:     d.Title,
		Author:    strings.Join(d.Authors, ", "),
	}
	if d.ISBN13 != nil {
		md.ISBN = *d.ISBN13
	}
	if d.PageCount != nil {
		md.TotalPages = *d.PageCount
	}
	return md
}
