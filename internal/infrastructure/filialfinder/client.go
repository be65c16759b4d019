package filialfinder

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/branch-finder/internal/config"
	"github.com/branch-finder/internal/domain"
	apperrors "github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/metrics"
)

const providerName = "remote"

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 8 << 20

// errNotFound marks a 404 on an endpoint where absence is a normal answer.
var errNotFound = errors.New("not found")

// Client is the LocationProvider backed by the FilialFinder REST v2 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	blz        string
	candidates int
	timeout    time.Duration
	logger     *zap.Logger
}

func NewClient(cfg *config.ProviderConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		blz:        cfg.BLZ,
		candidates: cfg.Candidates,
		timeout:    cfg.RequestTimeout,
		logger:     logger,
	}
}

// FindCandidates asks the backend for the objects nearest to the point, sorted by
// distance. Filtering is left to the search engine.
func (c *Client) FindCandidates(ctx context.Context, lat, lon float64) ([]domain.Location, error) {
	const op = "find_candidates"

	path := fmt.Sprintf("/rest/v2/objects/%s/%s", formatCoord(lon), formatCoord(lat))
	query := url.Values{
		"blzFilter":      {c.blz},
		"sort":           {"dist"},
		"objectsPerPage": {strconv.Itoa(c.candidates)},
		"pageNo":         {"1"},
	}

	var result searchResult
	if err := c.get(ctx, op, path, query, &result); err != nil {
		return nil, err
	}

	objects := result.objects()
	locations := make([]domain.Location, 0, len(objects))
	for i := range objects {
		loc, err := objects[i].toDomain()
		if err != nil {
			return nil, c.fail(op, apperrors.KindMalformed, err)
		}
		locations = append(locations, loc)
	}

	c.logger.Debug("FilialFinder candidates fetched",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("count", len(locations)),
	)

	return locations, nil
}

// GetByID returns (nil, nil) when the backend answers 404.
func (c *Client) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	const op = "get_by_id"

	var result getObjectResult
	err := c.fetch(ctx, op, fmt.Sprintf("/rest/v2/object/%d", id), nil, &result, true)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	obj := result.object()
	if obj == nil {
		return nil, nil
	}

	loc, err := obj.toDomain()
	if err != nil {
		return nil, c.fail(op, apperrors.KindMalformed, err)
	}
	return &loc, nil
}

func (c *Client) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	var result getFacilitiesResult
	if err := c.get(ctx, "list_facilities", "/rest/v2/facilities", url.Values{"blzFilter": {c.blz}}, &result); err != nil {
		return nil, err
	}

	facilities := make([]domain.Facility, 0, len(result.Facilities))
	for _, f := range result.Facilities {
		facilities = append(facilities, domain.Facility{ID: f.ID, Name: f.Name})
	}
	return facilities, nil
}

func (c *Client) ListObjectTypes(ctx context.Context) ([]domain.ObjectType, error) {
	var result fiFiTypes
	if err := c.get(ctx, "list_object_types", "/rest/v2/fiFiTypes", nil, &result); err != nil {
		return nil, err
	}

	types := make([]domain.ObjectType, 0, len(result.Types))
	for _, t := range result.Types {
		types = append(types, domain.ObjectType{ID: t.ID, Name: t.Name, GroupName: t.GroupName})
	}
	return types, nil
}

func (c *Client) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	var result fiFiConfiguration
	path := "/rest/v2/fiFiConfiguration/" + url.PathEscape(c.blz)
	if err := c.get(ctx, "get_configuration", path, nil, &result); err != nil {
		return nil, err
	}

	supported := result.SupportedObjectTypes
	if supported == nil {
		supported = []string{}
	}

	return &domain.Configuration{
		BLZ:                  result.BLZ,
		Name:                 result.Name,
		SupportedObjectTypes: supported,
	}, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	return c.fetch(ctx, op, path, query, out, false)
}

// fetch performs one GET and decodes the XML body into out. Failures come back as
// classified ProviderErrors. With absentOn404 a 404 yields errNotFound instead.
func (c *Client) fetch(ctx context.Context, op, path string, query url.Values, out interface{}, absentOn404 bool) error {
	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if query == nil {
		query = url.Values{}
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.observe(op, started, c.fail(op, apperrors.KindUnavailable, fmt.Errorf("failed to create request: %w", err)))
	}
	req.Header.Set("Accept", "application/xml")

	c.logger.Debug("Calling FilialFinder API", zap.String("operation", op), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.observe(op, started, c.fail(op, classify(err), err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && absentOn404 {
		metrics.ObserveProvider(providerName, op, started, "")
		return errNotFound
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.observe(op, started, c.fail(op, classify(err), fmt.Errorf("failed to read body: %w", err)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := apperrors.KindMalformed
		if resp.StatusCode >= 500 {
			kind = apperrors.KindUnavailable
		}
		c.logger.Warn("FilialFinder API returned error",
			zap.String("operation", op),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", truncate(body, 512)),
		)
		return c.observe(op, started, c.fail(op, kind, fmt.Errorf("status %d", resp.StatusCode)))
	}

	if err := xml.Unmarshal(body, out); err != nil {
		return c.observe(op, started, c.fail(op, apperrors.KindMalformed, fmt.Errorf("failed to decode response: %w", err)))
	}

	metrics.ObserveProvider(providerName, op, started, "")
	return nil
}

func (c *Client) fail(op string, kind apperrors.ProviderErrorKind, err error) *apperrors.ProviderError {
	c.logger.Error("FilialFinder call failed",
		zap.String("operation", op),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
	return apperrors.NewProviderError(kind, op, err)
}

func (c *Client) observe(op string, started time.Time, err *apperrors.ProviderError) error {
	metrics.ObserveProvider(providerName, op, started, string(err.Kind))
	return err
}

// classify maps a transport error to a provider error kind.
func classify(err error) apperrors.ProviderErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.KindTimeout
	}
	return apperrors.KindUnavailable
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
