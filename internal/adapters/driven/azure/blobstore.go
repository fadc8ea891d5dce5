// Package azure adapts the Azure Blob Storage SDK to the BlobStore port.
// Construction is thin plumbing over the platform client; credentials are
// carried entirely by the connection string.
package azure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
	"github.com/custodia-labs/blobfeed/internal/logger"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore fetches blob content and properties via the azblob client.
type BlobStore struct {
	client  *azblob.Client
	limiter *RateLimiter
	log     logger.Sink
}

// NewBlobStore creates a blob store from a storage connection string.
// A nil sink disables diagnostics.
func NewBlobStore(connectionString string, log logger.Sink) (*BlobStore, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("blob store: %w: empty connection string", domain.ErrInvalidInput)
	}
	if log == nil {
		log = logger.Nop()
	}

	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &BlobStore{
		client:  client,
		limiter: NewRateLimiter(DefaultRateLimit),
		log:     log,
	}, nil
}

// Download streams the blob's full body into w.
func (s *BlobStore) Download(ctx context.Context, container, key string, w io.Writer) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := s.client.DownloadStream(ctx, container, key, nil)
	if err != nil {
		s.recordThrottle(err)
		return fmt.Errorf("downloading blob: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("streaming blob body: %w", err)
	}
	return nil
}

// Properties fetches the blob's properties, user metadata and tags.
// Tag retrieval needs its own permission; a tags failure is logged and
// yields an empty tag mapping rather than failing the fetch.
func (s *BlobStore) Properties(ctx context.Context, container, key string) (*domain.BlobProperties, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	blobClient := s.client.ServiceClient().NewContainerClient(container).NewBlobClient(key)

	resp, err := blobClient.GetProperties(ctx, nil)
	if err != nil {
		s.recordThrottle(err)
		return nil, fmt.Errorf("fetching blob properties: %w", err)
	}

	props := &domain.BlobProperties{
		Name:         key,
		CreationTime: resp.CreationTime,
		LastModified: resp.LastModified,
		LastAccessed: resp.LastAccessed,
		Metadata:     stringMap(resp.Metadata),
	}
	if resp.ContentType != nil {
		props.ContentType = *resp.ContentType
	}
	if resp.ContentLength != nil {
		props.ContentLength = *resp.ContentLength
	}

	tagsResp, err := blobClient.GetTags(ctx, nil)
	if err != nil {
		s.recordThrottle(err)
		s.log.Warnf("fetching tags for %s/%s: %v", container, key, err)
		return props, nil
	}

	tags := make(map[string]string, len(tagsResp.BlobTagSet))
	for _, tag := range tagsResp.BlobTagSet {
		if tag == nil || tag.Key == nil {
			continue
		}
		value := ""
		if tag.Value != nil {
			value = *tag.Value
		}
		tags[*tag.Key] = value
	}
	props.Tags = tags

	return props, nil
}

// recordThrottle backs off the limiter after a throttled service response.
// The service signals throttling with 429 or 503 and an optional
// Retry-After header in seconds.
func (s *BlobStore) recordThrottle(err error) {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return
	}
	if respErr.StatusCode != http.StatusTooManyRequests &&
		respErr.StatusCode != http.StatusServiceUnavailable {
		return
	}

	retryAfter := 0
	if respErr.RawResponse != nil {
		if v := respErr.RawResponse.Header.Get("Retry-After"); v != "" {
			if secs, convErr := strconv.Atoi(v); convErr == nil {
				retryAfter = secs
			}
		}
	}

	s.log.Warnf("throttled by storage service, backing off (retry after %ds)", retryAfter)
	s.limiter.RecordThrottle(retryAfter)
}

// stringMap flattens the SDK's pointer-valued metadata mapping.
// Nil values become empty strings so keys are never dropped.
func stringMap(m map[string]*string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v == nil {
			out[k] = ""
			continue
		}
		out[k] = *v
	}
	return out
}
