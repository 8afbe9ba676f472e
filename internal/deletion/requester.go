// Package deletion sends note and tag deletion requests and navigates once they settle.
package deletion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/taigrr/notesweep/internal/navigation"
	"github.com/taigrr/notesweep/internal/types"
	"github.com/taigrr/notesweep/internal/uri"
)

// maxDrain bounds how much of an ignored response body is read before closing it.
const maxDrain = 1 << 20

// Requester issues deletion requests against a single server.
type Requester struct {
	baseURL  string
	nav      navigation.Navigator
	client   Doer
	logger   *slog.Logger
	headers  http.Header
	cookie   string
	withType bool
}

// New creates a Requester for the server at baseURL. nav receives the redirect
// target after every request that reaches the server.
func New(baseURL string, nav navigation.Navigator, opts ...Option) (*Requester, error) {
	base, err := uri.NormalizeBase(baseURL)
	if err != nil {
		return nil, err
	}
	if nav == nil {
		return nil, fmt.Errorf("navigator is required")
	}

	o := &options{headers: make(http.Header)}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = cleanhttp.DefaultPooledClient()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Requester{
		baseURL:  base,
		nav:      nav,
		client:   o.client,
		logger:   o.logger,
		headers:  o.headers,
		cookie:   o.cookie,
		withType: !o.omitContentType,
	}, nil
}

// RequestDeletion posts {"<kind>Id": id} to the kind's endpoint. Whatever status
// the server answers with, the response is discarded unread and the navigator is
// sent to the kind's redirect target. If the request never completes, the error is
// returned and no navigation happens.
func (r *Requester) RequestDeletion(ctx context.Context, kind types.EntityKind, id types.Identifier) (types.DeletionResult, error) {
	target, err := kind.Target()
	if err != nil {
		return types.DeletionResult{}, err
	}

	body, err := json.Marshal(map[string]types.Identifier{target.Field: id})
	if err != nil {
		return types.DeletionResult{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := uri.Resolve(r.baseURL, target.Endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return types.DeletionResult{}, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	for key, values := range r.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if r.withType {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.cookie != "" {
		req.Header.Set("Cookie", r.cookie)
	}
	req.Header.Set("X-Request-ID", requestID)

	log := r.logger.With("kind", kind.String(), "id", id.String(), "request_id", requestID)
	log.Debug("sending deletion request", "endpoint", endpoint)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Debug("deletion request failed", "error", err)
		return types.DeletionResult{}, fmt.Errorf("perform request: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	resp.Body.Close()

	log.Debug("deletion request settled", "status", resp.StatusCode, "redirect", target.Redirect)
	r.nav.Navigate(target.Redirect)

	return types.DeletionResult{
		Kind:       kind,
		Endpoint:   target.Endpoint,
		StatusCode: resp.StatusCode,
		Location:   target.Redirect,
		RequestID:  requestID,
	}, nil
}

// DeleteNote requests deletion of a note and navigates to "/".
func (r *Requester) DeleteNote(ctx context.Context, id types.Identifier) (types.DeletionResult, error) {
	return r.RequestDeletion(ctx, types.Note, id)
}

// DeleteTag requests deletion of a tag and navigates to "/tags".
func (r *Requester) DeleteTag(ctx context.Context, id types.Identifier) (types.DeletionResult, error) {
	return r.RequestDeletion(ctx, types.Tag, id)
}

// Dispatch is the fire-and-forget form of RequestDeletion. Failures are not
// reported to the caller. The returned channel closes once the request settles
// and may be ignored.
func (r *Requester) Dispatch(kind types.EntityKind, id types.Identifier) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := r.RequestDeletion(context.Background(), kind, id); err != nil {
			r.logger.Debug("dispatched deletion dropped", "kind", kind.String(), "id", id.String(), "error", err)
		}
	}()
	return done
}
