package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/nauticalflow/internal/client/client"
	"github.com/dmitrijs2005/nauticalflow/internal/client/session"
)

// ErrInvalidBody is returned when a request body is not valid JSON.
var ErrInvalidBody = errors.New("request body is not valid JSON")

// Gatekeeper decides whether a protected operation may run. *session.Guard
// implements it.
type Gatekeeper interface {
	Check(ctx context.Context) bool
}

// ResourceService issues authenticated calls against backend resources on
// behalf of the protected console commands.
type ResourceService interface {
	Call(ctx context.Context, method, endpoint string, body []byte) (*client.Response, error)
}

type resourceService struct {
	client client.Client
	guard  Gatekeeper
}

func NewResourceService(c client.Client, guard Gatekeeper) ResourceService {
	return &resourceService{client: c, guard: guard}
}

// Call passes the guard first; when it refuses, nothing is sent and
// session.ErrSessionTerminated is returned. body, when present, must be
// JSON and is sent unchanged.
func (s *resourceService) Call(ctx context.Context, method, endpoint string, body []byte) (*client.Response, error) {
	if !s.guard.Check(ctx) {
		return nil, session.ErrSessionTerminated
	}

	opts := client.RequestOptions{Method: strings.ToUpper(method)}
	if len(body) > 0 {
		if !json.Valid(body) {
			return nil, ErrInvalidBody
		}
		opts.Body = body
	}
	return s.client.Request(ctx, endpoint, opts)
}
