package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stylocoin/dashboard/internal/client/models"
)

const (
	loginPath    = "/api/v1/auth/login"
	registerPath = "/api/v1/auth/register"
)

// Login posts credentials. A 2xx answer is decoded as-is: checking that both
// user and token are present is left to the caller.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := c.do(ctx, http.MethodPost, loginPath, nil, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[LoginResponse](body)
}

// Register posts the full registration payload. On success the backend puts
// the generated username in Message.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*RegisterResponse, error) {
	body, err := c.do(ctx, http.MethodPost, registerPath, nil, req)
	if err != nil {
		return nil, err
	}
	var resp RegisterResponse
	if len(body) == 0 {
		return &resp, nil
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	return &resp, nil
}
