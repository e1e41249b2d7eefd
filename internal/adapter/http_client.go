package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jfarabee/signon/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpProviderAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPProviderAdapter(cfg HTTPClientConfig) ProviderAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpProviderAdapter{client: cli}
}

func (h *httpProviderAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpProviderAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpProviderAdapter) SignIn(ctx context.Context, creds models.Credentials) models.AuthOutcome {
	return h.authenticate(ctx, creds, "/api/auth/signin")
}

func (h *httpProviderAdapter) CreateAccount(ctx context.Context, creds models.Credentials) models.AuthOutcome {
	return h.authenticate(ctx, creds, "/api/auth/signup")
}

// authenticate runs the shared request/classify path for both auth endpoints.
// Every failure mode collapses into a Canceled or Faulted outcome.
func (h *httpProviderAdapter) authenticate(ctx context.Context, creds models.Credentials, path string) models.AuthOutcome {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return models.CanceledOutcome(fmt.Sprintf("%s canceled: %v", path, err))
		}
		return models.FaultedOutcome(fmt.Sprintf("%s request: %v", path, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FaultedOutcome(fmt.Sprintf("%s: %v", path, err))
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.FaultedOutcome(fmt.Sprintf("%s parse bearer token: %v", path, err))
	}
	userID, email, err := parseIdentityFromJWT(token)
	if err != nil {
		return models.FaultedOutcome(fmt.Sprintf("%s parse identity: %v", path, err))
	}
	if email == "" {
		email = creds.Email
	}

	h.SetToken(token)
	return models.SuccessOutcome(userID, email)
}

func (h *httpProviderAdapter) SignOut(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/signout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("signout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpProviderAdapter) CheckHealth(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: http %d", ErrProviderUnavailable, resp.StatusCode())
	}
	return nil
}

func (h *httpProviderAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusConflict {
		return ErrEmailTaken
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parseIdentityFromJWT reads the subject and email claims without verifying
// the signature. The client never trusts the token for authorization, it only
// mirrors the identity the provider minted.
func parseIdentityFromJWT(tokenString string) (userID, email string, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", "", errors.New("token missing subject")
	}

	email, _ = claims["email"].(string)
	return sub, email, nil
}
