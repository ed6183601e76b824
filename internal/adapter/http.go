package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

const usersPath = "/users/"

type httpUserAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserAdapter constructs the HTTP/REST implementation of
// [UserAdapter]. adapterCfg.HTTPAddress may omit the scheme, "http" is
// assumed.
func NewHTTPUserAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (UserAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpUserAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserAdapter) CreateUser(ctx context.Context, fields models.UserFields) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (h *httpUserAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpUserAdapter) UpdateUser(ctx context.Context, id int64, fields models.UserFields) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Put(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpUserAdapter) DeleteUser(ctx context.Context, id int64) (models.MessageResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(userPath(id))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("delete user request: %w", err)
	}

	var msg models.MessageResponse
	if err = decode(resp, &msg); err != nil {
		return models.MessageResponse{}, err
	}
	return msg, nil
}

func (h *httpUserAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(usersPath)
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	users := make([]models.User, 0)
	if err = decode(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpUserAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func userPath(id int64) string {
	return usersPath + strconv.FormatInt(id, 10)
}

func decode(resp *resty.Response, v any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.Method, err)
	}
	return nil
}
