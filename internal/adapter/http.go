package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/service"
	"github.com/MKhiriev/campus-coffee/internal/utils"
	"github.com/MKhiriev/campus-coffee/models"
	"github.com/go-resty/resty/v2"
)

const (
	usersPath  = "/api/users/"
	userPath   = "/api/users/{id}"
	filterPath = "/api/users/filter"

	loginNameQueryParam = "login_name"
)

type httpUserClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserClient constructs a [service.UserService] backed by the HTTP API
// at adapterCfg.HTTPAddress. The address may omit the scheme, in which case
// http is assumed.
func NewHTTPUserClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (service.UserService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpUserClient{client: client, logger: logger}, nil
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

// Clear is not exposed over HTTP.
func (h *httpUserClient) Clear(ctx context.Context) error {
	return ErrOperationNotSupported
}

func (h *httpUserClient) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get(usersPath)
	if err != nil {
		return nil, h.requestFailed("*httpUserClient.GetAll", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (h *httpUserClient) GetByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&user).
		Get(userPath)
	if err != nil {
		return models.User{}, h.requestFailed("*httpUserClient.GetByID", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUserClient) GetByLoginName(ctx context.Context, loginName string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam(loginNameQueryParam, loginName).
		SetResult(&user).
		Get(filterPath)
	if err != nil {
		return models.User{}, h.requestFailed("*httpUserClient.GetByLoginName", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Upsert POSTs creation requests to /api/users/ and PUTs update requests to
// /api/users/{id}. Only the profile travels in the body.
func (h *httpUserClient) Upsert(ctx context.Context, request models.UpsertRequest) (models.User, error) {
	var user models.User

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request.Profile).
		SetResult(&user)

	var (
		resp *resty.Response
		err  error
	)
	if id, existing := request.ID(); existing {
		resp, err = req.SetPathParam("id", strconv.FormatInt(id, 10)).Put(userPath)
	} else {
		resp, err = req.Post(usersPath)
	}
	if err != nil {
		return models.User{}, h.requestFailed("*httpUserClient.Upsert", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUserClient) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(userPath)
	if err != nil {
		return h.requestFailed("*httpUserClient.Delete", err)
	}

	return mapHTTPError(resp)
}

func (h *httpUserClient) requestFailed(funcName string, err error) error {
	h.logger.Err(err).Str("func", funcName).Msg("request to server failed")
	return fmt.Errorf("request to server: %w", err)
}
