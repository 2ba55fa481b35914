package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/console/src/models"
)

const loginPath = "/api/auth/login"

// AuthService talks to the login endpoint.
type AuthService interface {
	// Login posts the credentials as given; callers trim them first.
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
}

type authService struct {
	client *restClient
	logger *slog.Logger
}

func NewAuthService(cfg *config.Config, logger *slog.Logger, opts ...Option) AuthService {
	return &authService{
		client: newRESTClient(cfg, logger, opts...),
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (resp *models.LoginResponse, err error) {
	ctx, span := commontrace.StartClientSpan(ctx, attributes.AttrAppUsernameKey.String(creds.Username))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("client")
	defer mc.End(ctx, &err)

	s.logger.InfoContext(ctx, "Submitting login", slog.String(attributes.LogFieldUsername, creds.Username))

	raw, err := s.client.do(ctx, http.MethodPost, loginPath, nil, creds)
	if err != nil {
		return nil, err
	}

	body, _ := unwrapData(raw)
	resp = &models.LoginResponse{Success: true}
	if len(body) > 0 {
		if err = json.Unmarshal(body, resp); err != nil {
			return nil, malformed("login response", err)
		}
	}

	s.logger.InfoContext(ctx, "Login accepted", slog.String(attributes.LogFieldUsername, creds.Username))
	return resp, nil
}
