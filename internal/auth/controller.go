package auth

import (
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/httpjson"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err, c.logger)
		return
	}

	token, err := c.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Info("login failed", zap.String("email", req.Email), zap.Error(err))
		httpjson.WriteError(w, err, c.logger)
		return
	}

	httpjson.Write(w, http.StatusOK, loginResponse{Token: token}, c.logger)
}
