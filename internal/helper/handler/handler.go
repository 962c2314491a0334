// Package handler is the thin HTTP layer over the onboarding use cases. It
// decodes requests, delegates, and translates coded errors; no business
// logic lives here.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"helperhub/internal/helper/service"
	"helperhub/pkg/requestcontext"
)

const birthdateLayout = "2006-01-02"

// Handler handles the helper onboarding endpoints.
type Handler struct {
	logger        *slog.Logger
	onboard       *service.OnboardHelper
	setupPassword *service.SetupHelperPassword
	confirmEmail  *service.ConfirmHelperEmail
}

// New creates a new onboarding Handler.
func New(
	onboard *service.OnboardHelper,
	setupPassword *service.SetupHelperPassword,
	confirmEmail *service.ConfirmHelperEmail,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		logger:        logger,
		onboard:       onboard,
		setupPassword: setupPassword,
		confirmEmail:  confirmEmail,
	}
}

// Register registers the onboarding routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/helpers", h.handleOnboard)
	r.Post("/helpers/password", h.handleSetupPassword)
	r.Post("/helpers/email/confirm", h.handleConfirmEmail)
}

type onboardRequest struct {
	Email            string   `json:"email"`
	Phone            string   `json:"phone,omitempty"`
	Firstname        string   `json:"firstname"`
	Lastname         string   `json:"lastname"`
	Birthdate        string   `json:"birthdate"`
	FrenchDepartment string   `json:"french_department,omitempty"`
	ForeignCountry   string   `json:"foreign_country,omitempty"`
	PlaceOfBirth     string   `json:"place_of_birth,omitempty"`
	Professions      []string `json:"professions,omitempty"`
}

type onboardResponse struct {
	HelperID  string    `json:"helper_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) handleOnboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req onboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid onboarding request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	var birthdate time.Time
	if req.Birthdate != "" {
		parsed, err := time.Parse(birthdateLayout, req.Birthdate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "birthdate must be formatted YYYY-MM-DD"})
			return
		}
		birthdate = parsed
	}

	helper, err := h.onboard.Execute(ctx, service.OnboardHelperInput{
		Email:            req.Email,
		Phone:            req.Phone,
		Firstname:        req.Firstname,
		Lastname:         req.Lastname,
		Birthdate:        birthdate,
		FrenchDepartment: req.FrenchDepartment,
		ForeignCountry:   req.ForeignCountry,
		PlaceOfBirth:     req.PlaceOfBirth,
		Professions:      req.Professions,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, onboardResponse{
		HelperID:  helper.ID().String(),
		Status:    string(helper.Status()),
		CreatedAt: helper.CreatedAt(),
	})
}

type setupPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *Handler) handleSetupPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req setupPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	if err := h.setupPassword.Execute(ctx, req.Token, req.Password); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type confirmEmailRequest struct {
	Token string `json:"token"`
}

func (h *Handler) handleConfirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req confirmEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	if err := h.confirmEmail.Execute(ctx, req.Token); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
