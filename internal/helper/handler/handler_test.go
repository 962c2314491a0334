package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"helperhub/internal/confirmation"
	"helperhub/internal/eventbus"
	"helperhub/internal/helper/handler"
	"helperhub/internal/helper/service"
	"helperhub/internal/helper/store"
	"helperhub/internal/notification"
	"helperhub/pkg/platform/clock"
)

type fixture struct {
	router   chi.Router
	accounts *store.MemoryAccountStore
	helpers  *store.MemoryHelperStore
	notifier *notification.Memory
	clk      *clock.Stepping
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := clock.SteppingAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	accounts := store.NewMemoryAccountStore()
	helpers := store.NewMemoryHelperStore(accounts)
	notifier := notification.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.New(logger)
	confirmer := confirmation.New([]byte("test-secret"), accounts, clk)

	h := handler.New(
		service.NewOnboardHelper(helpers, accounts, notifier, bus, clk, 24*time.Hour, nil),
		service.NewSetupHelperPassword(accounts, bus, clk),
		service.NewConfirmHelperEmail(confirmer, bus, clk),
		logger,
	)
	router := chi.NewRouter()
	h.Register(router)

	return &fixture{router: router, accounts: accounts, helpers: helpers, notifier: notifier, clk: clk}
}

func (f *fixture) post(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func validOnboardPayload() map[string]any {
	return map[string]any{
		"email":             "marie.dubois@example.org",
		"phone":             "+33612345678",
		"firstname":         "Marie",
		"lastname":          "Dubois",
		"birthdate":         "1990-03-15",
		"french_department": "75",
		"place_of_birth":    "Paris",
		"professions":       []string{"nurse"},
	}
}

func TestOnboardEndpoint(t *testing.T) {
	t.Run("valid application returns 201 with the helper id", func(t *testing.T) {
		f := newFixture(t)
		rec := f.post(t, "/helpers", validOnboardPayload())
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			HelperID string `json:"helper_id"`
			Status   string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotEmpty(t, resp.HelperID)
		require.Equal(t, "pending_review", resp.Status)
		require.Equal(t, 1, f.helpers.Count())
	})

	t.Run("invalid email returns 422 with the code", func(t *testing.T) {
		f := newFixture(t)
		payload := validOnboardPayload()
		payload["email"] = "not-an-email"

		rec := f.post(t, "/helpers", payload)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, "EMAIL_INVALID", resp.Code)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		f := newFixture(t)
		require.Equal(t, http.StatusCreated, f.post(t, "/helpers", validOnboardPayload()).Code)

		rec := f.post(t, "/helpers", validOnboardPayload())
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, "EMAIL_ALREADY_IN_USE", resp.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/helpers", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing birthdate returns 422 with the code", func(t *testing.T) {
		f := newFixture(t)
		payload := validOnboardPayload()
		delete(payload, "birthdate")

		rec := f.post(t, "/helpers", payload)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, "BIRTHDATE_REQUIRED", resp.Code)
	})

	t.Run("malformed birthdate returns 400", func(t *testing.T) {
		f := newFixture(t)
		payload := validOnboardPayload()
		payload["birthdate"] = "15/03/1990"

		rec := f.post(t, "/helpers", payload)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetupPasswordEndpoint(t *testing.T) {
	onboardedToken := func(t *testing.T, f *fixture) string {
		require.Equal(t, http.StatusCreated, f.post(t, "/helpers", validOnboardPayload()).Code)
		messages := f.notifier.SentTo("marie.dubois@example.org")
		require.NotEmpty(t, messages)
		token := messages[len(messages)-1].Data["token"]
		require.NotEmpty(t, token)
		return token
	}

	t.Run("valid token and password return 204", func(t *testing.T) {
		f := newFixture(t)
		token := onboardedToken(t, f)

		rec := f.post(t, "/helpers/password", map[string]string{
			"token":    token,
			"password": "Str0ng!Pass",
		})
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("weak password returns 422", func(t *testing.T) {
		f := newFixture(t)
		token := onboardedToken(t, f)

		rec := f.post(t, "/helpers/password", map[string]string{
			"token":    token,
			"password": "weak",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("expired token returns 410", func(t *testing.T) {
		f := newFixture(t)
		token := onboardedToken(t, f)
		f.clk.Advance(25 * time.Hour)

		rec := f.post(t, "/helpers/password", map[string]string{
			"token":    token,
			"password": "Str0ng!Pass",
		})
		require.Equal(t, http.StatusGone, rec.Code)
	})

	t.Run("unknown token returns 400", func(t *testing.T) {
		f := newFixture(t)

		rec := f.post(t, "/helpers/password", map[string]string{
			"token":    "no-such-token",
			"password": "Str0ng!Pass",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConfirmEmailEndpoint(t *testing.T) {
	t.Run("valid token returns 204 and flips the flag", func(t *testing.T) {
		f := newFixture(t)
		require.Equal(t, http.StatusCreated, f.post(t, "/helpers", validOnboardPayload()).Code)

		confirmer := confirmation.New([]byte("test-secret"), f.accounts, f.clk)
		token, err := confirmer.IssueToken("marie.dubois@example.org", time.Hour)
		require.NoError(t, err)

		rec := f.post(t, "/helpers/email/confirm", map[string]string{"token": token})
		require.Equal(t, http.StatusNoContent, rec.Code)

		account, err := f.accounts.FindByEmail(context.Background(), "marie.dubois@example.org")
		require.NoError(t, err)
		require.True(t, account.EmailConfirmed())

		rec = f.post(t, "/helpers/email/confirm", map[string]string{"token": token})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("garbage token returns 400", func(t *testing.T) {
		f := newFixture(t)
		rec := f.post(t, "/helpers/email/confirm", map[string]string{"token": "nope"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
