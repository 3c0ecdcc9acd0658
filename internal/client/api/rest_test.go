package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*RESTClient, *notify.Recorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := &notify.Recorder{}
	c := NewRESTClient(srv.URL, 2*time.Second, func() string { return token }, rec, testLogger())
	return c, rec
}

func TestRESTClient_AttachesAuthHeaders(t *testing.T) {
	var gotAuth, gotTimestamp, gotRequestID string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTimestamp = r.Header.Get("X-Timestamp")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, h, "tok-123")
	_, err := c.Orders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotTimestamp)
	assert.NotEmpty(t, gotRequestID)
}

func TestRESTClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, h, "")
	_, err := c.Orders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRESTClient_UnauthorizedInvokesHandlerOnce(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, rec := newTestClient(t, h, "stale")

	var expired int
	c.SetSessionExpiredHandler(func(ctx context.Context) { expired++ })

	_, err := c.Tasks(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, expired, "session-expired handler should fire exactly once per 401")
	assert.Contains(t, rec.Titles(), "Session Expired")
}

func TestRESTClient_StatusPolicy(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   error
		wantTitle string
	}{
		{name: "forbidden", status: 403, wantErr: ErrForbidden, wantTitle: "Access Denied"},
		{name: "rate limited", status: 429, wantErr: ErrRateLimited, wantTitle: "Too Many Requests"},
		{name: "server error", status: 500, wantErr: ErrServer, wantTitle: "Server Error"},
		{name: "bad gateway", status: 502, wantErr: ErrServer, wantTitle: "Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			c, rec := newTestClient(t, h, "tok")

			_, err := c.Orders(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, rec.Titles(), tt.wantTitle)
		})
	}
}

func TestRESTClient_OtherClientErrorSurfacesBackendMessage(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate order"}`))
	})
	c, rec := newTestClient(t, h, "tok")

	err := c.DeleteOrder(context.Background(), "o1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "duplicate order", apiErr.Message)

	require.NotEmpty(t, rec.Notices)
	assert.Equal(t, "duplicate order", rec.Notices[len(rec.Notices)-1].Message)
}

func TestRESTClient_TimeoutIsUnavailable(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	rec := &notify.Recorder{}
	c := NewRESTClient(srv.URL, 50*time.Millisecond, func() string { return "" }, rec, testLogger())

	_, err := c.Orders(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, rec.Titles(), "Network Error")
}

func TestRESTClient_Login(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email == "admin@x.com" && req.Password == "correct" {
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	})

	c, rec := newTestClient(t, h, "")

	t.Run("success", func(t *testing.T) {
		tok, err := c.Login(context.Background(), "admin@x.com", "correct")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", tok)
	})

	t.Run("bad credentials stay inline", func(t *testing.T) {
		var expired int
		c.SetSessionExpiredHandler(func(ctx context.Context) { expired++ })

		_, err := c.Login(context.Background(), "admin@x.com", "wrong")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid credentials", apiErr.Message)
		assert.Zero(t, expired, "login 401 must not trigger the session-expired policy")
		assert.NotContains(t, rec.Titles(), "Session Expired")
	})
}

func TestRESTClient_CurrentUser(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "admin@x.com", Role: models.RoleAdmin})
	})
	c, _ := newTestClient(t, h, "tok")

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestRESTClient_ProductMultipartUpload(t *testing.T) {
	img := filepath.Join(t.TempDir(), "shoe.png")
	require.NoError(t, os.WriteFile(img, []byte("png-bytes"), 0o600))

	var gotName, gotFile string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		gotFile = hdr.Filename
	})
	c, _ := newTestClient(t, h, "tok")

	err := c.CreateProduct(context.Background(), models.ProductInput{
		Name: "Running Shoe", SalesPrice: 1200, Status: "Active", ImagePath: img,
	})
	require.NoError(t, err)
	assert.Equal(t, "Running Shoe", gotName)
	assert.Equal(t, "shoe.png", gotFile)
}

func TestRESTClient_SendSMSJoinsNumbers(t *testing.T) {
	var got smsRequest
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sendSMS", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})
	c, _ := newTestClient(t, h, "tok")

	err := c.SendSMS(context.Background(), []string{"8801712345678", "8801812345678"}, "hi")
	require.NoError(t, err)
	assert.Equal(t, "8801712345678,8801812345678", got.Number)
	assert.Equal(t, "hi", got.Message)
}

func TestRESTClient_SendSMSRateLimited(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	c, rec := newTestClient(t, h, "tok")

	err := c.SendSMS(context.Background(), []string{"8801712345678"}, "hi")
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, []string{"Too Many Requests"}, rec.Titles())
}

func TestRESTClient_SMSBalance(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/getBalance", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]float64{"balance": 512.5})
	})
	c, _ := newTestClient(t, h, "tok")

	bal, err := c.SMSBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 512.5, bal)
}

func TestPeekClaims(t *testing.T) {
	// header/payload/signature; payload: {"role":"Admin","exp":4102444800}
	tok := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJyb2xlIjoiQWRtaW4iLCJleHAiOjQxMDI0NDQ4MDB9." +
		"sig"

	claims, err := PeekClaims(tok)
	require.NoError(t, err)
	assert.Equal(t, "Admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, int64(4102444800), claims.ExpiresAt.Unix())

	_, err = PeekClaims("not-a-token")
	require.Error(t, err)
}
