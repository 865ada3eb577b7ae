package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-0123456789", time.Hour)

	adminToken, err := tm.Issue(entities.Identity{UserID: 5, IsAdmin: true})
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantActor  entities.Identity
	}{
		{
			name:       "no header is anonymous",
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid token",
			header:     "Bearer " + adminToken,
			wantStatus: http.StatusOK,
			wantActor:  entities.Identity{UserID: 5, IsAdmin: true},
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got entities.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = auth.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate(tm)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantActor, got)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
