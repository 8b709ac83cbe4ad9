package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacebookVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "fb-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "id,name,email", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"id":"fb123","name":"Taro","email":"taro@example.com"}`))
	}))
	defer srv.Close()

	v := NewFacebookVerifierWithBaseURL(srv.URL)
	id, err := v.Verify(context.Background(), "fb-token")

	assert.NoError(t, err)
	assert.Equal(t, "fb123", id.ID)
	assert.Equal(t, "taro@example.com", id.Email)
}

func TestFacebookVerify_BadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token."}}`))
	}))
	defer srv.Close()

	v := NewFacebookVerifierWithBaseURL(srv.URL)
	_, err := v.Verify(context.Background(), "bad")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFacebookVerify_EmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	v := NewFacebookVerifierWithBaseURL(srv.URL)
	_, err := v.Verify(context.Background(), "weird")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
