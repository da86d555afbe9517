package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudgeDryRunSkipsHTTP(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewJudgeClient(srv.URL, "key", true)
	status, stdout, err := c.Run("python", "print(1)", "")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", status)
	assert.Empty(t, stdout)
	assert.False(t, called)
}

func TestJudgeMissingKeyBehavesAsDryRun(t *testing.T) {
	c := NewJudgeClient("http://judge.invalid", "", false)
	status, _, err := c.Run("python", "print(1)", "")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", status)
}

func TestJudgeExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submissions", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))
		assert.Equal(t, "key", r.Header.Get("X-Auth-Token"))

		var req JudgeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "python", req.Language)

		json.NewEncoder(w).Encode(JudgeResponse{Status: "Accepted", Stdout: "42\n"})
	}))
	defer srv.Close()

	c := NewJudgeClient(srv.URL, "key", false)
	status, stdout, err := c.Run("python", "print(42)", "in")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", status)
	assert.Equal(t, "42\n", stdout)
}

func TestJudgeNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewJudgeClient(srv.URL, "key", false)
	_, _, err := c.Run("python", "print(1)", "")
	assert.Error(t, err)
}
