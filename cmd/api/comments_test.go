package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	app, stubs := newTestApplication()

	body := bytes.NewBufferString(`{"name":"Alice","comment":"Hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/comments", body)
	rr := httptest.NewRecorder()

	app.createCommentHandler(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, stubs.comments.comments, 1)
	assert.Equal(t, "Alice", stubs.comments.comments[0].Name)
	assert.Equal(t, "Hello", stubs.comments.comments[0].Comment)

	var resp struct {
		Data struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
	assert.NotEmpty(t, resp.Data.Timestamp)
}

func TestCreateCommentValidation(t *testing.T) {
	cases := []string{
		`{"name":"","comment":"x"}`,
		`{"name":"x","comment":""}`,
		`{"name":"","comment":""}`,
		`{"comment":"x"}`,
		`not json`,
	}

	for _, body := range cases {
		app, stubs := newTestApplication()

		req := httptest.NewRequest(http.MethodPost, "/v1/comments", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		app.createCommentHandler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
		assert.Empty(t, stubs.comments.comments, "no write expected for %s", body)
	}
}

func TestCreateCommentStoreFailure(t *testing.T) {
	app, stubs := newTestApplication()
	stubs.comments.err = errors.New("connection refused")

	body := bytes.NewBufferString(`{"name":"Alice","comment":"Hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/comments", body)
	rr := httptest.NewRecorder()

	app.createCommentHandler(rr, req)

	// Write failures surface so the page can tell the visitor.
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetCommentsFailOpen(t *testing.T) {
	app, stubs := newTestApplication()
	stubs.comments.err = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/v1/comments", nil)
	rr := httptest.NewRecorder()

	app.getCommentsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestGetComments(t *testing.T) {
	app, stubs := newTestApplication()

	_, err := stubs.comments.Create(context.Background(), "Alice", "Hello")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/comments", nil)
	rr := httptest.NewRecorder()

	app.getCommentsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []struct {
			Name    string `json:"name"`
			Comment string `json:"comment"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Alice", resp.Data[0].Name)
}
