/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestHookTransportClonesRequest(t *testing.T) {
	var seen *http.Request
	rt := NewHookTransport(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: http.StatusOK, Request: req,
			Body: io.NopCloser(strings.NewReader(""))}, nil
	}))
	rt.Request = func(req *http.Request) {
		req.Header.Set("X-Hooked", "1")
	}

	orig, err := http.NewRequest("GET", "http://example.invalid/x", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(orig)
	require.NoError(t, err)

	assert.Equal(t, "1", seen.Header.Get("X-Hooked"))
	assert.Empty(t, orig.Header.Get("X-Hooked"))
}

func TestHookTransportResponseError(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader("x")}
	rt := NewHookTransport(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: body}, nil
	}))
	hookErr := errors.New("rejected")
	rt.Response = func(resp *http.Response) error { return hookErr }

	req, err := http.NewRequest("GET", "http://example.invalid/x", nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, hookErr)
	assert.True(t, body.closed)
}

func TestHookTransportPropagatesTransportError(t *testing.T) {
	rtErr := errors.New("dial failed")
	rt := NewHookTransport(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, rtErr
	}))
	called := false
	rt.Response = func(resp *http.Response) error {
		called = true
		return nil
	}

	req, err := http.NewRequest("GET", "http://example.invalid/x", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	assert.ErrorIs(t, err, rtErr)
	assert.False(t, called)
}

func TestHookTransportWithoutHooks(t *testing.T) {
	want := &http.Response{StatusCode: http.StatusTeapot,
		Body: io.NopCloser(strings.NewReader("tea"))}
	rt := NewHookTransport(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return want, nil
	}))

	req, err := http.NewRequest("GET", "http://example.invalid/x", nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Same(t, want, resp)
}
