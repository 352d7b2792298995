/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mikeb26/cobrai-pairings/internal/config"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) (*Client, *logtest.Hook) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	cfg := config.Default()
	cfg.BaseURL = baseURL

	return NewClient(cfg, log), hook
}

func TestRoundsURL(t *testing.T) {
	client, _ := newTestClient(t, "https://cobr.ai/tournaments")
	assert.Equal(t, "https://cobr.ai/tournaments/1234/rounds",
		client.RoundsURL("1234"))

	client, _ = newTestClient(t, "https://cobr.ai/tournaments/")
	assert.Equal(t, "https://cobr.ai/tournaments/1234/rounds",
		client.RoundsURL("1234"))
}

func TestFetchRounds(t *testing.T) {
	fixture := loadFixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tournaments/1234/rounds" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write(fixture)
	}))
	defer srv.Close()

	client, hook := newTestClient(t, srv.URL+"/tournaments")
	body, err := client.FetchRounds(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, fixture, body)

	pairings, err := ExtractPairings(body, ModeSwissOnly)
	require.NoError(t, err)
	assert.Len(t, pairings, 2)

	// request, response and byte count are logged at debug
	assert.Len(t, hook.AllEntries(), 3)
}

func TestFetchRoundsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	body, err := client.FetchRounds(context.Background(), "99")
	assert.Nil(t, body)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr), "got %v", err)
	assert.Equal(t, http.StatusGone, statusErr.StatusCode)
	assert.Equal(t, srv.URL+"/99/rounds", statusErr.URL)
}

func TestFetchRoundsMissingID(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.FetchRounds(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingTournamentID)
	assert.Zero(t, hits.Load())
}

func TestFetchRoundsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.FetchRounds(context.Background(), "1")
	assert.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestFetchRoundsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	log, _ := logtest.NewNullLogger()
	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.Timeout = config.Duration{Duration: 50 * time.Millisecond}

	_, err := NewClient(cfg, log).FetchRounds(context.Background(), "1")
	assert.Error(t, err)
}

func TestFetchRoundsCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.FetchRounds(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}
