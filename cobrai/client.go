/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mikeb26/cobrai-pairings/internal/config"
	"github.com/sirupsen/logrus"
)

// TournamentID is the cobr.ai identifier appearing in tournament URLs.
type TournamentID string

// Page is the raw body of a fetched rounds page.
type Page []byte

type Client struct {
	cfg        config.Config
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient returns a Client fetching from the location described by cfg.
func NewClient(cfg config.Config, log logrus.FieldLogger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout.Duration,
			Transport: newLoggingTransport(http.DefaultTransport, log),
		},
		log: log,
	}
}

// RoundsURL returns <base>/<id><suffix>, e.g.
// https://cobr.ai/tournaments/1234/rounds
func (client *Client) RoundsURL(id TournamentID) string {
	base := strings.TrimRight(client.cfg.BaseURL, "/")

	return base + "/" + url.PathEscape(string(id)) + client.cfg.PathSuffix
}

// FetchRounds performs a single GET of the tournament's rounds page and
// returns its body. There is no retry; transport failures and non-2xx
// responses are returned to the caller as is.
func (client *Client) FetchRounds(ctx context.Context,
	id TournamentID) (Page, error) {

	if id == "" {
		return nil, ErrMissingTournamentID
	}

	roundsURL := client.RoundsURL(id)
	req, err := http.NewRequestWithContext(ctx, "GET", roundsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cobrai.fetch: unable to create request: %w", err)
	}

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cobrai.fetch: unable to fetch %v: %w", roundsURL,
			err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: roundsURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cobrai.fetch: unable to read %v: %w", roundsURL,
			err)
	}
	client.log.WithField("tid", id).Debugf("fetched %d bytes", len(body))

	return body, nil
}
