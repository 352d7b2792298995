/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingTournamentID = errors.New("tournament id is required")
	// ErrStructure reports an element the rounds page was expected to
	// contain but did not.
	ErrStructure = errors.New("unexpected page structure")
	ErrScore     = errors.New("malformed score")
)

// StatusError is returned by FetchRounds when the server answers with a
// non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d (%v) fetching %s", e.StatusCode,
		http.StatusText(e.StatusCode), e.URL)
}
