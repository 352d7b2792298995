/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package cobrai

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// HookTransport calls Request and Response around an underlying
// RoundTripper. Request sees a clone of the caller's request.
type HookTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

func NewHookTransport(rt http.RoundTripper) *HookTransport {
	if rt == nil {
		rt = http.DefaultTransport
	}

	return &HookTransport{wrappedRT: rt}
}

// RoundTrip hands a copy of req to the Request hook and the wrapped
// transport. A Response hook error discards the response.
func (t *HookTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(out)
	}

	resp, err := t.wrappedRT.RoundTrip(out)
	if err != nil || t.Response == nil {
		return resp, err
	}
	if hookErr := t.Response(resp); hookErr != nil {
		resp.Body.Close()
		return nil, hookErr
	}

	return resp, nil
}

func newLoggingTransport(rt http.RoundTripper,
	log logrus.FieldLogger) *HookTransport {

	t := NewHookTransport(rt)
	t.Request = func(req *http.Request) {
		log.WithField("url", req.URL.String()).Debug("GET")
	}
	t.Response = func(resp *http.Response) error {
		fields := logrus.Fields{"status": resp.StatusCode}
		if resp.Request != nil {
			fields["url"] = resp.Request.URL.String()
		}
		log.WithFields(fields).Debug("response")
		return nil
	}

	return t
}
