// Package lambdaadapter serves an http.Handler from API Gateway HTTP API
// (payload format 2.0) events.
package lambdaadapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Adapter converts Lambda events into HTTP requests for h.
type Adapter struct {
	h http.Handler
}

// New wraps h.
func New(h http.Handler) *Adapter {
	return &Adapter{h: h}
}

// Handle runs one event through the handler and returns its response.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := toRequest(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	return toResponse(rec), nil
}

func toRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = string(decoded)
	}

	path := event.RawPath
	if path == "" {
		path = "/"
	}
	target := path
	if event.RawQueryString != "" {
		target += "?" + event.RawQueryString
	}

	req, err := http.NewRequestWithContext(ctx, event.RequestContext.HTTP.Method, target, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	for _, c := range event.Cookies {
		req.Header.Add("Cookie", c)
	}
	req.RemoteAddr = event.RequestContext.HTTP.SourceIP
	req.Host = event.RequestContext.DomainName
	return req, nil
}

func toResponse(rec *httptest.ResponseRecorder) events.APIGatewayV2HTTPResponse {
	res := rec.Result()
	defer res.Body.Close()

	headers := make(map[string]string, len(res.Header))
	var cookies []string
	for k, v := range res.Header {
		if k == "Set-Cookie" {
			cookies = append(cookies, v...)
			continue
		}
		headers[k] = strings.Join(v, ",")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: res.StatusCode,
		Headers:    headers,
		Body:       rec.Body.String(),
		Cookies:    cookies,
	}
}
