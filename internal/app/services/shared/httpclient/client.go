package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultTimeout = 30 * time.Second

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type Options struct {
	BaseUrl     string
	Timeout     time.Duration
	Development bool
	Store       contracts.KeyValueStore
	Navigator   contracts.Navigator
	// Transport overrides the round tripper, mainly for tests.
	Transport http.RoundTripper
}

// Client is the one shared backend client. Every request passes the auth
// interceptor on the way out and the error interceptor on the way back.
type Client struct {
	baseUrl     string
	httpClient  *http.Client
	development bool
	auth        *authInterceptor
	errors      *errorInterceptor
	log         *zap.Logger
}

func NewClient(opts Options, logger *zap.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := &http.Client{Timeout: timeout}
	if opts.Transport != nil {
		httpClient.Transport = opts.Transport
	}

	return &Client{
		baseUrl:     strings.TrimRight(opts.BaseUrl, "/"),
		httpClient:  httpClient,
		development: opts.Development,
		auth:        &authInterceptor{store: opts.Store, log: logger},
		errors:      &errorInterceptor{store: opts.Store, log: logger, navigator: opts.Navigator},
		log:         logger,
	}
}

// SetNavigator wires the 401 hook once the session manager exists.
func (c *Client) SetNavigator(navigator contracts.Navigator) {
	c.errors.setNavigator(navigator)
}

func (c *Client) Get(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, constvars.MethodGet, req)
}

func (c *Client) Post(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, constvars.MethodPost, req)
}

func (c *Client) Put(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, constvars.MethodPut, req)
}

func (c *Client) Delete(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, constvars.MethodDelete, req)
}

func (c *Client) PostMultipart(ctx context.Context, req *Request, body *MultipartBody) (*Response, error) {
	req.Multipart = body
	return c.do(ctx, constvars.MethodPost, req)
}

func (c *Client) do(ctx context.Context, method string, request *Request) (*Response, error) {
	if request == nil {
		request = &Request{}
	}
	requestID := utils.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = utils.ContextWithRequestID(ctx, requestID)
	}

	httpReq, err := c.buildRequest(ctx, method, request)
	if err != nil {
		c.log.Error("Client.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	c.auth.InterceptRequest(ctx, httpReq)

	if c.development {
		c.log.Debug("Client.do request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, httpReq.URL.String()),
		)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("Client.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, httpReq.URL.String()),
			zap.Error(err),
		)
		return nil, c.errors.InterceptError(ctx, request, nil, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.log.Error("Client.do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, c.errors.InterceptError(ctx, request, nil, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}

	if c.development {
		c.log.Debug("Client.do response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, httpReq.URL.String()),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Int(constvars.LoggingResponseLengthKey, len(body)),
		)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		return nil, c.errors.InterceptError(ctx, request, resp, nil)
	}
	return c.errors.InterceptResponse(ctx, resp), nil
}

func (c *Client) buildRequest(ctx context.Context, method string, request *Request) (*http.Request, error) {
	target := c.baseUrl + request.Path
	if len(request.Query) > 0 {
		target += "?" + request.Query.Encode()
	}

	var body io.Reader
	contentType := constvars.MIMEApplicationJSON
	switch {
	case request.Multipart != nil:
		buf, multipartType, err := encodeMultipart(request.Multipart)
		if err != nil {
			return nil, exceptions.ErrBuildMultipart(err)
		}
		body = buf
		contentType = multipartType
	case request.Body != nil:
		payload, err := json.Marshal(request.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderContentType, contentType)
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	for key, values := range request.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	return httpReq, nil
}

func encodeMultipart(form *MultipartBody) (*bytes.Buffer, string, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for _, file := range form.Files {
		contentType := file.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(file.FieldName), quoteEscaper.Replace(file.FileName)))
		header.Set(constvars.HeaderContentType, contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.FormDataContentType(), nil
}
