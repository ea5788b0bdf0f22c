package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/config"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/logger"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// Requester là network boundary duy nhất mà các store tiêu thụ.
// Mọi store operation chạm network đều đi qua một Request call; test thay
// bằng fake implementation.
type Requester interface {
	// Request gửi một request tới endpoint với payload (nil nếu không có)
	// và args là tham số dựng path động.
	Request(ctx context.Context, endpoint Endpoint, payload map[string]any, args ...any) (*Response, error)
}

// ApiClient là implementation của Requester trên fasthttp.
// Base URL, bearer token và timeout lấy từ configuration.
type ApiClient struct {
	baseURL string
	token   string
	timeout time.Duration
	client  *fasthttp.Client
	log     *logrus.Entry
}

// NewApiClient tạo ApiClient từ configuration
func NewApiClient(cfg *config.Configuration) *ApiClient {
	timeout := time.Duration(cfg.ApiTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &ApiClient{
		baseURL: cfg.ApiBaseURL,
		token:   cfg.ApiAuthToken,
		timeout: timeout,
		client: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 60 * time.Second,
		},
		log: logger.WithModule("api_client"),
	}
}

// Request gửi request tới API và trả về response envelope đã chuẩn hóa.
//
// Parameters:
// - ctx: Context (kiểm tra cancellation trước khi gửi)
// - endpoint: Endpoint descriptor (path tĩnh hoặc hàm dựng path)
// - payload: Body request (nil = không có body)
// - args: Tham số dựng path động
//
// Returns:
// - *Response: Envelope {Status, Data, Message, Pagination}
// - error: Lỗi cấu hình hoặc lỗi transport
func (c *ApiClient) Request(ctx context.Context, endpoint Endpoint, payload map[string]any, args ...any) (*Response, error) {
	if endpoint.IsZero() {
		return nil, common.ErrEndpointMissing
	}

	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, common.NewError(common.ErrCodeTransportRequest, "Request đã bị hủy", common.StatusBadRequest, err)
		}
	}

	path := endpoint.Resolve(args...)
	url := JoinPath(c.baseURL, path)

	method := endpoint.Method
	if method == "" {
		if payload != nil {
			method = fasthttp.MethodPost
		} else {
			method = fasthttp.MethodGet
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json; charset=utf-8")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	// GET không mang body: payload được chuyển thành query string
	if payload != nil && method == fasthttp.MethodGet {
		url = appendQuery(url, payload)
		payload = nil
	}
	req.SetRequestURI(url)

	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, common.NewError(common.ErrCodeTransportRequest, "Không thể serialize payload", common.StatusBadRequest, err)
		}
		req.SetBody(body)
	}

	start := time.Now()
	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"url":    url,
			"error":  err,
		}).Error("Request tới API thất bại")
		return nil, common.NewError(common.ErrCodeTransportRequest, common.MsgRequestFailed, common.StatusServiceUnavailable, err)
	}

	parsed, err := ParseResponse(resp.StatusCode(), resp.Body())
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"url":    url,
			"error":  err,
		}).Error("Không parse được response từ API")
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"url":      url,
		"status":   parsed.Status,
		"duration": time.Since(start).String(),
	}).Debug("API request hoàn tất")

	return parsed, nil
}

// appendQuery nối payload vào URL dưới dạng query string.
// Giá trị phức (map/slice) được encode JSON để server parse lại.
func appendQuery(url string, payload map[string]any) string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	for key, value := range payload {
		switch value.(type) {
		case map[string]any, []any:
			encoded, err := json.Marshal(value)
			if err != nil {
				continue
			}
			args.Set(key, string(encoded))
		default:
			args.Set(key, utility.ToString(value))
		}
	}

	if args.Len() == 0 {
		return url
	}
	return fmt.Sprintf("%s?%s", url, args.String())
}
