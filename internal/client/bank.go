// 원격 뱅킹 API와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - BANK_API_URL: 원격 API base URL (예: https://aula-angular.bcorp.tec.br/api)
//   - BANK_API_TIMEOUT: 요청 타임아웃 (default: 30s)
//   - BANK_API_INSECURE_SKIP_VERIFY: 개발용 자체 서명 인증서 허용
//
// 모든 도메인 요청은 Execute를 거친다:
//   - 저장된 access 토큰을 Bearer 헤더로 첨부
//   - 첫 시도가 401이면 refresh 후 정확히 한 번 재시도
//   - refresh 실패 시 토큰 저장소를 비우고 ErrSessionExpired 반환

package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/sistema-bancario/backend/internal/tokenstore"
	"go.uber.org/zap"
)

const (
	tokenEndpoint   = "/token/"
	refreshEndpoint = "/token/refresh/"
)

// BankClient 구조체 정의
//
// httpClient는 모든 요청 view가 공유하고, tokens와 onExpired는 view마다 다르다.
type BankClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenstore.Store
	logger     *zap.Logger
	onExpired  func(ctx context.Context)
}

// BankClient 객체 생성 (토큰은 메모리 저장소에 보관)
func NewBankClient(cfg config.BankAPIConfig, logger *zap.Logger) *BankClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // dev only
	}

	return &BankClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		tokens: tokenstore.NewMemory(),
		logger: logger.Named("bank_api"),
	}
}

// WithTokens는 같은 http.Client를 공유하면서 다른 토큰 저장소를 쓰는 view를 만든다.
func (c *BankClient) WithTokens(tokens tokenstore.Store) *BankClient {
	return &BankClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		tokens:     tokens,
		logger:     c.logger,
	}
}

func (c *BankClient) Tokens() tokenstore.Store {
	return c.tokens
}

// OnSessionExpired registers fn to run after an unrecoverable refresh failure.
func (c *BankClient) OnSessionExpired(fn func(ctx context.Context)) {
	c.onExpired = fn
}

func (c *BankClient) Get(ctx context.Context, endpoint string, out any) error {
	return c.Execute(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *BankClient) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.Execute(ctx, http.MethodPost, endpoint, body, out)
}

func (c *BankClient) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.Execute(ctx, http.MethodPut, endpoint, body, out)
}

func (c *BankClient) Delete(ctx context.Context, endpoint string) error {
	return c.Execute(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Execute는 논리 요청 하나당 최대 두 번의 물리 요청을 순차적으로 보낸다.
func (c *BankClient) Execute(ctx context.Context, method, endpoint string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
	}

	pair, _ := c.tokens.Get(ctx)
	status, respBody, err := c.send(ctx, method, endpoint, payload, pair.Access)
	if err != nil {
		return &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}

	if status == http.StatusUnauthorized {
		if err := c.Refresh(ctx); err != nil {
			c.logger.Warn("token refresh failed, ending session",
				zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
			c.tokens.Clear(ctx)
			if c.onExpired != nil {
				c.onExpired(ctx)
			}
			return ErrSessionExpired
		}

		pair, _ = c.tokens.Get(ctx)
		c.logger.Debug("retrying after token refresh", zap.String("method", method), zap.String("endpoint", endpoint))
		status, respBody, err = c.send(ctx, method, endpoint, payload, pair.Access)
		if err != nil {
			return &RequestError{Method: method, Endpoint: endpoint, Err: err}
		}
	}

	if status < 200 || status > 299 {
		return &RequestError{Method: method, Endpoint: endpoint, StatusCode: status}
	}

	// DELETE와 204는 본문이 없다.
	if status == http.StatusNoContent || method == http.MethodDelete || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &RequestError{Method: method, Endpoint: endpoint, StatusCode: status, Err: errors.Wrap(err, "failed to parse response")}
	}
	return nil
}

// Refresh는 refresh 토큰으로 새 access 토큰을 받아 저장한다. refresh 토큰은 그대로 둔다.
// 실패해도 저장소는 건드리지 않는다.
func (c *BankClient) Refresh(ctx context.Context) error {
	pair, _ := c.tokens.Get(ctx)
	if pair.Refresh == "" {
		return errNoRefreshToken
	}

	payload, err := json.Marshal(model.RefreshRequest{Refresh: pair.Refresh})
	if err != nil {
		return errors.Wrap(err, "failed to marshal refresh request")
	}

	status, respBody, err := c.send(ctx, http.MethodPost, refreshEndpoint, payload, "")
	if err != nil {
		return errors.Wrap(err, "failed to send refresh request")
	}
	if status < 200 || status > 299 {
		return errors.Errorf("refresh returned status: %d", status)
	}

	var refreshed model.RefreshResponse
	if err := json.Unmarshal(respBody, &refreshed); err != nil {
		return errors.Wrap(err, "failed to parse refresh response")
	}
	if refreshed.Access == "" {
		return errors.New("refresh response without access token")
	}

	c.tokens.Set(ctx, model.TokenPair{Access: refreshed.Access, Refresh: pair.Refresh})
	return nil
}

// ObtainTokens는 자격 증명을 토큰 쌍으로 교환한다 (인증 없이 호출). 저장은 호출자가 한다.
func (c *BankClient) ObtainTokens(ctx context.Context, creds model.Credentials) (model.TokenPair, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return model.TokenPair{}, errors.Wrap(err, "failed to marshal credentials")
	}

	status, respBody, err := c.send(ctx, http.MethodPost, tokenEndpoint, payload, "")
	if err != nil {
		return model.TokenPair{}, &RequestError{Method: http.MethodPost, Endpoint: tokenEndpoint, Err: err}
	}

	switch {
	case status == http.StatusBadRequest, status == http.StatusUnauthorized, status == http.StatusForbidden:
		return model.TokenPair{}, ErrInvalidCredentials
	case status < 200 || status > 299:
		return model.TokenPair{}, &RequestError{Method: http.MethodPost, Endpoint: tokenEndpoint, StatusCode: status}
	}

	var pair model.TokenPair
	if err := json.Unmarshal(respBody, &pair); err != nil {
		return model.TokenPair{}, &RequestError{Method: http.MethodPost, Endpoint: tokenEndpoint, StatusCode: status, Err: errors.Wrap(err, "failed to parse response")}
	}
	if pair.Access == "" || pair.Refresh == "" {
		return model.TokenPair{}, &RequestError{Method: http.MethodPost, Endpoint: tokenEndpoint, StatusCode: status, Err: errors.New("incomplete token pair")}
	}
	return pair, nil
}

// 물리 요청 한 번. access가 비어 있으면 인증 헤더 없이 보낸다.
func (c *BankClient) send(ctx context.Context, method, endpoint string, payload []byte, access string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "failed to read response")
	}

	c.logger.Debug("bank api call",
		zap.String("method", method), zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode))
	return resp.StatusCode, respBody, nil
}
