package client

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"retryafter-gateway/header/retryafter"
)

// Client embrulha um resty.Client configurado para honrar o Retry-After
// do servidor antes de repetir uma requisição limitada.
type Client struct {
	rc *resty.Client

	maxWait time.Duration
	now     func() time.Time
}

type Option func(*Client)

// WithRetryCount define quantas repetições além da tentativa original.
func WithRetryCount(n int) Option {
	return func(c *Client) { c.rc.SetRetryCount(n) }
}

// WithTimeout define o timeout por requisição.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// WithMaxWait limita a espera aceita de um Retry-After. Servidor pedindo
// mais que isso é tratado como "sem orientação" (backoff padrão), para um
// header hostil não pendurar o cliente por horas.
func WithMaxWait(d time.Duration) Option {
	return func(c *Client) { c.maxWait = d }
}

// WithNow troca o relógio usado para converter datas absolutas em espera.
// Existe para teste.
func WithNow(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		rc:      resty.New(),
		maxWait: 2 * time.Minute,
		now:     time.Now,
	}
	c.rc.
		SetBaseURL(baseURL).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return false
			}
			code := resp.StatusCode()
			return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
		}).
		SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
			if wait, ok := RetryWait(resp.Header(), c.now(), c.maxWait); ok {
				return wait, nil
			}
			// sem orientação utilizável: 0 deixa o resty aplicar o
			// backoff padrão
			return 0, nil
		})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// R abre uma requisição no resty subjacente.
func (c *Client) R() *resty.Request { return c.rc.R() }

// Resty expõe o cliente subjacente para configuração fina.
func (c *Client) Resty() *resty.Client { return c.rc }

// RetryWait extrai dos headers da resposta quanto esperar antes de
// repetir. Retorna ok=false quando não há Retry-After, quando ele não
// decodifica, ou quando a espera pedida passa de max — nesses casos quem
// chama decide o backoff.
//
// Datas absolutas viram espera relativa a now; data no passado vira 0
// (pode repetir já).
func RetryWait(h http.Header, now time.Time, max time.Duration) (time.Duration, bool) {
	ra, err := retryafter.Get(h)
	if err != nil {
		return 0, false
	}

	wait := ra.Wait(now)
	if max > 0 && wait > max {
		return 0, false
	}
	return wait, true
}
