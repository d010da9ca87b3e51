// Package http provides the HTTP plumbing shared by outbound API clients.
package http

import (
	"net"
	"net/http"
	"time"
)

// defaultClientTimeout is used when the caller passes a non-positive timeout.
const defaultClientTimeout = 30 * time.Second

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// http.DefaultClient にはタイムアウトが無いため、全体のタイムアウトは常に設定します。
// 接続は銘柄ごとの並行リクエストで再利用されるよう、ホストあたりのアイドル接続数を確保します。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
