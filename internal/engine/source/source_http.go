// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/trace/inject"
)

// HTTPSource 从上游菜单接口获取菜单，转发调用方 token
type HTTPSource struct {
	endpoint string
	client   *resty.Client
}

func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPSource{
		endpoint: endpoint,
		client:   inject.InstrumentResty(client),
	}
}

func (s *HTTPSource) Name() string {
	return "http"
}

func (s *HTTPSource) Fetch(ctx context.Context, session *model.Session) ([]model.MenuRecord, error) {
	req := s.client.R().SetContext(ctx)
	if session != nil {
		if session.Token != "" {
			req.SetAuthToken(session.Token)
		}
		req.SetHeader("X-Tenant-Id", strconv.FormatUint(session.TenantId, 10))
	}

	resp, err := req.Get(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		log.Errorw("menu source request failed", "endpoint", s.endpoint, "statusCode", resp.StatusCode(), "response", resp.String())
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode())
	}
	return decodeRecords(resp.Body())
}
