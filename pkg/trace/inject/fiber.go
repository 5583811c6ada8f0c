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

package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const fiberTracerName = "github.com/go-arcade/navtree/pkg/trace/inject/fiber"

// FiberMiddleware 提取上游 trace 头并创建服务端 span，span 写入 UserContext
func FiberMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if ctx == nil {
			ctx = context.Background()
		}

		carrier := propagation.HeaderCarrier(http.Header{})
		for key, value := range c.Request().Header.All() {
			carrier.Set(string(key), string(value))
		}
		ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

		ctx, span := otel.Tracer(fiberTracerName).Start(ctx, c.Method()+" "+c.Path(), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.SetUserContext(ctx)

		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.target", string(c.Request().URI().RequestURI())),
		)
		if requestId, ok := c.Locals("request_id").(string); ok && requestId != "" {
			span.SetAttributes(attribute.String("http.request.id", requestId))
		}

		err := c.Next()

		statusCode := c.Response().StatusCode()
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
		switch {
		case err != nil:
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
		case statusCode >= 400:
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))
		default:
			span.SetStatus(codes.Ok, "")
		}
		return err
	}
}
