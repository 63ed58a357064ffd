// Package httpmetrics оборачивает исходящие HTTP-запросы сбором Prometheus-метрик.
// Используется интеграционным клиентом CatalogService: каждая логическая операция
// клиента помечается именем операции через контекст запроса.
package httpmetrics

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// Collector интерфейс сборщика метрик исходящих запросов
type Collector interface {
	ObserveUpstreamRequest(operation, status string, duration time.Duration)
}

type operationKey struct{}

// WithOperation помечает контекст запроса именем логической операции клиента
// (например, "ListPackages"). Метка попадает в метрики исходящих запросов.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

func operationFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok {
		return op
	}
	return "unknown"
}

// Transport http.RoundTripper, записывающий длительность и статус каждого запроса
type Transport struct {
	next      http.RoundTripper
	collector Collector
}

// WrapTransport оборачивает next сбором метрик
// Если collector == nil, возвращает next без изменений
func WrapTransport(next http.RoundTripper, collector Collector) http.RoundTripper {
	if collector == nil {
		return next
	}
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next, collector: collector}
}

// RoundTrip выполняет запрос и фиксирует метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	operation := operationFromContext(req.Context())
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.collector.ObserveUpstreamRequest(operation, status, duration)

	return resp, err
}
