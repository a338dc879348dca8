package metrics

import "time"

// CacheHit увеличивает счетчик попаданий в кеш результатов
func (m *Metrics) CacheHit(operation string) {
	m.CacheHits.WithLabelValues(operation).Inc()
}

// CacheMiss увеличивает счетчик промахов кеша результатов
func (m *Metrics) CacheMiss(operation string) {
	m.CacheMisses.WithLabelValues(operation).Inc()
}

// CacheShared увеличивает счетчик вычислений, разделенных между
// конкурентными вызовами через single-flight
func (m *Metrics) CacheShared(operation string) {
	m.CacheSharedTotal.WithLabelValues(operation).Inc()
}

// ObserveEvaluation записывает длительность полного вычисления движка
func (m *Metrics) ObserveEvaluation(operation string, d time.Duration) {
	m.EvaluationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveDBQuery записывает метрики выполненного запроса к базе данных
func (m *Metrics) ObserveDBQuery(query string, d time.Duration, success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(query, status).Inc()
	m.DBQueryDuration.WithLabelValues(query).Observe(d.Seconds())
}

// ObserveHTTPRequest записывает метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
