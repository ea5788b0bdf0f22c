package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kết quả cho label "result" của các counter
const (
	resultSuccess = "success"
	resultError   = "error"
)

// Counters theo dõi hoạt động của tầng store.
// Console expose qua endpoint /metrics (Prometheus).
var (
	// requestsTotal đếm các network call do store phát ra, theo module/operation/kết quả
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm_console",
		Subsystem: "store",
		Name:      "requests_total",
		Help:      "Số network call do các module store phát ra",
	}, []string{"module", "operation", "result"})

	// staleResponsesTotal đếm response bị bỏ qua vì đã có request mới hơn
	staleResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm_console",
		Subsystem: "store",
		Name:      "stale_responses_total",
		Help:      "Số response lỗi thời bị generation guard loại bỏ",
	}, []string{"module", "operation"})

	// kanbanMovesTotal đếm các thao tác kéo thả kanban đã xử lý
	kanbanMovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm_console",
		Subsystem: "store",
		Name:      "kanban_moves_total",
		Help:      "Số thao tác kéo thả kanban, theo kết quả",
	}, []string{"module", "result"})
)

// countRequest ghi nhận một network call của store
func countRequest(module, operation string, success bool) {
	result := resultError
	if success {
		result = resultSuccess
	}
	requestsTotal.WithLabelValues(module, operation, result).Inc()
}

// countStale ghi nhận một response lỗi thời bị bỏ qua
func countStale(module, operation string) {
	staleResponsesTotal.WithLabelValues(module, operation).Inc()
}

// countKanbanMove ghi nhận một thao tác kéo thả kanban
func countKanbanMove(module string, success bool) {
	result := resultError
	if success {
		result = resultSuccess
	}
	kanbanMovesTotal.WithLabelValues(module, result).Inc()
}
