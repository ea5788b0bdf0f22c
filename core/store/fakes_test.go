package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	os.Exit(m.Run())
}

// apiCall ghi lại một request đã đi qua fake requester
type apiCall struct {
	Endpoint client.Endpoint
	Payload  map[string]any
	Args     []any
}

// Path trả về path đã resolve của call (tiện so khớp trong test)
func (c apiCall) Path() string {
	return c.Endpoint.Resolve(c.Args...)
}

// fakeRequester là Requester scripted: handler quyết định response theo call.
// Handler nil thì mọi call thành công với body rỗng.
type fakeRequester struct {
	mu      sync.Mutex
	calls   []apiCall
	handler func(call apiCall) (*client.Response, error)
}

func (f *fakeRequester) Request(ctx context.Context, endpoint client.Endpoint, payload map[string]any, args ...any) (*client.Response, error) {
	f.mu.Lock()
	call := apiCall{Endpoint: endpoint, Payload: payload, Args: args}
	f.calls = append(f.calls, call)
	handler := f.handler
	f.mu.Unlock()

	if handler == nil {
		return &client.Response{Status: 200}, nil
	}
	return handler(call)
}

// Calls trả về bản copy danh sách call đã ghi nhận
func (f *fakeRequester) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

// CallsTo lọc các call tới path chứa fragment đã cho
func (f *fakeRequester) CallsTo(fragment string) []apiCall {
	out := []apiCall{}
	for _, call := range f.Calls() {
		if strings.Contains(call.Path(), fragment) {
			out = append(out, call)
		}
	}
	return out
}

// fakeNotifier gom các thông báo đã phát
type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *fakeNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *fakeNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

func (n *fakeNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

// autoConfirmer xác nhận ngay mọi yêu cầu
type autoConfirmer struct{}

func (autoConfirmer) Open(message string, onConfirm func()) {
	onConfirm()
}

// manualConfirmer giữ callback lại cho đến khi test chủ động resolve
type manualConfirmer struct {
	mu       sync.Mutex
	pending  []func()
	messages []string
}

func (c *manualConfirmer) Open(message string, onConfirm func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, onConfirm)
	c.messages = append(c.messages, message)
}

// ConfirmAll chạy toàn bộ callback đang chờ (user bấm xác nhận)
func (c *manualConfirmer) ConfirmAll() {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

// PendingCount trả về số yêu cầu đang chờ
func (c *manualConfirmer) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// newTestStore tạo module store chuẩn cho test với endpoint convention
// /crm/widgets và kanban bật
func newTestStore(t *testing.T, api *fakeRequester, notifier *fakeNotifier, confirmer interface {
	Open(string, func())
}) *ModuleStore {
	t.Helper()

	endpoints := client.EndpointSet{
		Get:          client.NewEndpoint("POST", "/crm/widgets/get"),
		GetByStatus:  client.NewEndpoint("POST", "/crm/widgets/get-by-status"),
		GetDetails:   client.NewDynamicEndpoint("GET", testArgPath("/crm/widgets/get")),
		Save:         client.NewEndpoint("POST", "/crm/widgets/save"),
		Delete:       client.NewDynamicEndpoint("GET", testArgPath("/crm/widgets/delete")),
		Restore:      client.NewDynamicEndpoint("GET", testArgPath("/crm/widgets/restore")),
		Favorite:     client.NewDynamicEndpoint("GET", testArgPath("/crm/widgets/favorite")),
		UpdateStatus: client.NewEndpoint("POST", "/crm/widgets/update-status"),
	}

	s, err := NewModuleStore(ModuleConfig{
		Name:      "widgets",
		Kanban:    true,
		Endpoints: endpoints,
	}, Deps{API: api, Notifier: notifier, Confirmer: confirmer})
	if err != nil {
		t.Fatalf("NewModuleStore lỗi: %v", err)
	}
	return s
}

func testArgPath(prefix string) client.BuildFunc {
	return func(args ...any) string {
		path := prefix
		for _, arg := range args {
			path += fmt.Sprintf("/%v", arg)
		}
		return path
	}
}
