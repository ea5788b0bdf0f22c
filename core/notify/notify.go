// Package notify định nghĩa 2 collaborator bên ngoài mà core store tiêu thụ:
// sink thông báo cho user (toast success/error) và facility xác nhận cho các
// thao tác phá hủy. View layer cung cấp implementation thật; core chỉ phụ
// thuộc vào interface.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/logger"
)

// Notifier là sink thông báo cho user.
// Mọi kết quả của store operation (thành công lẫn thất bại) đều đi qua đây;
// store không bao giờ ném error ra ngoài public interface.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer là facility xác nhận cho thao tác phá hủy.
// Open đăng ký một callback chỉ được gọi khi user xác nhận; nếu user từ chối
// (hoặc không bao giờ trả lời) callback không được gọi và không có side-effect.
type Confirmer interface {
	Open(message string, onConfirm func())
}

// LogNotifier là Notifier mặc định ghi thông báo qua logrus.
// Console thật thay bằng implementation đẩy toast xuống frontend.
type LogNotifier struct {
	log *logrus.Entry
}

// NewLogNotifier tạo LogNotifier với scope đã cho
func NewLogNotifier(scope string) *LogNotifier {
	return &LogNotifier{log: logger.WithModule(scope)}
}

// Success ghi thông báo thành công
func (n *LogNotifier) Success(message string) {
	n.log.WithField("notify", "success").Info(message)
}

// Error ghi thông báo lỗi
func (n *LogNotifier) Error(message string) {
	n.log.WithField("notify", "error").Error(message)
}

// ConfirmCenter là Confirmer giữ các yêu cầu xác nhận đang chờ.
// Mỗi Open tạo một pending entry; Resolve(id, accepted) do view layer gọi khi
// user bấm xác nhận/hủy. Thread-safe.
type ConfirmCenter struct {
	mu      sync.Mutex
	nextID  int64
	pending map[int64]pendingConfirm
}

type pendingConfirm struct {
	Message   string
	OnConfirm func()
}

// NewConfirmCenter tạo ConfirmCenter rỗng
func NewConfirmCenter() *ConfirmCenter {
	return &ConfirmCenter{pending: make(map[int64]pendingConfirm)}
}

// Open đăng ký một yêu cầu xác nhận, trả về qua Pending()/Resolve()
func (c *ConfirmCenter) Open(message string, onConfirm func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.pending[c.nextID] = pendingConfirm{Message: message, OnConfirm: onConfirm}
}

// Pending trả về danh sách id và message của các yêu cầu đang chờ
func (c *ConfirmCenter) Pending() map[int64]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int64]string, len(c.pending))
	for id, p := range c.pending {
		out[id] = p.Message
	}
	return out
}

// Resolve kết thúc một yêu cầu xác nhận.
// Callback chỉ được gọi khi accepted=true; từ chối chỉ xóa entry.
// Trả về false nếu id không tồn tại (đã resolve hoặc chưa từng có).
func (c *ConfirmCenter) Resolve(id int64, accepted bool) bool {
	c.mu.Lock()
	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	if accepted && p.OnConfirm != nil {
		p.OnConfirm()
	}
	return true
}
