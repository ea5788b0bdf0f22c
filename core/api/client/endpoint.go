package client

import (
	"strings"
)

// BuildFunc dựng path từ một hoặc nhiều tham số (id, cờ favorite, ...).
// Dùng cho các endpoint nhúng id vào path (delete/restore/favorite/details).
type BuildFunc func(args ...any) string

// Endpoint mô tả một endpoint của API nghiệp vụ: hoặc một path tĩnh,
// hoặc một hàm dựng path từ tham số. Method rỗng sẽ được transport chọn
// mặc định (POST nếu có payload, GET nếu không).
type Endpoint struct {
	Method string    // HTTP method (GET/POST/PUT/DELETE), optional
	Path   string    // Path tĩnh, tương đối so với API base URL
	Build  BuildFunc // Hàm dựng path động, ưu tiên hơn Path nếu khác nil
}

// NewEndpoint tạo endpoint với path tĩnh
func NewEndpoint(method, path string) Endpoint {
	return Endpoint{Method: method, Path: path}
}

// NewDynamicEndpoint tạo endpoint với path động
func NewDynamicEndpoint(method string, build BuildFunc) Endpoint {
	return Endpoint{Method: method, Build: build}
}

// IsZero kiểm tra endpoint chưa được khai báo
func (e Endpoint) IsZero() bool {
	return e.Path == "" && e.Build == nil
}

// Resolve trả về path cuối cùng của endpoint
func (e Endpoint) Resolve(args ...any) string {
	if e.Build != nil {
		return e.Build(args...)
	}
	return e.Path
}

// EndpointSet là tập endpoint mà một Module Record Store cần.
// Get/Save/Delete/Restore/Favorite/GetDetails là bắt buộc;
// GetByStatus/UpdateStatus chỉ bắt buộc khi module dùng kanban.
// Endpoint thiếu không làm fail construction: store kiểm tra tại call time,
// log và báo user (lỗi cấu hình, không phải crash).
type EndpointSet struct {
	Get          Endpoint // Danh sách record (list)
	GetByStatus  Endpoint // Danh sách record nhóm theo status (kanban)
	GetDetails   Endpoint // Chi tiết một record
	Save         Endpoint // Tạo mới hoặc cập nhật (phân biệt bởi id trong payload)
	Delete       Endpoint // Soft-delete một record
	Restore      Endpoint // Khôi phục record đã soft-delete
	Favorite     Endpoint // Bật/tắt cờ favorite
	UpdateStatus Endpoint // Cập nhật status (kanban move)
}

// Missing trả về tên các endpoint bắt buộc chưa được khai báo.
// Nếu kanban=true thì GetByStatus và UpdateStatus cũng được coi là bắt buộc.
func (s EndpointSet) Missing(kanban bool) []string {
	missing := make([]string, 0, 8)
	if s.Get.IsZero() {
		missing = append(missing, "get")
	}
	if s.GetDetails.IsZero() {
		missing = append(missing, "getDetails")
	}
	if s.Save.IsZero() {
		missing = append(missing, "save")
	}
	if s.Delete.IsZero() {
		missing = append(missing, "delete")
	}
	if s.Restore.IsZero() {
		missing = append(missing, "restore")
	}
	if s.Favorite.IsZero() {
		missing = append(missing, "favorite")
	}
	if kanban {
		if s.GetByStatus.IsZero() {
			missing = append(missing, "getByStatus")
		}
		if s.UpdateStatus.IsZero() {
			missing = append(missing, "updateStatus")
		}
	}
	return missing
}

// AssociationEndpointSet là tập endpoint của một Association Store
type AssociationEndpointSet struct {
	Get     Endpoint // Danh sách record đã liên kết
	Save    Endpoint // Tạo liên kết
	Delete  Endpoint // Xóa liên kết
	Restore Endpoint // Khôi phục liên kết
}

// Missing trả về tên các endpoint bắt buộc chưa được khai báo
func (s AssociationEndpointSet) Missing() []string {
	missing := make([]string, 0, 4)
	if s.Get.IsZero() {
		missing = append(missing, "get")
	}
	if s.Save.IsZero() {
		missing = append(missing, "save")
	}
	if s.Delete.IsZero() {
		missing = append(missing, "delete")
	}
	if s.Restore.IsZero() {
		missing = append(missing, "restore")
	}
	return missing
}

// JoinPath nối base URL và path endpoint, tránh lặp dấu "/"
func JoinPath(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
