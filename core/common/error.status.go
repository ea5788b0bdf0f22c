package common

import "errors"

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized    = 401 // Chưa xác thực
	StatusForbidden       = 403 // Không có quyền truy cập
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusBadGateway          = 502 // Gateway không hợp lệ
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Thao tác thành công"
	MsgCreated = "Tạo mới thành công"
	MsgSaved   = "Lưu dữ liệu thành công"
	MsgDeleted = "Xóa dữ liệu thành công"
	MsgRestored = "Khôi phục dữ liệu thành công"

	// Error Messages
	MsgBadRequest       = "Yêu cầu không hợp lệ"
	MsgNotFound         = "Không tìm thấy tài nguyên"
	MsgInternalError    = "Lỗi hệ thống"
	MsgValidationError  = "Dữ liệu không hợp lệ"
	MsgEndpointMissing  = "Endpoint chưa được cấu hình cho module này"
	MsgRequestFailed    = "Không thể kết nối tới API, vui lòng thử lại"
	MsgFetchFailed      = "Không thể tải danh sách dữ liệu"
	MsgBoardFetchFailed = "Không thể tải dữ liệu bảng kanban"
	MsgMoveFailed       = "Không thể cập nhật trạng thái, bảng sẽ được tải lại"
)

// IsSuccessStatus kiểm tra status có phải 2xx thành công không
func IsSuccessStatus(status int) bool {
	return status >= StatusOK && status < 300
}

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: CFG_001)
	Category    string // Phân loại lỗi (ví dụ: Configuration)
	SubCategory string // Phân loại con (ví dụ: Endpoint)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Configuration Errors (CFG_xxx)
	ErrCodeConfig = ErrorCode{
		Code:        "CFG",
		Category:    "Configuration",
		SubCategory: "General",
		Description: "Lỗi cấu hình chung",
	}

	ErrCodeConfigEndpoint = ErrorCode{
		Code:        "CFG_001",
		Category:    "Configuration",
		SubCategory: "Endpoint",
		Description: "Endpoint bắt buộc chưa được khai báo",
	}

	// Transport Errors (NET_xxx)
	ErrCodeTransport = ErrorCode{
		Code:        "NET",
		Category:    "Transport",
		SubCategory: "General",
		Description: "Lỗi tầng vận chuyển chung",
	}

	ErrCodeTransportRequest = ErrorCode{
		Code:        "NET_001",
		Category:    "Transport",
		SubCategory: "Request",
		Description: "Lỗi khi gửi request tới API",
	}

	ErrCodeTransportDecode = ErrorCode{
		Code:        "NET_002",
		Category:    "Transport",
		SubCategory: "Decode",
		Description: "Lỗi khi parse response từ API",
	}

	// Server-reported Errors (API_xxx)
	ErrCodeApi = ErrorCode{
		Code:        "API",
		Category:    "Api",
		SubCategory: "General",
		Description: "API trả về lỗi nghiệp vụ",
	}

	ErrCodeApiStatus = ErrorCode{
		Code:        "API_001",
		Category:    "Api",
		SubCategory: "Status",
		Description: "API trả về status không thành công",
	}

	// State-sync Errors (SYNC_xxx)
	ErrCodeSync = ErrorCode{
		Code:        "SYNC",
		Category:    "Sync",
		SubCategory: "General",
		Description: "Lỗi đồng bộ state cục bộ với server",
	}

	ErrCodeSyncStale = ErrorCode{
		Code:        "SYNC_001",
		Category:    "Sync",
		SubCategory: "Stale",
		Description: "Response đã lỗi thời, bị bỏ qua",
	}

	ErrCodeSyncDiverged = ErrorCode{
		Code:        "SYNC_002",
		Category:    "Sync",
		SubCategory: "Diverged",
		Description: "State cục bộ lệch với server sau optimistic update",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code (nếu có)
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Configuration Errors
	ErrEndpointMissing = NewError(ErrCodeConfigEndpoint, MsgEndpointMissing, StatusInternalServerError, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Transport Errors
	ErrRequestFailed = NewError(ErrCodeTransportRequest, MsgRequestFailed, StatusServiceUnavailable, nil)
	ErrDecodeFailed  = NewError(ErrCodeTransportDecode, "Response từ API không đúng định dạng", StatusBadGateway, nil)

	// Sync Errors
	ErrStaleResponse = NewError(ErrCodeSyncStale, "Response đã bị thay thế bởi request mới hơn", StatusOK, nil)
)
