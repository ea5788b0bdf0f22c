package client

import (
	"bytes"
	"encoding/json"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// Pagination chứa thông tin phân trang trong response envelope
type Pagination struct {
	TotalPages int64 `json:"total_pages"`
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
}

// Response là envelope chuẩn hóa duy nhất mà mọi store tiêu thụ.
// Server trả nhiều dạng body khác nhau (envelope {status, data, message},
// object trần, mảng trần); việc chuẩn hóa diễn ra MỘT lần tại đây thay vì
// rải rác trong từng store.
type Response struct {
	Status     int         // Status nghiệp vụ (từ envelope nếu có, nếu không là HTTP status)
	Data       any         // Body dữ liệu (giữ nguyên dạng JSON-like)
	Message    string      // Thông báo từ server (nếu có)
	Pagination *Pagination // Thông tin phân trang (nếu có)
}

// IsSuccess kiểm tra response có status 2xx không
func (r *Response) IsSuccess() bool {
	return r != nil && common.IsSuccessStatus(r.Status)
}

// Records trích danh sách record từ Data, chấp nhận cả 3 dạng server
// có thể trả: mảng trần, {"records": [...]} và {"data": [...]}.
func (r *Response) Records() []models.Record {
	if r == nil || r.Data == nil {
		return nil
	}

	// Dạng 1: mảng trần
	if recs := models.ToRecords(r.Data); recs != nil {
		return recs
	}

	// Dạng 2 + 3: object bọc dưới key "records" hoặc "data"
	if m, ok := r.Data.(map[string]any); ok {
		if recs := models.ToRecords(m["records"]); recs != nil {
			return recs
		}
		if recs := models.ToRecords(m["data"]); recs != nil {
			return recs
		}
	}

	return nil
}

// Record trích một record đơn từ Data (chi tiết, kết quả save/update).
// Chấp nhận object trần hoặc object bọc dưới "data".
func (r *Response) Record() models.Record {
	if r == nil || r.Data == nil {
		return nil
	}

	m, ok := r.Data.(map[string]any)
	if !ok {
		return nil
	}

	// Object bọc dưới "data"
	if inner, ok := m["data"].(map[string]any); ok {
		return models.Record(inner)
	}

	return models.Record(m)
}

// Board trích dữ liệu kanban từ Data, giữ nguyên dạng server trả
// (mảng group hoặc map cột).
func (r *Response) Board() *models.BoardData {
	if r == nil || r.Data == nil {
		return nil
	}

	// Envelope có thể bọc board dưới "records" hoặc "data"
	if m, ok := r.Data.(map[string]any); ok {
		if inner, ok := m["records"]; ok {
			if board := models.ParseBoardData(inner); board != nil {
				return board
			}
		}
		if inner, ok := m["data"]; ok {
			if board := models.ParseBoardData(inner); board != nil {
				return board
			}
		}
	}

	return models.ParseBoardData(r.Data)
}

// ParseResponse dựng Response từ HTTP status và body.
// Nếu body là envelope {status, data, message, pagination} thì status
// nghiệp vụ trong envelope được ưu tiên; nếu không, toàn bộ body trở thành
// Data và HTTP status được dùng trực tiếp.
func ParseResponse(httpStatus int, body []byte) (*Response, error) {
	resp := &Response{Status: httpStatus}

	if len(bytes.TrimSpace(body)) == 0 {
		return resp, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var parsed any
	if err := decoder.Decode(&parsed); err != nil {
		return nil, common.NewError(common.ErrCodeTransportDecode, "Response từ API không đúng định dạng JSON", common.StatusBadGateway, err)
	}

	m, ok := parsed.(map[string]any)
	if !ok {
		// Mảng trần hoặc scalar: dùng trực tiếp làm Data
		resp.Data = parsed
		return resp, nil
	}

	// Nhận diện envelope: có key "status" dạng số kèm "data" hoặc "message"
	statusVal, hasStatus := m["status"]
	_, hasData := m["data"]
	_, hasMessage := m["message"]
	if hasStatus && (hasData || hasMessage) {
		if status, ok := utility.ToInt(statusVal); ok {
			resp.Status = status
			resp.Data = m["data"]
			resp.Message = utility.ToString(m["message"])
			if p, ok := m["pagination"].(map[string]any); ok {
				pagination := &Pagination{}
				pagination.TotalPages, _ = utility.ToInt64(p["total_pages"])
				pagination.Total, _ = utility.ToInt64(p["total"])
				pagination.Page, _ = utility.ToInt64(p["page"])
				pagination.Limit, _ = utility.ToInt64(p["limit"])
				resp.Pagination = pagination
			}
			return resp, nil
		}
	}

	// Object trần (không phải envelope)
	resp.Data = m
	return resp, nil
}
