package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// BoardShape phân biệt 2 dạng dữ liệu kanban mà server có thể trả về
type BoardShape int

const (
	// BoardShapeGroups: mảng các group [{id, title, records: [...]}, ...]
	BoardShapeGroups BoardShape = iota + 1
	// BoardShapeColumns: map từ status sang danh sách record {"1": [...], "2": [...]}
	BoardShapeColumns
)

// BoardGroup là một cột kanban trong dạng mảng group.
// Danh sách card có thể nằm dưới key "records" hoặc "data" tùy endpoint;
// key gốc được giữ lại để serialize trả về đúng dạng server đã gửi.
type BoardGroup struct {
	ID      any      `json:"id"`
	Title   string   `json:"title"`
	Records []Record `json:"-"`

	recordsKey string
}

// StatusID trả về status của group dưới dạng string chuẩn
func (g *BoardGroup) StatusID() string {
	return utility.ToString(g.ID)
}

// MarshalJSON serialize group với đúng key danh sách card ban đầu
func (g BoardGroup) MarshalJSON() ([]byte, error) {
	key := g.recordsKey
	if key == "" {
		key = "records"
	}
	return json.Marshal(map[string]any{
		"id":    g.ID,
		"title": g.Title,
		key:     g.Records,
	})
}

// BoardData là dữ liệu kanban của một module.
// Cả 2 dạng (mảng group / map cột) đều được giữ nguyên dạng, không chuẩn hóa
// về một dạng duy nhất, vì engine reconcile xử lý được cả hai và view layer
// cần đúng dạng server đã trả.
type BoardData struct {
	Shape   BoardShape
	Groups  []BoardGroup
	Columns map[string][]Record

	// columnOrder giữ thứ tự duyệt ổn định cho dạng map
	columnOrder []string
}

// ParseBoardData dựng BoardData từ payload JSON-like của server.
// Trả về nil nếu dữ liệu không thuộc một trong hai dạng được hỗ trợ.
func ParseBoardData(value any) *BoardData {
	switch v := value.(type) {
	case *BoardData:
		return v
	case []any:
		groups := make([]BoardGroup, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			group := BoardGroup{
				ID:    m["id"],
				Title: utility.ToString(m["title"]),
			}
			// Danh sách card có thể nằm dưới "records" hoặc "data"
			if recs, ok := m["records"]; ok {
				group.Records = ToRecords(recs)
				group.recordsKey = "records"
			} else if recs, ok := m["data"]; ok {
				group.Records = ToRecords(recs)
				group.recordsKey = "data"
			} else {
				group.Records = []Record{}
			}
			groups = append(groups, group)
		}
		return &BoardData{Shape: BoardShapeGroups, Groups: groups}
	case map[string]any:
		columns := make(map[string][]Record, len(v))
		order := make([]string, 0, len(v))
		for status, recs := range v {
			columns[status] = ToRecords(recs)
			order = append(order, status)
		}
		return &BoardData{Shape: BoardShapeColumns, Columns: columns, columnOrder: order}
	default:
		return nil
	}
}

// Statuses trả về danh sách status id của các cột theo thứ tự ổn định
func (b *BoardData) Statuses() []string {
	if b == nil {
		return nil
	}
	switch b.Shape {
	case BoardShapeGroups:
		out := make([]string, len(b.Groups))
		for i := range b.Groups {
			out[i] = b.Groups[i].StatusID()
		}
		return out
	case BoardShapeColumns:
		return append([]string(nil), b.columnOrder...)
	}
	return nil
}

// ColumnRecords trả về danh sách record của một cột theo status
func (b *BoardData) ColumnRecords(status string) ([]Record, bool) {
	if b == nil {
		return nil, false
	}
	switch b.Shape {
	case BoardShapeGroups:
		for i := range b.Groups {
			if b.Groups[i].StatusID() == status {
				return b.Groups[i].Records, true
			}
		}
	case BoardShapeColumns:
		recs, ok := b.Columns[status]
		return recs, ok
	}
	return nil, false
}

// SetColumnRecords thay danh sách record của một cột (dùng trên bản clone)
func (b *BoardData) SetColumnRecords(status string, records []Record) bool {
	if b == nil {
		return false
	}
	switch b.Shape {
	case BoardShapeGroups:
		for i := range b.Groups {
			if b.Groups[i].StatusID() == status {
				b.Groups[i].Records = records
				return true
			}
		}
	case BoardShapeColumns:
		if _, ok := b.Columns[status]; ok {
			b.Columns[status] = records
			return true
		}
	}
	return false
}

// Clone copy toàn bộ cấu trúc board (mảng/map mới, record mới).
// Engine reconcile luôn mutate trên bản clone rồi publish nguyên khối,
// để subscriber của store nhận được tham chiếu mới và re-render đúng.
func (b *BoardData) Clone() *BoardData {
	if b == nil {
		return nil
	}
	out := &BoardData{Shape: b.Shape}
	switch b.Shape {
	case BoardShapeGroups:
		out.Groups = make([]BoardGroup, len(b.Groups))
		for i, g := range b.Groups {
			out.Groups[i] = BoardGroup{
				ID:         g.ID,
				Title:      g.Title,
				Records:    CloneRecords(g.Records),
				recordsKey: g.recordsKey,
			}
		}
	case BoardShapeColumns:
		out.Columns = make(map[string][]Record, len(b.Columns))
		for status, recs := range b.Columns {
			out.Columns[status] = CloneRecords(recs)
		}
		out.columnOrder = append([]string(nil), b.columnOrder...)
	}
	return out
}

// MarshalJSON serialize board theo đúng dạng gốc của server
func (b *BoardData) MarshalJSON() ([]byte, error) {
	switch b.Shape {
	case BoardShapeGroups:
		return json.Marshal(b.Groups)
	case BoardShapeColumns:
		return json.Marshal(b.Columns)
	}
	return []byte("null"), nil
}

// CardRef là định danh composite của một card trên bảng kanban.
// Record id có thể trùng nhau giữa các cột (và vị trí phải định danh được
// độc lập với record id), nên một card chỉ được xác định duy nhất bởi
// bộ ba (status, id, index) — không bao giờ bởi id trần.
type CardRef struct {
	Status string // Status id của cột chứa card
	ID     string // Record id (dạng string chuẩn)
	Index  int    // Vị trí của card trong cột
}

// String trả về dạng wire "<status>-<id>-<index>" dùng bởi tầng drag-and-drop
func (c CardRef) String() string {
	return fmt.Sprintf("%s-%s-%d", c.Status, c.ID, c.Index)
}

// ParseCardRef parse định danh card từ dạng wire "<status>-<id>-<index>".
// Segment đầu là status, segment cuối là index; phần giữa (có thể chứa dấu
// gạch) là record id.
func ParseCardRef(raw string) (CardRef, bool) {
	parts := strings.Split(raw, "-")
	if len(parts) < 3 {
		return CardRef{}, false
	}

	index, ok := utility.ToInt(parts[len(parts)-1])
	if !ok || index < 0 {
		return CardRef{}, false
	}

	return CardRef{
		Status: parts[0],
		ID:     strings.Join(parts[1:len(parts)-1], "-"),
		Index:  index,
	}, true
}

// NormalizeStatusID chuẩn hóa status id của drop target.
// Một số tầng DOM encode cột dưới dạng "<status>-..."; khi đó segment đầu
// mới là status id thật. Giá trị không chứa dấu gạch được dùng trực tiếp.
func NormalizeStatusID(raw string) string {
	if idx := strings.Index(raw, "-"); idx > 0 {
		return raw[:idx]
	}
	return raw
}

// Locate tìm cột và vị trí hiện tại của card theo CardRef.
// So khớp đủ bộ ba (status, index hợp lệ, id tại index đúng) để an toàn với
// record id trùng nhau giữa các cột.
func (b *BoardData) Locate(ref CardRef) (status string, index int, ok bool) {
	records, found := b.ColumnRecords(ref.Status)
	if !found {
		return "", 0, false
	}
	if ref.Index < 0 || ref.Index >= len(records) {
		return "", 0, false
	}
	if records[ref.Index].ID() != ref.ID {
		return "", 0, false
	}
	return ref.Status, ref.Index, true
}
