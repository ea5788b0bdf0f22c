package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/logger"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/notify"
)

// DefaultPageLimit là số record mỗi trang mặc định
const DefaultPageLimit = 20

// Deps là tập collaborator mà mọi store cần: network boundary, sink thông báo
// và facility xác nhận. Test thay bằng fake implementation.
type Deps struct {
	API       client.Requester
	Notifier  notify.Notifier
	Confirmer notify.Confirmer
}

// ModuleConfig là cấu hình tạo một Module Record Store.
// Name phải là tên module hợp lệ (chữ thường, số, gạch dưới).
type ModuleConfig struct {
	Name        string `validate:"required,module_name"`
	Endpoints   client.EndpointSet
	Filters     []models.FieldOption // Catalog filter field của module
	ViewTabs    []models.FieldOption // Catalog view tab của module
	DefaultTab  string               // Tab được bảo vệ, không thể remove (mặc định DefaultViewTab)
	Kanban      bool                 // Module có dùng bảng kanban không
	PageLimit   int                  // Số record mỗi trang (mặc định DefaultPageLimit)
	MaxFilters  int                  // Capacity filter (mặc định DefaultMaxFilters)
	MaxViewTabs int                  // Capacity view tab (mặc định DefaultMaxViewTabs)

	// ExtraPayload được gọi mỗi lần dựng payload fetch để bổ sung tham số
	// riêng của module (ví dụ: id của parent record). Luôn là hàm — giá trị
	// tĩnh thì trả về map cố định.
	ExtraPayload func(s *ModuleStore) map[string]any
}

// ModuleStore là store trung tâm của một module: giữ danh sách record, chi
// tiết record, bảng kanban, trạng thái loading/phân trang và toàn bộ các
// operation CRUD. Mỗi module (lead, contact, deal, ...) có một instance riêng
// tạo qua NewModuleStore.
//
// Mọi network call đi qua Deps.API; kết quả (thành công/thất bại) báo user
// qua Deps.Notifier — store không ném error ra public interface, lỗi gần nhất
// đọc được qua LastError().
//
// Response lỗi thời: mỗi loại fetch giữ một generation counter, tăng khi phát
// request mới; response về mang generation cũ bị bỏ qua, nên kết quả của
// request cuối cùng luôn thắng bất kể thứ tự response về.
type ModuleStore struct {
	name      string
	endpoints client.EndpointSet
	kanban    bool
	api       client.Requester
	notifier  notify.Notifier
	confirmer notify.Confirmer
	extra     func(*ModuleStore) map[string]any
	log       *logrus.Entry

	// Filters và ViewTabs là store con, mỗi cái tự khóa riêng
	Filters  *FilterStore
	ViewTabs *ViewTabStore

	mu             sync.RWMutex
	records        []models.Record
	recordDetails  map[string]models.Record
	selected       models.Record
	board          *models.BoardData
	loading        bool
	loadingBoard   bool
	loadingDetails map[string]bool
	lastError      error

	page       int64
	limit      int64
	totalPages int64
	total      int64
	fetchAll   bool

	genFetch   uint64
	genKanban  uint64
	genDetails map[string]uint64
}

// NewModuleStore tạo Module Record Store từ cấu hình.
//
// Parameters:
// - cfg: Cấu hình module (tên, endpoint set, catalog filter/tab, ...)
// - deps: Collaborator (API client, notifier, confirmer)
//
// Returns:
// - *ModuleStore: Store đã khởi tạo
// - error: Lỗi validate cấu hình hoặc thiếu collaborator bắt buộc
//
// Endpoint thiếu KHÔNG làm fail construction: đây là lỗi cấu hình phát hiện
// tại call time (log + báo user), để console vẫn chạy được các module còn lại.
func NewModuleStore(cfg ModuleConfig, deps Deps) (*ModuleStore, error) {
	if global.Validate != nil {
		if err := global.Validate.Struct(cfg); err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
		}
	} else if cfg.Name == "" {
		return nil, common.ErrRequiredField
	}

	if deps.API == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu API client cho module store", common.StatusInternalServerError, nil)
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewLogNotifier(cfg.Name)
	}

	limit := int64(cfg.PageLimit)
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	s := &ModuleStore{
		name:           cfg.Name,
		endpoints:      cfg.Endpoints,
		kanban:         cfg.Kanban,
		api:            deps.API,
		notifier:       deps.Notifier,
		confirmer:      deps.Confirmer,
		extra:          cfg.ExtraPayload,
		log:            logger.WithModule("store." + cfg.Name),
		Filters:        NewFilterStore(cfg.Filters, cfg.MaxFilters),
		ViewTabs:       NewViewTabStore(cfg.ViewTabs, cfg.MaxViewTabs, cfg.DefaultTab),
		records:        []models.Record{},
		recordDetails:  make(map[string]models.Record),
		loadingDetails: make(map[string]bool),
		page:           1,
		limit:          limit,
		genDetails:     make(map[string]uint64),
	}

	if missing := cfg.Endpoints.Missing(cfg.Kanban); len(missing) > 0 {
		s.log.WithField("missing", missing).Warn("Module thiếu endpoint, các operation tương ứng sẽ báo lỗi cấu hình")
	}

	return s, nil
}

// Name trả về tên module
func (s *ModuleStore) Name() string {
	return s.name
}

// FetchRecords tải danh sách record theo trang/filter/view tab hiện tại.
// Thất bại (transport hoặc status không 2xx) reset danh sách về rỗng và báo
// user; response lỗi thời bị bỏ qua.
func (s *ModuleStore) FetchRecords(ctx context.Context) {
	if s.endpoints.Get.IsZero() {
		s.failConfig("fetch")
		return
	}

	s.mu.Lock()
	s.genFetch++
	gen := s.genFetch
	s.loading = true
	s.lastError = nil
	page, limit, fetchAll := s.page, s.limit, s.fetchAll
	s.mu.Unlock()

	payload := s.buildPayload(page, limit, fetchAll)

	resp, err := s.api.Request(ctx, s.endpoints.Get, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.genFetch {
		countStale(s.name, "fetch")
		return
	}
	s.loading = false

	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "fetch", false)
		s.records = []models.Record{}
		s.totalPages = 0
		s.total = 0
		s.lastError = s.describeFailure(resp, err, common.MsgFetchFailed)
		s.notifier.Error(s.lastError.Error())
		return
	}

	countRequest(s.name, "fetch", true)
	records := resp.Records()
	if records == nil {
		records = []models.Record{}
	}
	s.records = records
	if resp.Pagination != nil {
		s.totalPages = resp.Pagination.TotalPages
		s.total = resp.Pagination.Total
	} else {
		s.totalPages = 1
		s.total = int64(len(records))
	}
}

// FetchKanbanRecords tải dữ liệu bảng kanban (record nhóm theo status).
// Dạng dữ liệu server trả (mảng group hoặc map cột) được giữ nguyên.
func (s *ModuleStore) FetchKanbanRecords(ctx context.Context) {
	if s.endpoints.GetByStatus.IsZero() {
		s.failConfig("fetch_kanban")
		return
	}

	s.mu.Lock()
	s.genKanban++
	gen := s.genKanban
	s.loadingBoard = true
	s.mu.Unlock()

	payload := s.buildPayload(0, 0, true)

	resp, err := s.api.Request(ctx, s.endpoints.GetByStatus, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.genKanban {
		countStale(s.name, "fetch_kanban")
		return
	}
	s.loadingBoard = false

	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "fetch_kanban", false)
		s.lastError = s.describeFailure(resp, err, common.MsgBoardFetchFailed)
		s.notifier.Error(s.lastError.Error())
		return
	}

	countRequest(s.name, "fetch_kanban", true)
	s.board = resp.Board()
}

// FetchRecordDetails tải chi tiết một record và cache theo id.
// No-op khi id rỗng/"0" (record chưa tồn tại) hoặc endpoint chưa cấu hình —
// panel chi tiết mở cho record mới không được phép phát request.
func (s *ModuleStore) FetchRecordDetails(ctx context.Context, id string) {
	if id == "" || id == "0" {
		return
	}
	if s.endpoints.GetDetails.IsZero() {
		s.log.Warn("Endpoint getDetails chưa được cấu hình")
		return
	}

	s.mu.Lock()
	s.genDetails[id]++
	gen := s.genDetails[id]
	s.loadingDetails[id] = true
	s.mu.Unlock()

	resp, err := s.api.Request(ctx, s.endpoints.GetDetails, nil, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.genDetails[id] {
		countStale(s.name, "fetch_details")
		return
	}
	delete(s.loadingDetails, id)

	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "fetch_details", false)
		s.lastError = s.describeFailure(resp, err, common.MsgFetchFailed)
		s.notifier.Error(s.lastError.Error())
		return
	}

	countRequest(s.name, "fetch_details", true)
	if rec := resp.Record(); rec != nil {
		s.recordDetails[id] = rec
	}
}

// GetRecord tìm record theo id trong state cục bộ (cache chi tiết trước,
// danh sách sau). Không phát network call — trả về nil nếu chưa có.
func (s *ModuleStore) GetRecord(id string) models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.recordDetails[id]; ok {
		return rec
	}
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec
		}
	}
	return nil
}

// buildPayload dựng payload fetch từ trạng thái phân trang, view tab đang
// active, filter đã chuẩn hóa và extra payload của module.
// Gọi ngoài lock: ExtraPayload có thể đọc lại store qua accessor.
func (s *ModuleStore) buildPayload(page, limit int64, fetchAll bool) map[string]any {
	payload := map[string]any{}

	if fetchAll {
		payload["fetch_all"] = true
	} else {
		payload["page"] = page
		payload["limit"] = limit
	}

	if view := s.ViewTabs.ActiveTab(); view != "" {
		payload["view"] = view
	}

	for key, value := range NormalizePayload(s.Filters.Payload()) {
		payload[key] = value
	}

	if s.extra != nil {
		for key, value := range s.extra(s) {
			payload[key] = value
		}
	}

	return payload
}

// failConfig ghi nhận lỗi cấu hình endpoint: log, set lastError, báo user
func (s *ModuleStore) failConfig(operation string) {
	s.log.WithField("operation", operation).Error("Endpoint chưa được cấu hình")
	s.mu.Lock()
	s.lastError = common.ErrEndpointMissing
	s.mu.Unlock()
	s.notifier.Error(common.MsgEndpointMissing)
}

// describeFailure quy một request thất bại về một error duy nhất:
// lỗi transport giữ nguyên, status không 2xx dùng message server (nếu có)
// hoặc fallback message đã cho.
func (s *ModuleStore) describeFailure(resp *client.Response, err error, fallback string) error {
	if err != nil {
		return err
	}
	message := fallback
	if resp != nil && resp.Message != "" {
		message = resp.Message
	}
	status := common.StatusInternalServerError
	if resp != nil {
		status = resp.Status
	}
	return common.NewError(common.ErrCodeApiStatus, message, status, nil)
}

// ==================== Phân trang ====================

// SetPage đặt trang hiện tại (>= 1). Caller gọi FetchRecords để tải lại.
func (s *ModuleStore) SetPage(page int64) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// SetLimit đặt số record mỗi trang và quay về trang 1
func (s *ModuleStore) SetLimit(limit int64) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	s.mu.Lock()
	s.limit = limit
	s.page = 1
	s.mu.Unlock()
}

// SetFetchAll bật/tắt chế độ tải toàn bộ (bỏ qua phân trang)
func (s *ModuleStore) SetFetchAll(fetchAll bool) {
	s.mu.Lock()
	s.fetchAll = fetchAll
	s.mu.Unlock()
}

// ==================== Accessor ====================

// Records trả về danh sách record hiện tại (tham chiếu, không copy)
func (s *ModuleStore) Records() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Board trả về dữ liệu kanban hiện tại (nil nếu chưa tải)
func (s *ModuleStore) Board() *models.BoardData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// RecordDetails trả về record chi tiết đã cache theo id (nil nếu chưa tải)
func (s *ModuleStore) RecordDetails(id string) models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordDetails[id]
}

// Selected trả về record đang được chọn (nil nếu không có)
func (s *ModuleStore) Selected() models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Loading kiểm tra có đang tải danh sách không
func (s *ModuleStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LoadingBoard kiểm tra có đang tải bảng kanban không
func (s *ModuleStore) LoadingBoard() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingBoard
}

// LoadingDetails kiểm tra có đang tải chi tiết của một record không
func (s *ModuleStore) LoadingDetails(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingDetails[id]
}

// LastError trả về lỗi gần nhất của store (nil nếu operation cuối thành công)
func (s *ModuleStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Page trả về trang hiện tại
func (s *ModuleStore) Page() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// TotalPages trả về tổng số trang của lần fetch gần nhất
func (s *ModuleStore) TotalPages() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPages
}

// Total trả về tổng số record của lần fetch gần nhất
func (s *ModuleStore) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Limit trả về số record mỗi trang
func (s *ModuleStore) Limit() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limit
}

// Endpoints trả về endpoint set của module
func (s *ModuleStore) Endpoints() client.EndpointSet {
	return s.endpoints
}
