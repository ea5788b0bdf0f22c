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

// AssociationConfig là cấu hình tạo một Association Store
type AssociationConfig struct {
	Name      string `validate:"required,module_name"`
	Endpoints client.AssociationEndpointSet
}

// AssociationStore quản lý liên kết many-to-many giữa hai module: các record
// thuộc target module đang gắn với một record nguồn (ví dụ: các contact của
// một account). State gắn với key của lần fetch gần nhất; đổi key là fetch lại.
//
// Khác ModuleStore, xóa liên kết là optimistic (link nhẹ, tạo lại rẻ) còn
// save thì refetch toàn bộ để lấy dữ liệu link server sinh ra.
type AssociationStore struct {
	name      string
	endpoints client.AssociationEndpointSet
	api       client.Requester
	notifier  notify.Notifier
	log       *logrus.Entry

	mu          sync.RWMutex
	key         models.AssociationKey
	records     []models.Record
	selectedIds []string
	loading     bool
	lastError   error
	gen         uint64
}

// NewAssociationStore tạo Association Store từ cấu hình
func NewAssociationStore(cfg AssociationConfig, deps Deps) (*AssociationStore, error) {
	if global.Validate != nil {
		if err := global.Validate.Struct(cfg); err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
		}
	} else if cfg.Name == "" {
		return nil, common.ErrRequiredField
	}

	if deps.API == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu API client cho association store", common.StatusInternalServerError, nil)
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewLogNotifier(cfg.Name)
	}

	s := &AssociationStore{
		name:      cfg.Name,
		endpoints: cfg.Endpoints,
		api:       deps.API,
		notifier:  deps.Notifier,
		log:       logger.WithModule("association." + cfg.Name),
		records:   []models.Record{},
	}

	if missing := cfg.Endpoints.Missing(); len(missing) > 0 {
		s.log.WithField("missing", missing).Warn("Association store thiếu endpoint")
	}

	return s, nil
}

// FetchRecords tải danh sách record đã liên kết theo key.
// Counter và danh sách id được suy ra từ kết quả — không có state đếm riêng
// để lệch được.
func (s *AssociationStore) FetchRecords(ctx context.Context, key models.AssociationKey) {
	if s.endpoints.Get.IsZero() {
		s.failConfig("fetch")
		return
	}
	if global.Validate != nil {
		if err := global.Validate.Struct(key); err != nil {
			s.setError(common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return
		}
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.key = key
	s.loading = true
	s.lastError = nil
	s.mu.Unlock()

	resp, err := s.api.Request(ctx, s.endpoints.Get, key.Payload())

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		countStale(s.name, "fetch")
		return
	}
	s.loading = false

	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "fetch", false)
		s.records = []models.Record{}
		s.selectedIds = nil
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
	s.selectedIds = recordIDs(records)
}

// SaveRecord tạo liên kết giữa record nguồn của key và targetID.
// Thành công thì refetch toàn bộ theo cùng key: dữ liệu link (timestamp,
// id link, ...) do server sinh, không đoán cục bộ.
func (s *AssociationStore) SaveRecord(ctx context.Context, key models.AssociationKey, targetID string) {
	if targetID == "" || targetID == "0" {
		return
	}
	if s.endpoints.Save.IsZero() {
		s.failConfig("save")
		return
	}

	payload := key.Payload()
	payload["target_module_id"] = targetID

	resp, err := s.api.Request(ctx, s.endpoints.Save, payload)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "save", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		return
	}

	countRequest(s.name, "save", true)

	message := common.MsgSaved
	if resp.Message != "" {
		message = resp.Message
	}
	s.notifier.Success(message)

	s.FetchRecords(ctx, key)
}

// DeleteRecord gỡ liên kết với targetID, optimistic: record biến mất khỏi
// danh sách cục bộ ngay, server được báo sau. Thất bại thì refetch để đồng
// bộ lại.
func (s *AssociationStore) DeleteRecord(ctx context.Context, key models.AssociationKey, targetID string) {
	if targetID == "" || targetID == "0" {
		return
	}
	if s.endpoints.Delete.IsZero() {
		s.failConfig("delete")
		return
	}

	s.mu.Lock()
	kept := make([]models.Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.ID() != targetID {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	s.selectedIds = recordIDs(kept)
	s.mu.Unlock()

	payload := key.Payload()
	payload["target_module_id"] = targetID

	resp, err := s.api.Request(ctx, s.endpoints.Delete, payload)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "delete", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		s.FetchRecords(ctx, key)
		return
	}

	countRequest(s.name, "delete", true)

	message := common.MsgDeleted
	if resp.Message != "" {
		message = resp.Message
	}
	s.notifier.Success(message)
}

// RestoreRecord khôi phục một liên kết đã soft-delete.
// Chỉ gọi server — link đã xóa không còn trong state cục bộ nên không có gì
// để mutate; caller refetch nếu cần hiển thị lại.
func (s *AssociationStore) RestoreRecord(ctx context.Context, key models.AssociationKey, targetID string) {
	if targetID == "" || targetID == "0" {
		return
	}
	if s.endpoints.Restore.IsZero() {
		s.failConfig("restore")
		return
	}

	payload := key.Payload()
	payload["target_module_id"] = targetID

	resp, err := s.api.Request(ctx, s.endpoints.Restore, payload)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "restore", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		return
	}

	countRequest(s.name, "restore", true)

	message := common.MsgRestored
	if resp.Message != "" {
		message = resp.Message
	}
	s.notifier.Success(message)
}

// Records trả về danh sách record đã liên kết của key hiện tại
func (s *AssociationStore) Records() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// SelectedIds trả về id của các record đã liên kết (đánh dấu checkbox trong
// picker)
func (s *AssociationStore) SelectedIds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.selectedIds...)
}

// Counter trả về số record đã liên kết (badge trên tab liên kết)
func (s *AssociationStore) Counter() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Key trả về key của lần fetch gần nhất
func (s *AssociationStore) Key() models.AssociationKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Loading kiểm tra có đang tải không
func (s *AssociationStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError trả về lỗi gần nhất (nil nếu operation cuối thành công)
func (s *AssociationStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Name trả về tên của association store
func (s *AssociationStore) Name() string {
	return s.name
}

func (s *AssociationStore) failConfig(operation string) {
	s.log.WithField("operation", operation).Error("Endpoint chưa được cấu hình")
	s.mu.Lock()
	s.lastError = common.ErrEndpointMissing
	s.mu.Unlock()
	s.notifier.Error(common.MsgEndpointMissing)
}

func (s *AssociationStore) describeFailure(resp *client.Response, err error, fallback string) error {
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

func (s *AssociationStore) setError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
	s.notifier.Error(err.Error())
}

// recordIDs trích id chuẩn hóa từ danh sách record
func recordIDs(records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		if id := rec.ID(); id != "" {
			out = append(out, id)
		}
	}
	return out
}
