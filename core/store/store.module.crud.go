package store

import (
	"context"
	"fmt"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// SaveRecord tạo một record mới qua endpoint save.
// Không optimistic: record chỉ được prepend vào danh sách khi server xác
// nhận 2xx. onSuccess (nếu khác nil) được gọi với record server trả về —
// dùng để đóng form, điều hướng sang trang chi tiết, ...
func (s *ModuleStore) SaveRecord(ctx context.Context, payload map[string]any, onSuccess func(models.Record)) {
	if s.endpoints.Save.IsZero() {
		s.failConfig("save")
		return
	}

	resp, err := s.api.Request(ctx, s.endpoints.Save, payload)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "save", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		return
	}

	countRequest(s.name, "save", true)

	saved := resp.Record()
	if saved == nil {
		// Server xác nhận nhưng không echo record: dùng payload đã gửi
		saved = models.Record(utility.DeepCopyMap(payload))
	}

	s.mu.Lock()
	s.records = append([]models.Record{saved}, s.records...)
	s.total++
	s.lastError = nil
	s.mu.Unlock()

	message := common.MsgSaved
	if resp.Message != "" {
		message = resp.Message
	}
	s.notifier.Success(message)

	if onSuccess != nil {
		onSuccess(saved)
	}
}

// UpdateRecord cập nhật một record đã tồn tại (payload phải chứa id).
// Record cục bộ được merge shallow với dữ liệu server trả về (hoặc payload
// nếu server không echo) — field không gửi lên được giữ nguyên.
func (s *ModuleStore) UpdateRecord(ctx context.Context, payload map[string]any) {
	id := utility.ToString(payload[models.FieldID])
	if id == "" || id == "0" {
		s.setError(common.ErrRequiredField)
		s.notifier.Error(common.MsgValidationError)
		return
	}
	if s.endpoints.Save.IsZero() {
		s.failConfig("update")
		return
	}

	resp, err := s.api.Request(ctx, s.endpoints.Save, payload)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "update", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		return
	}

	countRequest(s.name, "update", true)

	changes := resp.Record()
	if changes == nil {
		changes = models.Record(utility.DeepCopyMap(payload))
	}
	s.applyChanges(id, changes)

	message := common.MsgSaved
	if resp.Message != "" {
		message = resp.Message
	}
	s.notifier.Success(message)
}

// DeleteRecord soft-delete một record, có bước xác nhận bắt buộc.
// Không có network call nào được phát trước khi user xác nhận; từ chối là
// no-op hoàn toàn. Khi server xác nhận, record cục bộ được đánh dấu
// deleted=1 (vẫn nằm trong danh sách để còn restore được).
func (s *ModuleStore) DeleteRecord(ctx context.Context, id string) {
	if id == "" || id == "0" {
		return
	}
	if s.endpoints.Delete.IsZero() {
		s.failConfig("delete")
		return
	}
	if s.confirmer == nil {
		s.log.Error("Thiếu confirmer, thao tác xóa bị chặn")
		return
	}

	// User có thể xác nhận sau khi request mở dialog đã kết thúc: tách
	// cancellation khỏi ctx gốc để call xóa không chết theo request cũ
	deleteCtx := context.Background()
	if ctx != nil {
		deleteCtx = context.WithoutCancel(ctx)
	}

	s.confirmer.Open(fmt.Sprintf("Bạn có chắc muốn xóa bản ghi #%s?", id), func() {
		resp, err := s.api.Request(deleteCtx, s.endpoints.Delete, nil, id)
		if err != nil || !resp.IsSuccess() {
			countRequest(s.name, "delete", false)
			s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
			return
		}

		countRequest(s.name, "delete", true)
		s.applyFlag(id, models.FieldDeleted, 1)

		message := common.MsgDeleted
		if resp.Message != "" {
			message = resp.Message
		}
		s.notifier.Success(message)
	})
}

// RestoreRecord khôi phục một record đã soft-delete.
// Không cần xác nhận (không phá hủy). Khi server xác nhận, cờ deleted cục
// bộ quay về 0.
func (s *ModuleStore) RestoreRecord(ctx context.Context, id string) {
	if id == "" || id == "0" {
		return
	}
	if s.endpoints.Restore.IsZero() {
		s.failConfig("restore")
		return
	}

	resp, err := s.api.Request(ctx, s.endpoints.Restore, nil, id)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "restore", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		return
	}

	countRequest(s.name, "restore", true)
	s.applyFlag(id, models.FieldDeleted, 0)

	message := common.MsgRestored
	if resp.Message != "" {
		message = resp.Message
	}
	s.notifier.Success(message)
}

// MarkAsFavorite đảo cờ favorite của một record.
// Giá trị mới tính từ state cục bộ (0→1, 1→0) và gửi kèm request; state chỉ
// được cập nhật sau khi server xác nhận — không optimistic.
func (s *ModuleStore) MarkAsFavorite(ctx context.Context, id string) {
	if id == "" || id == "0" {
		return
	}
	if s.endpoints.Favorite.IsZero() {
		s.failConfig("favorite")
		return
	}

	current := s.GetRecord(id)
	if current == nil {
		s.log.WithField("id", id).Warn("Không tìm thấy record để đánh dấu favorite")
		return
	}

	next := 1
	if current.Favorite() == 1 {
		next = 0
	}

	resp, err := s.api.Request(ctx, s.endpoints.Favorite, nil, id, next)
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "favorite", false)
		s.setError(s.describeFailure(resp, err, common.MsgBadRequest))
		return
	}

	countRequest(s.name, "favorite", true)
	s.applyFlag(id, models.FieldFavorite, next)
}

// SetSelectedRecord đặt record đang được chọn (panel chi tiết, form edit)
func (s *ModuleStore) SetSelectedRecord(record models.Record) {
	s.mu.Lock()
	s.selected = record
	s.mu.Unlock()
}

// ClearSelectedRecord bỏ chọn record hiện tại
func (s *ModuleStore) ClearSelectedRecord() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// applyChanges merge shallow một tập thay đổi vào mọi bản cục bộ của record
// (danh sách, cache chi tiết, selected)
func (s *ModuleStore) applyChanges(id string, changes models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.ID() == id {
			rec.Merge(changes)
			break
		}
	}
	if rec, ok := s.recordDetails[id]; ok {
		rec.Merge(changes)
	}
	if s.selected != nil && s.selected.ID() == id {
		s.selected.Merge(changes)
	}
	s.lastError = nil
}

// applyFlag đặt một field cờ (deleted/favorite) trên mọi bản cục bộ của record
func (s *ModuleStore) applyFlag(id, field string, value int) {
	s.applyChanges(id, models.Record{field: value})
}

// setError ghi nhận lỗi và báo user
func (s *ModuleStore) setError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
	s.notifier.Error(err.Error())
}
