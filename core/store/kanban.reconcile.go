package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/utility"
)

// MoveCardRaw xử lý một drag gesture với định danh dạng wire.
// rawSource phải là card key "<status>-<id>-<index>"; rawTarget là card key
// hoặc định danh cột. Source không parse được là gesture hỏng → no-op.
func (s *ModuleStore) MoveCardRaw(ctx context.Context, rawSource, rawTarget string) {
	source, ok := models.ParseCardRef(rawSource)
	if !ok {
		s.log.WithField("source", rawSource).Warn("Card key nguồn không hợp lệ, bỏ qua gesture")
		return
	}
	s.MoveCard(ctx, source, rawTarget)
}

// MoveCard áp một drag gesture lên bảng kanban.
//
// Parameters:
// - ctx: Context cho network call
// - source: Định danh composite của card được kéo (status, id, index)
// - target: Card key của card bị thả lên (chèn trước card đó) hoặc định danh
//   cột (thả vào cuối cột, kể cả cột rỗng)
//
// Mutation cục bộ là optimistic: board được clone, card được chuyển, status
// của card được ghi đè theo cột đích, rồi publish nguyên khối. Nếu status
// thay đổi, đúng MỘT call update-status được phát; thất bại thì báo user và
// tải lại toàn bộ board từ server (không unwind thủ công).
//
// Gesture thả về đúng vị trí cũ, target rỗng, hoặc source không còn khớp
// board hiện tại (ref lỗi thời) đều là no-op — không mutation, không network.
func (s *ModuleStore) MoveCard(ctx context.Context, source models.CardRef, target string) {
	if target == "" {
		return
	}

	s.mu.RLock()
	board := s.board
	s.mu.RUnlock()
	if board == nil {
		return
	}

	// Source phải khớp đủ bộ ba (cột, vị trí, id) trên board hiện tại
	if _, _, ok := board.Locate(source); !ok {
		s.log.WithFields(logrus.Fields{
			"status": source.Status,
			"id":     source.ID,
			"index":  source.Index,
		}).Warn("Card nguồn không còn khớp board hiện tại, bỏ qua gesture")
		return
	}

	destStatus, destIndex, ok := resolveTarget(board, target)
	if !ok {
		s.log.WithField("target", target).Warn("Card key đích không còn khớp board hiện tại, bỏ qua gesture")
		return
	}

	destRecords, ok := board.ColumnRecords(destStatus)
	if !ok {
		s.log.WithField("target", target).Warn("Cột đích không tồn tại, bỏ qua gesture")
		return
	}
	if destIndex < 0 || destIndex > len(destRecords) {
		destIndex = len(destRecords)
	}

	sameColumn := destStatus == source.Status
	statusChanged := !sameColumn

	// Vị trí chèn sau khi card nguồn đã được rút khỏi cột
	finalIndex := destIndex
	if sameColumn && source.Index < destIndex {
		finalIndex--
	}
	if sameColumn && finalIndex == source.Index {
		return
	}

	// Endpoint thiếu là lỗi cấu hình: chặn trước khi mutate để board không
	// lệch với server
	if statusChanged && s.endpoints.UpdateStatus.IsZero() {
		s.failConfig("update_status")
		return
	}

	next := board.Clone()

	sourceRecords, _ := next.ColumnRecords(source.Status)
	moved := sourceRecords[source.Index]
	sourceRecords = append(sourceRecords[:source.Index], sourceRecords[source.Index+1:]...)
	next.SetColumnRecords(source.Status, sourceRecords)

	if statusChanged {
		moved.SetStatus(destStatus)
	}

	destRecords, _ = next.ColumnRecords(destStatus)
	destRecords = append(destRecords, nil)
	copy(destRecords[finalIndex+1:], destRecords[finalIndex:])
	destRecords[finalIndex] = moved
	next.SetColumnRecords(destStatus, destRecords)

	s.mu.Lock()
	s.board = next
	s.mu.Unlock()

	if !statusChanged {
		// Reorder trong cùng cột: thuần cục bộ, server không lưu thứ tự card
		countKanbanMove(s.name, true)
		return
	}

	// Status id số được gửi dưới dạng số như server lưu; chỉ status phi số
	// mới giữ nguyên dạng chuỗi
	statusValue := any(destStatus)
	if n, numeric := utility.ToInt(destStatus); numeric {
		statusValue = n
	}

	resp, err := s.api.Request(ctx, s.endpoints.UpdateStatus, map[string]any{
		"id":        moved[models.FieldID],
		"status_id": statusValue,
	})
	if err != nil || !resp.IsSuccess() {
		countRequest(s.name, "update_status", false)
		countKanbanMove(s.name, false)
		s.setError(s.describeFailure(resp, err, common.MsgMoveFailed))
		// Board cục bộ đã lệch với server: tải lại thay vì unwind thủ công
		s.FetchKanbanRecords(ctx)
		return
	}

	countRequest(s.name, "update_status", true)
	countKanbanMove(s.name, true)
}

// resolveTarget quy drop target về (cột đích, vị trí chèn).
// Target là card key → chèn trước card đó; card key không còn khớp board là
// ref lỗi thời, trả về ok=false để caller bỏ qua gesture thay vì đoán lại
// thành cột. Target còn lại coi là định danh cột (chuẩn hóa segment đầu) và
// chèn vào cuối cột.
func resolveTarget(board *models.BoardData, target string) (string, int, bool) {
	if ref, ok := models.ParseCardRef(target); ok {
		if _, _, found := board.Locate(ref); found {
			return ref.Status, ref.Index, true
		}
		return "", 0, false
	}

	status := models.NormalizeStatusID(target)
	if records, ok := board.ColumnRecords(status); ok {
		return status, len(records), true
	}
	return status, 0, true
}
