package router

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/modules"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

// resolveStore tìm module store theo path param, trả về lỗi 404 nếu không có
func resolveStore(c fiber.Ctx) (*store.ModuleStore, error) {
	name := c.Params("module")
	s, ok := modules.Stores.Get(name)
	if !ok {
		return nil, c.Status(common.StatusNotFound).JSON(fiber.Map{
			"status":  common.StatusNotFound,
			"message": common.MsgNotFound,
		})
	}
	return s, nil
}

// parseBody decode JSON body vào out; body rỗng là hợp lệ (giữ zero value)
func parseBody(c fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(common.StatusBadRequest).JSON(fiber.Map{
		"status":  common.StatusBadRequest,
		"message": common.MsgBadRequest,
		"details": err.Error(),
	})
}

// storeState trả về snapshot state hiển thị của một module store
func storeState(s *store.ModuleStore) fiber.Map {
	state := fiber.Map{
		"records":     s.Records(),
		"loading":     s.Loading(),
		"page":        s.Page(),
		"total_pages": s.TotalPages(),
		"total":       s.Total(),
		"limit":       s.Limit(),
	}
	if err := s.LastError(); err != nil {
		state["error"] = err.Error()
	}
	return state
}

func handleListModules(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   modules.Stores.Names(),
	})
}

func handleFetchRecords(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var req struct {
		Page     int64 `json:"page"`
		Limit    int64 `json:"limit"`
		FetchAll bool  `json:"fetch_all"`
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	if req.Page > 0 {
		s.SetPage(req.Page)
	}
	if req.Limit > 0 {
		s.SetLimit(req.Limit)
	}
	s.SetFetchAll(req.FetchAll)

	s.FetchRecords(c.Context())
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   storeState(s),
	})
}

func handleFetchKanban(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	s.FetchKanbanRecords(c.Context())

	state := fiber.Map{
		"board":   s.Board(),
		"loading": s.LoadingBoard(),
	}
	if lastErr := s.LastError(); lastErr != nil {
		state["error"] = lastErr.Error()
	}
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   state,
	})
}

func handleMoveCard(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var req struct {
		Source string `json:"source"` // Card key "<status>-<id>-<index>"
		Target string `json:"target"` // Card key hoặc định danh cột
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.MoveCardRaw(c.Context(), req.Source, req.Target)
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   fiber.Map{"board": s.Board()},
	})
}

func handleRecordDetails(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	s.FetchRecordDetails(c.Context(), id)

	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data": fiber.Map{
			"record":  s.GetRecord(id),
			"loading": s.LoadingDetails(id),
		},
	})
}

func handleSaveRecord(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var payload map[string]any
	if err := parseBody(c, &payload); err != nil {
		return badRequest(c, err)
	}

	var saved models.Record
	s.SaveRecord(c.Context(), payload, func(rec models.Record) {
		saved = rec
	})

	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   saved,
	})
}

func handleUpdateRecord(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var payload map[string]any
	if err := parseBody(c, &payload); err != nil {
		return badRequest(c, err)
	}

	s.UpdateRecord(c.Context(), payload)
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   storeState(s),
	})
}

func handleDeleteRecord(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	// Chỉ đăng ký yêu cầu xác nhận — network call phát sau khi user xác nhận
	// qua POST /confirmations/:id
	s.DeleteRecord(c.Context(), c.Params("id"))
	return c.JSON(fiber.Map{
		"status":  common.StatusOK,
		"message": "Yêu cầu xóa đang chờ xác nhận",
	})
}

func handleRestoreRecord(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	s.RestoreRecord(c.Context(), c.Params("id"))
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   storeState(s),
	})
}

func handleMarkAsFavorite(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	s.MarkAsFavorite(c.Context(), c.Params("id"))
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   storeState(s),
	})
}

// ==================== Filter Set Store ====================

func handleGetFilters(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data": fiber.Map{
			"fields": s.Filters.Fields(),
			"active": s.Filters.ActiveFilter(),
			"max":    s.Filters.MaxFilters(),
		},
	})
}

func handleAddFilter(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var field models.FieldOption
	if err := parseBody(c, &field); err != nil {
		return badRequest(c, err)
	}

	if !s.Filters.AddFilter(field) {
		return c.JSON(fiber.Map{
			"status":  common.StatusConflict,
			"message": "Đã đạt số bộ lọc tối đa",
		})
	}
	return c.JSON(fiber.Map{"status": common.StatusOK})
}

func handleRemoveFilter(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var req struct {
		Field string `json:"field"`
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.Filters.RemoveFilter(req.Field)
	return c.JSON(fiber.Map{"status": common.StatusOK})
}

func handleUpdateFilterValue(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var req struct {
		Field string `json:"field"`
		Value any    `json:"value"`
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.Filters.UpdateValue(req.Field, req.Value)
	return c.JSON(fiber.Map{"status": common.StatusOK})
}

// ==================== View Tab Store ====================

func handleGetTabs(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data": fiber.Map{
			"tabs":   s.ViewTabs.Tabs(),
			"active": s.ViewTabs.ActiveTab(),
			"max":    s.ViewTabs.MaxTabs(),
		},
	})
}

func handleAddTab(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var tab models.FieldOption
	if err := parseBody(c, &tab); err != nil {
		return badRequest(c, err)
	}

	if !s.ViewTabs.AddTab(tab) {
		return c.JSON(fiber.Map{
			"status":  common.StatusConflict,
			"message": "Đã đạt số tab tối đa",
		})
	}
	return c.JSON(fiber.Map{"status": common.StatusOK})
}

func handleRemoveTab(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var req struct {
		Tab string `json:"tab"`
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.ViewTabs.RemoveTab(req.Tab)
	return c.JSON(fiber.Map{"status": common.StatusOK})
}

func handleSetActiveTab(c fiber.Ctx) error {
	s, err := resolveStore(c)
	if err != nil {
		return err
	}

	var req struct {
		Tab string `json:"tab"`
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.ViewTabs.SetActiveTab(req.Tab)
	return c.JSON(fiber.Map{"status": common.StatusOK})
}
