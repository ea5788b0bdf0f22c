package router

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/modules"
)

// handleListConfirmations trả về các yêu cầu xác nhận đang chờ user trả lời
func handleListConfirmations(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   modules.Confirmations.Pending(),
	})
}

// handleResolveConfirmation kết thúc một yêu cầu xác nhận.
// Body {"accepted": true} mới kích hoạt thao tác đã đăng ký; từ chối chỉ xóa
// yêu cầu, không có side-effect nào.
func handleResolveConfirmation(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, err)
	}

	var req struct {
		Accepted bool `json:"accepted"`
	}
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	if !modules.Confirmations.Resolve(id, req.Accepted) {
		return c.Status(common.StatusNotFound).JSON(fiber.Map{
			"status":  common.StatusNotFound,
			"message": "Yêu cầu xác nhận không tồn tại hoặc đã được xử lý",
		})
	}
	return c.JSON(fiber.Map{"status": common.StatusOK})
}
