package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/common"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/modules"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

// resolveAssociation tìm association store theo path param
func resolveAssociation(c fiber.Ctx) (*store.AssociationStore, error) {
	name := c.Params("name")
	s, ok := modules.Associations.Get(name)
	if !ok {
		return nil, c.Status(common.StatusNotFound).JSON(fiber.Map{
			"status":  common.StatusNotFound,
			"message": common.MsgNotFound,
		})
	}
	return s, nil
}

// associationRequest là body chung của các operation trên association store
type associationRequest struct {
	Key            models.AssociationKey `json:"key"`
	TargetModuleID string                `json:"target_module_id"`
}

// associationState trả về snapshot state hiển thị của association store
func associationState(s *store.AssociationStore) fiber.Map {
	state := fiber.Map{
		"records":      s.Records(),
		"selected_ids": s.SelectedIds(),
		"counter":      s.Counter(),
		"loading":      s.Loading(),
	}
	if err := s.LastError(); err != nil {
		state["error"] = err.Error()
	}
	return state
}

func handleAssociationFetch(c fiber.Ctx) error {
	s, err := resolveAssociation(c)
	if err != nil {
		return err
	}

	var req associationRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.FetchRecords(c.Context(), req.Key)
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   associationState(s),
	})
}

func handleAssociationSave(c fiber.Ctx) error {
	s, err := resolveAssociation(c)
	if err != nil {
		return err
	}

	var req associationRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.SaveRecord(c.Context(), req.Key, req.TargetModuleID)
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   associationState(s),
	})
}

func handleAssociationDelete(c fiber.Ctx) error {
	s, err := resolveAssociation(c)
	if err != nil {
		return err
	}

	var req associationRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.DeleteRecord(c.Context(), req.Key, req.TargetModuleID)
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   associationState(s),
	})
}

func handleAssociationRestore(c fiber.Ctx) error {
	s, err := resolveAssociation(c)
	if err != nil {
		return err
	}

	var req associationRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	s.RestoreRecord(c.Context(), req.Key, req.TargetModuleID)
	return c.JSON(fiber.Map{
		"status": common.StatusOK,
		"data":   associationState(s),
	})
}
