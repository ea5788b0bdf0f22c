package models

// AssociationKey định danh một tập liên kết many-to-many: các record thuộc
// target_module đang liên kết với một record nguồn (source_module, source_module_id).
type AssociationKey struct {
	SourceModule   string `json:"source_module" validate:"required,module_name"`
	SourceModuleID string `json:"source_module_id" validate:"required"`
	TargetModule   string `json:"target_module" validate:"required,module_name"`
}

// Payload trả về key dưới dạng map để gửi lên API
func (k AssociationKey) Payload() map[string]any {
	return map[string]any{
		"source_module":    k.SourceModule,
		"source_module_id": k.SourceModuleID,
		"target_module":    k.TargetModule,
	}
}

// AssociationLink là một bản ghi liên kết giữa hai module instance.
// Link có cờ soft-delete riêng, độc lập với record hai đầu.
type AssociationLink struct {
	SourceModule   string `json:"source_module"`
	SourceModuleID string `json:"source_module_id"`
	TargetModule   string `json:"target_module"`
	TargetModuleID string `json:"target_module_id"`
	Deleted        int    `json:"deleted"`
}
