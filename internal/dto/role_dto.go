package dto

// RoleSelectRequest switches the persisted role label.
type RoleSelectRequest struct {
	Role string `json:"role" validate:"required"`
}

// RoleResponse reports the effective role and the recognised role set.
type RoleResponse struct {
	Role  string   `json:"role"`
	Roles []string `json:"roles"`
}

// SectionAccessResponse lists the view/edit capability of one section for the
// effective role.
type SectionAccessResponse struct {
	Section string `json:"section"`
	CanView bool   `json:"can_view"`
	CanEdit bool   `json:"can_edit"`
}
