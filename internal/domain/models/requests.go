package models

// PanelRequest identifies one panel by path parameter.
type PanelRequest struct {
	Name string `param:"name" validate:"required,oneof=tendencies volatility flow derivatives session"`
}
