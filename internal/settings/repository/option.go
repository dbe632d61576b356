package repository

import "alert-srv/internal/model"

type DetailOptions struct {
	OrganizationID string
	UserID         string
}

type UpsertOptions struct {
	Settings model.AlertSettings
}
