package repository

import "alert-srv/internal/model"

type UpsertLinkOptions struct {
	Link model.ReorderLink
}

type CreateAutoOrderOptions struct {
	AlertID string
	Order   model.Order
}
