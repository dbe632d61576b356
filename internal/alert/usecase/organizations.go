package usecase

import (
	"context"

	"alert-srv/internal/alert"
)

func (uc *implUseCase) Organizations(ctx context.Context) ([]string, error) {
	ids, err := uc.repo.ListOrganizations(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Organizations.ListOrganizations: %v", err)
		return nil, alert.ErrEntitiesUnavailable
	}

	return ids, nil
}
