package usecase

import (
	"context"

	"alert-srv/internal/model"
	"alert-srv/internal/settings"
	"alert-srv/internal/settings/repository"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope) (model.AlertSettings, error) {
	s, err := uc.repo.Detail(ctx, repository.DetailOptions{OrganizationID: sc.OrganizationID})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.DefaultAlertSettings(sc.OrganizationID), nil
		}
		uc.l.Errorf(ctx, "internal.settings.usecase.Get.Detail: %v", err)
		return model.AlertSettings{}, err
	}

	return s, nil
}

func (uc *usecase) GetMine(ctx context.Context, sc model.Scope) (model.AlertSettings, error) {
	if sc.UserID == "" {
		return uc.Get(ctx, sc)
	}

	s, err := uc.repo.Detail(ctx, repository.DetailOptions{OrganizationID: sc.OrganizationID, UserID: sc.UserID})
	if err != nil {
		if err == repository.ErrNotFound {
			return uc.Get(ctx, sc)
		}
		uc.l.Errorf(ctx, "internal.settings.usecase.GetMine.Detail: %v", err)
		return model.AlertSettings{}, err
	}

	return s, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip settings.UpdateInput) (model.AlertSettings, error) {
	if !sc.IsAdmin() {
		return model.AlertSettings{}, settings.ErrPermissionDenied
	}

	cur, err := uc.Get(ctx, sc)
	if err != nil {
		return model.AlertSettings{}, err
	}
	cur.UserID = nil

	return uc.save(ctx, apply(cur, ip))
}

func (uc *usecase) UpdateMine(ctx context.Context, sc model.Scope, ip settings.UpdateInput) (model.AlertSettings, error) {
	if sc.UserID == "" {
		return model.AlertSettings{}, settings.ErrUserRequired
	}

	cur, err := uc.GetMine(ctx, sc)
	if err != nil {
		return model.AlertSettings{}, err
	}
	if cur.UserID == nil {
		// Inherited values become the user's own row.
		cur.ID = ""
		userID := sc.UserID
		cur.UserID = &userID
	}

	return uc.save(ctx, apply(cur, ip))
}

func (uc *usecase) ListDigestEnabled(ctx context.Context) ([]model.AlertSettings, error) {
	list, err := uc.repo.ListDigestEnabled(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.ListDigestEnabled: %v", err)
		return nil, err
	}

	return list, nil
}

func (uc *usecase) save(ctx context.Context, s model.AlertSettings) (model.AlertSettings, error) {
	if err := validate(s); err != nil {
		return model.AlertSettings{}, err
	}

	saved, err := uc.repo.Upsert(ctx, repository.UpsertOptions{Settings: s})
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.save.Upsert: %v", err)
		return model.AlertSettings{}, err
	}

	return saved, nil
}

func apply(s model.AlertSettings, ip settings.UpdateInput) model.AlertSettings {
	if ip.TuningPending != nil {
		s.Thresholds.TuningPending = *ip.TuningPending
	}
	if ip.TuningUrgent != nil {
		s.Thresholds.TuningUrgent = *ip.TuningUrgent
	}
	if ip.RegulationPending != nil {
		s.Thresholds.RegulationPending = *ip.RegulationPending
	}
	if ip.RegulationUrgent != nil {
		s.Thresholds.RegulationUrgent = *ip.RegulationUrgent
	}
	if ip.EmailNotificationsEnabled != nil {
		s.EmailNotificationsEnabled = *ip.EmailNotificationsEnabled
	}
	if ip.WeeklyDigestEnabled != nil {
		s.WeeklyDigestEnabled = *ip.WeeklyDigestEnabled
	}
	if ip.WeeklyDigestDay != nil {
		s.WeeklyDigestDay = *ip.WeeklyDigestDay
	}
	return s
}

func validate(s model.AlertSettings) error {
	th := s.Thresholds
	switch {
	case th.TuningPending < 1 || th.TuningPending > settings.MaxTuningPending:
		return settings.ErrInvalidTuningPending
	case th.TuningUrgent < 1 || th.TuningUrgent > settings.MaxTuningUrgent:
		return settings.ErrInvalidTuningUrgent
	case th.RegulationPending < 1 || th.RegulationPending > settings.MaxRegulationPending:
		return settings.ErrInvalidRegulationPending
	case th.RegulationUrgent < 1 || th.RegulationUrgent > settings.MaxRegulationUrgent:
		return settings.ErrInvalidRegulationUrgent
	case th.TuningPending >= th.TuningUrgent:
		return settings.ErrTuningOrder
	case th.RegulationPending >= th.RegulationUrgent:
		return settings.ErrRegulationOrder
	case s.WeeklyDigestDay < 1 || s.WeeklyDigestDay > 7:
		return settings.ErrInvalidDigestDay
	}
	return nil
}
