package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	historyRepo "alert-srv/internal/history/repository"
	"alert-srv/internal/model"
	"alert-srv/internal/notification"
	"alert-srv/pkg/discord"
)

const digestListLimit = 15

func digestKey(orgID string, day string) string {
	return "alert-digest:" + orgID + ":" + day
}

func (uc *implUseCase) SendWeeklyDigest(ctx context.Context, sc model.Scope, ip notification.DigestInput) (notification.DigestOutput, error) {
	now := uc.clock()

	st, err := uc.settings.Get(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SendWeeklyDigest.Get: %v", err)
		return notification.DigestOutput{}, err
	}
	if !st.WeeklyDigestEnabled {
		return notification.DigestOutput{Reason: notification.ReasonDisabled}, nil
	}
	if uc.discord == nil {
		return notification.DigestOutput{Reason: notification.ReasonNoChannel}, nil
	}
	if !ip.Force && now.Weekday() != st.DigestWeekday() {
		return notification.DigestOutput{Reason: notification.ReasonNotScheduled}, nil
	}

	alerts, err := uc.alerts.List(ctx, sc, historyRepo.ListOptions{Filter: historyRepo.Filter{
		Statuses:   []model.AlertStatus{model.AlertStatusActive},
		Priorities: []model.AlertPriority{model.AlertPriorityUrgent},
		Types:      model.MaintenanceAlertTypes,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SendWeeklyDigest.List: %v", err)
		return notification.DigestOutput{}, notification.ErrDigestFailed
	}
	if len(alerts) == 0 {
		return notification.DigestOutput{Reason: notification.ReasonNoAlerts}, nil
	}

	key := digestKey(sc.OrganizationID, now.Format("2006-01-02"))
	if !ip.Force {
		ok, err := uc.redis.SetNX(ctx, key, now.Unix(), digestKeyTTL)
		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.SendWeeklyDigest.SetNX: %v", err)
			return notification.DigestOutput{}, notification.ErrDigestFailed
		}
		if !ok {
			return notification.DigestOutput{AlertCount: len(alerts), Reason: notification.ReasonAlreadySent}, nil
		}
	}

	if err := uc.discord.SendEmbed(ctx, buildDigest(sc, alerts, now.Format("02 Jan 2006"))); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SendWeeklyDigest.SendEmbed: %v", err)
		if !ip.Force {
			if derr := uc.redis.Delete(ctx, key); derr != nil {
				uc.l.Warnf(ctx, "internal.notification.usecase.SendWeeklyDigest.Delete: %v", derr)
			}
		}
		return notification.DigestOutput{}, notification.ErrDigestFailed
	}

	return notification.DigestOutput{Sent: true, AlertCount: len(alerts)}, nil
}

func buildDigest(sc model.Scope, alerts []model.PersistedAlert, day string) discord.MessageOptions {
	counts := map[model.AlertType]int{}
	for _, a := range alerts {
		counts[a.AlertType]++
	}

	fields := make([]discord.EmbedField, 0, len(model.MaintenanceAlertTypes)+1)
	for _, t := range model.MaintenanceAlertTypes {
		fields = append(fields, buildField(titleCase(string(t)), fmt.Sprintf("%d", counts[t]), true))
	}

	// Longest overdue first.
	sorted := make([]model.PersistedAlert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return days(sorted[i]) > days(sorted[j])
	})

	lines := make([]string, 0, digestListLimit)
	for i, a := range sorted {
		if i == digestListLimit {
			lines = append(lines, fmt.Sprintf("...and %d more", len(sorted)-digestListLimit))
			break
		}
		lines = append(lines, fmt.Sprintf("• %s", a.Message))
	}
	fields = append(fields, buildField("Alerts", strings.Join(lines, "\n"), false))

	return discord.MessageOptions{
		Type:        discord.MessageTypeWarning,
		Title:       "Weekly maintenance digest",
		Description: fmt.Sprintf("%d urgent maintenance alerts are open (%s).", len(alerts), day),
		Fields:      fields,
		Footer: &discord.EmbedFooter{
			Text: "Alert Service • " + sc.OrganizationID,
		},
	}
}

func days(a model.PersistedAlert) int {
	if a.DaysSinceLastService == nil {
		return 0
	}
	return *a.DaysSinceLastService
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
