package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"alert-srv/internal/model"
	"alert-srv/internal/notification"
	"alert-srv/pkg/discord"
)

func (uc *implUseCase) PublishAlert(ctx context.Context, sc model.Scope, a model.PersistedAlert) error {
	msg := notification.AlertMessage{
		Type:      notification.MessageTypeAlertCreated,
		Timestamp: uc.clock(),
		Payload:   a,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.PublishAlert.Marshal: %v", err)
		return err
	}

	if err := uc.redis.Publish(ctx, notification.Channel(sc.OrganizationID), body); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.PublishAlert.Publish: %v", err)
		return notification.ErrPublishFailed
	}

	if a.Priority != model.AlertPriorityUrgent || uc.discord == nil {
		return nil
	}

	st, err := uc.settings.Get(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.PublishAlert.Get: %v", err)
		return nil
	}
	if !st.EmailNotificationsEnabled {
		return nil
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeWarning,
		Level:       discord.LevelUrgent,
		Title:       truncateText(fmt.Sprintf("Urgent %s alert", a.AlertType), discord.MaxTitleLen),
		Description: truncateText(a.Message, discord.MaxDescriptionLen),
		Fields:      alertFields(a),
		Timestamp:   a.CreatedAt,
		Footer: &discord.EmbedFooter{
			Text: "Alert Service • " + sc.OrganizationID,
		},
	}
	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.PublishAlert.SendEmbed: %v", err)
	}

	return nil
}
