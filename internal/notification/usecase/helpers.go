package usecase

import (
	"fmt"

	"alert-srv/internal/model"
	"alert-srv/pkg/discord"
)

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	if len(value) > discord.MaxFieldValueLen {
		value = truncateText(value, discord.MaxFieldValueLen)
	}
	return discord.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// subject names what the alert is about.
func subject(a model.PersistedAlert) string {
	switch {
	case a.PianoID != nil:
		return "Piano " + *a.PianoID
	case a.InventoryID != nil:
		return "Inventory item " + *a.InventoryID
	default:
		return a.OrganizationID
	}
}

func alertFields(a model.PersistedAlert) []discord.EmbedField {
	fields := []discord.EmbedField{
		buildField("Type", string(a.AlertType), true),
		buildField("Priority", string(a.Priority), true),
		buildField("Subject", subject(a), true),
	}
	if a.DaysSinceLastService != nil {
		fields = append(fields, buildField("Days since last service", fmt.Sprintf("%d", *a.DaysSinceLastService), true))
	}
	if a.CurrentStock != nil && a.Threshold != nil {
		fields = append(fields, buildField("Stock vs threshold", fmt.Sprintf("**%d** / %d", *a.CurrentStock, *a.Threshold), true))
	}
	if a.ClientID != nil {
		fields = append(fields, buildField("Client", deref(a.ClientID), true))
	}
	return fields
}
