package postgres

const settingsColumns = `id, organization_id, user_id, tuning_days_pending, tuning_days_urgent,
	regulation_days_pending, regulation_days_urgent, email_notifications_enabled,
	weekly_digest_enabled, weekly_digest_day, updated_at`

const detailOrgQuery = `SELECT ` + settingsColumns + `
FROM alert_settings
WHERE organization_id = $1 AND user_id IS NULL`

const detailUserQuery = `SELECT ` + settingsColumns + `
FROM alert_settings
WHERE organization_id = $1 AND user_id = $2`

const upsertValues = `INSERT INTO alert_settings (` + settingsColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const upsertSet = `
DO UPDATE SET
	tuning_days_pending = EXCLUDED.tuning_days_pending,
	tuning_days_urgent = EXCLUDED.tuning_days_urgent,
	regulation_days_pending = EXCLUDED.regulation_days_pending,
	regulation_days_urgent = EXCLUDED.regulation_days_urgent,
	email_notifications_enabled = EXCLUDED.email_notifications_enabled,
	weekly_digest_enabled = EXCLUDED.weekly_digest_enabled,
	weekly_digest_day = EXCLUDED.weekly_digest_day,
	updated_at = EXCLUDED.updated_at
RETURNING ` + settingsColumns

// The two partial unique indexes keep one organization row and one row per user.
const upsertOrgQuery = upsertValues + `
ON CONFLICT (organization_id) WHERE user_id IS NULL` + upsertSet

const upsertUserQuery = upsertValues + `
ON CONFLICT (organization_id, user_id) WHERE user_id IS NOT NULL` + upsertSet

const listDigestEnabledQuery = `SELECT ` + settingsColumns + `
FROM alert_settings
WHERE user_id IS NULL AND weekly_digest_enabled
ORDER BY organization_id`
