package postgres

const (
	listPianosQuery = `
SELECT id, client_id, brand, model, condition, created_at
FROM pianos
WHERE organization_id = $1 AND deleted_at IS NULL
ORDER BY created_at, id`

	listServicesQuery = `
SELECT s.id, s.piano_id, s.service_type, s.service_date
FROM services s
JOIN pianos p ON p.id = s.piano_id
WHERE p.organization_id = $1 AND p.deleted_at IS NULL
  AND s.service_type IN ('tuning', 'regulation', 'repair')
ORDER BY s.service_date`

	listAppointmentsQuery = `
SELECT id, client_id, title, scheduled_at
FROM appointments
WHERE organization_id = $1 AND status <> 'cancelled'
  AND scheduled_at >= $2 AND scheduled_at < $3
ORDER BY scheduled_at, id`

	listInvoicesQuery = `
SELECT id, invoice_number AS number, client_id, status, due_date AS deadline, total
FROM invoices
WHERE organization_id = $1 AND status = 'sent'
ORDER BY created_at, id`

	listQuotesQuery = `
SELECT id, quote_number AS number, client_id, status, valid_until AS deadline, total
FROM quotes
WHERE organization_id = $1 AND status = 'sent'
ORDER BY created_at, id`

	listOrganizationsQuery = `
SELECT organization_id FROM pianos WHERE deleted_at IS NULL
UNION
SELECT organization_id FROM reorder_links
ORDER BY organization_id`
)
