package postgres

const linkColumns = `rl.id, rl.organization_id, rl.inventory_id, rl.product_id, rl.low_stock_threshold,
	rl.reorder_quantity, rl.auto_reorder_enabled, rl.updated_at`

const listItemsQuery = `SELECT ` + linkColumns + `, i.name, i.quantity
FROM reorder_links rl
JOIN inventory i ON i.id = rl.inventory_id AND i.organization_id = rl.organization_id
WHERE rl.organization_id = $1
ORDER BY i.name, rl.inventory_id`

const getProductQuery = `SELECT id, name, sku, price, vat_rate, currency, available
FROM products
WHERE organization_id = $1 AND id = $2`

const upsertLinkQuery = `INSERT INTO reorder_links AS rl (id, organization_id, inventory_id, product_id,
	low_stock_threshold, reorder_quantity, auto_reorder_enabled, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (inventory_id) DO UPDATE SET
	product_id = EXCLUDED.product_id,
	low_stock_threshold = EXCLUDED.low_stock_threshold,
	reorder_quantity = EXCLUDED.reorder_quantity,
	auto_reorder_enabled = EXCLUDED.auto_reorder_enabled,
	updated_at = EXCLUDED.updated_at
WHERE rl.organization_id = EXCLUDED.organization_id
RETURNING ` + linkColumns

// lockAlertQuery holds the alert row until the order is linked.
const lockAlertQuery = `SELECT auto_order_id
FROM alerts
WHERE organization_id = $1 AND id = $2 AND alert_type = 'stock' AND status IN ('active', 'acknowledged')
FOR UPDATE`

const insertOrderQuery = `INSERT INTO orders (id, organization_id, status, approval_status, currency,
	subtotal, vat_amount, total, is_auto_generated, stock_alert_id, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const insertOrderLineQuery = `INSERT INTO order_lines (id, order_id, product_id, name, sku, quantity,
	unit_price, vat_rate, total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const linkOrderQuery = `UPDATE alerts SET auto_order_id = $3
WHERE organization_id = $1 AND id = $2 AND auto_order_id IS NULL`
