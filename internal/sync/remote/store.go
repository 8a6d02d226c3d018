// Package remote is the Postgres mirror of the local snapshot. It speaks in
// raw external rows; all shape translation happens in the sync package.
package remote

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierhq/atelier/internal/sync"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func collect[T any](ctx context.Context, db *sql.DB, query string, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, rows.Err()
}

func (s *Store) Materials(ctx context.Context) ([]sync.MaterialRow, error) {
	query := `SELECT id, name, unit, cost_per_unit, width_cm FROM materials`

	rows, err := collect(ctx, s.db, query, func(sc scanner) (sync.MaterialRow, error) {
		var r sync.MaterialRow
		err := sc.Scan(&r.ID, &r.Name, &r.Unit, &r.CostPerUnit, &r.WidthCM)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching materials: %w", err)
	}

	return rows, nil
}

func (s *Store) Products(ctx context.Context) ([]sync.ProductRow, []sync.ProductMaterialRow, error) {
	query := `SELECT id, name, description, base_labor_cost, image_url FROM products`

	rows, err := collect(ctx, s.db, query, func(sc scanner) (sync.ProductRow, error) {
		var r sync.ProductRow
		err := sc.Scan(&r.ID, &r.Name, &r.Description, &r.BaseLaborCost, &r.ImageURL)
		return r, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetching products: %w", err)
	}

	childQuery := `SELECT product_id, material_id, quantity, width_cm, height_cm FROM product_materials`

	children, err := collect(ctx, s.db, childQuery, func(sc scanner) (sync.ProductMaterialRow, error) {
		var r sync.ProductMaterialRow
		err := sc.Scan(&r.ProductID, &r.MaterialID, &r.Quantity, &r.WidthCM, &r.HeightCM)
		return r, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetching product materials: %w", err)
	}

	return rows, children, nil
}

func (s *Store) Clients(ctx context.Context) ([]sync.ClientRow, error) {
	query := `SELECT id, name, phone, email, address FROM clients`

	rows, err := collect(ctx, s.db, query, func(sc scanner) (sync.ClientRow, error) {
		var r sync.ClientRow
		err := sc.Scan(&r.ID, &r.Name, &r.Phone, &r.Email, &r.Address)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching clients: %w", err)
	}

	return rows, nil
}

func (s *Store) Quotes(ctx context.Context) ([]sync.QuoteRow, []sync.QuoteItemRow, error) {
	query := `
		SELECT id, client_id, profit_margin_percent, total_cost, total_price,
			status, discount_value, discount_reason, created_at
		FROM quotes`

	rows, err := collect(ctx, s.db, query, func(sc scanner) (sync.QuoteRow, error) {
		var r sync.QuoteRow
		err := sc.Scan(
			&r.ID, &r.ClientID, &r.ProfitMarginPercent, &r.TotalCost, &r.TotalPrice,
			&r.Status, &r.DiscountValue, &r.DiscountReason, &r.CreatedAt,
		)
		return r, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetching quotes: %w", err)
	}

	items, err := collect(ctx, s.db, `SELECT quote_id, product_id, quantity FROM quote_items`, func(sc scanner) (sync.QuoteItemRow, error) {
		var r sync.QuoteItemRow
		err := sc.Scan(&r.QuoteID, &r.ProductID, &r.Quantity)
		return r, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetching quote items: %w", err)
	}

	return rows, items, nil
}

func (s *Store) Receipts(ctx context.Context) ([]sync.ReceiptRow, []sync.ReceiptItemRow, error) {
	query := `
		SELECT id, quote_id, client_id, total_price, discount_value,
			payment_method, receipt_number, created_at
		FROM receipts`

	rows, err := collect(ctx, s.db, query, func(sc scanner) (sync.ReceiptRow, error) {
		var r sync.ReceiptRow
		err := sc.Scan(
			&r.ID, &r.QuoteID, &r.ClientID, &r.TotalPrice, &r.DiscountValue,
			&r.PaymentMethod, &r.ReceiptNumber, &r.CreatedAt,
		)
		return r, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetching receipts: %w", err)
	}

	items, err := collect(ctx, s.db, `SELECT receipt_id, product_id, name, quantity, unit_price FROM receipt_items`, func(sc scanner) (sync.ReceiptItemRow, error) {
		var r sync.ReceiptItemRow
		err := sc.Scan(&r.ReceiptID, &r.ProductID, &r.Name, &r.Quantity, &r.UnitPrice)
		return r, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fetching receipt items: %w", err)
	}

	return rows, items, nil
}

func (s *Store) Transactions(ctx context.Context) ([]sync.TransactionRow, error) {
	query := `SELECT id, date, type, category, amount, description FROM transactions`

	rows, err := collect(ctx, s.db, query, func(sc scanner) (sync.TransactionRow, error) {
		var r sync.TransactionRow
		err := sc.Scan(&r.ID, &r.Date, &r.Type, &r.Category, &r.Amount, &r.Description)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}

	return rows, nil
}

func (s *Store) UpsertMaterial(ctx context.Context, row sync.MaterialRow) error {
	query := `
		INSERT INTO materials (id, name, unit, cost_per_unit, width_cm)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, unit = EXCLUDED.unit,
			cost_per_unit = EXCLUDED.cost_per_unit, width_cm = EXCLUDED.width_cm
	`

	if _, err := s.db.ExecContext(ctx, query, row.ID, row.Name, row.Unit, row.CostPerUnit, row.WidthCM); err != nil {
		return fmt.Errorf("upserting material: %w", err)
	}

	return nil
}

// UpsertProduct replaces the product row and all of its material requirement
// children in one transaction. Children are replaced wholesale; there is no
// partial child diffing.
func (s *Store) UpsertProduct(ctx context.Context, row sync.ProductRow, children []sync.ProductMaterialRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning product upsert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, description, base_labor_cost, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			base_labor_cost = EXCLUDED.base_labor_cost, image_url = EXCLUDED.image_url
	`

	if _, err := tx.ExecContext(ctx, query, row.ID, row.Name, row.Description, row.BaseLaborCost, row.ImageURL); err != nil {
		return fmt.Errorf("upserting product: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_materials WHERE product_id = $1`, row.ID); err != nil {
		return fmt.Errorf("clearing product materials: %w", err)
	}

	childQuery := `
		INSERT INTO product_materials (product_id, material_id, quantity, width_cm, height_cm)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, c := range children {
		if _, err := tx.ExecContext(ctx, childQuery, c.ProductID, c.MaterialID, c.Quantity, c.WidthCM, c.HeightCM); err != nil {
			return fmt.Errorf("inserting product material: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing product upsert: %w", err)
	}

	return nil
}

func (s *Store) UpsertClient(ctx context.Context, row sync.ClientRow) error {
	query := `
		INSERT INTO clients (id, name, phone, email, address)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, phone = EXCLUDED.phone,
			email = EXCLUDED.email, address = EXCLUDED.address
	`

	if _, err := s.db.ExecContext(ctx, query, row.ID, row.Name, row.Phone, row.Email, row.Address); err != nil {
		return fmt.Errorf("upserting client: %w", err)
	}

	return nil
}

func (s *Store) UpsertQuote(ctx context.Context, row sync.QuoteRow, items []sync.QuoteItemRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning quote upsert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quotes (id, client_id, profit_margin_percent, total_cost, total_price,
			status, discount_value, discount_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			client_id = EXCLUDED.client_id,
			profit_margin_percent = EXCLUDED.profit_margin_percent,
			total_cost = EXCLUDED.total_cost, total_price = EXCLUDED.total_price,
			status = EXCLUDED.status, discount_value = EXCLUDED.discount_value,
			discount_reason = EXCLUDED.discount_reason, created_at = EXCLUDED.created_at
	`

	if _, err := tx.ExecContext(ctx, query,
		row.ID, row.ClientID, row.ProfitMarginPercent, row.TotalCost, row.TotalPrice,
		row.Status, row.DiscountValue, row.DiscountReason, row.CreatedAt,
	); err != nil {
		return fmt.Errorf("upserting quote: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM quote_items WHERE quote_id = $1`, row.ID); err != nil {
		return fmt.Errorf("clearing quote items: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO quote_items (quote_id, product_id, quantity) VALUES ($1, $2, $3)`,
			item.QuoteID, item.ProductID, item.Quantity,
		); err != nil {
			return fmt.Errorf("inserting quote item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing quote upsert: %w", err)
	}

	return nil
}

func (s *Store) UpsertReceipt(ctx context.Context, row sync.ReceiptRow, items []sync.ReceiptItemRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning receipt upsert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO receipts (id, quote_id, client_id, total_price, discount_value,
			payment_method, receipt_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			quote_id = EXCLUDED.quote_id, client_id = EXCLUDED.client_id,
			total_price = EXCLUDED.total_price, discount_value = EXCLUDED.discount_value,
			payment_method = EXCLUDED.payment_method,
			receipt_number = EXCLUDED.receipt_number, created_at = EXCLUDED.created_at
	`

	if _, err := tx.ExecContext(ctx, query,
		row.ID, row.QuoteID, row.ClientID, row.TotalPrice, row.DiscountValue,
		row.PaymentMethod, row.ReceiptNumber, row.CreatedAt,
	); err != nil {
		return fmt.Errorf("upserting receipt: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM receipt_items WHERE receipt_id = $1`, row.ID); err != nil {
		return fmt.Errorf("clearing receipt items: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO receipt_items (receipt_id, product_id, name, quantity, unit_price) VALUES ($1, $2, $3, $4, $5)`,
			item.ReceiptID, item.ProductID, item.Name, item.Quantity, item.UnitPrice,
		); err != nil {
			return fmt.Errorf("inserting receipt item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing receipt upsert: %w", err)
	}

	return nil
}

func (s *Store) UpsertTransactions(ctx context.Context, rows []sync.TransactionRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction upsert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO transactions (id, date, type, category, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date, type = EXCLUDED.type, category = EXCLUDED.category,
			amount = EXCLUDED.amount, description = EXCLUDED.description
	`

	for _, r := range rows {
		if _, err := tx.ExecContext(ctx, query, r.ID, r.Date, r.Type, r.Category, r.Amount, r.Description); err != nil {
			return fmt.Errorf("upserting transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction upsert: %w", err)
	}

	return nil
}

func (s *Store) DeleteMaterial(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning product delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_materials WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("deleting product materials: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing product delete: %w", err)
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return nil
}
