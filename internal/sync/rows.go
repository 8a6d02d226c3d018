package sync

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/ledger"
	"github.com/atelierhq/atelier/internal/quote"
	"github.com/atelierhq/atelier/internal/receipt"
)

// External row shapes, one tagged type per remote table. Remote rows use
// snake_case columns, ISO-8601 date strings, and may carry nulls anywhere;
// normalization into the internal entities is a total function that falls
// back to safe defaults instead of failing.

type MaterialRow struct {
	ID          string
	Name        sql.NullString
	Unit        sql.NullString
	CostPerUnit sql.NullFloat64
	WidthCM     sql.NullFloat64
}

type ProductRow struct {
	ID            string
	Name          sql.NullString
	Description   sql.NullString
	BaseLaborCost sql.NullFloat64
	ImageURL      sql.NullString
}

type ProductMaterialRow struct {
	ProductID  string
	MaterialID string
	Quantity   sql.NullFloat64
	WidthCM    sql.NullFloat64
	HeightCM   sql.NullFloat64
}

type ClientRow struct {
	ID      string
	Name    sql.NullString
	Phone   sql.NullString
	Email   sql.NullString
	Address sql.NullString
}

type QuoteRow struct {
	ID                  string
	ClientID            sql.NullString
	ProfitMarginPercent sql.NullFloat64
	TotalCost           sql.NullFloat64
	TotalPrice          sql.NullFloat64
	Status              sql.NullString
	DiscountValue       sql.NullFloat64
	DiscountReason      sql.NullString
	CreatedAt           sql.NullString
}

type QuoteItemRow struct {
	QuoteID   string
	ProductID string
	Quantity  sql.NullFloat64
}

type ReceiptRow struct {
	ID            string
	QuoteID       sql.NullString
	ClientID      sql.NullString
	TotalPrice    sql.NullFloat64
	DiscountValue sql.NullFloat64
	PaymentMethod sql.NullString
	ReceiptNumber sql.NullString
	CreatedAt     sql.NullString
}

type ReceiptItemRow struct {
	ReceiptID string
	ProductID string
	Name      sql.NullString
	Quantity  sql.NullFloat64
	UnitPrice sql.NullFloat64
}

type TransactionRow struct {
	ID          string
	Date        sql.NullString
	Type        sql.NullString
	Category    sql.NullString
	Amount      sql.NullFloat64
	Description sql.NullString
}

// Row builders for the push path.

func materialRow(m catalog.Material) MaterialRow {
	return MaterialRow{
		ID:          m.ID.String(),
		Name:        str(m.Name),
		Unit:        str(string(m.Unit)),
		CostPerUnit: flt(m.CostPerUnit),
		WidthCM:     flt(m.WidthCM),
	}
}

func productRows(p catalog.Product) (ProductRow, []ProductMaterialRow) {
	row := ProductRow{
		ID:            p.ID.String(),
		Name:          str(p.Name),
		Description:   str(p.Description),
		BaseLaborCost: flt(p.BaseLaborCost),
		ImageURL:      str(p.ImageURL),
	}

	children := make([]ProductMaterialRow, len(p.Requirements))
	for i, req := range p.Requirements {
		children[i] = ProductMaterialRow{
			ProductID:  row.ID,
			MaterialID: req.MaterialID.String(),
			Quantity:   flt(req.Quantity),
			WidthCM:    flt(req.WidthCM),
			HeightCM:   flt(req.HeightCM),
		}
	}

	return row, children
}

func clientRow(c client.Client) ClientRow {
	return ClientRow{
		ID:      c.ID.String(),
		Name:    str(c.Name),
		Phone:   str(c.Phone),
		Email:   str(c.Email),
		Address: str(c.Address),
	}
}

func quoteRows(q quote.Quote) (QuoteRow, []QuoteItemRow) {
	row := QuoteRow{
		ID:                  q.ID.String(),
		ClientID:            uuidStr(q.ClientID),
		ProfitMarginPercent: flt(q.MarginPercent),
		TotalCost:           flt(q.TotalCost),
		TotalPrice:          flt(q.TotalPrice),
		Status:              str(string(q.Status)),
		DiscountValue:       flt(q.DiscountValue),
		DiscountReason:      str(q.DiscountReason),
		CreatedAt:           str(q.CreatedAt.UTC().Format(time.RFC3339Nano)),
	}

	items := make([]QuoteItemRow, len(q.Items))
	for i, item := range q.Items {
		items[i] = QuoteItemRow{
			QuoteID:   row.ID,
			ProductID: item.ProductID.String(),
			Quantity:  flt(float64(item.Quantity)),
		}
	}

	return row, items
}

func receiptRows(r receipt.Receipt) (ReceiptRow, []ReceiptItemRow) {
	row := ReceiptRow{
		ID:            r.ID.String(),
		ClientID:      uuidStr(r.ClientID),
		TotalPrice:    flt(r.TotalPrice),
		DiscountValue: flt(r.DiscountValue),
		PaymentMethod: str(string(r.PaymentMethod)),
		ReceiptNumber: str(r.Number),
		CreatedAt:     str(r.CreatedAt.UTC().Format(time.RFC3339Nano)),
	}

	if r.QuoteID != nil {
		row.QuoteID = str(r.QuoteID.String())
	}

	items := make([]ReceiptItemRow, len(r.Items))
	for i, item := range r.Items {
		items[i] = ReceiptItemRow{
			ReceiptID: row.ID,
			ProductID: item.ProductID.String(),
			Name:      str(item.Name),
			Quantity:  flt(float64(item.Quantity)),
			UnitPrice: flt(item.UnitPrice),
		}
	}

	return row, items
}

func transactionRow(tx ledger.Transaction) TransactionRow {
	return TransactionRow{
		ID:          tx.ID.String(),
		Date:        str(tx.Date.UTC().Format(time.RFC3339Nano)),
		Type:        str(string(tx.Type)),
		Category:    str(string(tx.Category)),
		Amount:      flt(tx.Amount),
		Description: str(tx.Description),
	}
}

func str(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func flt(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func uuidStr(id uuid.UUID) sql.NullString {
	if id == uuid.Nil {
		return sql.NullString{}
	}

	return str(id.String())
}
