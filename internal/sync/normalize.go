package sync

import (
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/ledger"
	"github.com/atelierhq/atelier/internal/quote"
	"github.com/atelierhq/atelier/internal/receipt"
)

// remoteData is the raw result of one full remote fetch.
type remoteData struct {
	materials        []MaterialRow
	products         []ProductRow
	productMaterials []ProductMaterialRow
	clients          []ClientRow
	quotes           []QuoteRow
	quoteItems       []QuoteItemRow
	receipts         []ReceiptRow
	receiptItems     []ReceiptItemRow
	transactions     []TransactionRow
}

// normalize translates a full remote data set into the internal shape. It is
// total: malformed numerics become 0, unparseable dates become now, unknown
// enum values fall back to their defaults, and child rows are folded into
// their owning entities. Settings are not part of the remote data set; the
// caller pins them to the local value.
func normalize(rd remoteData, now func() time.Time) appdata.AppData {
	data := appdata.AppData{
		Materials:    make([]catalog.Material, 0, len(rd.materials)),
		Products:     make([]catalog.Product, 0, len(rd.products)),
		Clients:      make([]client.Client, 0, len(rd.clients)),
		Quotes:       make([]quote.Quote, 0, len(rd.quotes)),
		Receipts:     make([]receipt.Receipt, 0, len(rd.receipts)),
		Transactions: make([]ledger.Transaction, 0, len(rd.transactions)),
	}

	for _, row := range rd.materials {
		data.Materials = append(data.Materials, catalog.Material{
			ID:          asUUID(row.ID),
			Name:        row.Name.String,
			Unit:        asUnit(row.Unit),
			CostPerUnit: asFloat(row.CostPerUnit),
			WidthCM:     asFloat(row.WidthCM),
		})
	}

	reqsByProduct := make(map[string][]catalog.Requirement)
	for _, row := range rd.productMaterials {
		reqsByProduct[row.ProductID] = append(reqsByProduct[row.ProductID], catalog.Requirement{
			MaterialID: asUUID(row.MaterialID),
			Quantity:   asFloat(row.Quantity),
			WidthCM:    asFloat(row.WidthCM),
			HeightCM:   asFloat(row.HeightCM),
		})
	}

	for _, row := range rd.products {
		data.Products = append(data.Products, catalog.Product{
			ID:            asUUID(row.ID),
			Name:          row.Name.String,
			Description:   row.Description.String,
			Requirements:  reqsByProduct[row.ID],
			BaseLaborCost: asFloat(row.BaseLaborCost),
			ImageURL:      row.ImageURL.String,
		})
	}

	for _, row := range rd.clients {
		data.Clients = append(data.Clients, client.Client{
			ID:      asUUID(row.ID),
			Name:    row.Name.String,
			Phone:   row.Phone.String,
			Email:   row.Email.String,
			Address: row.Address.String,
		})
	}

	itemsByQuote := make(map[string][]quote.Item)
	for _, row := range rd.quoteItems {
		itemsByQuote[row.QuoteID] = append(itemsByQuote[row.QuoteID], quote.Item{
			ProductID: asUUID(row.ProductID),
			Quantity:  int(asFloat(row.Quantity)),
		})
	}

	for _, row := range rd.quotes {
		data.Quotes = append(data.Quotes, quote.Quote{
			ID:             asUUID(row.ID),
			ClientID:       asNullUUID(row.ClientID),
			Items:          itemsByQuote[row.ID],
			MarginPercent:  asFloat(row.ProfitMarginPercent),
			TotalCost:      asFloat(row.TotalCost),
			TotalPrice:     asFloat(row.TotalPrice),
			DiscountValue:  asFloat(row.DiscountValue),
			DiscountReason: row.DiscountReason.String,
			Status:         asStatus(row.Status),
			CreatedAt:      asTime(row.CreatedAt, now),
		})
	}

	itemsByReceipt := make(map[string][]receipt.Item)
	for _, row := range rd.receiptItems {
		itemsByReceipt[row.ReceiptID] = append(itemsByReceipt[row.ReceiptID], receipt.Item{
			ProductID: asUUID(row.ProductID),
			Name:      row.Name.String,
			Quantity:  int(asFloat(row.Quantity)),
			UnitPrice: asFloat(row.UnitPrice),
		})
	}

	for _, row := range rd.receipts {
		r := receipt.Receipt{
			ID:            asUUID(row.ID),
			ClientID:      asNullUUID(row.ClientID),
			Items:         itemsByReceipt[row.ID],
			TotalPrice:    asFloat(row.TotalPrice),
			DiscountValue: asFloat(row.DiscountValue),
			PaymentMethod: asPayment(row.PaymentMethod),
			Number:        row.ReceiptNumber.String,
			CreatedAt:     asTime(row.CreatedAt, now),
		}

		if row.QuoteID.Valid {
			if id := asUUID(row.QuoteID.String); id != uuid.Nil {
				r.QuoteID = &id
			}
		}

		data.Receipts = append(data.Receipts, r)
	}

	for _, row := range rd.transactions {
		data.Transactions = append(data.Transactions, ledger.Transaction{
			ID:          asUUID(row.ID),
			Date:        asTime(row.Date, now),
			Type:        asType(row.Type),
			Category:    asCategory(row.Category),
			Amount:      asFloat(row.Amount),
			Description: row.Description.String,
		})
	}

	return data
}

// dateLayouts covers the shapes remote rows have been seen in: full RFC 3339
// with or without sub-second precision, and bare dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func asTime(v sql.NullString, now func() time.Time) time.Time {
	if v.Valid {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v.String); err == nil {
				return t
			}
		}
	}

	return now()
}

func asFloat(v sql.NullFloat64) float64 {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return 0
	}

	return v.Float64
}

// asUUID turns a remote identity into a UUID; garbage identities become the
// nil UUID, which never matches a reference and so degrades to zero value.
func asUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func asNullUUID(v sql.NullString) uuid.UUID {
	if !v.Valid {
		return uuid.Nil
	}

	return asUUID(v.String)
}

func asUnit(v sql.NullString) catalog.Unit {
	switch u := catalog.Unit(v.String); u {
	case catalog.UnitLength, catalog.UnitCount, catalog.UnitMass:
		return u
	default:
		return catalog.UnitCount
	}
}

func asStatus(v sql.NullString) quote.Status {
	if s := quote.Status(v.String); s.Valid() {
		return s
	}

	return quote.StatusPending
}

func asPayment(v sql.NullString) receipt.PaymentMethod {
	switch m := receipt.PaymentMethod(v.String); m {
	case receipt.PaymentCash, receipt.PaymentCard, receipt.PaymentTransfer, receipt.PaymentOther:
		return m
	default:
		return receipt.PaymentOther
	}
}

func asType(v sql.NullString) ledger.Type {
	if t := ledger.Type(v.String); t == ledger.TypeIncome || t == ledger.TypeExpense {
		return t
	}

	return ledger.TypeExpense
}

func asCategory(v sql.NullString) ledger.Category {
	if c := ledger.Category(v.String); ledger.ValidCategory(c) {
		return c
	}

	return ledger.CategoryOther
}
