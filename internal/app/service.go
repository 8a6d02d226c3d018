// Package app wires the business operations over the snapshot store: catalog
// and client upkeep, the quote lifecycle, receipt issuance, and the ledger.
// Every mutation is a pure transform of the aggregate applied through the
// state container, followed by a best-effort push to the remote mirror.
package app

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/ledger"
	"github.com/atelierhq/atelier/internal/pricing"
	"github.com/atelierhq/atelier/internal/quote"
	"github.com/atelierhq/atelier/internal/receipt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrQuoteNotFound   = errors.New("quote not found")

	// ErrReceiptExists guards the one-receipt-per-quote invariant.
	ErrReceiptExists = errors.New("quote already has a receipt")

	// ErrConfirmRequired is returned when a bulk import is attempted without
	// the explicit confirmation flag.
	ErrConfirmRequired = errors.New("import requires explicit confirmation")

	ErrInvalidInput = errors.New("invalid input")
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=app

// State is the local snapshot container. Load never fails; Apply serializes
// transforms and persists their result.
type State interface {
	Load() appdata.AppData
	Apply(transform func(appdata.AppData) (appdata.AppData, error)) (appdata.AppData, error)
}

// Pusher mirrors local writes to the remote store. Implementations must
// return promptly and must never fail the caller; the local snapshot is the
// durability source of truth and the mirror may lag silently.
type Pusher interface {
	PushMaterial(mat catalog.Material)
	PushProduct(prod catalog.Product)
	PushClient(cl client.Client)
	PushQuote(q quote.Quote)
	PushReceipt(rcpt receipt.Receipt)
	PushTransaction(tx ledger.Transaction)
	PushTransactions(txs []ledger.Transaction)
	RemoveMaterial(id uuid.UUID)
	RemoveProduct(id uuid.UUID)
	RemoveClient(id uuid.UUID)
}

type Service struct {
	state  State
	pusher Pusher
}

func NewService(state State, pusher Pusher) *Service {
	return &Service{state: state, pusher: pusher}
}

// Data returns the current snapshot.
func (s *Service) Data() appdata.AppData {
	return s.state.Load()
}

type MaterialParams struct {
	ID          uuid.UUID // zero for a new material
	Name        string
	Unit        catalog.Unit
	CostPerUnit float64
	WidthCM     float64
}

func (s *Service) SaveMaterial(p MaterialParams) (catalog.Material, error) {
	if p.Unit != catalog.UnitLength && p.Unit != catalog.UnitCount && p.Unit != catalog.UnitMass {
		return catalog.Material{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, p.Unit)
	}

	m := catalog.Material{
		ID:          p.ID,
		Name:        p.Name,
		Unit:        p.Unit,
		CostPerUnit: p.CostPerUnit,
		WidthCM:     p.WidthCM,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	// Commercial width only applies to length materials bought as cut fabric.
	if m.Unit != catalog.UnitLength {
		m.WidthCM = 0
	}

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Materials = replace(d.Materials, func(v catalog.Material) bool { return v.ID == m.ID }, m)
		return d, nil
	})
	if err != nil {
		return catalog.Material{}, fmt.Errorf("saving material: %w", err)
	}

	s.pusher.PushMaterial(m)

	return m, nil
}

func (s *Service) DeleteMaterial(id uuid.UUID) error {
	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Materials = remove(d.Materials, func(v catalog.Material) bool { return v.ID == id })
		return d, nil
	})
	if err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}

	s.pusher.RemoveMaterial(id)

	return nil
}

type ProductParams struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Requirements  []catalog.Requirement
	BaseLaborCost float64
	ImageURL      string
}

func (s *Service) SaveProduct(p ProductParams) (catalog.Product, error) {
	prod := catalog.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Requirements:  slices.Clone(p.Requirements),
		BaseLaborCost: p.BaseLaborCost,
		ImageURL:      p.ImageURL,
	}
	if prod.ID == uuid.Nil {
		prod.ID = uuid.New()
	}

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Products = replace(d.Products, func(v catalog.Product) bool { return v.ID == prod.ID }, prod)
		return d, nil
	})
	if err != nil {
		return catalog.Product{}, fmt.Errorf("saving product: %w", err)
	}

	s.pusher.PushProduct(prod)

	return prod, nil
}

func (s *Service) DeleteProduct(id uuid.UUID) error {
	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Products = remove(d.Products, func(v catalog.Product) bool { return v.ID == id })
		return d, nil
	})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	s.pusher.RemoveProduct(id)

	return nil
}

// PricePreview is the live cost/price pair shown while building a quote.
type PricePreview struct {
	Cost  float64
	Price float64
}

// PreviewPrice computes a product's cost and marked-up price. When
// marginPercent is nil the settings default applies.
func (s *Service) PreviewPrice(productID uuid.UUID, marginPercent *float64) (PricePreview, error) {
	d := s.state.Load()

	p, ok := catalog.ProductByID(d.Products, productID)
	if !ok {
		return PricePreview{}, ErrProductNotFound
	}

	margin := d.Settings.DefaultMarginPercent
	if marginPercent != nil {
		margin = *marginPercent
	}

	return PricePreview{
		Cost:  catalog.ProductCost(p, d.Materials),
		Price: pricing.FinalPrice(p, d.Materials, margin),
	}, nil
}

type ClientParams struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Email   string
	Address string
}

func (s *Service) SaveClient(p ClientParams) (client.Client, error) {
	c := client.Client{
		ID:      p.ID,
		Name:    p.Name,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Clients = replace(d.Clients, func(v client.Client) bool { return v.ID == c.ID }, c)
		return d, nil
	})
	if err != nil {
		return client.Client{}, fmt.Errorf("saving client: %w", err)
	}

	s.pusher.PushClient(c)

	return c, nil
}

func (s *Service) DeleteClient(id uuid.UUID) error {
	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Clients = remove(d.Clients, func(v client.Client) bool { return v.ID == id })
		return d, nil
	})
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	s.pusher.RemoveClient(id)

	return nil
}

type QuoteParams struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Items    []quote.Item
	// MarginPercent nil means the settings default margin.
	MarginPercent  *float64
	DiscountValue  float64
	DiscountReason string
	// Status empty means pending.
	Status quote.Status
}

// QuoteResult is a saved quote plus whether receipt issuance should be
// offered to the operator right now.
type QuoteResult struct {
	Quote        quote.Quote
	OfferReceipt bool
}

// SaveQuote persists a quote, recomputing its totals from the current items,
// margin, and discount. Stored totals are never trusted as input. Moving into
// accepted from any other status, including creating the quote directly as
// accepted, is the one event that offers receipt issuance, and only while the
// quote has no receipt yet.
func (s *Service) SaveQuote(p QuoteParams) (QuoteResult, error) {
	status := p.Status
	if status == "" {
		status = quote.StatusPending
	}

	if !status.Valid() {
		return QuoteResult{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, p.Status)
	}

	for _, item := range p.Items {
		if item.Quantity < 1 {
			return QuoteResult{}, fmt.Errorf("%w: item quantity must be positive", ErrInvalidInput)
		}
	}

	var res QuoteResult

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		q := quote.Quote{
			ID:             p.ID,
			ClientID:       p.ClientID,
			Items:          slices.Clone(p.Items),
			DiscountValue:  p.DiscountValue,
			DiscountReason: p.DiscountReason,
			Status:         status,
		}

		q.MarginPercent = d.Settings.DefaultMarginPercent
		if p.MarginPercent != nil {
			q.MarginPercent = *p.MarginPercent
		}

		newlyAccepted := status == quote.StatusAccepted

		if q.ID == uuid.Nil {
			q.ID = uuid.New()
			q.CreatedAt = time.Now()
		} else if prev, ok := quote.ByID(d.Quotes, q.ID); ok {
			q.CreatedAt = prev.CreatedAt
			newlyAccepted = status == quote.StatusAccepted && prev.Status != quote.StatusAccepted
		} else {
			q.CreatedAt = time.Now()
		}

		totals := pricing.QuoteTotals(quote.Lines(q.Items), d.Products, d.Materials, q.MarginPercent, q.DiscountValue)
		q.TotalCost = totals.Cost
		q.TotalPrice = totals.Price

		d.Quotes = replace(d.Quotes, func(v quote.Quote) bool { return v.ID == q.ID }, q)

		_, hasReceipt := receipt.ForQuote(d.Receipts, q.ID)
		res = QuoteResult{Quote: q, OfferReceipt: newlyAccepted && !hasReceipt}

		return d, nil
	})
	if err != nil {
		return QuoteResult{}, fmt.Errorf("saving quote: %w", err)
	}

	s.pusher.PushQuote(res.Quote)

	return res, nil
}

// SetQuoteStatus transitions an existing quote, recomputing totals like any
// other save.
func (s *Service) SetQuoteStatus(id uuid.UUID, status quote.Status) (QuoteResult, error) {
	d := s.state.Load()

	prev, ok := quote.ByID(d.Quotes, id)
	if !ok {
		return QuoteResult{}, ErrQuoteNotFound
	}

	return s.SaveQuote(QuoteParams{
		ID:             prev.ID,
		ClientID:       prev.ClientID,
		Items:          prev.Items,
		MarginPercent:  &prev.MarginPercent,
		DiscountValue:  prev.DiscountValue,
		DiscountReason: prev.DiscountReason,
		Status:         status,
	})
}

// IssueQuoteReceipt emits the receipt settling an accepted quote, snapshotting
// the sold items at today's catalog prices and booking the sale in the ledger.
// A quote already holding a receipt is rejected.
func (s *Service) IssueQuoteReceipt(quoteID uuid.UUID, method receipt.PaymentMethod) (receipt.Receipt, error) {
	var (
		issued receipt.Receipt
		sale   ledger.Transaction
	)

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		q, ok := quote.ByID(d.Quotes, quoteID)
		if !ok {
			return appdata.AppData{}, ErrQuoteNotFound
		}

		if _, exists := receipt.ForQuote(d.Receipts, quoteID); exists {
			return appdata.AppData{}, ErrReceiptExists
		}

		items := make([]receipt.Item, len(q.Items))
		for i, line := range q.Items {
			item := receipt.Item{ProductID: line.ProductID, Quantity: line.Quantity}

			// A product deleted since the quote was drawn up still shows on
			// the receipt, just with no name and a zero price.
			if p, ok := catalog.ProductByID(d.Products, line.ProductID); ok {
				item.Name = p.Name
				item.UnitPrice = pricing.FinalPrice(p, d.Materials, q.MarginPercent)
			}

			items[i] = item
		}

		issued = receipt.Receipt{
			ID:            uuid.New(),
			QuoteID:       &q.ID,
			ClientID:      q.ClientID,
			Items:         items,
			TotalPrice:    q.TotalPrice,
			DiscountValue: q.DiscountValue,
			PaymentMethod: method,
			Number:        receipt.NumberFor(len(d.Receipts) + 1),
			CreatedAt:     time.Now(),
		}

		sale = saleEntry(issued)

		d.Receipts = append(slices.Clone(d.Receipts), issued)
		d.Transactions = append(slices.Clone(d.Transactions), sale)

		return d, nil
	})
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) || errors.Is(err, ErrReceiptExists) {
			return receipt.Receipt{}, err
		}

		return receipt.Receipt{}, fmt.Errorf("issuing receipt: %w", err)
	}

	s.pusher.PushReceipt(issued)
	s.pusher.PushTransaction(sale)

	return issued, nil
}

type ReceiptParams struct {
	ClientID      uuid.UUID
	Items         []receipt.Item
	DiscountValue float64
	PaymentMethod receipt.PaymentMethod
}

// SaveReceipt records a standalone sale with no originating quote.
func (s *Service) SaveReceipt(p ReceiptParams) (receipt.Receipt, error) {
	var (
		issued receipt.Receipt
		sale   ledger.Transaction
	)

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		var total float64
		for _, item := range p.Items {
			total += item.UnitPrice * float64(item.Quantity)
		}

		issued = receipt.Receipt{
			ID:            uuid.New(),
			ClientID:      p.ClientID,
			Items:         slices.Clone(p.Items),
			TotalPrice:    total - p.DiscountValue,
			DiscountValue: p.DiscountValue,
			PaymentMethod: p.PaymentMethod,
			Number:        receipt.NumberFor(len(d.Receipts) + 1),
			CreatedAt:     time.Now(),
		}

		sale = saleEntry(issued)

		d.Receipts = append(slices.Clone(d.Receipts), issued)
		d.Transactions = append(slices.Clone(d.Transactions), sale)

		return d, nil
	})
	if err != nil {
		return receipt.Receipt{}, fmt.Errorf("saving receipt: %w", err)
	}

	s.pusher.PushReceipt(issued)
	s.pusher.PushTransaction(sale)

	return issued, nil
}

// saleEntry builds the single income transaction a receipt issuance books.
func saleEntry(r receipt.Receipt) ledger.Transaction {
	return ledger.Transaction{
		ID:          uuid.New(),
		Date:        r.CreatedAt,
		Type:        ledger.TypeIncome,
		Category:    ledger.CategorySale,
		Amount:      r.TotalPrice,
		Description: fmt.Sprintf("Sale %s", r.Number),
	}
}

type TransactionParams struct {
	Date        time.Time
	Type        ledger.Type
	Category    ledger.Category
	Amount      float64
	Description string
}

func (s *Service) AddTransaction(p TransactionParams) (ledger.Transaction, error) {
	if p.Type != ledger.TypeIncome && p.Type != ledger.TypeExpense {
		return ledger.Transaction{}, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, p.Type)
	}

	if !ledger.ValidCategory(p.Category) {
		return ledger.Transaction{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, p.Category)
	}

	tx := ledger.Transaction{
		ID:          uuid.New(),
		Date:        p.Date,
		Type:        p.Type,
		Category:    p.Category,
		Amount:      p.Amount,
		Description: p.Description,
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Transactions = append(slices.Clone(d.Transactions), tx)
		return d, nil
	})
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("adding transaction: %w", err)
	}

	s.pusher.PushTransaction(tx)

	return tx, nil
}

// ImportTransactions overwrites the whole ledger. It is the only bulk-replace
// operation in the system and requires an explicit confirmation from the
// operator. Imported rows are coerced to safe defaults instead of rejected.
func (s *Service) ImportTransactions(params []TransactionParams, confirm bool) ([]ledger.Transaction, error) {
	if !confirm {
		return nil, ErrConfirmRequired
	}

	txs := make([]ledger.Transaction, len(params))
	for i, p := range params {
		tx := ledger.Transaction{
			ID:          uuid.New(),
			Date:        p.Date,
			Type:        p.Type,
			Category:    p.Category,
			Amount:      p.Amount,
			Description: p.Description,
		}

		if tx.Type != ledger.TypeIncome && tx.Type != ledger.TypeExpense {
			tx.Type = ledger.TypeExpense
		}

		if !ledger.ValidCategory(tx.Category) {
			tx.Category = ledger.CategoryOther
		}

		if tx.Date.IsZero() {
			tx.Date = time.Now()
		}

		txs[i] = tx
	}

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Transactions = txs
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing transactions: %w", err)
	}

	s.pusher.PushTransactions(txs)

	return txs, nil
}

type SettingsParams struct {
	BrandName            string
	DefaultMarginPercent float64
	ContactPhone         string
	StorefrontTagline    string
}

// UpdateSettings replaces the local settings. Settings never leave this
// machine; there is no remote push for them.
func (s *Service) UpdateSettings(p SettingsParams) (appdata.Settings, error) {
	settings := appdata.Settings{
		BrandName:            p.BrandName,
		DefaultMarginPercent: p.DefaultMarginPercent,
		ContactPhone:         p.ContactPhone,
		StorefrontTagline:    p.StorefrontTagline,
	}

	_, err := s.state.Apply(func(d appdata.AppData) (appdata.AppData, error) {
		d.Settings = settings
		return d, nil
	})
	if err != nil {
		return appdata.Settings{}, fmt.Errorf("updating settings: %w", err)
	}

	return settings, nil
}

func replace[T any](list []T, match func(T) bool, v T) []T {
	for i := range list {
		if match(list[i]) {
			out := slices.Clone(list)
			out[i] = v

			return out
		}
	}

	return append(slices.Clone(list), v)
}

func remove[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))

	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}

	return out
}
