// Package sync reconciles the local snapshot with a remote mirror database.
// The local snapshot is the durability source of truth: reads fall back to it
// whenever the remote is slow, unreachable, or partially inconsistent, and
// writes to the remote are best-effort and never fail the caller.
package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/ledger"
	"github.com/atelierhq/atelier/internal/quote"
	"github.com/atelierhq/atelier/internal/receipt"
)

// DefaultTimeout bounds every remote interaction.
const DefaultTimeout = 3 * time.Second

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=sync

// State is the local snapshot the engine reconciles against.
type State interface {
	Load() appdata.AppData
	Save(data appdata.AppData) error
}

// Remote is the mirror database. Fetch methods return raw external rows;
// upserts replace owned child rows wholesale (delete-all-then-insert-all).
type Remote interface {
	Materials(ctx context.Context) ([]MaterialRow, error)
	Products(ctx context.Context) ([]ProductRow, []ProductMaterialRow, error)
	Clients(ctx context.Context) ([]ClientRow, error)
	Quotes(ctx context.Context) ([]QuoteRow, []QuoteItemRow, error)
	Receipts(ctx context.Context) ([]ReceiptRow, []ReceiptItemRow, error)
	Transactions(ctx context.Context) ([]TransactionRow, error)

	UpsertMaterial(ctx context.Context, row MaterialRow) error
	UpsertProduct(ctx context.Context, row ProductRow, children []ProductMaterialRow) error
	UpsertClient(ctx context.Context, row ClientRow) error
	UpsertQuote(ctx context.Context, row QuoteRow, items []QuoteItemRow) error
	UpsertReceipt(ctx context.Context, row ReceiptRow, items []ReceiptItemRow) error
	UpsertTransactions(ctx context.Context, rows []TransactionRow) error

	DeleteMaterial(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
	DeleteClient(ctx context.Context, id string) error
}

// Engine performs the reconciliation. A nil remote means local-only mode:
// fetches return the snapshot and pushes are dropped.
type Engine struct {
	state   State
	remote  Remote
	metrics Recorder
	log     *slog.Logger
	timeout time.Duration
	now     func() time.Time

	wg sync.WaitGroup
}

func NewEngine(state State, remote Remote, metrics Recorder, log *slog.Logger, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Engine{
		state:   state,
		remote:  remote,
		metrics: metrics,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

// FetchAll reads the local snapshot and attempts a bounded remote fetch of
// all six collections concurrently. Only a complete, error-free remote result
// is merged: it overwrites the snapshot except for Settings, which stay
// local. Any failure, timeout included, leaves the local snapshot
// authoritative and untouched.
func (e *Engine) FetchAll(ctx context.Context) appdata.AppData {
	local := e.state.Load()

	if e.remote == nil {
		return local
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var rd remoteData

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rd.materials, err = e.remote.Materials(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rd.products, rd.productMaterials, err = e.remote.Products(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rd.clients, err = e.remote.Clients(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rd.quotes, rd.quoteItems, err = e.remote.Quotes(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rd.receipts, rd.receiptItems, err = e.remote.Receipts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rd.transactions, err = e.remote.Transactions(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		e.log.Warn("remote fetch failed, local snapshot stays authoritative", "error", err)
		e.metrics.FetchResult(false)

		return local
	}

	merged := normalize(rd, e.now)
	merged.Settings = local.Settings

	if err := e.state.Save(merged); err != nil {
		// The merge itself succeeded; hand it to the caller regardless.
		e.log.Error("saving merged snapshot", "error", err)
	}

	e.metrics.FetchResult(true)

	return merged
}

// Push methods mirror one local write each. They return immediately; the
// actual remote work runs in the background against a bounded context and a
// failure is logged and counted, never surfaced.

func (e *Engine) PushMaterial(mat catalog.Material) {
	e.push("materials", func(ctx context.Context) error {
		return e.remote.UpsertMaterial(ctx, materialRow(mat))
	})
}

func (e *Engine) PushProduct(prod catalog.Product) {
	row, children := productRows(prod)

	e.push("products", func(ctx context.Context) error {
		return e.remote.UpsertProduct(ctx, row, children)
	})
}

func (e *Engine) PushClient(cl client.Client) {
	e.push("clients", func(ctx context.Context) error {
		return e.remote.UpsertClient(ctx, clientRow(cl))
	})
}

func (e *Engine) PushQuote(q quote.Quote) {
	row, items := quoteRows(q)

	e.push("quotes", func(ctx context.Context) error {
		return e.remote.UpsertQuote(ctx, row, items)
	})
}

func (e *Engine) PushReceipt(rcpt receipt.Receipt) {
	row, items := receiptRows(rcpt)

	e.push("receipts", func(ctx context.Context) error {
		return e.remote.UpsertReceipt(ctx, row, items)
	})
}

func (e *Engine) PushTransaction(tx ledger.Transaction) {
	e.push("transactions", func(ctx context.Context) error {
		return e.remote.UpsertTransactions(ctx, []TransactionRow{transactionRow(tx)})
	})
}

func (e *Engine) PushTransactions(txs []ledger.Transaction) {
	rows := make([]TransactionRow, len(txs))
	for i, tx := range txs {
		rows[i] = transactionRow(tx)
	}

	e.push("transactions", func(ctx context.Context) error {
		return e.remote.UpsertTransactions(ctx, rows)
	})
}

func (e *Engine) RemoveMaterial(id uuid.UUID) {
	e.push("materials", func(ctx context.Context) error {
		return e.remote.DeleteMaterial(ctx, id.String())
	})
}

func (e *Engine) RemoveProduct(id uuid.UUID) {
	e.push("products", func(ctx context.Context) error {
		return e.remote.DeleteProduct(ctx, id.String())
	})
}

func (e *Engine) RemoveClient(id uuid.UUID) {
	e.push("clients", func(ctx context.Context) error {
		return e.remote.DeleteClient(ctx, id.String())
	})
}

func (e *Engine) push(table string, op func(context.Context) error) {
	if e.remote == nil {
		return
	}

	e.wg.Add(1)

	go func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		if err := op(ctx); err != nil {
			e.log.Warn("push failed", "table", table, "error", err)
			e.metrics.PushResult(table, false)

			return
		}

		e.metrics.PushResult(table, true)
	}()
}

// Wait blocks until all in-flight pushes finish. Used at shutdown and in
// tests; callers on the request path never wait.
func (e *Engine) Wait() {
	e.wg.Wait()
}
