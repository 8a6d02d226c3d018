package app_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atelierhq/atelier/internal/app"
	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/catalog"
	"github.com/atelierhq/atelier/internal/ledger"
	"github.com/atelierhq/atelier/internal/quote"
	"github.com/atelierhq/atelier/internal/receipt"
)

func newService(t *testing.T) (*app.Service, *app.MockPusher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	pusher := app.NewMockPusher(ctrl)
	store := appdata.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))

	return app.NewService(store, pusher), pusher
}

// seedCatalog saves one 150cm cotton roll and one product whose cost of 100
// is carried entirely by labor, keeping expected totals round.
func seedCatalog(t *testing.T, svc *app.Service, pusher *app.MockPusher) catalog.Product {
	t.Helper()

	pusher.EXPECT().PushMaterial(gomock.Any()).AnyTimes()
	pusher.EXPECT().PushProduct(gomock.Any()).AnyTimes()

	_, err := svc.SaveMaterial(app.MaterialParams{
		Name:        "Cotton",
		Unit:        catalog.UnitLength,
		CostPerUnit: 10,
		WidthCM:     150,
	})
	require.NoError(t, err)

	prod, err := svc.SaveProduct(app.ProductParams{Name: "Tote bag", BaseLaborCost: 100})
	require.NoError(t, err)

	return prod
}

func TestService_SaveMaterial(t *testing.T) {
	t.Run("AssignsIdentityAndPushes", func(t *testing.T) {
		svc, pusher := newService(t)

		pusher.EXPECT().PushMaterial(gomock.Any())

		m, err := svc.SaveMaterial(app.MaterialParams{Name: "Cotton", Unit: catalog.UnitLength, CostPerUnit: 10, WidthCM: 150})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)

		data := svc.Data()
		require.Len(t, data.Materials, 1)
		assert.Equal(t, m, data.Materials[0])
	})

	t.Run("WidthOnlyOnLengthMaterials", func(t *testing.T) {
		svc, pusher := newService(t)

		pusher.EXPECT().PushMaterial(gomock.Any())

		m, err := svc.SaveMaterial(app.MaterialParams{Name: "Buttons", Unit: catalog.UnitCount, CostPerUnit: 1, WidthCM: 80})
		require.NoError(t, err)
		assert.Zero(t, m.WidthCM)
	})

	t.Run("UnknownUnitRejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.SaveMaterial(app.MaterialParams{Name: "Mystery", Unit: "volume"})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}

func TestService_DeleteMaterial(t *testing.T) {
	svc, pusher := newService(t)

	pusher.EXPECT().PushMaterial(gomock.Any())

	m, err := svc.SaveMaterial(app.MaterialParams{Name: "Cotton", Unit: catalog.UnitLength, CostPerUnit: 10})
	require.NoError(t, err)

	pusher.EXPECT().RemoveMaterial(m.ID)

	require.NoError(t, svc.DeleteMaterial(m.ID))
	assert.Empty(t, svc.Data().Materials)
}

func TestService_SaveQuote(t *testing.T) {
	margin := 50.0

	t.Run("RecomputesTotals", func(t *testing.T) {
		svc, pusher := newService(t)
		prod := seedCatalog(t, svc, pusher)

		pusher.EXPECT().PushQuote(gomock.Any())

		res, err := svc.SaveQuote(app.QuoteParams{
			ClientID:      uuid.New(),
			Items:         []quote.Item{{ProductID: prod.ID, Quantity: 2}},
			MarginPercent: &margin,
			DiscountValue: 20,
		})
		require.NoError(t, err)
		assert.InDelta(t, 200, res.Quote.TotalCost, 1e-9)
		assert.InDelta(t, 280, res.Quote.TotalPrice, 1e-9)
		assert.Equal(t, quote.StatusPending, res.Quote.Status)
		assert.False(t, res.OfferReceipt)
	})

	t.Run("StaleTotalsNeverTrusted", func(t *testing.T) {
		svc, pusher := newService(t)
		prod := seedCatalog(t, svc, pusher)

		pusher.EXPECT().PushQuote(gomock.Any()).Times(2)

		res, err := svc.SaveQuote(app.QuoteParams{
			Items:         []quote.Item{{ProductID: prod.ID, Quantity: 1}},
			MarginPercent: &margin,
		})
		require.NoError(t, err)

		// Edit the saved quote: the stored totals are stale the moment the
		// item count changes and must be recomputed on save.
		res, err = svc.SaveQuote(app.QuoteParams{
			ID:            res.Quote.ID,
			Items:         []quote.Item{{ProductID: prod.ID, Quantity: 3}},
			MarginPercent: &margin,
		})
		require.NoError(t, err)
		assert.InDelta(t, 300, res.Quote.TotalCost, 1e-9)
		assert.InDelta(t, 450, res.Quote.TotalPrice, 1e-9)
	})

	t.Run("CreatedAtSurvivesEdits", func(t *testing.T) {
		svc, pusher := newService(t)
		prod := seedCatalog(t, svc, pusher)

		pusher.EXPECT().PushQuote(gomock.Any()).Times(2)

		res, err := svc.SaveQuote(app.QuoteParams{Items: []quote.Item{{ProductID: prod.ID, Quantity: 1}}})
		require.NoError(t, err)

		created := res.Quote.CreatedAt

		res, err = svc.SaveQuote(app.QuoteParams{
			ID:     res.Quote.ID,
			Items:  res.Quote.Items,
			Status: quote.StatusAccepted,
		})
		require.NoError(t, err)
		assert.True(t, created.Equal(res.Quote.CreatedAt), "re-accepting must not alter createdAt")
	})

	t.Run("PositiveQuantityRequired", func(t *testing.T) {
		svc, pusher := newService(t)
		prod := seedCatalog(t, svc, pusher)

		_, err := svc.SaveQuote(app.QuoteParams{Items: []quote.Item{{ProductID: prod.ID, Quantity: 0}}})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}

func TestService_NewlyAccepted(t *testing.T) {
	svc, pusher := newService(t)
	prod := seedCatalog(t, svc, pusher)

	pusher.EXPECT().PushQuote(gomock.Any()).AnyTimes()

	t.Run("CreatedDirectlyAsAcceptedOffersReceipt", func(t *testing.T) {
		res, err := svc.SaveQuote(app.QuoteParams{
			Items:  []quote.Item{{ProductID: prod.ID, Quantity: 1}},
			Status: quote.StatusAccepted,
		})
		require.NoError(t, err)
		assert.True(t, res.OfferReceipt)
	})

	t.Run("PendingToAcceptedOffersReceipt", func(t *testing.T) {
		res, err := svc.SaveQuote(app.QuoteParams{Items: []quote.Item{{ProductID: prod.ID, Quantity: 1}}})
		require.NoError(t, err)
		assert.False(t, res.OfferReceipt)

		res, err = svc.SetQuoteStatus(res.Quote.ID, quote.StatusAccepted)
		require.NoError(t, err)
		assert.True(t, res.OfferReceipt)
	})

	t.Run("AcceptedToAcceptedIsNotNewlyAccepted", func(t *testing.T) {
		res, err := svc.SaveQuote(app.QuoteParams{
			Items:  []quote.Item{{ProductID: prod.ID, Quantity: 1}},
			Status: quote.StatusAccepted,
		})
		require.NoError(t, err)
		require.True(t, res.OfferReceipt)

		res, err = svc.SetQuoteStatus(res.Quote.ID, quote.StatusAccepted)
		require.NoError(t, err)
		assert.False(t, res.OfferReceipt)
	})

	t.Run("MissingQuote", func(t *testing.T) {
		_, err := svc.SetQuoteStatus(uuid.New(), quote.StatusAccepted)
		assert.ErrorIs(t, err, app.ErrQuoteNotFound)
	})
}

func TestService_IssueQuoteReceipt(t *testing.T) {
	margin := 50.0

	setup := func(t *testing.T) (*app.Service, *app.MockPusher, quote.Quote) {
		svc, pusher := newService(t)
		prod := seedCatalog(t, svc, pusher)

		pusher.EXPECT().PushQuote(gomock.Any()).AnyTimes()

		res, err := svc.SaveQuote(app.QuoteParams{
			ClientID:      uuid.New(),
			Items:         []quote.Item{{ProductID: prod.ID, Quantity: 2}},
			MarginPercent: &margin,
			Status:        quote.StatusAccepted,
		})
		require.NoError(t, err)

		return svc, pusher, res.Quote
	}

	t.Run("BooksSaleInLedger", func(t *testing.T) {
		svc, pusher, q := setup(t)

		pusher.EXPECT().PushReceipt(gomock.Any())
		pusher.EXPECT().PushTransaction(gomock.Any())

		r, err := svc.IssueQuoteReceipt(q.ID, receipt.PaymentCash)
		require.NoError(t, err)

		require.NotNil(t, r.QuoteID)
		assert.Equal(t, q.ID, *r.QuoteID)
		assert.Equal(t, "R-000001", r.Number)
		assert.InDelta(t, q.TotalPrice, r.TotalPrice, 1e-9)
		require.Len(t, r.Items, 1)
		assert.Equal(t, "Tote bag", r.Items[0].Name)
		assert.InDelta(t, 150, r.Items[0].UnitPrice, 1e-9)

		data := svc.Data()
		require.Len(t, data.Transactions, 1)

		sale := data.Transactions[0]
		assert.Equal(t, ledger.TypeIncome, sale.Type)
		assert.Equal(t, ledger.CategorySale, sale.Category)
		assert.InDelta(t, r.TotalPrice, sale.Amount, 1e-9)
	})

	t.Run("SecondReceiptRejected", func(t *testing.T) {
		svc, pusher, q := setup(t)

		pusher.EXPECT().PushReceipt(gomock.Any())
		pusher.EXPECT().PushTransaction(gomock.Any())

		_, err := svc.IssueQuoteReceipt(q.ID, receipt.PaymentCash)
		require.NoError(t, err)

		_, err = svc.IssueQuoteReceipt(q.ID, receipt.PaymentCard)
		assert.ErrorIs(t, err, app.ErrReceiptExists)
	})

	t.Run("ReacceptingAfterReceiptNeverReoffers", func(t *testing.T) {
		svc, pusher, q := setup(t)

		pusher.EXPECT().PushReceipt(gomock.Any())
		pusher.EXPECT().PushTransaction(gomock.Any())

		_, err := svc.IssueQuoteReceipt(q.ID, receipt.PaymentCash)
		require.NoError(t, err)

		res, err := svc.SetQuoteStatus(q.ID, quote.StatusRejected)
		require.NoError(t, err)
		assert.False(t, res.OfferReceipt)

		res, err = svc.SetQuoteStatus(q.ID, quote.StatusAccepted)
		require.NoError(t, err)
		assert.False(t, res.OfferReceipt, "a quote that already has a receipt is never offered another")
	})

	t.Run("MissingQuote", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.IssueQuoteReceipt(uuid.New(), receipt.PaymentCash)
		assert.ErrorIs(t, err, app.ErrQuoteNotFound)
	})
}

func TestService_SaveReceipt_Standalone(t *testing.T) {
	svc, pusher := newService(t)

	pusher.EXPECT().PushReceipt(gomock.Any())
	pusher.EXPECT().PushTransaction(gomock.Any())

	r, err := svc.SaveReceipt(app.ReceiptParams{
		ClientID: uuid.New(),
		Items: []receipt.Item{
			{ProductID: uuid.New(), Name: "Cushion cover", Quantity: 3, UnitPrice: 25},
		},
		DiscountValue: 5,
		PaymentMethod: receipt.PaymentTransfer,
	})
	require.NoError(t, err)

	assert.Nil(t, r.QuoteID)
	assert.InDelta(t, 70, r.TotalPrice, 1e-9)
	assert.Equal(t, "R-000001", r.Number)

	data := svc.Data()
	require.Len(t, data.Transactions, 1)
	assert.InDelta(t, 70, data.Transactions[0].Amount, 1e-9)
}

func TestService_Transactions(t *testing.T) {
	t.Run("AddValidatesTaxonomy", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.AddTransaction(app.TransactionParams{Type: "refund", Category: ledger.CategoryOther})
		assert.ErrorIs(t, err, app.ErrInvalidInput)

		_, err = svc.AddTransaction(app.TransactionParams{Type: ledger.TypeExpense, Category: "groceries"})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})

	t.Run("AddAppends", func(t *testing.T) {
		svc, pusher := newService(t)

		pusher.EXPECT().PushTransaction(gomock.Any())

		tx, err := svc.AddTransaction(app.TransactionParams{
			Type:        ledger.TypeExpense,
			Category:    ledger.CategoryRawMaterial,
			Amount:      120,
			Description: "Fabric restock",
		})
		require.NoError(t, err)
		assert.False(t, tx.Date.IsZero())
		assert.Len(t, svc.Data().Transactions, 1)
	})

	t.Run("ImportRequiresConfirmation", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.ImportTransactions([]app.TransactionParams{{Type: ledger.TypeIncome, Category: ledger.CategorySale}}, false)
		assert.ErrorIs(t, err, app.ErrConfirmRequired)
	})

	t.Run("ImportReplacesWholeLedgerAndCoerces", func(t *testing.T) {
		svc, pusher := newService(t)

		pusher.EXPECT().PushTransaction(gomock.Any())
		pusher.EXPECT().PushTransactions(gomock.Any())

		_, err := svc.AddTransaction(app.TransactionParams{Type: ledger.TypeExpense, Category: ledger.CategoryRent, Amount: 400})
		require.NoError(t, err)

		imported, err := svc.ImportTransactions([]app.TransactionParams{
			{Type: "refund", Category: "groceries", Amount: 10},
			{Type: ledger.TypeIncome, Category: ledger.CategoryInitialCapital, Amount: 5000},
		}, true)
		require.NoError(t, err)
		require.Len(t, imported, 2)

		// Malformed rows are coerced, not rejected.
		assert.Equal(t, ledger.TypeExpense, imported[0].Type)
		assert.Equal(t, ledger.CategoryOther, imported[0].Category)
		assert.False(t, imported[0].Date.IsZero())

		data := svc.Data()
		assert.Len(t, data.Transactions, 2, "import overwrites, never merges")
	})
}

func TestService_PreviewPrice(t *testing.T) {
	svc, pusher := newService(t)
	prod := seedCatalog(t, svc, pusher)

	t.Run("ExplicitMargin", func(t *testing.T) {
		margin := 50.0

		got, err := svc.PreviewPrice(prod.ID, &margin)
		require.NoError(t, err)
		assert.InDelta(t, 100, got.Cost, 1e-9)
		assert.InDelta(t, 150, got.Price, 1e-9)
	})

	t.Run("SettingsDefaultMargin", func(t *testing.T) {
		got, err := svc.PreviewPrice(prod.ID, nil)
		require.NoError(t, err)
		assert.InDelta(t, 130, got.Price, 1e-9)
	})

	t.Run("MissingProduct", func(t *testing.T) {
		_, err := svc.PreviewPrice(uuid.New(), nil)
		assert.ErrorIs(t, err, app.ErrProductNotFound)
	})
}

func TestService_UpdateSettings(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.UpdateSettings(app.SettingsParams{
		BrandName:            "Mar y Sol",
		DefaultMarginPercent: 40,
		ContactPhone:         "+34 600 000 000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mar y Sol", got.BrandName)

	assert.Equal(t, got, svc.Data().Settings)
}
