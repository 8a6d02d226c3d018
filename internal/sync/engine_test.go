package sync

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atelierhq/atelier/internal/appdata"
	"github.com/atelierhq/atelier/internal/catalog"
)

// recorderSink counts outcomes so tests can assert that swallowed failures
// stay observable.
type recorderSink struct {
	mu sync.Mutex

	fetchOK, fetchFailed int
	pushOK, pushFailed   int
}

func (r *recorderSink) FetchResult(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ok {
		r.fetchOK++
	} else {
		r.fetchFailed++
	}
}

func (r *recorderSink) PushResult(_ string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ok {
		r.pushOK++
	} else {
		r.pushFailed++
	}
}

func newEngine(t *testing.T, remote Remote, timeout time.Duration) (*Engine, *appdata.FileStore, *recorderSink) {
	t.Helper()

	store := appdata.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	sink := &recorderSink{}

	return NewEngine(store, remote, sink, slog.Default(), timeout), store, sink
}

func localWithMaterial(t *testing.T, store *appdata.FileStore) appdata.AppData {
	t.Helper()

	local := appdata.Seed()
	local.Settings.BrandName = "Local Brand"
	local.Materials = []catalog.Material{
		{ID: uuid.New(), Name: "Local cotton", Unit: catalog.UnitLength, CostPerUnit: 7, WidthCM: 140},
	}
	require.NoError(t, store.Save(local))

	return local
}

// expectEmptyOthers stubs every fetch except the named one with an empty
// success. The failing tests register their own expectation for the rest.
func expectEmptyOthers(remote *MockRemote, except string) {
	if except != "materials" {
		remote.EXPECT().Materials(gomock.Any()).Return(nil, nil).AnyTimes()
	}

	if except != "products" {
		remote.EXPECT().Products(gomock.Any()).Return(nil, nil, nil).AnyTimes()
	}

	if except != "clients" {
		remote.EXPECT().Clients(gomock.Any()).Return(nil, nil).AnyTimes()
	}

	if except != "quotes" {
		remote.EXPECT().Quotes(gomock.Any()).Return(nil, nil, nil).AnyTimes()
	}

	if except != "receipts" {
		remote.EXPECT().Receipts(gomock.Any()).Return(nil, nil, nil).AnyTimes()
	}

	if except != "transactions" {
		remote.EXPECT().Transactions(gomock.Any()).Return(nil, nil).AnyTimes()
	}
}

func TestEngine_FetchAll_LocalOnlyMode(t *testing.T) {
	engine, store, _ := newEngine(t, nil, 0)
	local := localWithMaterial(t, store)

	got := engine.FetchAll(context.Background())
	assert.Equal(t, local, got)
}

func TestEngine_FetchAll_MergesCompleteRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := NewMockRemote(ctrl)

	remoteMaterial := uuid.New()

	remote.EXPECT().Materials(gomock.Any()).Return([]MaterialRow{
		{ID: remoteMaterial.String(), Name: str("Linen"), Unit: str("length"), CostPerUnit: flt(12), WidthCM: flt(160)},
	}, nil)
	remote.EXPECT().Products(gomock.Any()).Return(nil, nil, nil)
	remote.EXPECT().Clients(gomock.Any()).Return(nil, nil)
	remote.EXPECT().Quotes(gomock.Any()).Return(nil, nil, nil)
	remote.EXPECT().Receipts(gomock.Any()).Return(nil, nil, nil)
	remote.EXPECT().Transactions(gomock.Any()).Return(nil, nil)

	engine, store, sink := newEngine(t, remote, time.Second)
	localWithMaterial(t, store)

	got := engine.FetchAll(context.Background())

	require.Len(t, got.Materials, 1)
	assert.Equal(t, remoteMaterial, got.Materials[0].ID, "remote data overwrites the local snapshot")
	assert.Equal(t, "Local Brand", got.Settings.BrandName, "settings always stay local")

	// The merged snapshot is written back.
	assert.Equal(t, got, store.Load())
	assert.Equal(t, 1, sink.fetchOK)
}

func TestEngine_FetchAll_AnySingleFailureKeepsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := NewMockRemote(ctrl)

	// Five collections succeed; one failure abandons the whole merge.
	expectEmptyOthers(remote, "transactions")
	remote.EXPECT().Transactions(gomock.Any()).Return(nil, errors.New("connection reset")).AnyTimes()

	engine, store, sink := newEngine(t, remote, time.Second)
	local := localWithMaterial(t, store)

	got := engine.FetchAll(context.Background())

	assert.Equal(t, local, got, "partial remote success must not merge")
	assert.Equal(t, local, store.Load(), "snapshot untouched on fallback")
	assert.Equal(t, 1, sink.fetchFailed)
	assert.Zero(t, sink.fetchOK)
}

func TestEngine_FetchAll_TimeoutKeepsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := NewMockRemote(ctrl)

	expectEmptyOthers(remote, "materials")
	remote.EXPECT().Materials(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]MaterialRow, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).AnyTimes()

	engine, store, _ := newEngine(t, remote, 20*time.Millisecond)
	local := localWithMaterial(t, store)

	start := time.Now()
	got := engine.FetchAll(context.Background())

	assert.Equal(t, local, got)
	assert.Less(t, time.Since(start), time.Second, "fetch must respect its bound")
}

func TestEngine_Push_FailureIsSwallowedButCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := NewMockRemote(ctrl)

	remote.EXPECT().UpsertMaterial(gomock.Any(), gomock.Any()).Return(errors.New("remote down"))

	engine, _, sink := newEngine(t, remote, time.Second)

	engine.PushMaterial(catalog.Material{ID: uuid.New(), Name: "Cotton", Unit: catalog.UnitLength})
	engine.Wait()

	assert.Equal(t, 1, sink.pushFailed)
	assert.Zero(t, sink.pushOK)
}

func TestEngine_Push_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := NewMockRemote(ctrl)

	mat := catalog.Material{ID: uuid.New(), Name: "Cotton", Unit: catalog.UnitLength, CostPerUnit: 10, WidthCM: 150}

	remote.EXPECT().UpsertMaterial(gomock.Any(), materialRow(mat)).Return(nil)

	engine, _, sink := newEngine(t, remote, time.Second)

	engine.PushMaterial(mat)
	engine.Wait()

	assert.Equal(t, 1, sink.pushOK)
}

func TestEngine_Push_NilRemoteIsNoop(t *testing.T) {
	engine, _, sink := newEngine(t, nil, time.Second)

	engine.PushMaterial(catalog.Material{ID: uuid.New()})
	engine.PushTransactions(nil)
	engine.Wait()

	assert.Zero(t, sink.pushOK)
	assert.Zero(t, sink.pushFailed)
}
