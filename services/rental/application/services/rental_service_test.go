package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/clock"
	"github.com/tapestack/tapestack/pkg/config"
	"github.com/tapestack/tapestack/pkg/logger"
	catalogdomain "github.com/tapestack/tapestack/services/catalog/domain"
	rentaldomain "github.com/tapestack/tapestack/services/rental/domain"
	"github.com/tapestack/tapestack/services/rental/domain/models"
	"github.com/tapestack/tapestack/services/rental/domain/repositories"
)

var testNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

// fakeRepo is an in-memory RentalRepository. The mutex serializes the
// count-then-insert in Create the same way the serializable transaction does
// in Postgres, and FinishWithRevisionCheck applies the conditional-update
// semantics of the real store.
type fakeRepo struct {
	mu      sync.Mutex
	rentals map[uuid.UUID]*models.Rental

	// beforeFinish, when set, runs before the revision check so tests can
	// interleave a rival write.
	beforeFinish func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rentals: make(map[uuid.UUID]*models.Rental)}
}

func (f *fakeRepo) Create(_ context.Context, rental *models.Rental, stockLevel int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var outstanding int32
	for _, r := range f.rentals {
		if r.VHSID == rental.VHSID && r.Outstanding() {
			outstanding++
		}
	}
	if outstanding >= stockLevel {
		return rentaldomain.ErrOutOfStock
	}

	stored := *rental
	f.rentals[rental.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.rentals[id]
	if !ok {
		return nil, rentaldomain.ErrRentalNotFound
	}
	snapshot := *stored
	return &snapshot, nil
}

func (f *fakeRepo) FindAll(_ context.Context, opts repositories.QueryOpts) ([]*models.Rental, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]*models.Rental, 0, len(f.rentals))
	for _, r := range f.rentals {
		snapshot := *r
		all = append(all, &snapshot)
	}
	return all, len(all), nil
}

func (f *fakeRepo) FinishWithRevisionCheck(_ context.Context, rental *models.Rental, expectedRevision int64) error {
	if f.beforeFinish != nil {
		f.beforeFinish()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.rentals[rental.ID]
	if !ok {
		return rentaldomain.ErrRentalNotFound
	}
	if stored.Revision != expectedRevision {
		return rentaldomain.ErrConcurrentUpdate
	}
	stored.ReturnDate = rental.ReturnDate
	stored.Price = rental.Price
	stored.Revision = expectedRevision + 1
	rental.Revision = stored.Revision
	return nil
}

func (f *fakeRepo) CountOutstandingByVHS(_ context.Context, vhsID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, r := range f.rentals {
		if r.VHSID == vhsID && r.Outstanding() {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) FindOverdue(_ context.Context, now time.Time) ([]*models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var overdue []*models.Rental
	for _, r := range f.rentals {
		if r.Outstanding() && r.DueDate.Before(now) {
			snapshot := *r
			overdue = append(overdue, &snapshot)
		}
	}
	return overdue, nil
}

// bump simulates a rival writer: it increments the stored revision directly.
func (f *fakeRepo) bump(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rentals[id].Revision++
}

// fakeCatalog serves TapeInfo from a fixed map.
type fakeCatalog struct {
	tapes map[uuid.UUID]TapeInfo
}

func (f *fakeCatalog) TapeInfo(_ context.Context, vhsID uuid.UUID) (TapeInfo, error) {
	info, ok := f.tapes[vhsID]
	if !ok {
		return TapeInfo{}, catalogdomain.ErrVHSNotFound
	}
	return info, nil
}

func newTestService(repo *fakeRepo, catalog *fakeCatalog) *RentalService {
	log := logger.New(&config.Config{LogLevel: "error"})
	return NewRentalService(repo, catalog, clock.Fixed(testNow), log)
}

func TestRentalService_Create(t *testing.T) {
	vhsID := uuid.New()
	userID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 2},
	}}
	svc := newTestService(repo, catalog)

	rental, err := svc.Create(context.Background(), userID, vhsID, testNow.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rental.Revision != 1 {
		t.Fatalf("expected revision 1, got %d", rental.Revision)
	}
	if !rental.RentalDate.Equal(testNow) {
		t.Fatalf("expected rental date %v, got %v", testNow, rental.RentalDate)
	}
	if !rental.Outstanding() {
		t.Fatal("new rental must be outstanding")
	}

	stored, err := repo.GetByID(context.Background(), rental.ID)
	if err != nil {
		t.Fatalf("rental not persisted: %v", err)
	}
	if stored.UserID != userID || stored.VHSID != vhsID {
		t.Fatal("persisted rental carries wrong identifiers")
	}
}

func TestRentalService_Create_DueDateNotFuture(t *testing.T) {
	vhsID := uuid.New()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(newFakeRepo(), catalog)

	for _, due := range []time.Time{testNow, testNow.Add(-time.Hour)} {
		_, err := svc.Create(context.Background(), uuid.New(), vhsID, due)
		if !errors.Is(err, rentaldomain.ErrDueDateNotFuture) {
			t.Fatalf("due %v: expected ErrDueDateNotFuture, got %v", due, err)
		}
	}
}

func TestRentalService_Create_VHSNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{}})

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), testNow.Add(72*time.Hour))
	if !errors.Is(err, catalogdomain.ErrVHSNotFound) {
		t.Fatalf("expected ErrVHSNotFound, got %v", err)
	}
}

func TestRentalService_Create_OutOfStock(t *testing.T) {
	vhsID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(repo, catalog)

	if _, err := svc.Create(context.Background(), uuid.New(), vhsID, testNow.Add(72*time.Hour)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), uuid.New(), vhsID, testNow.Add(72*time.Hour))
	if !errors.Is(err, rentaldomain.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
}

// With k copies and k+1 simultaneous borrowers, exactly k creations succeed
// and the loser gets ErrOutOfStock.
func TestRentalService_Create_ConcurrentLastCopy(t *testing.T) {
	const stock = 4
	vhsID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: stock},
	}}
	svc := newTestService(repo, catalog)

	var wg sync.WaitGroup
	errs := make([]error, stock+1)
	for i := 0; i < stock+1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), uuid.New(), vhsID, testNow.Add(72*time.Hour))
		}(i)
	}
	wg.Wait()

	var ok, outOfStock int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, rentaldomain.ErrOutOfStock):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != stock || outOfStock != 1 {
		t.Fatalf("expected %d successes and 1 out-of-stock, got %d and %d", stock, ok, outOfStock)
	}

	outstanding, _ := repo.CountOutstandingByVHS(context.Background(), vhsID)
	if outstanding != stock {
		t.Fatalf("expected %d outstanding rentals, got %d", stock, outstanding)
	}
}

func TestRentalService_Finish(t *testing.T) {
	vhsID := uuid.New()
	userID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(repo, catalog)

	created, err := svc.Create(context.Background(), userID, vhsID, testNow.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	finished, err := svc.Finish(context.Background(), created.ID, userID)
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	if finished.Outstanding() {
		t.Fatal("finished rental must not be outstanding")
	}
	if finished.Price == nil || *finished.Price != 9.90 {
		t.Fatalf("expected price 9.90 for a three day on-time rental, got %v", finished.Price)
	}
	if finished.ReturnDate == nil || !finished.ReturnDate.Equal(testNow) {
		t.Fatalf("expected return date %v, got %v", testNow, finished.ReturnDate)
	}
	if finished.Revision != 2 {
		t.Fatalf("expected revision 2 after finish, got %d", finished.Revision)
	}
}

func TestRentalService_Finish_AlreadyReturned(t *testing.T) {
	vhsID := uuid.New()
	userID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(repo, catalog)

	created, _ := svc.Create(context.Background(), userID, vhsID, testNow.Add(72*time.Hour))
	if _, err := svc.Finish(context.Background(), created.ID, userID); err != nil {
		t.Fatalf("first finish failed: %v", err)
	}

	_, err := svc.Finish(context.Background(), created.ID, userID)
	if !errors.Is(err, rentaldomain.ErrAlreadyReturned) {
		t.Fatalf("expected ErrAlreadyReturned, got %v", err)
	}
}

func TestRentalService_Finish_NotBorrower(t *testing.T) {
	vhsID := uuid.New()
	borrower := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(repo, catalog)

	created, _ := svc.Create(context.Background(), borrower, vhsID, testNow.Add(72*time.Hour))

	_, err := svc.Finish(context.Background(), created.ID, uuid.New())
	if !errors.Is(err, rentaldomain.ErrNotBorrower) {
		t.Fatalf("expected ErrNotBorrower, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), created.ID)
	if !stored.Outstanding() {
		t.Fatal("rental must stay outstanding after a rejected finish")
	}
}

func TestRentalService_Finish_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{}})

	_, err := svc.Finish(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, rentaldomain.ErrRentalNotFound) {
		t.Fatalf("expected ErrRentalNotFound, got %v", err)
	}
}

// A rival write between the load and the conditional update must surface as
// ErrConcurrentUpdate, never as a silent lost update.
func TestRentalService_Finish_StaleRevision(t *testing.T) {
	vhsID := uuid.New()
	userID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(repo, catalog)

	created, _ := svc.Create(context.Background(), userID, vhsID, testNow.Add(72*time.Hour))

	repo.beforeFinish = func() {
		repo.beforeFinish = nil
		repo.bump(created.ID)
	}

	_, err := svc.Finish(context.Background(), created.ID, userID)
	if !errors.Is(err, rentaldomain.ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}

func TestRentalService_Available(t *testing.T) {
	vhsID := uuid.New()
	userID := uuid.New()
	repo := newFakeRepo()
	catalog := &fakeCatalog{tapes: map[uuid.UUID]TapeInfo{
		vhsID: {RentalPrice: 3.30, StockLevel: 1},
	}}
	svc := newTestService(repo, catalog)

	available, err := svc.Available(context.Background(), vhsID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Fatal("expected tape to be available before any rental")
	}

	created, _ := svc.Create(context.Background(), userID, vhsID, testNow.Add(72*time.Hour))

	available, _ = svc.Available(context.Background(), vhsID)
	if available {
		t.Fatal("expected tape to be unavailable with the only copy out")
	}

	if _, err := svc.Finish(context.Background(), created.ID, userID); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	available, _ = svc.Available(context.Background(), vhsID)
	if !available {
		t.Fatal("expected tape to be available again after return")
	}
}
