package routes

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"lostfound/internal/models"
	"lostfound/internal/repository"
	"lostfound/internal/services"
)

// memDB is an in-memory stand-in for the Postgres repositories.
type memDB struct {
	mu     sync.Mutex
	users  []models.User
	items  map[int64]*models.Item
	claims map[int64]*models.Claim
	seq    int64
}

func newMemDB() *memDB {
	return &memDB{items: map[int64]*models.Item{}, claims: map[int64]*models.Claim{}}
}

func (db *memDB) next() int64 {
	db.seq++
	return db.seq
}

type memUsers struct{ db *memDB }

func (r memUsers) Create(_ context.Context, u *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u.ID = r.db.next()
	u.CreatedAt = time.Now()
	r.db.users = append(r.db.users, *u)
	return nil
}

func (r memUsers) IsIdentityTaken(_ context.Context, reg, email string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.RegistrationNumber == reg || strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) find(match func(models.User) bool) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUsers) GetByRegistration(_ context.Context, reg string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.RegistrationNumber == reg })
}

func (r memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r memUsers) List(_ context.Context, role models.Role) ([]models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.User
	for _, u := range r.db.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r memUsers) CountMasters(_ context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := 0
	for _, u := range r.db.users {
		if u.Role == models.RoleMaster && u.Active {
			n++
		}
	}
	return n, nil
}

type memItems struct{ db *memDB }

func (r memItems) Create(_ context.Context, it *models.Item) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it.ID = r.db.next()
	it.Status = models.ItemUnclaimed
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	cp := *it
	r.db.items[it.ID] = &cp
	return nil
}

func (r memItems) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r memItems) sorted(keep func(*models.Item) bool) []models.Item {
	var out []models.Item
	for _, it := range r.db.items {
		if keep(it) {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r memItems) Search(_ context.Context, f models.ItemFilter) ([]models.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	term := strings.ToLower(f.Term)
	return r.sorted(func(it *models.Item) bool {
		switch {
		case it.Status != models.ItemUnclaimed:
			return false
		case f.Category != "" && it.Category != f.Category:
			return false
		case f.Location != "" && it.Location != f.Location:
			return false
		case f.Date != nil && !it.FoundDate.Equal(*f.Date):
			return false
		case term != "" && !strings.Contains(strings.ToLower(it.Name+" "+it.Description), term):
			return false
		}
		return true
	}), nil
}

func (r memItems) ListAll(_ context.Context) ([]models.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.sorted(func(*models.Item) bool { return true }), nil
}

func (r memItems) ListReturned(_ context.Context) ([]models.ReturnedItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.ReturnedItem
	for _, it := range r.sorted(func(it *models.Item) bool { return it.Status == models.ItemReturned }) {
		out = append(out, models.ReturnedItem{Item: it})
	}
	return out, nil
}

func (r memItems) MarkReturned(_ context.Context, id int64) (*models.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if it.Status != models.ItemClaimed {
		return nil, repository.ErrConflict
	}
	now := time.Now()
	it.Status = models.ItemReturned
	it.ReturnedAt = &now
	cp := *it
	return &cp, nil
}

func (r memItems) Delete(_ context.Context, id int64) (*string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.db.items, id)
	return it.PhotoPath, nil
}

type memClaims struct{ db *memDB }

func (r memClaims) CreatePending(_ context.Context, itemID, userID int64, justification string) (*models.Claim, *models.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[itemID]
	if !ok || it.Status != models.ItemUnclaimed {
		return nil, nil, repository.ErrConflict
	}
	it.Status = models.ItemPendingClaim
	c := &models.Claim{ID: r.db.next(), ItemID: itemID, UserID: userID, Justification: justification, Status: models.ClaimPending, CreatedAt: time.Now()}
	r.db.claims[c.ID] = c
	cc, ci := *c, *it
	return &cc, &ci, nil
}

func (r memClaims) Resolve(_ context.Context, claimID int64, status models.ClaimStatus, itemStatus models.ItemStatus, actorID int64) (*models.Claim, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.claims[claimID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if c.Status != models.ClaimPending {
		return nil, repository.ErrConflict
	}
	now := time.Now()
	c.Status, c.ResolvedAt, c.ResolvedBy = status, &now, &actorID
	if it, ok := r.db.items[c.ItemID]; ok {
		it.Status = itemStatus
	}
	cp := *c
	return &cp, nil
}

func (r memClaims) ListPending(_ context.Context) ([]models.PendingClaim, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []models.PendingClaim
	for _, c := range r.db.claims {
		if c.Status == models.ClaimPending {
			out = append(out, models.PendingClaim{Claim: *c})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type nopQueue struct {
	mu   sync.Mutex
	sent []services.Notification
}

func (q *nopQueue) Enqueue(_ context.Context, msg services.Notification) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, msg)
	return nil
}

func (q *nopQueue) SendNow(ctx context.Context, msg services.Notification) error {
	return q.Enqueue(ctx, msg)
}

type nopResets struct{}

func (nopResets) Create(context.Context, int64, string, time.Time) error { return nil }
func (nopResets) Redeem(context.Context, string, time.Time, string) (int64, error) {
	return 0, repository.ErrNotFound
}
func (nopResets) DeleteExpired(context.Context, time.Time) (int64, error) { return 0, nil }

type memReports struct {
	mu   sync.Mutex
	rows []models.LostReport
}

func (r *memReports) Create(_ context.Context, rep *models.LostReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *rep)
	return nil
}

func (r *memReports) List(context.Context) ([]models.LostReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.LostReport(nil), r.rows...), nil
}

type stubStats struct {
	mu        sync.Mutex
	lastLimit int
}

func (*stubStats) Collect(context.Context) (*models.SystemStats, error) {
	return &models.SystemStats{TotalUsers: 1}, nil
}

func (s *stubStats) List(_ context.Context, limit int) ([]models.DeadLetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLimit = limit
	return nil, nil
}

func (s *stubStats) limit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLimit
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }
