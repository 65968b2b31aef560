// Package memory implements the repository interfaces over a goroutine-safe in-memory store.
// It backs demo mode and doubles as a real implementation in tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"artisanconnect/internal/domain/entity"
	"artisanconnect/internal/domain/repository"
	"artisanconnect/internal/infra/persistence/fixtures"
)

// Store holds every marketplace entity. Slices keep insertion order.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users       map[string]*entity.User
	credentials map[string]*entity.Credential // keyed by lower-case email
	categories  []*entity.Category
	products    []*entity.Product
	inquiries   []*entity.Inquiry
	favorites   []*entity.Favorite
	reviews     []*entity.Review

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]*entity.User),
		credentials: make(map[string]*entity.Credential),
		now:         time.Now,
	}
}

// NewDemoStore returns a store seeded with the default categories and the demo listings.
func NewDemoStore() *Store {
	s := NewStore()
	now := s.now()
	s.categories = fixtures.DefaultCategories(now)
	s.products = fixtures.DemoProducts(now)

	return s
}

// NewTransactionManager returns a TransactionManager that undoes the user and
// credential writes made inside a failed callback. Transactions are serialized.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{store: f.store, undo: f.undo}
}

// Execute runs fn and reverts the keys it wrote when it returns an error.
// Writes made outside the transaction in the meantime are kept.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.txMu.Lock()
	defer s.txMu.Unlock()

	undo := newUndoLog()
	if err := fn(&repositoryFactory{store: s, undo: undo}); err != nil {
		undo.rollback(s)

		return err
	}

	return nil
}

// undoLog keeps the value each key had before the transaction first wrote it.
// A nil value means the key did not exist. Callers hold Store.mu.
type undoLog struct {
	users       map[string]*entity.User
	credentials map[string]*entity.Credential
}

func newUndoLog() *undoLog {
	return &undoLog{
		users:       make(map[string]*entity.User),
		credentials: make(map[string]*entity.Credential),
	}
}

func (l *undoLog) recordUser(id string, prior *entity.User) {
	if l == nil {
		return
	}
	if _, seen := l.users[id]; seen {
		return
	}
	if prior != nil {
		prior = cloneUser(prior)
	}
	l.users[id] = prior
}

func (l *undoLog) recordCredential(email string, prior *entity.Credential) {
	if l == nil {
		return
	}
	if _, seen := l.credentials[email]; seen {
		return
	}
	if prior != nil {
		c := *prior
		prior = &c
	}
	l.credentials[email] = prior
}

func (l *undoLog) rollback(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, prior := range l.users {
		if prior == nil {
			delete(s.users, id)
			continue
		}
		s.users[id] = prior
	}
	for email, prior := range l.credentials {
		if prior == nil {
			delete(s.credentials, email)
			continue
		}
		s.credentials[email] = prior
	}
}

// newestFirst returns copies of items ordered by creation time, latest insert first on ties.
func newestFirst[T any](items []*T, createdAt func(*T) time.Time, clone func(*T) *T) []*T {
	out := make([]*T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, clone(items[i]))
	}
	slices.SortStableFunc(out, func(a, b *T) int {
		return createdAt(b).Compare(createdAt(a))
	})

	return out
}

func cloneUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Images = slices.Clone(p.Images)

	return &c
}

func cloneCategory(c *entity.Category) *entity.Category {
	out := *c

	return &out
}

func cloneInquiry(i *entity.Inquiry) *entity.Inquiry {
	c := *i

	return &c
}

func cloneFavorite(f *entity.Favorite) *entity.Favorite {
	c := *f

	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r

	return &c
}
