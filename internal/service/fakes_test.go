package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"article-service/internal/cache"
	"article-service/internal/model"
	"article-service/internal/repository"
)

type memUsers struct {
	mu     sync.Mutex
	users  map[int64]*model.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[int64]*model.User{}}
}

func (r *memUsers) add(name, email string) *model.User {
	u, _ := r.Create(context.Background(), &model.User{Name: name, Email: email, Password: "hash"})
	return u
}

func (r *memUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Create(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	cp := *user
	cp.ID = r.nextID
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

type memArticles struct {
	mu       sync.Mutex
	articles map[int64]*model.Article
	nextID   int64

	ownerQueries int
	dateQueries  int
}

func newMemArticles() *memArticles {
	return &memArticles{articles: map[int64]*model.Article{}}
}

func (r *memArticles) FindByID(_ context.Context, id int64) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memArticles) page(match func(*model.Article) bool, less func(a, b *model.Article) bool, skip, take int) []*model.Article {
	var out []*model.Article
	for _, a := range r.articles {
		if match(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if skip >= len(out) {
		return []*model.Article{}
	}
	out = out[skip:]
	if take < len(out) {
		out = out[:take]
	}
	return out
}

func (r *memArticles) FindByOwner(_ context.Context, ownerID int64, skip, take int) ([]*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ownerQueries++
	return r.page(
		func(a *model.Article) bool { return a.OwnerID == ownerID },
		func(a, b *model.Article) bool { return a.ID > b.ID },
		skip, take,
	), nil
}

func (r *memArticles) FindByDateRange(_ context.Context, start, end time.Time, skip, take int) ([]*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dateQueries++
	return r.page(
		func(a *model.Article) bool { return !a.PublishedAt.Before(start) && !a.PublishedAt.After(end) },
		func(a, b *model.Article) bool { return a.ID < b.ID },
		skip, take,
	), nil
}

func (r *memArticles) Save(_ context.Context, article *model.Article) (*model.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *article
	cp.ID = r.nextID
	if cp.PublishedAt.IsZero() {
		cp.PublishedAt = time.Now()
	}
	r.articles[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memArticles) UpdateFields(_ context.Context, id int64, name, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil
	}
	a.Name = name
	a.Description = description
	return nil
}

func (r *memArticles) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.articles, id)
	return nil
}

func (r *memArticles) counts() (owner, date int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ownerQueries, r.dateQueries
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Get(ctx context.Context, key cache.Key) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockGateway) Set(ctx context.Context, key cache.Key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockGateway) Delete(ctx context.Context, keys ...cache.Key) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) GenerateToken(userID int64, email string) (string, error) {
	return s.token, s.err
}
