package main

import (
	"context"
	"time"

	"portfolio/internal/search"
	"portfolio/internal/store"

	"go.uber.org/zap"
)

type stubCommentStore struct {
	comments []store.Comment
	err      error
}

func (s *stubCommentStore) Create(ctx context.Context, name, text string) (*store.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := store.Comment{ID: "comment-1", Name: name, Comment: text, CreatedAt: time.Now()}
	s.comments = append(s.comments, c)
	return &c, nil
}

func (s *stubCommentStore) GetAll(ctx context.Context) ([]store.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.comments, nil
}

type stubRatingStore struct {
	created []int
	stats   *store.RatingStats
	err     error
}

func (s *stubRatingStore) Create(ctx context.Context, value int) (*store.Rating, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, value)
	return &store.Rating{ID: "rating-1", Value: value, CreatedAt: time.Now()}, nil
}

func (s *stubRatingStore) GetAllWithStats(ctx context.Context) (*store.RatingStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stats, nil
}

type stubContactStore struct {
	messages []store.ContactMessage
	err      error
}

func (s *stubContactStore) Create(ctx context.Context, m *store.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	m.ID = "contact-1"
	m.CreatedAt = time.Now()
	s.messages = append(s.messages, *m)
	return nil
}

type stubSearchClient struct {
	items []search.Item
	err   error
	calls int
}

func (s *stubSearchClient) Search(ctx context.Context, query string) ([]search.Item, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type stubMailer struct {
	sent int
	err  error
}

func (s *stubMailer) Send(templateFile, username, email string, data any) (int, error) {
	s.sent++
	if s.err != nil {
		return -1, s.err
	}
	return 200, nil
}

type testStubs struct {
	comments *stubCommentStore
	ratings  *stubRatingStore
	contact  *stubContactStore
	search   *stubSearchClient
	mailer   *stubMailer
}

func newTestApplication() (*application, *testStubs) {
	stubs := &testStubs{
		comments: &stubCommentStore{},
		ratings:  &stubRatingStore{stats: &store.RatingStats{Ratings: []store.Rating{}}},
		contact:  &stubContactStore{},
		search:   &stubSearchClient{},
		mailer:   &stubMailer{},
	}

	app := &application{
		config: config{
			env:  "test",
			mail: mailConfig{toEmail: "owner@example.com"},
		},
		logger: zap.NewNop().Sugar(),
		store: store.Storage{
			Comments:        stubs.comments,
			Ratings:         stubs.ratings,
			ContactMessages: stubs.contact,
		},
		search: stubs.search,
		mailer: stubs.mailer,
	}
	return app, stubs
}
