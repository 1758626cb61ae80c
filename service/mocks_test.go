package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/gateway"
)

type mockArtistRepo struct {
	CreateErr       error
	CreateDupFirst  bool
	Created         []*domain.Artist
	FindByIDResp    *domain.Artist
	FindByIDErr     error
	FindBySlugResp  *domain.Artist
	FindBySlugErr   error
	ReplaceErr      error
	Replaced        *domain.Artist
	DeleteErr       error
	ListResp        []domain.ArtistWithCounts
	ListPage        int64
	ListLimit       int64
	CountResp       int64
	ListAllResp     []*domain.Artist
	createCallCount int
}

func (m *mockArtistRepo) Create(ctx context.Context, a *domain.Artist) error {
	m.createCallCount++
	if m.CreateDupFirst && m.createCallCount == 1 {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	if m.CreateErr != nil {
		return m.CreateErr
	}
	a.ID = primitive.NewObjectID()
	m.Created = append(m.Created, a)
	return nil
}

func (m *mockArtistRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	if m.FindByIDErr != nil {
		return nil, m.FindByIDErr
	}
	if m.FindByIDResp != nil {
		return m.FindByIDResp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockArtistRepo) FindBySlug(ctx context.Context, slug string) (*domain.Artist, error) {
	if m.FindBySlugErr != nil {
		return nil, m.FindBySlugErr
	}
	if m.FindBySlugResp != nil {
		return m.FindBySlugResp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockArtistRepo) Replace(ctx context.Context, a *domain.Artist) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Replaced = a
	return nil
}

func (m *mockArtistRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.DeleteErr
}

func (m *mockArtistRepo) ListWithCounts(ctx context.Context, page, limit int64) ([]domain.ArtistWithCounts, error) {
	m.ListPage = page
	m.ListLimit = limit
	return m.ListResp, nil
}

func (m *mockArtistRepo) ListAll(ctx context.Context) ([]*domain.Artist, error) {
	return m.ListAllResp, nil
}

func (m *mockArtistRepo) Count(ctx context.Context) (int64, error) {
	return m.CountResp, nil
}

type mockSongRepo struct {
	Created       []*domain.Song
	CreateErr     error
	CountResp     int64
	FindResp      []*domain.Song
	FindByIDResp  *domain.Song
	ReplaceErr    error
	Replaced      *domain.Song
	countArtistID primitive.ObjectID
}

func (m *mockSongRepo) Create(ctx context.Context, s *domain.Song) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	s.ID = primitive.NewObjectID()
	m.Created = append(m.Created, s)
	return nil
}

func (m *mockSongRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Song, error) {
	if m.FindByIDResp != nil {
		return m.FindByIDResp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockSongRepo) Replace(ctx context.Context, s *domain.Song) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Replaced = s
	return nil
}

func (m *mockSongRepo) FindByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*domain.Song, error) {
	return m.FindResp, nil
}

func (m *mockSongRepo) CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	m.countArtistID = artistID
	return m.CountResp, nil
}

type mockAlbumRepo struct {
	Created   []*domain.Album
	FindResp  *domain.Album
	FindErr   error
	CountResp int64
}

func (m *mockAlbumRepo) Create(ctx context.Context, a *domain.Album) error {
	a.ID = primitive.NewObjectID()
	m.Created = append(m.Created, a)
	return nil
}

func (m *mockAlbumRepo) FindByIDAndArtist(ctx context.Context, id, artistID primitive.ObjectID) (*domain.Album, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if m.FindResp != nil {
		return m.FindResp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAlbumRepo) CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	return m.CountResp, nil
}

type mockProvisioner struct {
	CreateCalls int
	UpdateCalls int
	CreateErr   error
	UpdateErr   error
	LastBase    domain.Price
	LastCycle   gateway.Cycle
}

func (m *mockProvisioner) CreatePlans(ctx context.Context, artistName string, base domain.Price, cycle gateway.Cycle, converted []domain.ConvertedPrice) (*gateway.PlanIDs, error) {
	m.CreateCalls++
	m.LastBase = base
	m.LastCycle = cycle
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return &gateway.PlanIDs{
		StripePriceID:  "price_test",
		RazorpayPlanID: "plan_test",
		PayPalPlans:    map[string]string{base.Currency: "P-TEST"},
	}, nil
}

func (m *mockProvisioner) UpdatePlans(ctx context.Context, artist *domain.Artist, base domain.Price, cycle gateway.Cycle, converted []domain.ConvertedPrice) error {
	m.UpdateCalls++
	m.LastBase = base
	m.LastCycle = cycle
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	plan := &artist.SubscriptionPlans[0]
	plan.Cycle = cycle.Label
	plan.BasePrice = base
	plan.ConvertedPrices = converted
	return nil
}

type mockCache struct {
	data    map[string][]byte
	Deleted []string
	GetErr  error
	SetErr  error
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.GetErr != nil {
		return false, m.GetErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.Deleted = append(m.Deleted, k)
	}
	return nil
}

func (m *mockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
			m.Deleted = append(m.Deleted, k)
		}
	}
	return nil
}

type mockStore struct {
	Uploads   []string
	Deleted   []string
	UploadErr error
	DeleteErr error
}

func (m *mockStore) Upload(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	url := fmt.Sprintf("http://media.test/%s/%s", folder, name)
	m.Uploads = append(m.Uploads, url)
	return url, nil
}

func (m *mockStore) Delete(ctx context.Context, folder, name string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, fmt.Sprintf("%s/%s", folder, name))
	return nil
}
