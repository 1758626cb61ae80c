package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/dto"
	"github.com/sujalreset-source/streaming-backend/pricing"
	"github.com/sujalreset-source/streaming-backend/repository"
	"github.com/sujalreset-source/streaming-backend/storage"
)

const audioFolder = "songs"

type CreateSongInput struct {
	ArtistID string
	Req      dto.CreateSongRequest
	Audio    *FileUpload
	Cover    *FileUpload
}

type UpdateSongInput struct {
	SongID string
	Req    dto.UpdateSongRequest
	Audio  *FileUpload
	Cover  *FileUpload
}

type SongService interface {
	Create(ctx context.Context, in CreateSongInput) (*dto.SongResponse, error)
	Update(ctx context.Context, in UpdateSongInput) (*dto.SongResponse, error)
	ListByArtist(ctx context.Context, artistID string) ([]dto.SongResponse, error)
}

type songService struct {
	songs     repository.SongRepository
	albums    repository.AlbumRepository
	converter pricing.Converter
	store     storage.ObjectStore
}

func NewSongService(songs repository.SongRepository, albums repository.AlbumRepository, converter pricing.Converter, store storage.ObjectStore) SongService {
	return &songService{songs: songs, albums: albums, converter: converter, store: store}
}

// parseAlbumOnly turns the possibly-absent, possibly-stringly flag into a
// plain bool once, at the boundary.
func parseAlbumOnly(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	}
	return false
}

// parsePriceJSON decodes a form-encoded price value. Clients sometimes
// double-stringify the JSON, so one level of re-decoding is tolerated.
func parsePriceJSON(raw string) (*domain.Price, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil, nil
	}

	var intermediate string
	if err := json.Unmarshal([]byte(cleaned), &intermediate); err == nil {
		cleaned = strings.TrimSpace(intermediate)
	}

	var price domain.Price
	if err := json.Unmarshal([]byte(cleaned), &price); err != nil {
		return nil, domain.Validationf("base_price must be valid JSON")
	}
	if price.Amount <= 0 || price.Currency == "" {
		return nil, domain.Validationf("invalid price format")
	}
	return &price, nil
}

func (s *songService) Create(ctx context.Context, in CreateSongInput) (*dto.SongResponse, error) {
	if in.ArtistID == "" {
		return nil, domain.ErrNotArtist
	}
	artistID, err := primitive.ObjectIDFromHex(in.ArtistID)
	if err != nil {
		return nil, domain.ErrNotArtist
	}

	req := in.Req
	if req.Title == "" || req.Duration == 0 {
		return nil, domain.Validationf("title and duration are required")
	}

	accessType := domain.AccessType(req.AccessType)
	if req.AccessType == "" {
		accessType = domain.AccessSubscription
	}
	if !accessType.Valid() {
		return nil, domain.Validationf("invalid access type")
	}

	albumOnly := parseAlbumOnly(req.AlbumOnly)
	if albumOnly && req.AlbumID == "" {
		return nil, domain.Validationf("album-only songs must belong to an album")
	}

	var album *domain.Album
	var albumID *primitive.ObjectID
	if req.AlbumID != "" {
		id, err := primitive.ObjectIDFromHex(req.AlbumID)
		if err != nil {
			return nil, domain.ErrNotOwner
		}
		album, err = s.albums.FindByIDAndArtist(ctx, id, artistID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrNotOwner
			}
			return nil, err
		}
		albumID = &id
	}

	if album != nil && album.AccessType != accessType {
		return nil, domain.Validationf("song access type must match album access type")
	}

	genre := resolveGenre(albumOnly, album, req.Genre)

	// A price belongs on purchase-only singles and nowhere else. Presence
	// is judged on the trimmed value so a whitespace-only field counts as
	// absent rather than slipping past into the conversion step.
	priceRaw := strings.TrimSpace(req.BasePrice)
	isSinglePurchase := accessType == domain.AccessPurchaseOnly && !albumOnly
	if isSinglePurchase && priceRaw == "" {
		return nil, domain.Validationf("price is required for purchase-only single songs")
	}
	if priceRaw != "" && !isSinglePurchase {
		return nil, domain.Validationf("price can only be set for purchase-only single songs")
	}

	basePrice, err := parsePriceJSON(priceRaw)
	if err != nil {
		return nil, err
	}

	if in.Audio == nil {
		return nil, domain.Validationf("audio file is required")
	}
	if !strings.HasPrefix(in.Audio.ContentType, "audio/") {
		return nil, domain.Validationf("invalid audio file type")
	}

	var convertedPrices []domain.ConvertedPrice
	if isSinglePurchase {
		convertedPrices, err = s.converter.Convert(basePrice.Currency, basePrice.Amount)
		if err != nil {
			return nil, err
		}
	}

	audioKey := strings.TrimSuffix(in.Audio.Filename, path.Ext(in.Audio.Filename))
	audioName := fmt.Sprintf("%s-%s", artistID.Hex(), in.Audio.Filename)
	audioURL, err := s.store.Upload(ctx, audioFolder, audioName, in.Audio.Reader, in.Audio.Size)
	if err != nil {
		return nil, fmt.Errorf("audio upload failed: %w", err)
	}

	coverImage, err := s.resolveCover(ctx, artistID, albumOnly, album, in.Cover)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	song := &domain.Song{
		Title:           req.Title,
		ArtistID:        artistID,
		Genre:           genre,
		Duration:        req.Duration,
		AccessType:      accessType,
		BasePrice:       basePrice,
		ConvertedPrices: convertedPrices,
		AlbumOnly:       albumOnly,
		AlbumID:         albumID,
		AudioURL:        audioURL,
		AudioKey:        audioKey,
		CoverImage:      coverImage,
		ReleaseDate:     req.ReleaseDate,
		ISRC:            req.ISRC,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.songs.Create(ctx, song); err != nil {
		return nil, err
	}

	shaped := dto.ShapeSong(song)
	return &shaped, nil
}

// Update applies only the fields present and re-checks the same rules the
// create path enforces: album ownership stays scoped to the song's artist,
// access type must stay valid and match the album's, and a price exists
// exactly when the song ends up purchase-only and not album-only.
func (s *songService) Update(ctx context.Context, in UpdateSongInput) (*dto.SongResponse, error) {
	id, err := primitive.ObjectIDFromHex(in.SongID)
	if err != nil {
		return nil, domain.ErrSongNotFound
	}

	song, err := s.songs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}

	req := in.Req
	if req.Title != "" {
		song.Title = req.Title
	}
	if req.Duration > 0 {
		song.Duration = req.Duration
	}
	if req.ReleaseDate != "" {
		song.ReleaseDate = req.ReleaseDate
	}
	if req.ISRC != "" {
		song.ISRC = req.ISRC
	}

	if req.AccessType != "" {
		accessType := domain.AccessType(req.AccessType)
		if !accessType.Valid() {
			return nil, domain.Validationf("invalid access type")
		}
		song.AccessType = accessType
	}

	var album *domain.Album
	if req.AlbumID != "" {
		albumID, err := primitive.ObjectIDFromHex(req.AlbumID)
		if err != nil {
			return nil, domain.ErrNotOwner
		}
		album, err = s.albums.FindByIDAndArtist(ctx, albumID, song.ArtistID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrNotOwner
			}
			return nil, err
		}
		song.AlbumID = &albumID
	}
	if album == nil && req.AccessType != "" && song.AlbumID != nil {
		album, err = s.albums.FindByIDAndArtist(ctx, *song.AlbumID, song.ArtistID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}
	if album != nil && album.AccessType != song.AccessType {
		return nil, domain.Validationf("song access type must match album access type")
	}

	if req.Genre != "" {
		song.Genre = resolveGenre(false, nil, req.Genre)
	} else if album != nil && song.AlbumOnly {
		song.Genre = album.Genre
	}

	priceRaw := strings.TrimSpace(req.BasePrice)
	isSinglePurchase := song.AccessType == domain.AccessPurchaseOnly && !song.AlbumOnly
	if priceRaw != "" && !isSinglePurchase {
		return nil, domain.Validationf("price can only be set for purchase-only single songs")
	}
	if priceRaw != "" {
		basePrice, err := parsePriceJSON(priceRaw)
		if err != nil {
			return nil, err
		}
		converted, err := s.converter.Convert(basePrice.Currency, basePrice.Amount)
		if err != nil {
			return nil, err
		}
		song.BasePrice = basePrice
		song.ConvertedPrices = converted
	}
	if isSinglePurchase && song.BasePrice == nil {
		return nil, domain.Validationf("price is required for purchase-only single songs")
	}
	if !isSinglePurchase {
		song.BasePrice = nil
		song.ConvertedPrices = nil
	}

	if in.Audio != nil {
		if !strings.HasPrefix(in.Audio.ContentType, "audio/") {
			return nil, domain.Validationf("invalid audio file type")
		}
		audioName := fmt.Sprintf("%s-%s", song.ArtistID.Hex(), in.Audio.Filename)
		audioURL, err := s.store.Upload(ctx, audioFolder, audioName, in.Audio.Reader, in.Audio.Size)
		if err != nil {
			return nil, fmt.Errorf("audio upload failed: %w", err)
		}
		song.AudioURL = audioURL
		song.AudioKey = strings.TrimSuffix(in.Audio.Filename, path.Ext(in.Audio.Filename))
	}

	if in.Cover != nil && !song.AlbumOnly {
		name := fmt.Sprintf("%s-%s", song.ArtistID.Hex(), in.Cover.Filename)
		coverURL, err := s.store.Upload(ctx, "covers", name, in.Cover.Reader, in.Cover.Size)
		if err != nil {
			return nil, fmt.Errorf("cover upload failed: %w", err)
		}
		song.CoverImage = coverURL
	}

	song.UpdatedAt = time.Now().UTC()

	if err := s.songs.Replace(ctx, song); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}

	shaped := dto.ShapeSong(song)
	return &shaped, nil
}

// Album-only songs take the album's genre; standalone songs take the
// request's comma-separated list, defaulting to empty.
func resolveGenre(albumOnly bool, album *domain.Album, raw string) []string {
	if albumOnly {
		if album != nil && album.Genre != nil {
			return album.Genre
		}
		return []string{}
	}
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *songService) resolveCover(ctx context.Context, artistID primitive.ObjectID, albumOnly bool, album *domain.Album, cover *FileUpload) (string, error) {
	if !albumOnly && cover != nil {
		name := fmt.Sprintf("%s-%s", artistID.Hex(), cover.Filename)
		url, err := s.store.Upload(ctx, "covers", name, cover.Reader, cover.Size)
		if err != nil {
			return "", fmt.Errorf("cover upload failed: %w", err)
		}
		return url, nil
	}
	if album != nil {
		return album.CoverImage, nil
	}
	return "", nil
}

func (s *songService) ListByArtist(ctx context.Context, artistID string) ([]dto.SongResponse, error) {
	id, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}
	songs, err := s.songs.FindByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SongResponse, 0, len(songs))
	for _, song := range songs {
		out = append(out, dto.ShapeSong(song))
	}
	return out, nil
}
