package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/dto"
	"github.com/sujalreset-source/streaming-backend/repository"
	"github.com/sujalreset-source/streaming-backend/storage"
)

type CreateAlbumInput struct {
	ArtistID string
	Req      dto.CreateAlbumRequest
	Cover    *FileUpload
}

type AlbumService interface {
	Create(ctx context.Context, in CreateAlbumInput) (*dto.AlbumResponse, error)
}

type albumService struct {
	albums repository.AlbumRepository
	store  storage.ObjectStore
}

func NewAlbumService(albums repository.AlbumRepository, store storage.ObjectStore) AlbumService {
	return &albumService{albums: albums, store: store}
}

func (s *albumService) Create(ctx context.Context, in CreateAlbumInput) (*dto.AlbumResponse, error) {
	if in.ArtistID == "" {
		return nil, domain.ErrNotArtist
	}
	artistID, err := primitive.ObjectIDFromHex(in.ArtistID)
	if err != nil {
		return nil, domain.ErrNotArtist
	}

	if in.Req.Title == "" {
		return nil, domain.Validationf("album title is required")
	}

	accessType := domain.AccessType(in.Req.AccessType)
	if in.Req.AccessType == "" {
		accessType = domain.AccessSubscription
	}
	if !accessType.Valid() {
		return nil, domain.Validationf("invalid access type")
	}

	coverImage := ""
	if in.Cover != nil {
		name := fmt.Sprintf("%s-%s", artistID.Hex(), in.Cover.Filename)
		coverImage, err = s.store.Upload(ctx, "covers", name, in.Cover.Reader, in.Cover.Size)
		if err != nil {
			return nil, fmt.Errorf("cover upload failed: %w", err)
		}
	}

	album := &domain.Album{
		Title:      in.Req.Title,
		ArtistID:   artistID,
		CoverImage: coverImage,
		Genre:      resolveGenre(false, nil, in.Req.Genre),
		AccessType: accessType,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}

	shaped := dto.ShapeAlbum(album)
	return &shaped, nil
}
