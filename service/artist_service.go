package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/sujalreset-source/streaming-backend/cache"
	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/dto"
	"github.com/sujalreset-source/streaming-backend/gateway"
	"github.com/sujalreset-source/streaming-backend/logger"
	"github.com/sujalreset-source/streaming-backend/pricing"
	"github.com/sujalreset-source/streaming-backend/repository"
	"github.com/sujalreset-source/streaming-backend/storage"
)

// cacheTTL bounds staleness for all artist read paths. Writes additionally
// invalidate the affected keys, so readers normally see updates at once.
const cacheTTL = 10 * time.Minute

const listCachePrefix = "artists:page="

func listCacheKey(page, limit int64) string {
	return fmt.Sprintf("artists:page=%d:limit=%d", page, limit)
}

func detailCacheKey(identifier string) string {
	return "artist:" + identifier
}

// FileUpload is a request-scoped media asset handed down from the handler.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

type CreateArtistInput struct {
	Name      string
	Bio       string
	Location  string
	Image     *FileUpload
	BasePrice domain.Price
	Cycle     gateway.Cycle
	CreatedBy string
}

type UpdateArtistInput struct {
	ArtistID          string
	Name              string
	Bio               string
	Location          string
	SubscriptionPrice *float64
	CycleLabel        string
	Image             *FileUpload
	UpdatedBy         string
}

type ArtistService interface {
	Create(ctx context.Context, in CreateArtistInput) (*dto.ArtistResponse, error)
	Update(ctx context.Context, in UpdateArtistInput) (*dto.ArtistResponse, error)
	Delete(ctx context.Context, artistID string) error
	ListPaginated(ctx context.Context, page, limit int64) (*dto.ListArtistsResponse, error)
	ListAll(ctx context.Context) ([]dto.ArtistResponse, error)
	GetByIdentifier(ctx context.Context, identifier string) (*dto.ArtistDetailResponse, error)
}

type artistService struct {
	artists     repository.ArtistRepository
	songs       repository.SongRepository
	albums      repository.AlbumRepository
	converter   pricing.Converter
	provisioner gateway.PlanProvisioner
	cache       cache.Cache
	store       storage.ObjectStore
	imageFolder string
}

func NewArtistService(
	artists repository.ArtistRepository,
	songs repository.SongRepository,
	albums repository.AlbumRepository,
	converter pricing.Converter,
	provisioner gateway.PlanProvisioner,
	c cache.Cache,
	store storage.ObjectStore,
	imageFolder string,
) ArtistService {
	return &artistService{
		artists:     artists,
		songs:       songs,
		albums:      albums,
		converter:   converter,
		provisioner: provisioner,
		cache:       c,
		store:       store,
		imageFolder: imageFolder,
	}
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}

// Create provisions gateway plans first and performs exactly one store
// write afterwards, so a provisioning failure leaves no artist behind.
func (s *artistService) Create(ctx context.Context, in CreateArtistInput) (*dto.ArtistResponse, error) {
	imageURL := ""
	if in.Image != nil {
		name := fmt.Sprintf("%s-%s", slugify(in.Name), in.Image.Filename)
		url, err := s.store.Upload(ctx, s.imageFolder, name, in.Image.Reader, in.Image.Size)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		imageURL = url
	}

	now := time.Now().UTC()
	artist := &domain.Artist{
		Name:              in.Name,
		Slug:              slugify(in.Name),
		Bio:               in.Bio,
		Location:          in.Location,
		Image:             imageURL,
		SubscriptionPlans: []domain.SubscriptionPlan{},
		CreatedBy:         in.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	provisioned := false
	if in.BasePrice.Amount > 0 {
		converted, err := s.converter.Convert(in.BasePrice.Currency, in.BasePrice.Amount)
		if err != nil {
			return nil, err
		}

		plans, err := s.provisioner.CreatePlans(ctx, in.Name, in.BasePrice, in.Cycle, converted)
		if err != nil {
			return nil, fmt.Errorf("plan provisioning failed: %w", err)
		}
		provisioned = true

		artist.SubscriptionPlans = append(artist.SubscriptionPlans, domain.SubscriptionPlan{
			Cycle:           in.Cycle.Label,
			BasePrice:       in.BasePrice,
			StripePriceID:   plans.StripePriceID,
			RazorpayPlanID:  plans.RazorpayPlanID,
			PayPalPlans:     plans.PayPalPlans,
			ConvertedPrices: converted,
		})
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			artist.Slug = fmt.Sprintf("%s-%s", artist.Slug, uuid.New().String()[:8])
			err = s.artists.Create(ctx, artist)
		}
		if err != nil {
			if provisioned {
				logger.Error(logger.EventPlanOrphaned, "Artist write failed after gateway provisioning", logger.Fields(
					"artist", in.Name,
					"error", err.Error(),
				))
				return nil, fmt.Errorf("%w: %s", domain.ErrPlanOrphaned, in.Name)
			}
			return nil, err
		}
	}

	s.invalidateListings(ctx)

	shaped := dto.ShapeArtist(artist)
	return &shaped, nil
}

// Update applies only the fields present; absent fields stay untouched.
func (s *artistService) Update(ctx context.Context, in UpdateArtistInput) (*dto.ArtistResponse, error) {
	id, err := primitive.ObjectIDFromHex(in.ArtistID)
	if err != nil {
		return nil, domain.ErrArtistNotFound
	}

	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}

	if in.Name != "" {
		artist.Name = in.Name
	}
	if in.Bio != "" {
		artist.Bio = in.Bio
	}
	if in.Location != "" {
		artist.Location = in.Location
	}

	if in.Image != nil {
		name := fmt.Sprintf("%s-%s", artist.ID.Hex(), in.Image.Filename)
		url, err := s.store.Upload(ctx, s.imageFolder, name, in.Image.Reader, in.Image.Size)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		if artist.Image != "" && artist.Image != url {
			s.removeImage(ctx, artist.Image)
		}
		artist.Image = url
	}

	replanned := false
	priceOrCycleChanged := in.SubscriptionPrice != nil || in.CycleLabel != ""
	if priceOrCycleChanged && len(artist.SubscriptionPlans) > 0 {
		label := in.CycleLabel
		if label == "" {
			label = artist.SubscriptionPlans[0].Cycle
		}
		cycle, err := gateway.CycleFromLabel(label)
		if err != nil {
			return nil, err
		}

		base := artist.SubscriptionPlans[0].BasePrice
		if in.SubscriptionPrice != nil {
			base.Amount = *in.SubscriptionPrice
		}

		converted, err := s.converter.Convert(base.Currency, base.Amount)
		if err != nil {
			return nil, err
		}

		if err := s.provisioner.UpdatePlans(ctx, artist, base, cycle, converted); err != nil {
			return nil, fmt.Errorf("plan update failed: %w", err)
		}
		replanned = true
	}

	artist.UpdatedBy = in.UpdatedBy
	artist.UpdatedAt = time.Now().UTC()

	if err := s.artists.Replace(ctx, artist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		if replanned {
			logger.Error(logger.EventPlanOrphaned, "Artist write failed after gateway re-provisioning", logger.Fields(
				"artist", artist.Slug,
				"error", err.Error(),
			))
			return nil, fmt.Errorf("%w: %s", domain.ErrPlanOrphaned, artist.Slug)
		}
		return nil, err
	}

	s.invalidateArtist(ctx, artist)

	shaped := dto.ShapeArtist(artist)
	return &shaped, nil
}

func (s *artistService) Delete(ctx context.Context, artistID string) error {
	id, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return domain.Validationf("invalid artist id")
	}

	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrArtistNotFound
		}
		return err
	}

	if err := s.artists.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrArtistNotFound
		}
		return err
	}

	if artist.Image != "" {
		s.removeImage(ctx, artist.Image)
	}

	s.invalidateArtist(ctx, artist)
	return nil
}

// removeImage is a best-effort cleanup of a replaced or orphaned image
// object. The object name is the final URL segment; failures are logged
// and swallowed so media debris never blocks the write path.
func (s *artistService) removeImage(ctx context.Context, imageURL string) {
	name := path.Base(imageURL)
	if name == "" || name == "." || name == "/" {
		return
	}
	if err := s.store.Delete(ctx, s.imageFolder, name); err != nil {
		logger.Warn(logger.EventStorageError, "Failed to remove old artist image", logger.Fields(
			"object", name,
			"error", err.Error(),
		))
	}
}

func (s *artistService) ListPaginated(ctx context.Context, page, limit int64) (*dto.ListArtistsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	key := listCacheKey(page, limit)
	var cached dto.ListArtistsResponse
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn(logger.EventCacheError, "Listing cache read failed", logger.Fields("key", key, "error", err.Error()))
	} else if hit {
		return &cached, nil
	}

	artists, err := s.artists.ListWithCounts(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.artists.Count(ctx)
	if err != nil {
		return nil, err
	}

	shaped := make([]dto.ArtistResponse, 0, len(artists))
	for i := range artists {
		shaped = append(shaped, dto.ShapeArtistWithCounts(&artists[i].Artist, artists[i].SongCount, artists[i].AlbumCount))
	}

	resp := &dto.ListArtistsResponse{
		Success: true,
		Artists: shaped,
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int64(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if err := s.cache.Set(ctx, key, resp, cacheTTL); err != nil {
		logger.Warn(logger.EventCacheError, "Listing cache write failed", logger.Fields("key", key, "error", err.Error()))
	}
	return resp, nil
}

func (s *artistService) ListAll(ctx context.Context) ([]dto.ArtistResponse, error) {
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArtistResponse, 0, len(artists))
	for _, a := range artists {
		out = append(out, dto.ShapeArtist(a))
	}
	return out, nil
}

// GetByIdentifier resolves an id-shaped identifier by _id first and falls
// back to a slug lookup, then attaches song/album counts fetched
// concurrently.
func (s *artistService) GetByIdentifier(ctx context.Context, identifier string) (*dto.ArtistDetailResponse, error) {
	key := detailCacheKey(identifier)
	var cached dto.ArtistDetailResponse
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn(logger.EventCacheError, "Detail cache read failed", logger.Fields("key", key, "error", err.Error()))
	} else if hit {
		return &cached, nil
	}

	artist, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var songCount, albumCount int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		songCount, err = s.songs.CountByArtist(gctx, artist.ID)
		return err
	})
	g.Go(func() error {
		var err error
		albumCount, err = s.albums.CountByArtist(gctx, artist.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.ArtistDetailResponse{
		Success: true,
		Artist:  dto.ShapeArtistWithCounts(artist, songCount, albumCount),
	}

	if err := s.cache.Set(ctx, key, resp, cacheTTL); err != nil {
		logger.Warn(logger.EventCacheError, "Detail cache write failed", logger.Fields("key", key, "error", err.Error()))
	}
	return resp, nil
}

func (s *artistService) resolve(ctx context.Context, identifier string) (*domain.Artist, error) {
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		artist, err := s.artists.FindByID(ctx, id)
		if err == nil {
			return artist, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}

	artist, err := s.artists.FindBySlug(ctx, identifier)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) invalidateListings(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, listCachePrefix); err != nil {
		logger.Warn(logger.EventCacheError, "Listing cache invalidation failed", logger.Fields("error", err.Error()))
	}
}

func (s *artistService) invalidateArtist(ctx context.Context, artist *domain.Artist) {
	keys := []string{detailCacheKey(artist.ID.Hex())}
	if artist.Slug != "" {
		keys = append(keys, detailCacheKey(artist.Slug))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn(logger.EventCacheError, "Detail cache invalidation failed", logger.Fields("error", err.Error()))
	}
	s.invalidateListings(ctx)
}
