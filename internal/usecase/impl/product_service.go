package impl

import (
	"context"
	"log/slog"
	"time"

	"eshop/config"
	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/domain/service"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo      repository.ProductRepository
	categoryRepo     repository.CategoryRepository
	imageStorage     service.ImageStorage
	qrCodeService    service.QRCodeService
	maxGalleryImages int
	logger           *slog.Logger
	now              func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	ImageStorage  service.ImageStorage
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	maxGalleryImages := 10
	if params.Config != nil && params.Config.Uploads != nil && params.Config.Uploads.MaxGalleryImages > 0 {
		maxGalleryImages = params.Config.Uploads.MaxGalleryImages
	}

	return &productService{
		productRepo:      params.ProductRepo,
		categoryRepo:     params.CategoryRepo,
		imageStorage:     params.ImageStorage,
		qrCodeService:    params.QRCodeService,
		maxGalleryImages: maxGalleryImages,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *productService) ListProducts(ctx context.Context, categoryIDs []uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx, entity.ProductFilter{CategoryIDs: categoryIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct checks the category, stores the image, then the product.
// The stored image is removed again if the product cannot be saved.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput, image *usecase.ImageUpload, baseURL string) (*entity.Product, error) {
	if image == nil || image.File == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	stored, err := s.imageStorage.Save(ctx, image.Name, image.File)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	product := newProduct(input)
	product.ID = uuid.New()
	product.Image = s.imageStorage.URL(baseURL, stored.Key)
	product.Images = []string{}
	product.DateCreated = s.now().UTC()

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.discardImages(ctx, []string{stored.Key})

		return nil, errors.Wrap(err, "failed to create product")
	}

	s.log(ctx).Info("Product created",
		slog.String("productId", product.ID.String()),
		slog.String("image", stored.Key),
	)

	return s.GetProduct(ctx, product.ID)
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := newProduct(input)
	product.ID = id

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return s.GetProduct(ctx, id)
}

// UpdateGallery type-checks every upload before storing any of them. If a
// later step fails, the images stored so far are deleted again.
func (s *productService) UpdateGallery(ctx context.Context, id uuid.UUID, images []*usecase.ImageUpload, baseURL string) (*entity.Product, error) {
	if len(images) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("images are required")
	}
	if len(images) > s.maxGalleryImages {
		return nil, domainerrors.ErrTooManyImages
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	for _, image := range images {
		if _, err := s.imageStorage.Validate(image.File); err != nil {
			return nil, errors.Wrapf(err, "invalid gallery image %s", image.Name)
		}
	}

	keys := make([]string, 0, len(images))
	urls := make([]string, 0, len(images))
	for _, image := range images {
		stored, err := s.imageStorage.Save(ctx, image.Name, image.File)
		if err != nil {
			s.discardImages(ctx, keys)

			return nil, errors.Wrapf(err, "failed to store gallery image %s", image.Name)
		}
		keys = append(keys, stored.Key)
		urls = append(urls, s.imageStorage.URL(baseURL, stored.Key))
	}

	if err := s.productRepo.UpdateImages(ctx, id, urls); err != nil {
		s.discardImages(ctx, keys)

		return nil, errors.Wrap(err, "failed to update product images")
	}

	return s.GetProduct(ctx, id)
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	s.log(ctx).Info("Product deleted", slog.String("productId", id.String()))

	return nil
}

func (s *productService) CountProducts(ctx context.Context) (int64, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func (s *productService) FeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("count must not be negative")
	}

	products, err := s.productRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

func (s *productService) ProductQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	png, err := s.qrCodeService.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (s *productService) ensureCategory(ctx context.Context, categoryID uuid.UUID) error {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return errors.Wrap(err, "failed to check category")
	}
	if !exists {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

func (s *productService) discardImages(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.imageStorage.Delete(ctx, key); err != nil {
			s.log(ctx).Warn("Failed to remove orphaned image", slog.String("key", key), slog.Any("error", err))
		}
	}
}

func newProduct(input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		Name:            input.Name,
		Description:     input.Description,
		RichDescription: input.RichDescription,
		Image:           input.Image,
		Brand:           input.Brand,
		Price:           input.Price,
		CategoryID:      input.CategoryID,
		CountInStock:    input.CountInStock,
		Rating:          input.Rating,
		NumReviews:      input.NumReviews,
		IsFeatured:      input.IsFeatured,
	}
}
