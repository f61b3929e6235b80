package impl

import (
	"bytes"
	"context"
	"testing"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/service"
	mockRepo "eshop/internal/mocks/repository"
	mockSvc "eshop/internal/mocks/service"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:3000"

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	imageStorage *mockSvc.MockImageStorage
	qrCode       *mockSvc.MockQRCodeService
}

func createTestProductService(t *testing.T, maxGalleryImages int) productServiceFixtures {
	f := productServiceFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		imageStorage: mockSvc.NewMockImageStorage(t),
		qrCode:       mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewProductService(ProductServiceParams{
		ProductRepo:   f.productRepo,
		CategoryRepo:  f.categoryRepo,
		ImageStorage:  f.imageStorage,
		QRCodeService: f.qrCode,
		Config:        newTestConfig(maxGalleryImages),
		Logger:        newDiscardLogger(),
	})

	return f
}

func newUpload(name string) *usecase.ImageUpload {
	return &usecase.ImageUpload{Name: name, File: bytes.NewReader([]byte(name))}
}

func (f productServiceFixtures) expectURL() {
	f.imageStorage.EXPECT().
		URL(testBaseURL, mock.Anything).
		RunAndReturn(func(baseURL, key string) string {
			return baseURL + "/public/" + key
		}).
		Maybe()
}

func TestProductService_CreateProduct(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.ProductInput{
		Name:       "Ring",
		Price:      decimal.RequireFromString("19.99"),
		CategoryID: categoryID,
	}
	upload := newUpload("ring.png")

	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(true, nil)
	f.imageStorage.EXPECT().
		Save(ctx, "ring.png", upload.File).
		Return(&service.StoredImage{Key: "uploads/ring-1.png", ContentType: "image/png"}, nil)
	f.expectURL()

	var created *entity.Product
	f.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			created = product

			return nil
		})
	f.productRepo.EXPECT().
		FindByID(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Product, error) {
			return created, nil
		})

	product, err := f.service.CreateProduct(ctx, input, upload, testBaseURL)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/public/uploads/ring-1.png", product.Image)
	assert.Empty(t, product.Images)
	assert.NotNil(t, product.Images)
	assert.False(t, product.DateCreated.IsZero())
}

func TestProductService_CreateProduct_RequiresImage(t *testing.T) {
	f := createTestProductService(t, 10)

	_, err := f.service.CreateProduct(context.Background(), &usecase.ProductInput{CategoryID: uuid.New()}, nil, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	categoryID := uuid.New()
	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(false, nil)

	_, err := f.service.CreateProduct(ctx, &usecase.ProductInput{CategoryID: categoryID}, newUpload("a.png"), testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	f.imageStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_NonImage(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	categoryID := uuid.New()
	upload := newUpload("notes.txt")

	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(true, nil)
	f.imageStorage.EXPECT().Save(ctx, "notes.txt", upload.File).Return(nil, domainerrors.ErrUnsupportedImageType)

	_, err := f.service.CreateProduct(ctx, &usecase.ProductInput{CategoryID: categoryID}, upload, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedImageType))
	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_RemovesImageOnFailure(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	categoryID := uuid.New()
	upload := newUpload("ring.png")

	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(true, nil)
	f.imageStorage.EXPECT().Save(ctx, "ring.png", upload.File).Return(&service.StoredImage{Key: "uploads/ring-1.png"}, nil)
	f.expectURL()
	f.productRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrValidationFailed)
	f.imageStorage.EXPECT().Delete(ctx, "uploads/ring-1.png").Return(nil)

	_, err := f.service.CreateProduct(ctx, &usecase.ProductInput{CategoryID: categoryID}, upload, testBaseURL)

	assert.Error(t, err)
}

func TestProductService_UpdateProduct(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	categoryID := uuid.New()
	input := &usecase.ProductInput{Name: "Ring v2", CategoryID: categoryID, Price: decimal.NewFromInt(20)}

	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(true, nil)
	f.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == id && p.Name == "Ring v2" && p.Image == ""
		})).
		Return(nil)
	f.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id, Name: "Ring v2", Image: "kept.png"}, nil)

	product, err := f.service.UpdateProduct(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, "kept.png", product.Image)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	categoryID := uuid.New()

	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(true, nil)
	f.productRepo.EXPECT().Update(ctx, mock.Anything).Return(domainerrors.ErrProductNotFound)

	_, err := f.service.UpdateProduct(ctx, id, &usecase.ProductInput{CategoryID: categoryID})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateGallery(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	uploads := []*usecase.ImageUpload{newUpload("a.png"), newUpload("b.jpg")}

	f.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id}, nil).Once()
	f.imageStorage.EXPECT().Validate(mock.Anything).Return("image/png", nil).Times(2)
	f.imageStorage.EXPECT().Save(ctx, "a.png", mock.Anything).Return(&service.StoredImage{Key: "uploads/a.png"}, nil)
	f.imageStorage.EXPECT().Save(ctx, "b.jpg", mock.Anything).Return(&service.StoredImage{Key: "uploads/b.jpg"}, nil)
	f.expectURL()
	f.productRepo.EXPECT().
		UpdateImages(ctx, id, []string{
			"http://localhost:3000/public/uploads/a.png",
			"http://localhost:3000/public/uploads/b.jpg",
		}).
		Return(nil)
	f.productRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Product{ID: id, Images: []string{"a", "b"}}, nil).Once()

	product, err := f.service.UpdateGallery(ctx, id, uploads, testBaseURL)

	require.NoError(t, err)
	assert.Len(t, product.Images, 2)
}

func TestProductService_UpdateGallery_TooMany(t *testing.T) {
	f := createTestProductService(t, 1)

	_, err := f.service.UpdateGallery(context.Background(), uuid.New(),
		[]*usecase.ImageUpload{newUpload("a.png"), newUpload("b.png")}, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrTooManyImages))
}

func TestProductService_UpdateGallery_RejectsBeforeStoring(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	good, bad := newUpload("a.png"), newUpload("b.txt")

	f.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id}, nil)
	f.imageStorage.EXPECT().Validate(good.File).Return("image/png", nil)
	f.imageStorage.EXPECT().Validate(bad.File).Return("", domainerrors.ErrUnsupportedImageType)

	_, err := f.service.UpdateGallery(ctx, id, []*usecase.ImageUpload{good, bad}, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedImageType))
	f.imageStorage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateGallery_RollsBackStoredImages(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	uploads := []*usecase.ImageUpload{newUpload("a.png"), newUpload("b.png")}

	f.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id}, nil)
	f.imageStorage.EXPECT().Validate(mock.Anything).Return("image/png", nil)
	f.imageStorage.EXPECT().Save(ctx, "a.png", mock.Anything).Return(&service.StoredImage{Key: "uploads/a.png"}, nil)
	f.imageStorage.EXPECT().Save(ctx, "b.png", mock.Anything).Return(nil, errors.New("disk full"))
	f.expectURL()
	f.imageStorage.EXPECT().Delete(ctx, "uploads/a.png").Return(nil)

	_, err := f.service.UpdateGallery(ctx, id, uploads, testBaseURL)

	assert.Error(t, err)
	f.productRepo.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateGallery_UnknownProduct(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	f.productRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrProductNotFound)

	_, err := f.service.UpdateGallery(ctx, id, []*usecase.ImageUpload{newUpload("a.png")}, testBaseURL)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_FeaturedProducts(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	featured := []*entity.Product{{ID: uuid.New(), IsFeatured: true}}
	f.productRepo.EXPECT().ListFeatured(ctx, 3).Return(featured, nil)

	got, err := f.service.FeaturedProducts(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, featured, got)

	_, err = f.service.FeaturedProducts(ctx, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_ListProducts_PassesCategoryFilter(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	f.productRepo.EXPECT().List(ctx, entity.ProductFilter{CategoryIDs: ids}).Return([]*entity.Product{}, nil)

	products, err := f.service.ListProducts(ctx, ids)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ProductQRCode(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	f.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id}, nil)
	f.qrCode.EXPECT().GenerateProductQR(id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.ProductQRCode(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestProductService_DeleteAndCount(t *testing.T) {
	f := createTestProductService(t, 10)

	ctx := context.Background()
	id := uuid.New()
	f.productRepo.EXPECT().Delete(ctx, id).Return(domainerrors.ErrProductNotFound)
	f.productRepo.EXPECT().Count(ctx).Return(int64(12), nil)

	err := f.service.DeleteProduct(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	count, err := f.service.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
