package service

import (
	"context"
	"io"
	"strings"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/imagehost"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	productImageFolder = "swapspace/productimage"
	profileImageFolder = "swapspace/profileImage"
)

type ProductServiceImpl struct {
	productRepo     repository.ProductRepository
	categoryService CategoryService
	uploader        imagehost.Uploader
}

func CreateProductService(productRepo repository.ProductRepository, categoryService CategoryService, uploader imagehost.Uploader) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, categoryService: categoryService, uploader: uploader}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, ownerID string, req dto.ProductRequest, images []io.Reader) (view repository.ProductDetailView, err error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return view, errs.ErrNotLoggedIn
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return view, errs.ErrClient
	}
	if req.Price <= 0 || req.Quantity <= 0 {
		return view, errs.ErrClient
	}
	if len(images) == 0 {
		return view, errs.ErrClient
	}

	imageURLs := make([]string, 0, len(images))
	for _, image := range images {
		url, err := s.uploader.UploadImage(ctx, image, productImageFolder)
		if err != nil {
			return view, err
		}
		imageURLs = append(imageURLs, url)
	}

	category, err := s.categoryService.CreateOrGetCategory(ctx, req.Category)
	if err != nil {
		return
	}

	productID, err := s.productRepo.AddProduct(ctx, domain.Product{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		ProductImages: imageURLs,
		Category:      category.ID,
		Owner:         owner,
		Quantity:      req.Quantity,
		ProductStatus: domain.ProductStatusAvailable,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return s.productRepo.GetProductDetail(ctx, productID)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (view repository.ProductDetailView, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return view, errs.ErrClient
	}

	return s.productRepo.GetProductDetail(ctx, productID)
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (products []domain.Product, err error) {
	return s.productRepo.GetProducts(ctx)
}

func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, categoryIDHex string) (products []domain.Product, err error) {
	categoryID, err := primitive.ObjectIDFromHex(categoryIDHex)
	if err != nil {
		return nil, errs.ErrClient
	}

	return s.productRepo.GetProductsByCategory(ctx, categoryID)
}
