package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trendkart/models"
	"trendkart/repositories"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	store repositories.Store
	cache *redis.Client
}

func NewCatalogService(store repositories.Store, cache *redis.Client) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

func productCacheKey(f repositories.ProductFilter) string {
	return fmt.Sprintf("products_list_s%s_c%s_b%s_min%d_max%d_o%s_p%d_l%d",
		f.Search, f.Category, f.Brand, f.MinPrice, f.MaxPrice, f.Sort, f.Page, f.Limit)
}

func (s *CatalogService) invalidateProductCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
}

// ListProducts runs the catalog query with a short-lived cached response
// per distinct filter, the cache being invalidated on any admin mutation.
func (s *CatalogService) ListProducts(ctx context.Context, f repositories.ProductFilter) (*models.PaginationResponse, error) {
	cacheKey := productCacheKey(f)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.PaginationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 12
	}

	products, total, err := s.store.ListProducts(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.MetaData{
			Page:       f.Page,
			Limit:      f.Limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
		},
	}

	if s.cache != nil {
		if jsonData, err := json.Marshal(resp); err == nil {
			s.cache.Set(ctx, cacheKey, string(jsonData), productCacheTTL)
		}
	}

	return resp, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.store.GetProductBySlug(ctx, slug)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	p := &models.Product{
		ID:          uuid.NewString(),
		Slug:        repositories.Slugify(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		PriceINR:    req.PriceINR,
		Currency:    "INR",
		Stock:       req.Stock,
		Images:      req.Images,
		CreatedAt:   time.Now(),
	}

	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateProductCache(ctx)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	p, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		p.Title = req.Title
		p.Slug = repositories.Slugify(req.Title)
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Brand != "" {
		p.Brand = req.Brand
	}
	if req.PriceINR > 0 {
		p.PriceINR = req.PriceINR
	}
	if req.Stock != nil && *req.Stock >= 0 {
		p.Stock = *req.Stock
	}
	if len(req.Images) > 0 {
		p.Images = req.Images
	}

	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateProductCache(ctx)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidateProductCache(ctx)
	return nil
}
