package services

import (
	"time"

	"food_market/internal/models"
	"food_market/internal/redis"
	"food_market/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogService is the storefront read side. Everything here is served
// cache-aside from redis; the approval service invalidates the keys when a
// new vendor, dish or review goes live.
type CatalogService interface {
	GetVendors() ([]models.Vendor, error)
	GetVendorMenu(vendorID uint) ([]models.Dish, error)
	GetDishReviews(dishID uint) ([]models.Review, error)
}

type catalogService struct {
	vendorRepo repository.VendorRepository
	dishRepo   repository.DishRepository
	reviewRepo repository.ReviewRepository
	cache      *redis.Client
	cacheTTL   time.Duration
}

func NewCatalogService(
	vendorRepo repository.VendorRepository,
	dishRepo repository.DishRepository,
	reviewRepo repository.ReviewRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) CatalogService {
	return &catalogService{
		vendorRepo: vendorRepo,
		dishRepo:   dishRepo,
		reviewRepo: reviewRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (s *catalogService) GetVendors() ([]models.Vendor, error) {
	if s.cache != nil {
		var cached []models.Vendor
		if err := s.cache.GetVendorList(&cached); err == nil {
			return cached, nil
		}
	}

	vendors, err := s.vendorRepo.GetVerified()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetVendorList(vendors, s.cacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache vendor list")
		}
	}
	return vendors, nil
}

func (s *catalogService) GetVendorMenu(vendorID uint) ([]models.Dish, error) {
	if s.cache != nil {
		var cached []models.Dish
		if err := s.cache.GetVendorMenu(vendorID, &cached); err == nil {
			return cached, nil
		}
	}

	dishes, err := s.dishRepo.GetAvailableByVendorID(vendorID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetVendorMenu(vendorID, dishes, s.cacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache vendor menu")
		}
	}
	return dishes, nil
}

func (s *catalogService) GetDishReviews(dishID uint) ([]models.Review, error) {
	if s.cache != nil {
		var cached []models.Review
		if err := s.cache.GetDishReviews(dishID, &cached); err == nil {
			return cached, nil
		}
	}

	reviews, err := s.reviewRepo.GetByDishID(dishID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDishReviews(dishID, reviews, s.cacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache dish reviews")
		}
	}
	return reviews, nil
}
