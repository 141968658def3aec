package services

import (
	"fmt"

	"food_market/internal/models"
	"food_market/internal/redis"
	"food_market/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApprovalService owns the review workflow of the three application kinds.
// Approval copies the application payload into a live record; the decision
// write and the insert share one transaction so a failed insert rolls the
// decision back too. Application rows are never deleted.
type ApprovalService interface {
	SubmitVendorApplication(app *models.VendorApplication) error
	SubmitDishApplication(app *models.DishApplication) error
	SubmitReviewApplication(app *models.ReviewApplication) error

	GetVendorApplication(id uint) (*models.VendorApplication, error)
	GetDishApplication(id uint) (*models.DishApplication, error)
	GetReviewApplication(id uint) (*models.ReviewApplication, error)
	ListVendorApplications(status models.ApplicationStatus) ([]models.VendorApplication, error)
	ListDishApplications(status models.ApplicationStatus) ([]models.DishApplication, error)
	ListReviewApplications(status models.ApplicationStatus) ([]models.ReviewApplication, error)

	ApproveVendorApplication(id, adminID uint, notes string) (*models.Vendor, error)
	RejectVendorApplication(id, adminID uint, notes string) error
	PutVendorApplicationUnderReview(id, adminID uint, notes string) error

	ApproveDishApplication(id, adminID uint, notes string) (*models.Dish, error)
	RejectDishApplication(id, adminID uint, notes string) error

	ApproveReviewApplication(id, adminID uint, notes string) (*models.Review, error)
	RejectReviewApplication(id, adminID uint, notes string) error
}

type approvalService struct {
	db            *gorm.DB
	vendorAppRepo repository.VendorApplicationRepository
	dishAppRepo   repository.DishApplicationRepository
	reviewAppRepo repository.ReviewApplicationRepository
	cache         *redis.Client
}

func NewApprovalService(
	db *gorm.DB,
	vendorAppRepo repository.VendorApplicationRepository,
	dishAppRepo repository.DishApplicationRepository,
	reviewAppRepo repository.ReviewApplicationRepository,
	cache *redis.Client,
) ApprovalService {
	return &approvalService{
		db:            db,
		vendorAppRepo: vendorAppRepo,
		dishAppRepo:   dishAppRepo,
		reviewAppRepo: reviewAppRepo,
		cache:         cache,
	}
}

func (s *approvalService) SubmitVendorApplication(app *models.VendorApplication) error {
	app.Status = models.ApplicationPending
	return s.vendorAppRepo.Create(app)
}

func (s *approvalService) SubmitDishApplication(app *models.DishApplication) error {
	app.Status = models.ApplicationPending
	return s.dishAppRepo.Create(app)
}

func (s *approvalService) SubmitReviewApplication(app *models.ReviewApplication) error {
	app.Status = models.ApplicationPending
	return s.reviewAppRepo.Create(app)
}

func (s *approvalService) GetVendorApplication(id uint) (*models.VendorApplication, error) {
	return s.vendorAppRepo.GetByID(id)
}

func (s *approvalService) GetDishApplication(id uint) (*models.DishApplication, error) {
	return s.dishAppRepo.GetByID(id)
}

func (s *approvalService) GetReviewApplication(id uint) (*models.ReviewApplication, error) {
	return s.reviewAppRepo.GetByID(id)
}

func (s *approvalService) ListVendorApplications(status models.ApplicationStatus) ([]models.VendorApplication, error) {
	return s.vendorAppRepo.GetByStatus(status)
}

func (s *approvalService) ListDishApplications(status models.ApplicationStatus) ([]models.DishApplication, error) {
	return s.dishAppRepo.GetByStatus(status)
}

func (s *approvalService) ListReviewApplications(status models.ApplicationStatus) ([]models.ReviewApplication, error) {
	return s.reviewAppRepo.GetByStatus(status)
}

// ApproveVendorApplication materializes a Vendor from the application and
// promotes the submitting user's account type to vendor. Allowed from
// pending or under_review.
func (s *approvalService) ApproveVendorApplication(id, adminID uint, notes string) (*models.Vendor, error) {
	app, err := s.vendorAppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app.Status.Decided() {
		return nil, fmt.Errorf("%w: vendor application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	vendor := &models.Vendor{
		UserID:           app.UserID,
		Name:             app.RestaurantName,
		Description:      app.Description,
		CuisineType:      app.CuisineType,
		Address:          app.Address,
		City:             app.City,
		PhoneNumber:      app.PhoneNumber,
		Email:            app.Email,
		DeliveryFee:      app.DeliveryFee,
		MinimumOrder:     app.MinimumOrder,
		DeliveryTimeMins: app.DeliveryTimeMins,
		IsVerified:       true,
		IsFeatured:       false,
		Rating:           0,
		ReviewCount:      0,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		app.Decide(models.ApplicationApproved, adminID, notes)
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		if err := tx.Create(vendor).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", app.UserID).
			Update("account_type", string(models.AccountVendor)).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateVendorList()
	logrus.WithFields(logrus.Fields{"application_id": id, "vendor_id": vendor.ID, "admin_id": adminID}).
		Info("vendor application approved")
	return vendor, nil
}

func (s *approvalService) RejectVendorApplication(id, adminID uint, notes string) error {
	app, err := s.vendorAppRepo.GetByID(id)
	if err != nil {
		return err
	}
	if app.Status.Decided() {
		return fmt.Errorf("%w: vendor application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	app.Decide(models.ApplicationRejected, adminID, notes)
	return s.vendorAppRepo.Update(app)
}

// PutVendorApplicationUnderReview marks the application as being looked at.
// It is an intermediate state: approve and reject both remain possible.
func (s *approvalService) PutVendorApplicationUnderReview(id, adminID uint, notes string) error {
	app, err := s.vendorAppRepo.GetByID(id)
	if err != nil {
		return err
	}
	if app.Status.Decided() {
		return fmt.Errorf("%w: vendor application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	app.Decide(models.ApplicationUnderReview, adminID, notes)
	return s.vendorAppRepo.Update(app)
}

// ApproveDishApplication materializes a Dish on the applying vendor's menu.
func (s *approvalService) ApproveDishApplication(id, adminID uint, notes string) (*models.Dish, error) {
	app, err := s.dishAppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !app.Status.IsPending() {
		return nil, fmt.Errorf("%w: dish application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	dish := &models.Dish{
		VendorID:      app.VendorID,
		Name:          app.Name,
		Description:   app.Description,
		Price:         app.Price,
		DiscountPrice: app.DiscountPrice,
		Category:      app.Category,
		Ingredients:   app.Ingredients,
		ImageURL:      app.ImageURL,
		IsVegetarian:  app.IsVegetarian,
		IsVegan:       app.IsVegan,
		IsGlutenFree:  app.IsGlutenFree,
		IsAvailable:   true,
		IsPopular:     false,
		IsFeatured:    false,
		Rating:        0,
		ReviewCount:   0,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		app.Decide(models.ApplicationApproved, adminID, notes)
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		return tx.Create(dish).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateVendorMenu(app.VendorID)
	logrus.WithFields(logrus.Fields{"application_id": id, "dish_id": dish.ID, "admin_id": adminID}).
		Info("dish application approved")
	return dish, nil
}

func (s *approvalService) RejectDishApplication(id, adminID uint, notes string) error {
	app, err := s.dishAppRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !app.Status.IsPending() {
		return fmt.Errorf("%w: dish application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	app.Decide(models.ApplicationRejected, adminID, notes)
	return s.dishAppRepo.Update(app)
}

// ApproveReviewApplication materializes a Review and folds its rating into
// the dish aggregate.
func (s *approvalService) ApproveReviewApplication(id, adminID uint, notes string) (*models.Review, error) {
	app, err := s.reviewAppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !app.Status.IsPending() {
		return nil, fmt.Errorf("%w: review application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	review := &models.Review{
		UserID:       app.UserID,
		DishID:       app.DishID,
		VendorID:     app.VendorID,
		OrderID:      app.OrderID,
		Rating:       app.Rating,
		Comment:      app.Comment,
		Images:       app.Images,
		IsVerified:   true,
		IsHelpful:    false,
		HelpfulCount: 0,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		app.Decide(models.ApplicationApproved, adminID, notes)
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var dish models.Dish
		if err := tx.First(&dish, app.DishID).Error; err != nil {
			return err
		}
		newCount := dish.ReviewCount + 1
		newRating := (dish.Rating*float64(dish.ReviewCount) + float64(app.Rating)) / float64(newCount)
		return tx.Model(&models.Dish{}).Where("id = ?", dish.ID).
			Updates(map[string]interface{}{"rating": newRating, "review_count": newCount}).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDishReviews(app.DishID, app.VendorID)
	logrus.WithFields(logrus.Fields{"application_id": id, "review_id": review.ID, "admin_id": adminID}).
		Info("review application approved")
	return review, nil
}

func (s *approvalService) RejectReviewApplication(id, adminID uint, notes string) error {
	app, err := s.reviewAppRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !app.Status.IsPending() {
		return fmt.Errorf("%w: review application %d is %s", ErrAlreadyDecided, id, app.Status)
	}

	app.Decide(models.ApplicationRejected, adminID, notes)
	return s.reviewAppRepo.Update(app)
}

func (s *approvalService) invalidateVendorList() {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteVendorList(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate vendor list cache")
	}
}

func (s *approvalService) invalidateVendorMenu(vendorID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteVendorMenu(vendorID); err != nil {
		logrus.WithError(err).Warn("failed to invalidate vendor menu cache")
	}
}

func (s *approvalService) invalidateDishReviews(dishID, vendorID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteDishReviews(dishID); err != nil {
		logrus.WithError(err).Warn("failed to invalidate dish reviews cache")
	}
	if err := s.cache.DeleteVendorMenu(vendorID); err != nil {
		logrus.WithError(err).Warn("failed to invalidate vendor menu cache")
	}
}
