package services

import (
	"errors"
	"testing"

	"food_market/internal/models"
	"food_market/internal/repository"

	"gorm.io/gorm"
)

func newTestApprovalService(db *gorm.DB) ApprovalService {
	return NewApprovalService(
		db,
		repository.NewVendorApplicationRepository(db),
		repository.NewDishApplicationRepository(db),
		repository.NewReviewApplicationRepository(db),
		nil,
	)
}

func TestApproveVendorApplication(t *testing.T) {
	db := newTestDB(t)
	svc := newTestApprovalService(db)
	applicant := seedCustomer(t, db)

	app := &models.VendorApplication{
		UserID:           applicant.ID,
		RestaurantName:   "Chez Koffi",
		CuisineType:      "West African",
		Address:          "12 Market Street",
		DeliveryFee:      3.00,
		MinimumOrder:     10.00,
		DeliveryTimeMins: 45,
	}
	if err := svc.SubmitVendorApplication(app); err != nil {
		t.Fatalf("SubmitVendorApplication: %v", err)
	}
	if app.Status != models.ApplicationPending {
		t.Fatalf("submitted status = %s, want pending", app.Status)
	}

	vendor, err := svc.ApproveVendorApplication(app.ID, 7, "looks good")
	if err != nil {
		t.Fatalf("ApproveVendorApplication: %v", err)
	}

	t.Run("vendor materialized with forced defaults", func(t *testing.T) {
		if vendor.Name != "Chez Koffi" {
			t.Errorf("vendor name = %q", vendor.Name)
		}
		if !vendor.IsVerified || vendor.IsFeatured {
			t.Errorf("flags = verified %v featured %v, want true/false", vendor.IsVerified, vendor.IsFeatured)
		}
		if vendor.Rating != 0 || vendor.ReviewCount != 0 {
			t.Errorf("aggregates = %.1f/%d, want zeroed", vendor.Rating, vendor.ReviewCount)
		}
	})

	t.Run("application stamped", func(t *testing.T) {
		reloaded, err := svc.GetVendorApplication(app.ID)
		if err != nil {
			t.Fatalf("GetVendorApplication: %v", err)
		}
		if reloaded.Status != models.ApplicationApproved {
			t.Errorf("status = %s, want approved", reloaded.Status)
		}
		if reloaded.ReviewedAt == nil || reloaded.ReviewedBy == nil || *reloaded.ReviewedBy != 7 {
			t.Errorf("audit fields = %+v", reloaded)
		}
		if reloaded.AdminNotes != "looks good" {
			t.Errorf("admin notes = %q", reloaded.AdminNotes)
		}
	})

	t.Run("submitter becomes a vendor account", func(t *testing.T) {
		var user models.User
		if err := db.First(&user, applicant.ID).Error; err != nil {
			t.Fatalf("load user: %v", err)
		}
		if user.AccountType != "vendor" {
			t.Errorf("account type = %q, want vendor", user.AccountType)
		}
	})

	t.Run("second approve is refused", func(t *testing.T) {
		if _, err := svc.ApproveVendorApplication(app.ID, 7, "again"); !errors.Is(err, ErrAlreadyDecided) {
			t.Fatalf("err = %v, want ErrAlreadyDecided", err)
		}
		var count int64
		db.Model(&models.Vendor{}).Count(&count)
		if count != 1 {
			t.Errorf("vendors = %d, want 1 (no duplicate materialization)", count)
		}
	})
}

func TestVendorApplicationUnderReview(t *testing.T) {
	db := newTestDB(t)
	svc := newTestApprovalService(db)
	applicant := seedCustomer(t, db)

	app := &models.VendorApplication{UserID: applicant.ID, RestaurantName: "Mama Put", Address: "8 High Street"}
	if err := svc.SubmitVendorApplication(app); err != nil {
		t.Fatalf("SubmitVendorApplication: %v", err)
	}

	if err := svc.PutVendorApplicationUnderReview(app.ID, 7, "checking documents"); err != nil {
		t.Fatalf("PutVendorApplicationUnderReview: %v", err)
	}
	reloaded, _ := svc.GetVendorApplication(app.ID)
	if reloaded.Status != models.ApplicationUnderReview {
		t.Fatalf("status = %s, want under_review", reloaded.Status)
	}

	// under_review is an intermediate state, approval still possible
	if _, err := svc.ApproveVendorApplication(app.ID, 7, "documents fine"); err != nil {
		t.Fatalf("approve after under_review: %v", err)
	}

	if err := svc.PutVendorApplicationUnderReview(app.ID, 7, ""); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("under_review after decision err = %v, want ErrAlreadyDecided", err)
	}
}

func TestRejectDishApplication(t *testing.T) {
	db := newTestDB(t)
	svc := newTestApprovalService(db)
	_, dishes := seedVendorWithMenu(t, db)

	app := &models.DishApplication{
		UserID:   1,
		VendorID: dishes[0].VendorID,
		Name:     "Fufu Deluxe",
		Price:    2500,
	}
	if err := svc.SubmitDishApplication(app); err != nil {
		t.Fatalf("SubmitDishApplication: %v", err)
	}

	if err := svc.RejectDishApplication(app.ID, 7, "needs a photo"); err != nil {
		t.Fatalf("RejectDishApplication: %v", err)
	}

	reloaded, _ := svc.GetDishApplication(app.ID)
	if reloaded.Status != models.ApplicationRejected {
		t.Errorf("status = %s, want rejected", reloaded.Status)
	}
	if reloaded.AdminNotes != "needs a photo" {
		t.Errorf("admin notes = %q, want stored verbatim", reloaded.AdminNotes)
	}
	if reloaded.DiscountPrice != nil {
		t.Errorf("discount price = %v, want nil", reloaded.DiscountPrice)
	}

	var count int64
	db.Model(&models.Dish{}).Where("name = ?", "Fufu Deluxe").Count(&count)
	if count != 0 {
		t.Errorf("dishes created = %d, want 0 (reject never materializes)", count)
	}

	// Terminal: no decision can follow a rejection.
	if _, err := svc.ApproveDishApplication(app.ID, 7, ""); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("approve after reject err = %v, want ErrAlreadyDecided", err)
	}
}

func TestApproveDishApplication(t *testing.T) {
	db := newTestDB(t)
	svc := newTestApprovalService(db)
	vendor, _ := seedVendorWithMenu(t, db)

	discount := 9.00
	app := &models.DishApplication{
		UserID:        1,
		VendorID:      vendor.ID,
		Name:          "Waakye",
		Price:         11.00,
		DiscountPrice: &discount,
		Category:      "Mains",
		IsVegetarian:  true,
	}
	if err := svc.SubmitDishApplication(app); err != nil {
		t.Fatalf("SubmitDishApplication: %v", err)
	}

	dish, err := svc.ApproveDishApplication(app.ID, 7, "")
	if err != nil {
		t.Fatalf("ApproveDishApplication: %v", err)
	}
	if dish.Name != "Waakye" || dish.Price != 11.00 || dish.DiscountPrice == nil || *dish.DiscountPrice != 9.00 {
		t.Errorf("copied fields wrong: %+v", dish)
	}
	if !dish.IsAvailable || dish.IsPopular || dish.IsFeatured || dish.Rating != 0 || dish.ReviewCount != 0 {
		t.Errorf("forced defaults wrong: %+v", dish)
	}
}

func TestApproveReviewApplication(t *testing.T) {
	db := newTestDB(t)
	svc := newTestApprovalService(db)
	vendor, dishes := seedVendorWithMenu(t, db)
	reviewer := seedCustomer(t, db)

	app := &models.ReviewApplication{
		UserID:   reviewer.ID,
		DishID:   dishes[0].ID,
		VendorID: vendor.ID,
		Rating:   4,
		Comment:  "Great jollof",
	}
	if err := svc.SubmitReviewApplication(app); err != nil {
		t.Fatalf("SubmitReviewApplication: %v", err)
	}

	review, err := svc.ApproveReviewApplication(app.ID, 7, "")
	if err != nil {
		t.Fatalf("ApproveReviewApplication: %v", err)
	}
	if review.Rating != 4 || review.Comment != "Great jollof" {
		t.Errorf("copied fields wrong: %+v", review)
	}
	if !review.IsVerified || review.IsHelpful || review.HelpfulCount != 0 {
		t.Errorf("forced defaults wrong: %+v", review)
	}

	// Dish aggregate folds in the new rating.
	var dish models.Dish
	if err := db.First(&dish, dishes[0].ID).Error; err != nil {
		t.Fatalf("load dish: %v", err)
	}
	if dish.ReviewCount != 1 || dish.Rating != 4 {
		t.Errorf("dish aggregate = %.1f/%d, want 4.0/1", dish.Rating, dish.ReviewCount)
	}
}
