package sqldb

import (
	"time"

	"isdn/config"
	"isdn/internal/domain/entity"
	"isdn/internal/errors"
	"isdn/internal/infra/persistence/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts demo accounts, a starter catalog and regional stock when the
// users table is empty. Running it against a populated database is a no-op.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var userCount int64
	if err := db.Model(&model.UserModel{}).Count(&userCount).Error; err != nil {
		return errors.Wrap(err, "failed to check existing users")
	}
	if userCount > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedUsers(tx, cfg.Auth.BcryptCost); err != nil {
			return err
		}

		return seedCatalog(tx)
	})
}

func seedUsers(tx *gorm.DB, bcryptCost int) error {
	central := string(entity.RegionCentral)

	type demoUser struct {
		name     string
		email    string
		password string
		role     entity.Role
		region   *string
		address  string
	}

	demoUsers := []demoUser{
		{"Admin User", "admin@isdn.com", "admin123", entity.RoleHeadOffice, nil, "Head Office"},
		{"RDC Central", "central@isdn.com", "rdc123", entity.RoleRDCStaff, &central, "Region: Central"},
		{"Logistics User", "driver@isdn.com", "logistics123", entity.RoleLogistics, &central, "Region: Central"},
		{"Retail Customer", "shop@gmail.com", "shop123", entity.RoleCustomer, &central, "Region: Central"},
	}

	now := time.Now()
	for _, demo := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.password), bcryptCost)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed password")
		}

		userM := &model.UserModel{
			ID:        uuid.New(),
			Name:      demo.name,
			Email:     demo.email,
			Password:  string(hash),
			Role:      string(demo.role),
			Region:    demo.region,
			Address:   demo.address,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(userM).Error; err != nil {
			return errors.Wrapf(err, "failed to seed user %s", demo.email)
		}
	}

	return nil
}

func seedCatalog(tx *gorm.DB) error {
	type demoProduct struct {
		name     string
		category entity.Category
		price    float64
		image    string
	}

	demoProducts := []demoProduct{
		{"Sunlight Soap", entity.CategoryHomeCleaning, 150, "/images/sunlight.png"},
		{"Maggie Noodles", entity.CategoryPackagedFood, 120, "/images/maggie.png"},
		{"Munchee Biscuits", entity.CategoryPackagedFood, 200, "/images/munchee.png"},
		{"Signal Toothpaste", entity.CategoryPersonalCare, 250, "/images/signal.png"},
		{"Anchor Milk Powder", entity.CategoryBeverages, 1800, "/images/anchor.png"},
	}

	// Fixed starter levels instead of random ones so a fresh install is
	// reproducible across environments.
	startingStock := []int{320, 180, 75, 240, 130}

	now := time.Now()
	for i, demo := range demoProducts {
		productM := &model.ProductModel{
			ID:        uuid.New(),
			Name:      demo.name,
			Category:  string(demo.category),
			Price:     demo.price,
			Image:     demo.image,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(productM).Error; err != nil {
			return errors.Wrapf(err, "failed to seed product %s", demo.name)
		}

		for _, region := range entity.AllRegions() {
			recordM := &model.InventoryModel{
				ID:         uuid.New(),
				ProductID:  productM.ID,
				Location:   string(region),
				StockLevel: startingStock[i],
				UpdatedAt:  now,
			}
			if err := tx.Create(recordM).Error; err != nil {
				return errors.Wrapf(err, "failed to seed stock for %s in %s", demo.name, region)
			}
		}
	}

	return nil
}
