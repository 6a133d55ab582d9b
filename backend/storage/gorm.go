package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quizlab/backend/models"
)

// GormStore persists results in the database. Only the latest attempt is
// kept, matching the single-record contract of ResultStore.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Save(r *models.Result) error {
	rec := models.ResultRecord{
		Name:     r.User.Name,
		Group:    r.User.Group,
		Tier:     r.User.Tier,
		Score:    r.Score,
		MaxScore: r.MaxScore,
		TakenAt:  r.Date,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ResultRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *GormStore) Last() (*models.Result, error) {
	var rec models.ResultRecord
	if err := s.DB.Order("created_at DESC").First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoResult
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &models.Result{
		User:     models.User{Name: rec.Name, Group: rec.Group, Tier: rec.Tier},
		Score:    rec.Score,
		MaxScore: rec.MaxScore,
		Date:     rec.TakenAt,
	}, nil
}
