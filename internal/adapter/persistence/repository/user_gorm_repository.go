package repository

import (
	"context"
	"errors"

	"bengkel_pos/internal/domain/entities"
	"bengkel_pos/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserGormRepository struct {
	db    *gorm.DB
	table string
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB, names TableNames) *UserGormRepository {
	return &UserGormRepository{db: db, table: names.withDefaults().Users}
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Table(r.table).Where("username = ?", username).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:           m.Username,
		Username:     m.Username,
		Name:         m.Name,
		Role:         m.Role,
		PasswordHash: m.PasswordHash,
	}, nil
}

func (r *UserGormRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	m := userModel{Username: u.Username, Name: u.Name, Role: u.Role, PasswordHash: u.PasswordHash}
	if err := r.db.WithContext(ctx).Table(r.table).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
		return entities.User{}, err
	}
	u.ID = u.Username
	return u, nil
}
