package mysql

import (
	"context"
	"errors"

	"cart-service/internal/domain"
	"cart-service/internal/repository"

	"gorm.io/gorm"
)

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	var m MemberModel
	if err := conn(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, &domain.PersistenceError{Op: "find member", Err: err}
	}
	return &domain.Member{ID: m.ID, Email: m.Email, Password: m.Password}, nil
}
