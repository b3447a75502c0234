package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
	repo "github.com/jzProg/nd035-c4-ecommence-app/internal/repository"
)

// パスワードの最低文字数
const minPasswordLength = 7

// UserUsecase は /api/user の業務ロジックです。
type UserUsecase struct {
	tx     repo.TransactionManager
	users  repo.UserRepository
	hasher PasswordHasher
}

// DI
func NewUserUsecase(
	tx repo.TransactionManager,
	users repo.UserRepository,
	hasher PasswordHasher,
) *UserUsecase {
	return &UserUsecase{
		tx:     tx,
		users:  users,
		hasher: hasher,
	}
}

type CreateUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// CreateUser は会員登録。
// パスワード検証はハッシュ化・保存より前に行う。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	if len(in.Password) < minPasswordLength {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}
	if in.Password != in.ConfirmPassword {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "password mismatch")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user := model.User{
		Username:     in.Username,
		PasswordHash: hashed,
	}

	//ユーザーと空カートは同一トランザクションで作る
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().Create(ctx, &user); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart := model.Cart{
			UserID: user.ID,
			Total:  decimal.Zero,
		}
		if err := r.Carts().Create(ctx, &cart); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// FindByUsername はユーザー名で1件取得。
func (u *UserUsecase) FindByUsername(ctx context.Context, username string) (model.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// FindByID はIDで1件取得。
func (u *UserUsecase) FindByID(ctx context.Context, userID int64) (model.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}
