package repository

import (
	"context"
	"errors"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/domain/model"
)

// 参照先（ユーザー・商品など）が存在しないを統一
var ErrNotFound = errors.New("not found")

// ユーザーの保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（IDは採番されてuserに書き戻される）
	Create(ctx context.Context, user *model.User) error

	//ユーザー名からユーザーを1件取得
	FindByUsername(ctx context.Context, username string) (model.User, error)

	//IDからユーザーを1件取得
	FindByID(ctx context.Context, userID int64) (model.User, error)
}
