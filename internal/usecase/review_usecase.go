package usecase

import (
	"context"
	"errors"
	"math"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

type ReviewUsecase struct {
	tx         repo.TransactionManager
	reviewRepo repo.ReviewRepository
	userRepo   repo.UserRepository
	log        *zap.Logger
}

func NewReviewUsecase(
	tx repo.TransactionManager,
	reviewRepo repo.ReviewRepository,
	userRepo repo.UserRepository,
	log *zap.Logger,
) *ReviewUsecase {
	return &ReviewUsecase{
		tx:         tx,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		log:        log,
	}
}

type CreateReviewInput struct {
	Rating  int64
	Comment string
}

type ReviewWithUser struct {
	model.Review
	User model.User `json:"user"`
}

// ListProductReviews はレビューを投稿者とjoinして返す。
func (u *ReviewUsecase) ListProductReviews(ctx context.Context, productID int64) ([]ReviewWithUser, error) {
	if productID <= 0 {
		return []ReviewWithUser{}, newValidationError("Invalid product id")
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []ReviewWithUser{}, newInternalError()
	}

	out := make([]ReviewWithUser, 0, len(reviews))
	for _, rv := range reviews {
		user, err := u.userRepo.FindByID(ctx, rv.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			u.log.Error("review references missing user",
				zap.Int64("review_id", rv.ID),
				zap.Int64("user_id", rv.UserID),
			)
			return []ReviewWithUser{}, newIntegrityError()
		}
		if err != nil {
			return []ReviewWithUser{}, newInternalError()
		}
		out = append(out, ReviewWithUser{Review: rv, User: user.Sanitized()})
	}
	return out, nil
}

// CreateReview はレビューを保存し、その商品の平均評価を
// 全レビューから再計算して書き戻す。
// Product.Ratingは導出フィールドなのでここ以外では更新しない
func (u *ReviewUsecase) CreateReview(ctx context.Context, userID int64, productID int64, in CreateReviewInput) (model.Review, error) {
	if productID <= 0 {
		return model.Review{}, newValidationError("Invalid product id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, newValidationError("Rating must be between 1 and 5")
	}

	var created model.Review

	//挿入と再集計を同一トランザクションで行う
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return newNotFoundError("Product not found")
			}
			return newInternalError()
		}

		var err error
		created, err = r.Reviews().Create(ctx, model.Review{
			UserID:    userID,
			ProductID: productID,
			Rating:    in.Rating,
			Comment:   in.Comment,
		})
		if err != nil {
			return newInternalError()
		}

		//全件を読み直して平均を取る（件数が小さい前提の全走査）
		all, err := r.Reviews().ListByProductID(ctx, productID)
		if err != nil {
			return newInternalError()
		}

		var sum int64
		for _, rv := range all {
			sum += rv.Rating
		}
		avg := roundTo1(float64(sum) / float64(len(all)))

		if err := r.Products().UpdateRating(ctx, productID, avg, int64(len(all))); err != nil {
			return newInternalError()
		}
		return nil
	})

	if err != nil {
		return model.Review{}, err
	}
	return created, nil
}

// 小数第1位へ丸める
func roundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}
