package repository

import (
	"context"
	"fmt"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, my_list, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		toInt32List(user.MyList),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, my_list, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, my_list, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// AddListItem appends the content id to the user's list array unless the array
// already contains it. Zero rows affected means nothing changed.
func (r *userRepository) AddListItem(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error) {
	query := `
		UPDATE users
		SET my_list = array_append(my_list, $2), updated_at = NOW()
		WHERE id = $1 AND NOT (my_list @> ARRAY[$2]::int[])
	`

	result, err := r.db.Exec(ctx, query, userID, int32(contentID))
	if err != nil {
		r.log.Error("Failed to add list item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("content_id", contentID),
		)
		return nil, fmt.Errorf("add list item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, userID)
}

func (r *userRepository) RemoveListItem(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error) {
	query := `
		UPDATE users
		SET my_list = array_remove(my_list, $2), updated_at = NOW()
		WHERE id = $1 AND my_list @> ARRAY[$2]::int[]
	`

	result, err := r.db.Exec(ctx, query, userID, int32(contentID))
	if err != nil {
		r.log.Error("Failed to remove list item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("content_id", contentID),
		)
		return nil, fmt.Errorf("remove list item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, userID)
}

func (r *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	var list []int32

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&list,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to scan user row", zap.Error(err))
		return nil, fmt.Errorf("scan user: %w", err)
	}

	user.MyList = fromInt32List(list)
	return &user, nil
}

func toInt32List(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}

func fromInt32List(ids []int32) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
