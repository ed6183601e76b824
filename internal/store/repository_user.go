package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// for every supported [Dialect].
//
// Methods log through the request-scoped logger from [logger.FromContext]
// and attach the engine-specific classification of storage failures.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on top of db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.Dialect().Name).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const fn = "*userRepository.CreateUser"

	query, args, err := buildInsertUserQuery(r.db.Dialect(), user)
	if err != nil {
		r.logError(ctx, err, fn, "error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// postgres: the driver has no LastInsertId
	if r.db.Dialect().ReturningID {
		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
			r.logError(ctx, err, fn, "error inserting user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return user, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, fn, "error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.ID, err = result.LastInsertId()
	if err != nil {
		r.logError(ctx, err, fn, "error reading generated id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	logger.FromContext(ctx).Debug().Str("func", fn).Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	const fn = "*userRepository.GetUserByID"

	user, err := r.selectUserByID(ctx, r.db.DB, id)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			r.logError(ctx, err, fn, "error selecting user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	const fn = "*userRepository.UpdateUser"

	var updated models.User
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		stored, err := r.selectUserByID(ctx, tx, update.ID)
		if err != nil {
			return err
		}

		updated = stored.Apply(update.Fields)
		if update.Fields.IsEmpty() {
			return nil
		}

		query, args, err := buildUpdateUserQuery(r.db.Dialect(), updated)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			r.logError(ctx, err, fn, "error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	const fn = "*userRepository.DeleteUser"

	query, args, err := buildDeleteUserQuery(r.db.Dialect(), id)
	if err != nil {
		r.logError(ctx, err, fn, "error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, fn, "error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logError(ctx, err, fn, "error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	const fn = "*userRepository.ListUsers"

	query, args, err := buildSelectAllUsersQuery(r.db.Dialect())
	if err != nil {
		r.logError(ctx, err, fn, "error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, fn, "error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.logError(ctx, err, fn, "error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		r.logError(ctx, err, fn, "error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *userRepository) selectUserByID(ctx context.Context, q querier, id int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.Dialect(), id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(q.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) logError(ctx context.Context, err error, fn, msg string) {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("dialect", r.db.Dialect().Name).
		Stringer("classification", r.db.classify(err)).
		Msg(msg)
}
