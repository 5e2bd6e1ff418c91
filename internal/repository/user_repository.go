package repository

import (
	"context"
	"errors"
	"fmt"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, password, full_name, email, role, unit_id, status, fcm_token`

func (r *UserRepository) scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FullName,
		&u.Email,
		&u.Role,
		&u.UnitID,
		&u.Status,
		&u.FCMToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

// ActiveUserByUsername returns only users with status 1.
func (r *UserRepository) ActiveUserByUsername(ctx context.Context, username string) (entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM dms_users WHERE username = $1 AND status = $2`

	return r.scanUser(r.db.QueryRow(ctx, q, username, entity.UserStatusActive))
}

func (r *UserRepository) UserByID(ctx context.Context, id int64) (entity.User, error) {
	q := `SELECT ` + userColumns + ` FROM dms_users WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *UserRepository) UpdateFCMToken(ctx context.Context, userID int64, token string) error {
	q := `UPDATE dms_users SET fcm_token = $1 WHERE id = $2`

	_, err := r.db.Exec(ctx, q, token, userID)
	if err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, hash string) (int64, error) {
	q := `UPDATE dms_users SET password = $1, update_date = NOW() WHERE username = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, q, hash, username, entity.UserStatusActive)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *UserRepository) UpdatePasswordByID(ctx context.Context, userID int64, hash string) (int64, error) {
	q := `UPDATE dms_users SET password = $1, update_date = NOW() WHERE id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, q, hash, userID, entity.UserStatusActive)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *UserRepository) Users(ctx context.Context) ([]entity.UserView, error) {
	q := `
	SELECT id, username, rank_id, rank_name, reg_no, full_name, contact_number,
	       email, unit_id, unit_name, role, status, create_date
	FROM view_users_list
	ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.UserView, 0)

	for rows.Next() {
		var u entity.UserView

		err = rows.Scan(
			&u.ID,
			&u.Username,
			&u.RankID,
			&u.RankName,
			&u.RegNo,
			&u.FullName,
			&u.ContactNumber,
			&u.Email,
			&u.UnitID,
			&u.UnitName,
			&u.Role,
			&u.Status,
			&u.CreateDate,
		)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser stores a user without a password; the password is set through the setup link.
func (r *UserRepository) CreateUser(ctx context.Context, in entity.UserInput, passwordHash *string) (int64, error) {
	q := `
	INSERT INTO dms_users (username, password, rank_id, reg_no, full_name, contact_number, email, unit_id, role, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, 1))
	RETURNING id`

	var id int64

	err := r.db.QueryRow(ctx, q,
		in.Username,
		passwordHash,
		in.RankID,
		in.RegNo,
		in.FullName,
		in.ContactNumber,
		in.Email,
		in.UnitID,
		in.Role,
		in.Status,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("username %s: %w", in.Username, entity.ErrAlreadyExists)
		}

		return 0, err
	}

	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id int64, in entity.UserInput) (int64, error) {
	q := `
	UPDATE dms_users SET
		username = $1, rank_id = $2, reg_no = $3, full_name = $4, contact_number = $5,
		email = $6, unit_id = $7, role = $8, status = COALESCE($9, status), update_date = NOW()
	WHERE id = $10`

	tag, err := r.db.Exec(ctx, q,
		in.Username,
		in.RankID,
		in.RegNo,
		in.FullName,
		in.ContactNumber,
		in.Email,
		in.UnitID,
		in.Role,
		in.Status,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("username %s: %w", in.Username, entity.ErrAlreadyExists)
		}

		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *UserRepository) SetUserStatus(ctx context.Context, id int64, status int) (int64, error) {
	q := `UPDATE dms_users SET status = $1, update_date = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *UserRepository) FCMToken(ctx context.Context, userID int64) (string, error) {
	q := `SELECT fcm_token FROM dms_users WHERE id = $1`

	var token *string

	err := r.db.QueryRow(ctx, q, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrNotFound
		}

		return "", err
	}

	if token == nil {
		return "", nil
	}

	return *token, nil
}

func (r *UserRepository) FCMTokensByRoles(ctx context.Context, roles ...entity.Role) ([]string, error) {
	q := `
	SELECT DISTINCT fcm_token
	FROM dms_users
	WHERE role = ANY($1) AND status = $2 AND fcm_token IS NOT NULL AND fcm_token <> ''`

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	rows, err := r.db.Query(ctx, q, names, entity.UserStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	return tokens, nil
}
