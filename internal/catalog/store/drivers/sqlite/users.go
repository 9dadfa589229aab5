package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, first_name, last_name, bio, role,
	is_superuser, identity_version, created_at, updated_at`

func (r *usersRepo) GetByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) List(ctx context.Context, search string, page store.Page) ([]domain.User, error) {
	limit, offset := pageBounds(page)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE (? = '' OR username LIKE '%' || ? || '%')
		 ORDER BY username
		 LIMIT ? OFFSET ?`,
		search, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, first_name, last_name, bio,
		                    role, is_superuser, identity_version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Username, u.Email, u.FirstName, u.LastName, u.Bio,
		u.Role.String(), u.Superuser, u.IdentityVersion,
		u.CreatedAt.UTC(), u.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *usersRepo) Update(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET username = ?, email = ?, first_name = ?, last_name = ?, bio = ?,
		     role = ?, is_superuser = ?, identity_version = ?, updated_at = ?
		 WHERE id = ?`,
		u.Username, u.Email, u.FirstName, u.LastName, u.Bio,
		u.Role.String(), u.Superuser, u.IdentityVersion,
		time.Now().UTC(), u.ID.String())
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u        domain.User
		id, role string
	)
	err := row.Scan(&id, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Bio, &role, &u.Superuser, &u.IdentityVersion, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.ID = idx.ID(id)
	u.Role = domain.Role(role)
	return u, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
