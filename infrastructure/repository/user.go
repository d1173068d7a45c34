package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/TeuSpnl/comisys/infrastructure/database/postgres"
	"github.com/TeuSpnl/comisys/internal/domain"
	_ "github.com/lib/pq"
)

const usersTable = "users"

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByUsername(username string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUsers() ([]*domain.User, error)
	ListActiveSellers() ([]*domain.User, error)
	BumpTokenVersion(userID int) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

const userColumns = "id, username, name, password_hash, role, branch, active, token_version, created_at, updated_at"

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("username", "name", "password_hash", "role", "branch", "active").
		Values(user.Username, user.Name, user.PasswordHash, user.Role, user.Branch, user.Active).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("active", user.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		queryBuilder = queryBuilder.Set("name", user.Name)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.Role != "" {
		queryBuilder = queryBuilder.Set("role", user.Role)
	}

	if user.Branch != nil {
		queryBuilder = queryBuilder.Set("branch", user.Branch)
	}

	if user.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", user.DeletedAt)
	}

	usersSQL, usersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

// GetUserByUsername busca pelo username sem diferenciar maiúsculas; a
// unicidade do cadastro também é garantida assim (índice em LOWER(username)).
func (r *userRepository) GetUserByUsername(username string) (*domain.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE deleted = false AND LOWER(username) = LOWER($1)", userColumns,
	)

	user, err := r.scanUser(r.conn.QueryRow(query, username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE deleted = false AND id = $1", userColumns,
	)

	user, err := r.scanUser(r.conn.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ListUsers() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryUsers(queryBuilder)
}

// ListActiveSellers devolve o diretório usado para casar os nomes livres da
// planilha com usuários cadastrados.
func (r *userRepository) ListActiveSellers() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, "active": true, "role": domain.RoleSeller}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryUsers(queryBuilder)
}

// BumpTokenVersion invalida todos os tokens emitidos para o usuário.
func (r *userRepository) BumpTokenVersion(userID int) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("token_version", squirrel.Expr("token_version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

func (r *userRepository) queryUsers(queryBuilder squirrel.SelectBuilder) ([]*domain.User, error) {
	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Name,
			&user.PasswordHash,
			&user.Role,
			&user.Branch,
			&user.Active,
			&user.TokenVersion,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.Branch,
		&user.Active,
		&user.TokenVersion,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
