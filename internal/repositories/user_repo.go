package repositories

import (
	"database/sql"
	"strings"

	"dealership/internal/domain"
	"dealership/internal/domain/models"
)

// UserRepository backs the auth endpoints.
type UserRepository struct {
	DB *sql.DB
}

// FindByIdentifier matches email or username, the single canonical login
// contract.
func (r UserRepository) FindByIdentifier(identifier string) (models.User, string, error) {
	var (
		user models.User
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT id, name, username, email, COALESCE(phone, ''), password_hash, role, status
		FROM users
		WHERE email = ? OR username = ?
	`, identifier, identifier).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Phone,
		&hash,
		&user.Role,
		&user.Status,
	)
	if err == sql.ErrNoRows {
		return models.User{}, "", domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "gagal query user", Err: err}
	}
	return user, hash, nil
}

func (r UserRepository) FindByID(id int64) (models.User, error) {
	var user models.User
	err := r.DB.QueryRow(`
		SELECT id, name, username, email, COALESCE(phone, ''), role, status
		FROM users
		WHERE id = ?
	`, id).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.Status,
	)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "gagal query user", Err: err}
	}
	return user, nil
}

// Create inserts a new account. Role defaults to sales when empty.
func (r UserRepository) Create(user models.User, passwordHash string) (models.User, error) {
	var exists int
	if err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?
	`, user.Email, user.Username).Scan(&exists); err != nil {
		return models.User{}, domain.InternalError{Msg: "gagal cek user", Err: err}
	}
	if exists > 0 {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email atau username sudah terdaftar"}
	}

	role := strings.TrimSpace(user.Role)
	if role == "" {
		role = "sales"
	}

	res, err := r.DB.Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
	`, user.Name, user.Username, user.Email, user.Phone, passwordHash, role)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "gagal menyimpan user", Err: err}
	}

	id, _ := res.LastInsertId()
	user.ID = id
	user.Role = role
	user.Status = "active"
	return user, nil
}
