package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"blog/internal/models"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type NewUser struct {
	Username  string
	Email     string
	ImageFile string
}

// UserStore es el contrato de acceso a usuarios que consumen los handlers.
type UserStore interface {
	Create(ctx context.Context, nu NewUser) (models.User, error)
	ByID(ctx context.Context, id int64) (models.User, error)
}

type SQLUserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

// Create inserta dentro de una transacción. Los dos checks previos dan el
// mensaje de conflicto correcto (username antes que email, el orden es
// parte del contrato); la constraint UNIQUE de la tabla es la garantía
// real si otro insert gana la carrera.
func (s *SQLUserStore) Create(ctx context.Context, nu NewUser) (models.User, error) {
	username := strings.TrimSpace(nu.Username)
	email := strings.TrimSpace(strings.ToLower(nu.Email))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists); err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists); err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	var image sql.NullString
	if nu.ImageFile != "" {
		image = sql.NullString{String: nu.ImageFile, Valid: true}
	}

	var id int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO users (username, email, image_file)
         VALUES ($1, $2, $3)
         RETURNING id`,
		username, email, image,
	).Scan(&id); err != nil {
		// Por si hay condición de carrera con UNIQUE:
		return models.User{}, mapUniqueViolation(err)
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, mapUniqueViolation(err)
	}

	return models.User{ID: id, Username: username, Email: email, ImageFile: nu.ImageFile}, nil
}

func (s *SQLUserStore) ByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, COALESCE(image_file, '')
           FROM users
          WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.ImageFile)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// mapUniqueViolation traduce un 23505 de Postgres al mismo error de
// conflicto que habría dado el check previo.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return ErrUsernameTaken
		case strings.Contains(pgErr.ConstraintName, "email"):
			return ErrEmailTaken
		}
	}
	return err
}
