package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/redact"
	"github.com/phrazzld/mesto-api/internal/store"
)

// cardLikesCardFK is the foreign key from card_likes to cards. A violation
// means the card was deleted while a like was being added.
const cardLikesCardFK = "card_likes_card_id_fkey"

// cardSelect reads cards with their likes aggregated in like order.
const cardSelect = `
SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
       COALESCE(array_agg(l.user_id ORDER BY l.created_at, l.user_id)
                FILTER (WHERE l.user_id IS NOT NULL), '{}') AS likes
FROM cards c
LEFT JOIN card_likes l ON l.card_id = c.id`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
	types  *pgtype.Map
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
		types:  pgtype.NewMap(),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

func (s *PostgresCardStore) scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	likes := []string{}
	if err := row.Scan(
		&card.ID, &card.Name, &card.Link, &card.Owner, &card.CreatedAt,
		s.types.SQLScanner(&likes),
	); err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []string{}
	}
	card.CreatedAt = card.CreatedAt.UTC()
	card.Likes = likes
	return &card, nil
}

// Create implements store.CardStore.Create.
// CreatedAt is taken from the database so later reads return the same value.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO cards (id, name, link, owner_id) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		card.ID, card.Name, card.Link, card.Owner,
	).Scan(&card.CreatedAt)
	if err != nil {
		s.logger.Debug("failed to create card",
			slog.String("card_id", card.ID),
			slog.String("error", redact.Error(err)))
		return MapError(err)
	}

	card.CreatedAt = card.CreatedAt.UTC()
	if card.Likes == nil {
		card.Likes = []string{}
	}
	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	return s.getByID(ctx, s.db, id)
}

func (s *PostgresCardStore) getByID(ctx context.Context, db store.DBTX, id string) (*domain.Card, error) {
	card, err := s.scanCard(db.QueryRowContext(ctx, cardSelect+`
WHERE c.id = $1
GROUP BY c.id`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		return nil, MapError(err)
	}
	return card, nil
}

// List implements store.CardStore.List
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, cardSelect+`
GROUP BY c.id
ORDER BY c.created_at DESC, c.id DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := s.scanCard(rows)
		if err != nil {
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return cards, nil
}

// Delete implements store.CardStore.Delete. Likes go with the card
// through ON DELETE CASCADE.
func (s *PostgresCardStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCardNotFound)
}

// AddLike implements store.CardStore.AddLike.
// The insert is skipped when the card is missing and ignored when the like
// already exists, so concurrent likes never duplicate or lose an entry.
func (s *PostgresCardStore) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	var card *domain.Card
	err := s.inTx(ctx, func(db store.DBTX) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO card_likes (card_id, user_id)
			 SELECT $1, $2 WHERE EXISTS (SELECT 1 FROM cards WHERE id = $1)
			 ON CONFLICT (card_id, user_id) DO NOTHING`,
			cardID, userID)
		if err != nil {
			if IsForeignKeyViolation(err, cardLikesCardFK) {
				return store.ErrCardNotFound
			}
			return MapError(err)
		}

		card, err = s.getByID(ctx, db, cardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// RemoveLike implements store.CardStore.RemoveLike
func (s *PostgresCardStore) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	var card *domain.Card
	err := s.inTx(ctx, func(db store.DBTX) error {
		if _, err := db.ExecContext(ctx,
			`DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`,
			cardID, userID); err != nil {
			return MapError(err)
		}

		var err error
		card, err = s.getByID(ctx, db, cardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// inTx runs fn in a new transaction when the store holds a *sql.DB and
// directly on the existing transaction otherwise.
func (s *PostgresCardStore) inTx(ctx context.Context, fn func(db store.DBTX) error) error {
	beginner, ok := s.db.(store.TxBeginner)
	if !ok {
		return fn(s.db)
	}
	return store.RunInTransaction(ctx, beginner, func(ctx context.Context, tx *sql.Tx) error {
		if err := fn(tx); err != nil {
			return fmt.Errorf("card like update: %w", err)
		}
		return nil
	})
}
