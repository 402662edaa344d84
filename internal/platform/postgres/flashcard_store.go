package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
)

const flashcardColumns = "id, deck_id, front, back, created_at, updated_at"

// PostgresFlashcardStore implements the store.FlashcardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFlashcardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlashcardStore creates a new PostgreSQL implementation of the FlashcardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresFlashcardStore(db store.DBTX, logger *slog.Logger) *PostgresFlashcardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlashcardStore{
		db:     db,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure PostgresFlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*PostgresFlashcardStore)(nil)

// CreateMultiple implements store.FlashcardStore.CreateMultiple
// All pairs are inserted by one multi-row INSERT ... RETURNING statement.
func (s *PostgresFlashcardStore) CreateMultiple(
	ctx context.Context,
	deckID uuid.UUID,
	pairs []domain.Pair,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if deckID == uuid.Nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrFlashcardDeckIDEmpty)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no flashcards to create", store.ErrInvalidEntity)
	}

	query, args, err := buildInsertFlashcards(deckID, pairs)
	if err != nil {
		log.Warn("flashcard validation failed during create",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert flashcards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()),
			slog.Int("count", len(pairs)))
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrDeckNotFound, err)
		}
		return nil, MapError(err)
	}

	cards, err := scanFlashcards(rows)
	if err != nil {
		log.Error("failed to read inserted flashcards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrDeckNotFound, err)
		}
		return nil, MapError(err)
	}

	log.Info("flashcards created",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// buildInsertFlashcards renders the multi-row insert. The deck ID is bound
// once as $1 and each pair adds two placeholders.
func buildInsertFlashcards(deckID uuid.UUID, pairs []domain.Pair) (string, []any, error) {
	var b strings.Builder
	b.WriteString("INSERT INTO flashcards (deck_id, front, back) VALUES ")

	args := make([]any, 0, 1+2*len(pairs))
	args = append(args, deckID)
	for i, pair := range pairs {
		p, err := domain.NewPair(pair.Front, pair.Back)
		if err != nil {
			return "", nil, fmt.Errorf("%w: pair %d: %w", store.ErrInvalidEntity, i, err)
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "($1, $%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, p.Front, p.Back)
	}
	b.WriteString(" RETURNING " + flashcardColumns)

	return b.String(), args, nil
}

// ListByDeck implements store.FlashcardStore.ListByDeck
func (s *PostgresFlashcardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE deck_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, deckID)
	if err != nil {
		log.Error("failed to list flashcards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, MapError(err)
	}

	cards, err := scanFlashcards(rows)
	if err != nil {
		return nil, MapError(err)
	}
	return cards, nil
}

// GetByID implements store.FlashcardStore.GetByID
func (s *PostgresFlashcardStore) GetByID(
	ctx context.Context,
	userID, flashcardID uuid.UUID,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT f.id, f.deck_id, f.front, f.back, f.created_at, f.updated_at
		FROM flashcards f
		JOIN decks d ON d.id = f.deck_id
		WHERE f.id = $1 AND d.user_id = $2
	`
	var card domain.Flashcard
	err := s.db.QueryRowContext(ctx, query, flashcardID, userID).Scan(
		&card.ID,
		&card.DeckID,
		&card.Front,
		&card.Back,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrFlashcardNotFound
		}
		log.Error("failed to get flashcard",
			slog.String("error", err.Error()),
			slog.String("flashcard_id", flashcardID.String()))
		return nil, MapError(err)
	}

	return &card, nil
}

// Update implements store.FlashcardStore.Update
// UpdatedAt is set from the database clock.
func (s *PostgresFlashcardStore) Update(ctx context.Context, userID uuid.UUID, card *domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	pair, err := domain.NewPair(card.Front, card.Back)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE flashcards f
		SET front = $1, back = $2, updated_at = clock_timestamp()
		FROM decks d
		WHERE f.id = $3 AND f.deck_id = d.id AND d.user_id = $4
		RETURNING f.deck_id, f.created_at, f.updated_at
	`
	err = s.db.QueryRowContext(ctx, query, pair.Front, pair.Back, card.ID, userID).Scan(
		&card.DeckID,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrFlashcardNotFound
		}
		log.Error("failed to update flashcard",
			slog.String("error", err.Error()),
			slog.String("flashcard_id", card.ID.String()))
		return MapError(err)
	}

	card.Front = pair.Front
	card.Back = pair.Back
	return nil
}

// Delete implements store.FlashcardStore.Delete
func (s *PostgresFlashcardStore) Delete(ctx context.Context, userID, flashcardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM flashcards f
		USING decks d
		WHERE f.id = $1 AND f.deck_id = d.id AND d.user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, flashcardID, userID)
	if err != nil {
		log.Error("failed to delete flashcard",
			slog.String("error", err.Error()),
			slog.String("flashcard_id", flashcardID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrFlashcardNotFound)
}

// WithTx implements store.FlashcardStore.WithTx
func (s *PostgresFlashcardStore) WithTx(tx *sql.Tx) store.FlashcardStore {
	return &PostgresFlashcardStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanFlashcards(rows *sql.Rows) ([]*domain.Flashcard, error) {
	defer func() { _ = rows.Close() }()

	cards := make([]*domain.Flashcard, 0)
	for rows.Next() {
		var card domain.Flashcard
		if err := rows.Scan(
			&card.ID,
			&card.DeckID,
			&card.Front,
			&card.Back,
			&card.CreatedAt,
			&card.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}
