package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/models"
)

// conversationRepository stores conversation history in the
// "conversation_entries" table.
type conversationRepository struct {
	*DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveEntries inserts the batch in a single transaction. Either every entry
// is stored or none is.
func (c *conversationRepository) SaveEntries(ctx context.Context, userID int64, entries ...models.ConversationEntry) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return ErrNoEntries
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.SaveEntries").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, c.wrap(err))
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, saveConversationEntry)
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.SaveEntries").
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for i, entry := range entries {
		_, err = stmt.ExecContext(ctx,
			userID,
			entry.Sender,
			entry.Message,
			entry.Language,
			entry.Color,
			entry.ExpectedReply,
			entry.Timestamp,
		)
		if err != nil {
			log.Err(err).
				Str("func", "conversationRepository.SaveEntries").
				Int64("user_id", userID).
				Int("index", i).
				Msg("failed to insert conversation entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, c.wrap(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "conversationRepository.SaveEntries").
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, c.wrap(err))
	}

	return nil
}

// GetEntries returns the filtered history of filter.UserID, oldest first.
func (c *conversationRepository) GetEntries(ctx context.Context, filter models.HistoryFilter) ([]models.ConversationEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConversationHistoryQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "conversationRepository.GetEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.GetEntries").
			Int64("user_id", filter.UserID).
			Str("locale", filter.Locale).
			Msg("failed to query conversation history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, c.wrap(err))
	}
	defer rows.Close()

	entries := make([]models.ConversationEntry, 0, 32)
	for rows.Next() {
		var e models.ConversationEntry
		if err = rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Sender,
			&e.Message,
			&e.Language,
			&e.Color,
			&e.ExpectedReply,
			&e.Timestamp,
		); err != nil {
			log.Err(err).Str("func", "conversationRepository.GetEntries").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "conversationRepository.GetEntries").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.Reverse(entries)
	return entries, nil
}
