package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/calm-companion/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, role, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, role, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, role, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserRole = `UPDATE users SET role = $2 WHERE user_id = $1;`

	getProfile = `SELECT user_id, name, preferred_language, updated_at
    FROM profiles
    WHERE user_id = $1;`

	saveProfile = `INSERT INTO profiles (user_id, name, preferred_language, updated_at)
    VALUES ($1, $2, $3, NOW())
    ON CONFLICT (user_id) DO UPDATE
        SET name = EXCLUDED.name,
            preferred_language = EXCLUDED.preferred_language,
            updated_at = NOW()
    RETURNING user_id, name, preferred_language, updated_at;`

	saveConversationEntry = `INSERT INTO conversation_entries (
			user_id,
			sender,
			message,
			language,
			color,
			expected_reply,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

var conversationEntryColumns = []string{
	"id",
	"user_id",
	"sender",
	"message",
	"language",
	"color",
	"expected_reply",
	"created_at",
}

// buildConversationHistoryQuery selects the newest entries first so that
// Limit keeps the most recent ones. Callers reverse the rows.
func buildConversationHistoryQuery(filter models.HistoryFilter) (string, []any, error) {
	query := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(conversationEntryColumns...).
		From(models.ConversationEntry{}.TableName()).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Locale != "" {
		query = query.Where(sq.Eq{"language": filter.Locale})
	}

	query = query.OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}
