// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (id, user_id, login, token, created_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			login = excluded.login,
			token = excluded.token,
			created_at = excluded.created_at;`

	getSession = `
		SELECT user_id, login, token, created_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions;`
)
