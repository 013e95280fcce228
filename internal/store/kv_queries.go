// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package store

const (
	upsertKVPair = `
		INSERT INTO kv (
			key,
			value,
			updated_at
		) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	getKVPair = `
		SELECT value
		FROM kv
		WHERE key = $1;`

	deleteKVPair = `
		DELETE FROM kv
		WHERE key = $1;`
)
