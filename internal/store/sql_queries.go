package store

const (
	ensureCalendarRecordQuery = `INSERT INTO calendars (id, user_id, name, type, config, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id, user_id) DO NOTHING;`

	deleteCalendarRecordQuery = `DELETE FROM calendars
		WHERE id = $1 AND user_id = $2;`

	deleteEventsByCalendarQuery = `DELETE FROM events
		WHERE user_id = $1 AND calendar_id = $2;`

	getLastSyncTimeQuery = `SELECT last_synced_at
		FROM sync_state
		WHERE calendar_id = $1 AND user_id = $2;`

	upsertLastSyncTimeQuery = `INSERT INTO sync_state (calendar_id, user_id, last_synced_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (calendar_id, user_id) DO UPDATE SET last_synced_at = EXCLUDED.last_synced_at;`

	deleteSyncStateQuery = `DELETE FROM sync_state
		WHERE calendar_id = $1 AND user_id = $2;`

	getSettingQuery = `SELECT value
		FROM settings
		WHERE user_id = $1 AND key = $2;`

	upsertSettingQuery = `INSERT INTO settings (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`

	deleteSettingQuery = `DELETE FROM settings
		WHERE user_id = $1 AND key = $2;`

	listSettingsByPrefixQuery = `SELECT key, value
		FROM settings
		WHERE user_id = $1 AND key LIKE $2
		ORDER BY key;`

	listSettingUserIDsQuery = `SELECT DISTINCT user_id
		FROM settings
		WHERE key LIKE $1
		ORDER BY user_id;`

	getSecretQuery = `SELECT ciphertext
		FROM secrets
		WHERE user_id = $1 AND key = $2;`

	upsertSecretQuery = `INSERT INTO secrets (user_id, key, ciphertext, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key) DO UPDATE SET ciphertext = EXCLUDED.ciphertext, updated_at = NOW();`

	deleteSecretQuery = `DELETE FROM secrets
		WHERE user_id = $1 AND key = $2;`

	secretExistsQuery = `SELECT EXISTS (
		SELECT 1 FROM secrets WHERE user_id = $1 AND key = $2
	);`

	// Upsert clause for the bulk event insert built in
	// [eventRepository.SaveMany]; each sync is authoritative for the
	// fetched range, so conflicting rows are overwritten wholesale.
	eventsOnConflictClause = `ON CONFLICT (id, calendar_id, user_id) DO UPDATE SET
		title = EXCLUDED.title,
		start_time = EXCLUDED.start_time,
		end_time = EXCLUDED.end_time,
		all_day = EXCLUDED.all_day,
		location = EXCLUDED.location,
		description = EXCLUDED.description,
		source_type = EXCLUDED.source_type,
		source_name = EXCLUDED.source_name,
		source_email = EXCLUDED.source_email,
		updated_at = NOW()`
)

// Column orders shared by the event queries. The insert list carries
// user_id; the select list omits it because results are already scoped.
var (
	eventInsertColumns = []string{
		"id",
		"calendar_id",
		"user_id",
		"title",
		"start_time",
		"end_time",
		"all_day",
		"location",
		"description",
		"source_type",
		"source_name",
		"source_email",
	}

	eventSelectColumns = []string{
		"id",
		"calendar_id",
		"title",
		"start_time",
		"end_time",
		"all_day",
		"location",
		"description",
		"source_type",
		"source_name",
		"source_email",
	}
)
