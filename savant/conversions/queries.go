package conversions

const (
	queryInsert = `
		INSERT INTO conversions (id, conversion_type, from_format, to_format, file_name, file_size, status, error_message, duration_ms, user_id, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	queryCountUserSuccessesBetween = `
		SELECT COUNT(*)
		FROM conversions
		WHERE user_id = $1
		  AND status = 'success'
		  AND created_at >= $2
		  AND created_at < $3
	`

	queryCountIPSuccessesBetween = `
		SELECT COUNT(*)
		FROM conversions
		WHERE user_id IS NULL
		  AND ip_address = $1
		  AND status = 'success'
		  AND created_at >= $2
		  AND created_at < $3
	`

	queryRecentForUser = `
		SELECT id, conversion_type, from_format, to_format, file_name, file_size, status, COALESCE(error_message, ''), duration_ms, COALESCE(user_id::text, ''), ip_address, created_at
		FROM conversions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryStatsSince = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'success'),
			COUNT(*) FILTER (WHERE status = 'failed')
		FROM conversions
		WHERE created_at >= $1
	`

	queryCountByTypeSince = `
		SELECT conversion_type, COUNT(*)
		FROM conversions
		WHERE created_at >= $1
		GROUP BY conversion_type
		ORDER BY COUNT(*) DESC
	`
)
