package users

const (
	queryCreate = `
		INSERT INTO users (id, name, email, password_hash, plan)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, plan, created_at, updated_at
	`

	queryFindByEmail = `
		SELECT id, name, email, password_hash, plan, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, name, email, password_hash, plan, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryUpdatePlan = `
		UPDATE users
		SET plan = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, email, password_hash, plan, created_at, updated_at
	`
)
