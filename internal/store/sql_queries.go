package store

const (
	createUser = `INSERT INTO users (id, email, password_hash, name, role, email_verified)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, email, password_hash, name, role, email_verified, last_login_at, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password_hash, name, role, email_verified, last_login_at, created_at, updated_at
    FROM users
    WHERE email = $1;`

	updateUserCredentials = `UPDATE users
    SET name = $2, role = $3, email_verified = $4, password_hash = $5, updated_at = now()
    WHERE id = $1
    RETURNING id, email, password_hash, name, role, email_verified, last_login_at, created_at, updated_at;`

	updateLastLogin = `UPDATE users
    SET last_login_at = $2, updated_at = now()
    WHERE id = $1;`

	createTask = `INSERT INTO tasks (id, user_id, title, description, priority, status, due_date)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, title, description, priority, status, due_date, created_at, updated_at;`

	getTask = `SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
    FROM tasks
    WHERE id = $1;`

	listTasksByUser = `SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
    FROM tasks
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	deleteTask = `DELETE FROM tasks
    WHERE id = $1;`
)
