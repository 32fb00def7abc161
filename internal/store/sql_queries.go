package store

const (
	createAccount = `INSERT INTO accounts (id, name, password_hash, permissions, bio)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, password_hash, permissions, bio;`

	findAccountByName = `SELECT id, name, password_hash, permissions, bio
    FROM accounts
    WHERE name = $1;`

	findAccountByID = `SELECT id, name, password_hash, permissions, bio
    FROM accounts
    WHERE id = $1;`

	listAccounts = `SELECT id, name, password_hash, permissions, bio
    FROM accounts
    ORDER BY name;`

	replaceAccount = `UPDATE accounts
    SET name = $2, password_hash = $3, permissions = $4, bio = $5
    WHERE id = $1
    RETURNING id, name, password_hash, permissions, bio;`

	deleteAccount = `DELETE FROM accounts
    WHERE id = $1;`
)
