package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akravets/talkroom-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS person (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS role (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS person_role (
	person_id INTEGER NOT NULL,
	role_id   INTEGER NOT NULL,
	PRIMARY KEY (person_id, role_id),
	FOREIGN KEY (person_id) REFERENCES person(id) ON DELETE CASCADE,
	FOREIGN KEY (role_id) REFERENCES role(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS room (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS message (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	content   TEXT NOT NULL,
	created   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	person_id INTEGER NOT NULL,
	room_id   INTEGER NOT NULL,
	FOREIGN KEY (person_id) REFERENCES person(id),
	FOREIGN KEY (room_id) REFERENCES room(id)
);

CREATE INDEX IF NOT EXISTS idx_message_room ON message(room_id, created DESC);
CREATE INDEX IF NOT EXISTS idx_person_role_person ON person_role(person_id);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and applies
// the schema.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ==== PersonStore implementation ====

// CreatePerson inserts a new person and their role links.
func (s *SQLiteStore) CreatePerson(ctx context.Context, p *store.Person) (*store.Person, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO person (username, password) VALUES (?, ?)`,
		p.Username, p.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	if err := replaceRoleLinks(ctx, tx, id, p.Roles); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.GetPersonByID(ctx, id)
}

// GetPersonByID retrieves a person with roles attached.
func (s *SQLiteStore) GetPersonByID(ctx context.Context, id int64) (*store.Person, error) {
	var p store.Person
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM person WHERE id = ?`, id,
	).Scan(&p.ID, &p.Username, &p.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("query person: %w", err)
	}

	if p.Roles, err = s.rolesOfPerson(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPersonByUsername retrieves a person by unique username.
func (s *SQLiteStore) GetPersonByUsername(ctx context.Context, username string) (*store.Person, error) {
	var p store.Person
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM person WHERE username = ?`, username,
	).Scan(&p.ID, &p.Username, &p.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person %q: %w", username, store.ErrNotFound)
		}
		return nil, fmt.Errorf("query person: %w", err)
	}

	if p.Roles, err = s.rolesOfPerson(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPersons lists all persons with roles attached.
func (s *SQLiteStore) ListPersons(ctx context.Context) ([]*store.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, password FROM person ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()

	var persons []*store.Person
	for rows.Next() {
		var p store.Person
		if err := rows.Scan(&p.ID, &p.Username, &p.Password); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}

	for _, p := range persons {
		if p.Roles, err = s.rolesOfPerson(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return persons, nil
}

// UpdatePerson replaces the person row and role links.
func (s *SQLiteStore) UpdatePerson(ctx context.Context, p *store.Person) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE person SET username = ?, password = ? WHERE id = ?`,
		p.Username, p.Password, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("person %d: %w", p.ID, store.ErrNotFound)
	}

	if err := replaceRoleLinks(ctx, tx, p.ID, p.Roles); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// DeletePerson removes a person by ID.
func (s *SQLiteStore) DeletePerson(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM person WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

func (s *SQLiteStore) rolesOfPerson(ctx context.Context, personID int64) ([]store.Role, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.name
		FROM role r
		JOIN person_role pr ON pr.role_id = r.id
		WHERE pr.person_id = ?
		ORDER BY r.id`, personID)
	if err != nil {
		return nil, fmt.Errorf("query person roles: %w", err)
	}
	defer rows.Close()

	var roles []store.Role
	for rows.Next() {
		var r store.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}

func replaceRoleLinks(ctx context.Context, tx *sql.Tx, personID int64, roles []store.Role) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM person_role WHERE person_id = ?`, personID,
	); err != nil {
		return fmt.Errorf("clear role links: %w", err)
	}
	for _, r := range roles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO person_role (person_id, role_id) VALUES (?, ?)`,
			personID, r.ID,
		); err != nil {
			return fmt.Errorf("insert role link: %w", err)
		}
	}
	return nil
}

// ==== RoleStore implementation ====

// CreateRole inserts a new role.
func (s *SQLiteStore) CreateRole(ctx context.Context, r *store.Role) (*store.Role, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO role (name) VALUES (?)`, r.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	return s.GetRoleByID(ctx, id)
}

// GetRoleByID retrieves a role by ID.
func (s *SQLiteStore) GetRoleByID(ctx context.Context, id int64) (*store.Role, error) {
	var r store.Role
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM role WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("role %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("query role: %w", err)
	}
	return &r, nil
}

// ListRoles lists all roles.
func (s *SQLiteStore) ListRoles(ctx context.Context) ([]*store.Role, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM role ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var roles []*store.Role
	for rows.Next() {
		var r store.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}

// UpdateRole replaces a role row.
func (s *SQLiteStore) UpdateRole(ctx context.Context, r *store.Role) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE role SET name = ? WHERE id = ?`, r.Name, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return requireRow(result, "role", r.ID)
}

// DeleteRole removes a role by ID.
func (s *SQLiteStore) DeleteRole(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM role WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// ==== RoomStore implementation ====

// CreateRoom inserts a new room.
func (s *SQLiteStore) CreateRoom(ctx context.Context, r *store.Room) (*store.Room, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO room (name) VALUES (?)`, r.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	return s.GetRoomByID(ctx, id)
}

// GetRoomByID retrieves a room by ID.
func (s *SQLiteStore) GetRoomByID(ctx context.Context, id int64) (*store.Room, error) {
	var r store.Room
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM room WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("room %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("query room: %w", err)
	}
	return &r, nil
}

// ListRooms lists all rooms.
func (s *SQLiteStore) ListRooms(ctx context.Context) ([]*store.Room, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM room ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*store.Room
	for rows.Next() {
		var r store.Room
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom replaces a room row.
func (s *SQLiteStore) UpdateRoom(ctx context.Context, r *store.Room) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE room SET name = ? WHERE id = ?`, r.Name, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return requireRow(result, "room", r.ID)
}

// DeleteRoom removes a room by ID.
func (s *SQLiteStore) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM room WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// ==== MessageStore implementation ====

// CreateMessage inserts a new message.
func (s *SQLiteStore) CreateMessage(ctx context.Context, m *store.Message) (*store.Message, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO message (content, created, person_id, room_id) VALUES (?, ?, ?, ?)`,
		m.Content, m.Created, m.PersonID, m.RoomID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	return s.GetMessageByID(ctx, id)
}

// GetMessageByID retrieves a message by ID.
func (s *SQLiteStore) GetMessageByID(ctx context.Context, id int64) (*store.Message, error) {
	var m store.Message
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content, created, person_id, room_id FROM message WHERE id = ?`, id,
	).Scan(&m.ID, &m.Content, &m.Created, &m.PersonID, &m.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("message %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("query message: %w", err)
	}
	return &m, nil
}

// ListMessages lists all messages.
func (s *SQLiteStore) ListMessages(ctx context.Context) ([]*store.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, created, person_id, room_id FROM message ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []*store.Message
	for rows.Next() {
		var m store.Message
		if err := rows.Scan(&m.ID, &m.Content, &m.Created, &m.PersonID, &m.RoomID); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}

// UpdateMessage replaces a message row.
func (s *SQLiteStore) UpdateMessage(ctx context.Context, m *store.Message) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE message SET content = ?, created = ?, person_id = ?, room_id = ? WHERE id = ?`,
		m.Content, m.Created, m.PersonID, m.RoomID, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	return requireRow(result, "message", m.ID)
}

// DeleteMessage removes a message by ID.
func (s *SQLiteStore) DeleteMessage(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM message WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func requireRow(result sql.Result, entity string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, store.ErrNotFound)
	}
	return nil
}
