// Package pgdbtest opens in-memory sqlite databases carrying the recruit schema.
package pgdbtest

import (
	"database/sql"
	"testing"

	"sportshub-recruit-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE recruit_posts (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	team_id            INTEGER NOT NULL,
	writer_profile_id  INTEGER NOT NULL,
	title              TEXT NOT NULL,
	content            TEXT NOT NULL DEFAULT '',
	region             TEXT NOT NULL DEFAULT '',
	sub_region         TEXT NOT NULL DEFAULT '',
	image_url          TEXT NOT NULL DEFAULT '',
	match_date         DATE,
	game_time          TEXT NOT NULL DEFAULT '',
	category           TEXT NOT NULL,
	target_type        TEXT NOT NULL DEFAULT '',
	status             TEXT NOT NULL DEFAULT 'OPEN',
	required_personnel INTEGER,
	field_location     TEXT NOT NULL DEFAULT '',
	match_type         TEXT NOT NULL DEFAULT '',
	team_size          TEXT NOT NULL DEFAULT '',
	cost               INTEGER,
	match_id           INTEGER,
	created_at         DATETIME NOT NULL
);

CREATE TABLE recruit_applications (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id              INTEGER NOT NULL REFERENCES recruit_posts (id) ON DELETE CASCADE,
	applicant_profile_id INTEGER NOT NULL,
	applicant_team_id    INTEGER,
	description          TEXT NOT NULL DEFAULT '',
	status               TEXT NOT NULL DEFAULT 'PENDING',
	application_date     DATETIME NOT NULL
);

CREATE TABLE matches (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	match_date      DATE,
	match_time      TEXT NOT NULL DEFAULT '',
	venue           TEXT NOT NULL DEFAULT '',
	venue_id        INTEGER,
	venue_url       TEXT NOT NULL DEFAULT '',
	home_team_id    INTEGER NOT NULL,
	away_team_id    INTEGER NOT NULL,
	home_score      INTEGER,
	away_score      INTEGER,
	status          TEXT NOT NULL DEFAULT 'SCHEDULED',
	referee         TEXT NOT NULL DEFAULT '',
	weather         TEXT NOT NULL DEFAULT '',
	temperature     INTEGER,
	recruit_post_id INTEGER,
	created_at      DATETIME NOT NULL,
	updated_at      DATETIME
);

CREATE TABLE reports (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	report_type       TEXT NOT NULL DEFAULT '',
	target_type       TEXT NOT NULL DEFAULT '',
	target_id         INTEGER NOT NULL,
	reporter_id       INTEGER NOT NULL,
	reported_id       INTEGER NOT NULL,
	reason            TEXT NOT NULL DEFAULT '',
	category          TEXT NOT NULL DEFAULT '',
	description       TEXT NOT NULL DEFAULT '',
	severity          TEXT NOT NULL DEFAULT 'MEDIUM',
	status            TEXT NOT NULL DEFAULT 'PENDING',
	assigned_admin_id INTEGER,
	resolution        TEXT NOT NULL DEFAULT '',
	resolved_at       DATETIME,
	created_at        DATETIME NOT NULL,
	updated_at        DATETIME
);

CREATE TABLE profiles (
	id   INTEGER PRIMARY KEY,
	name TEXT
);

CREATE TABLE teams (
	id        INTEGER PRIMARY KEY,
	team_name TEXT
);
`

// NewDB returns a Postgres handle backed by a fresh in-memory sqlite database.
// The pool is capped at one connection so every statement sees the same database.
func NewDB(t *testing.T) *postgres.Postgres {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Postgres{
		Database:   db,
		SqlBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		RowLock:    false,
	}
}

func AddProfile(t *testing.T, p *postgres.Postgres, id int64, name string) {
	t.Helper()

	if _, err := p.Database.Exec("INSERT INTO profiles (id, name) VALUES (?, ?)", id, name); err != nil {
		t.Fatalf("failed to insert profile: %v", err)
	}
}

func AddTeam(t *testing.T, p *postgres.Postgres, id int64, name string) {
	t.Helper()

	if _, err := p.Database.Exec("INSERT INTO teams (id, team_name) VALUES (?, ?)", id, name); err != nil {
		t.Fatalf("failed to insert team: %v", err)
	}
}
