// Copyright (c) 2025 the fcweb authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemainit

// ddlStatements create the film-clubs tables. Link tables carry
// composite primary keys so duplicated links surface as integrity
// violations, and rows which only make sense alongside their parent
// (memberships, credits, schedule links, ownerships, reservations,
// posts) cascade on the parent's deletion. Screenings keep their
// venue reference restrictive, so a venue cannot disappear while it
// is still scheduled.
var ddlStatements = []string{
	`CREATE TABLE IF NOT EXISTS department (
	did uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS member (
	mid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL UNIQUE,
	phone text NOT NULL DEFAULT '',
	instagram text NOT NULL DEFAULT '',
	facebook text NOT NULL DEFAULT '',
	is_superuser boolean NOT NULL DEFAULT FALSE,
	did uuid REFERENCES department (did) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS filmclub (
	fcid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL UNIQUE,
	email text NOT NULL DEFAULT '',
	instagram text NOT NULL DEFAULT '',
	facebook text NOT NULL DEFAULT '',
	is_active boolean NOT NULL DEFAULT TRUE,
	founding_date date NOT NULL DEFAULT CURRENT_DATE,
	did uuid REFERENCES department (did) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS belongs_to (
	mid uuid NOT NULL REFERENCES member (mid) ON DELETE CASCADE,
	fcid uuid NOT NULL REFERENCES filmclub (fcid) ON DELETE CASCADE,
	role_label text NOT NULL,
	is_active boolean NOT NULL DEFAULT TRUE,
	PRIMARY KEY (mid, fcid)
)`,
	`CREATE TABLE IF NOT EXISTS venue (
	vid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL,
	details text NOT NULL DEFAULT '',
	did uuid REFERENCES department (did) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS film (
	fid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	title text NOT NULL,
	release_year integer NOT NULL,
	tmdb_link text NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS director (
	drid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL,
	tmdb_link text NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS actor (
	aid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL,
	tmdb_link text NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS language (
	lid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS directed (
	fid uuid NOT NULL REFERENCES film (fid) ON DELETE CASCADE,
	drid uuid NOT NULL REFERENCES director (drid) ON DELETE CASCADE,
	PRIMARY KEY (fid, drid)
)`,
	`CREATE TABLE IF NOT EXISTS played_in (
	fid uuid NOT NULL REFERENCES film (fid) ON DELETE CASCADE,
	aid uuid NOT NULL REFERENCES actor (aid) ON DELETE CASCADE,
	character_name text NOT NULL DEFAULT '',
	PRIMARY KEY (fid, aid)
)`,
	`CREATE TABLE IF NOT EXISTS spoken_in (
	fid uuid NOT NULL REFERENCES film (fid) ON DELETE CASCADE,
	lid uuid NOT NULL REFERENCES language (lid) ON DELETE CASCADE,
	PRIMARY KEY (fid, lid)
)`,
	`CREATE TABLE IF NOT EXISTS screening (
	sid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	screened_at timestamptz NOT NULL,
	vid uuid NOT NULL REFERENCES venue (vid)
)`,
	`CREATE TABLE IF NOT EXISTS shows (
	sid uuid NOT NULL REFERENCES screening (sid) ON DELETE CASCADE,
	fid uuid NOT NULL REFERENCES film (fid),
	PRIMARY KEY (sid, fid),
	UNIQUE (sid)
)`,
	`CREATE TABLE IF NOT EXISTS schedules (
	fcid uuid NOT NULL REFERENCES filmclub (fcid) ON DELETE CASCADE,
	sid uuid NOT NULL REFERENCES screening (sid) ON DELETE CASCADE,
	PRIMARY KEY (fcid, sid)
)`,
	`CREATE TABLE IF NOT EXISTS post (
	pid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	sid uuid NOT NULL REFERENCES screening (sid) ON DELETE CASCADE,
	platform text NOT NULL,
	link text NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS equipment (
	eid uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL,
	is_private boolean NOT NULL DEFAULT FALSE
)`,
	`CREATE TABLE IF NOT EXISTS owns (
	fcid uuid NOT NULL REFERENCES filmclub (fcid) ON DELETE CASCADE,
	eid uuid NOT NULL REFERENCES equipment (eid) ON DELETE CASCADE,
	PRIMARY KEY (fcid, eid)
)`,
	`CREATE TABLE IF NOT EXISTS uses (
	sid uuid NOT NULL REFERENCES screening (sid) ON DELETE CASCADE,
	eid uuid NOT NULL REFERENCES equipment (eid) ON DELETE CASCADE,
	PRIMARY KEY (sid, eid)
)`,
}

// devSeedStatements fill the tables with sample records. Identifiers
// are fixed so that the rows can reference each other and so that
// integration tests can address well-known records.
var devSeedStatements = []string{
	`INSERT INTO department (did, name) VALUES
	('10000000-0000-4000-8000-000000000001', 'Computer Engineering'),
	('10000000-0000-4000-8000-000000000002', 'Fine Arts'),
	('10000000-0000-4000-8000-000000000003', 'Literature')`,
	`INSERT INTO member
	(mid, name, phone, instagram, is_superuser, did) VALUES
	('20000000-0000-4000-8000-000000000001', 'alex',
	 '', '', TRUE, NULL),
	('20000000-0000-4000-8000-000000000002', 'mina',
	 '+1-555-0101', 'mina.films', FALSE,
	 '10000000-0000-4000-8000-000000000001'),
	('20000000-0000-4000-8000-000000000003', 'sara',
	 '+1-555-0102', 'sara.watches', FALSE,
	 '10000000-0000-4000-8000-000000000002'),
	('20000000-0000-4000-8000-000000000004', 'omid',
	 '+1-555-0103', '', FALSE,
	 '10000000-0000-4000-8000-000000000001'),
	('20000000-0000-4000-8000-000000000005', 'lena',
	 '+1-555-0104', 'lena.reels', FALSE,
	 '10000000-0000-4000-8000-000000000003')`,
	`INSERT INTO filmclub
	(fcid, name, email, instagram, is_active, founding_date, did) VALUES
	('30000000-0000-4000-8000-000000000001', 'Cinema Paradiso Club',
	 'paradiso@example.edu', 'paradiso.club', TRUE, '2019-10-01',
	 '10000000-0000-4000-8000-000000000001'),
	('30000000-0000-4000-8000-000000000002', 'Nouvelle Vague Society',
	 'nouvelle@example.edu', 'nouvelle.vague', TRUE, '2021-02-14',
	 '10000000-0000-4000-8000-000000000002')`,
	`INSERT INTO belongs_to (mid, fcid, role_label, is_active) VALUES
	('20000000-0000-4000-8000-000000000002',
	 '30000000-0000-4000-8000-000000000001', 'President', TRUE),
	('20000000-0000-4000-8000-000000000003',
	 '30000000-0000-4000-8000-000000000001', 'Program Curator', TRUE),
	('20000000-0000-4000-8000-000000000004',
	 '30000000-0000-4000-8000-000000000001', 'Equipment Head', TRUE),
	('20000000-0000-4000-8000-000000000005',
	 '30000000-0000-4000-8000-000000000001', 'Member', TRUE),
	('20000000-0000-4000-8000-000000000003',
	 '30000000-0000-4000-8000-000000000002', 'Member', TRUE),
	('20000000-0000-4000-8000-000000000005',
	 '30000000-0000-4000-8000-000000000002', 'President', FALSE)`,
	`INSERT INTO venue (vid, name, details, did) VALUES
	('40000000-0000-4000-8000-000000000001', 'Main Auditorium',
	 'Building 2, 300 seats, DCP projector',
	 '10000000-0000-4000-8000-000000000001'),
	('40000000-0000-4000-8000-000000000002', 'Open-Air Courtyard',
	 'Summer screenings only', NULL)`,
	`INSERT INTO film (fid, title, release_year, tmdb_link) VALUES
	('50000000-0000-4000-8000-000000000001', 'Cinema Paradiso', 1988,
	 'https://www.themoviedb.org/movie/11216'),
	('50000000-0000-4000-8000-000000000002', 'Breathless', 1960,
	 'https://www.themoviedb.org/movie/269'),
	('50000000-0000-4000-8000-000000000003', 'Close-Up', 1990,
	 'https://www.themoviedb.org/movie/28978')`,
	`INSERT INTO director (drid, name, tmdb_link) VALUES
	('60000000-0000-4000-8000-000000000001', 'Giuseppe Tornatore',
	 'https://www.themoviedb.org/person/68279'),
	('60000000-0000-4000-8000-000000000002', 'Jean-Luc Godard',
	 'https://www.themoviedb.org/person/4429'),
	('60000000-0000-4000-8000-000000000003', 'Abbas Kiarostami',
	 'https://www.themoviedb.org/person/54767')`,
	`INSERT INTO actor (aid, name, tmdb_link) VALUES
	('70000000-0000-4000-8000-000000000001', 'Philippe Noiret',
	 'https://www.themoviedb.org/person/16927'),
	('70000000-0000-4000-8000-000000000002', 'Jean-Paul Belmondo',
	 'https://www.themoviedb.org/person/4959'),
	('70000000-0000-4000-8000-000000000003', 'Jean Seberg',
	 'https://www.themoviedb.org/person/14811')`,
	`INSERT INTO language (lid, name) VALUES
	('80000000-0000-4000-8000-000000000001', 'Italian'),
	('80000000-0000-4000-8000-000000000002', 'French'),
	('80000000-0000-4000-8000-000000000003', 'Persian'),
	('80000000-0000-4000-8000-000000000004', 'English')`,
	`INSERT INTO directed (fid, drid) VALUES
	('50000000-0000-4000-8000-000000000001',
	 '60000000-0000-4000-8000-000000000001'),
	('50000000-0000-4000-8000-000000000002',
	 '60000000-0000-4000-8000-000000000002'),
	('50000000-0000-4000-8000-000000000003',
	 '60000000-0000-4000-8000-000000000003')`,
	`INSERT INTO played_in (fid, aid, character_name) VALUES
	('50000000-0000-4000-8000-000000000001',
	 '70000000-0000-4000-8000-000000000001', 'Alfredo'),
	('50000000-0000-4000-8000-000000000002',
	 '70000000-0000-4000-8000-000000000002', 'Michel Poiccard'),
	('50000000-0000-4000-8000-000000000002',
	 '70000000-0000-4000-8000-000000000003', 'Patricia Franchini')`,
	`INSERT INTO spoken_in (fid, lid) VALUES
	('50000000-0000-4000-8000-000000000001',
	 '80000000-0000-4000-8000-000000000001'),
	('50000000-0000-4000-8000-000000000002',
	 '80000000-0000-4000-8000-000000000002'),
	('50000000-0000-4000-8000-000000000002',
	 '80000000-0000-4000-8000-000000000004'),
	('50000000-0000-4000-8000-000000000003',
	 '80000000-0000-4000-8000-000000000003')`,
	`INSERT INTO screening (sid, screened_at, vid) VALUES
	('90000000-0000-4000-8000-000000000001',
	 '2026-09-12T18:30:00Z', '40000000-0000-4000-8000-000000000001'),
	('90000000-0000-4000-8000-000000000002',
	 '2026-09-19T20:00:00Z', '40000000-0000-4000-8000-000000000002')`,
	`INSERT INTO shows (sid, fid) VALUES
	('90000000-0000-4000-8000-000000000001',
	 '50000000-0000-4000-8000-000000000001'),
	('90000000-0000-4000-8000-000000000002',
	 '50000000-0000-4000-8000-000000000002')`,
	`INSERT INTO schedules (fcid, sid) VALUES
	('30000000-0000-4000-8000-000000000001',
	 '90000000-0000-4000-8000-000000000001'),
	('30000000-0000-4000-8000-000000000002',
	 '90000000-0000-4000-8000-000000000002')`,
	`INSERT INTO post (pid, sid, platform, link) VALUES
	('a0000000-0000-4000-8000-000000000001',
	 '90000000-0000-4000-8000-000000000001', 'instagram',
	 'https://instagram.com/p/paradiso-opening')`,
	`INSERT INTO equipment (eid, name, is_private) VALUES
	('b0000000-0000-4000-8000-000000000001', '4K Projector', FALSE),
	('b0000000-0000-4000-8000-000000000002', 'Portable Screen', FALSE),
	('b0000000-0000-4000-8000-000000000003', 'Archive Hard Drive',
	 TRUE)`,
	`INSERT INTO owns (fcid, eid) VALUES
	('30000000-0000-4000-8000-000000000001',
	 'b0000000-0000-4000-8000-000000000001'),
	('30000000-0000-4000-8000-000000000001',
	 'b0000000-0000-4000-8000-000000000003'),
	('30000000-0000-4000-8000-000000000002',
	 'b0000000-0000-4000-8000-000000000001'),
	('30000000-0000-4000-8000-000000000002',
	 'b0000000-0000-4000-8000-000000000002')`,
	`INSERT INTO uses (sid, eid) VALUES
	('90000000-0000-4000-8000-000000000002',
	 'b0000000-0000-4000-8000-000000000002')`,
}

// prodSeedStatements only create the bootstrap superuser account.
// Everything else is entered through the administrative endpoints.
var prodSeedStatements = []string{
	`INSERT INTO member (name, is_superuser) VALUES ('admin', TRUE)`,
}
