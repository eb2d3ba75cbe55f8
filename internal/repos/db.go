package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed species/items catalog if DB is empty
	if err := seedCatalog(db); err != nil {
		return nil, err
	}
	// Ensure demo users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  gears INTEGER NOT NULL DEFAULT 100 CHECK (gears >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(LOWER(username));
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email    ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Species catalog
CREATE TABLE IF NOT EXISTS species(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  element TEXT NOT NULL,
  sprite_path TEXT
);

-- Pets (one per owner)
CREATE TABLE IF NOT EXISTS pets(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  species_id TEXT NOT NULL REFERENCES species(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  energy      INTEGER NOT NULL DEFAULT 100 CHECK (energy      BETWEEN 0 AND 100),
  tension     INTEGER NOT NULL DEFAULT 100 CHECK (tension     BETWEEN 0 AND 100),
  maintenance INTEGER NOT NULL DEFAULT 100 CHECK (maintenance BETWEEN 0 AND 100),
  last_action_at INTEGER NOT NULL,   -- unix seconds of last care action
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Item catalog
CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  item_type TEXT NOT NULL CHECK (item_type IN ('cosmetic','food','toy','tool')),
  price INTEGER NOT NULL CHECK (price >= 0),
  description TEXT,
  sprite_path TEXT
);
CREATE INDEX IF NOT EXISTS idx_items_type ON items(item_type);

-- Player inventory
CREATE TABLE IF NOT EXISTS inventory(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  item_id  TEXT NOT NULL REFERENCES items(id) ON DELETE RESTRICT,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
  equipped INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(owner_id, item_id)
);
CREATE INDEX IF NOT EXISTS idx_inventory_owner ON inventory(owner_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedCatalog(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM species`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting species and shop items")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO species(id,name,element,sprite_path) VALUES
	  ('sp-ember','Emberling','fire','species/ember.png'),
	  ('sp-ripple','Ripplefin','water','species/ripple.png'),
	  ('sp-gale','Galewisp','air','species/gale.png'),
	  ('sp-boulder','Boulderpup','earth','species/boulder.png')`)

	tx.MustExec(`INSERT INTO items(id,name,item_type,price,description,sprite_path) VALUES
	  ('itm-biscuit','Cog Biscuit','food',10,'A crunchy snack for hungry familiars','items/biscuit.png'),
	  ('itm-oilcan','Oil Can','tool',15,'Keeps joints from squeaking','items/oilcan.png'),
	  ('itm-ball','Sprocket Ball','toy',20,'Bounces in unpredictable directions','items/ball.png'),
	  ('itm-wrench','Tiny Wrench','tool',30,'For precision maintenance work','items/wrench.png'),
	  ('itm-tophat','Brass Top Hat','cosmetic',50,'A dapper look for any element','items/tophat.png'),
	  ('itm-scarf','Copper Scarf','cosmetic',45,'Warm and conductive','items/scarf.png'),
	  ('itm-feast','Gearwork Feast','food',35,'A full meal with extra sprockets','items/feast.png'),
	  ('itm-kite','Steam Kite','toy',40,'Best flown on windy days','items/kite.png')`)

	return tx.Commit()
}

// seedUsers ensures a couple of demo players exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Username, Email, Hash string
		Gears                     int
	}
	mk := func(id, username, email string, gears int, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 10)
		return u{ID: id, Username: username, Email: email, Hash: string(h), Gears: gears}
	}

	users := []u{
		mk("u-tess", "tess", "tess@familiar.test", 100, "Passw0rd!"),
		mk("u-miro", "miro", "miro@familiar.test", 50, "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,username,email,password_hash,gears)
			VALUES(?,?,?,?,?)
			ON CONFLICT DO NOTHING
		`, x.ID, x.Username, x.Email, x.Hash, x.Gears); err != nil {
			return err
		}
	}

	return tx.Commit()
}
