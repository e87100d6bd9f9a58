package app

import (
	_ "github.com/mattn/go-sqlite3"

	"database/sql"
	"log"

	// use deadlock detector mutexes here since deadlocks in database operations
	// will be common
	sync "github.com/sasha-s/go-deadlock"
)

const DbDebug bool = false

var db *Database

type Database struct {
	db *sql.DB
	mu sync.Mutex
}

func checkErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Opens (or creates) the sqlite database at path and ensures the schema.
func InitDB(path string) error {
	sdb, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	// all access is serialized by Database.mu anyway
	sdb.SetMaxOpenConns(1)
	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return err
	}
	if db != nil {
		db.db.Close()
	}
	db = &Database{db: sdb}

	db.Exec(`CREATE TABLE IF NOT EXISTS nets (
		id TEXT PRIMARY KEY,
		name TEXT,
		-- e.g. 'mask_rcnn'
		arch TEXT,
		-- JSON-encoded resnet.Config
		params TEXT,
		hash TEXT,
		train TEXT,
		deploy TEXT,
		created TIMESTAMP
	)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS nets_hash ON nets (hash)`)
	log.Printf("[db] opened %s", path)
	return nil
}

func (this *Database) Query(q string, args ...interface{}) *Rows {
	this.mu.Lock()
	if DbDebug {
		log.Printf("[db] Query: %v", q)
	}
	rows, err := this.db.Query(q, args...)
	if err != nil {
		this.mu.Unlock()
		panic(err)
	}
	return &Rows{this, true, rows}
}

func (this *Database) QueryRow(q string, args ...interface{}) *Row {
	this.mu.Lock()
	if DbDebug {
		log.Printf("[db] QueryRow: %v", q)
	}
	row := this.db.QueryRow(q, args...)
	return &Row{this, true, row}
}

func (this *Database) Exec(q string, args ...interface{}) Result {
	this.mu.Lock()
	defer this.mu.Unlock()
	if DbDebug {
		log.Printf("[db] Exec: %v", q)
	}
	result, err := this.db.Exec(q, args...)
	checkErr(err)
	return Result{result}
}

func (this *Database) Transaction(f func(tx Tx)) {
	this.mu.Lock()
	defer this.mu.Unlock()
	sqlTx, err := this.db.Begin()
	checkErr(err)
	committed := false
	defer func() {
		if !committed {
			sqlTx.Rollback()
		}
	}()
	f(Tx{this, sqlTx})
	checkErr(sqlTx.Commit())
	committed = true
}

type Rows struct {
	db     *Database
	locked bool
	rows   *sql.Rows
}

func (r *Rows) Close() {
	err := r.rows.Close()
	if r.locked {
		r.db.mu.Unlock()
		r.locked = false
	}
	checkErr(err)
}

func (r *Rows) Next() bool {
	hasNext := r.rows.Next()
	if !hasNext && r.locked {
		r.rows.Close()
		r.db.mu.Unlock()
		r.locked = false
	}
	return hasNext
}

func (r *Rows) Scan(dest ...interface{}) {
	err := r.rows.Scan(dest...)
	checkErr(err)
}

type Row struct {
	db     *Database
	locked bool
	row    *sql.Row
}

// Scans the row. Returns false if there was no row.
func (r *Row) Scan(dest ...interface{}) bool {
	err := r.row.Scan(dest...)
	if r.locked {
		r.db.mu.Unlock()
		r.locked = false
	}
	if err == sql.ErrNoRows {
		return false
	}
	checkErr(err)
	return true
}

type Result struct {
	result sql.Result
}

func (r Result) RowsAffected() int {
	count, err := r.result.RowsAffected()
	checkErr(err)
	return int(count)
}

type Tx struct {
	db *Database
	tx *sql.Tx
}

func (tx Tx) QueryRow(q string, args ...interface{}) *Row {
	row := tx.tx.QueryRow(q, args...)
	return &Row{tx.db, false, row}
}

func (tx Tx) Exec(q string, args ...interface{}) Result {
	result, err := tx.tx.Exec(q, args...)
	checkErr(err)
	return Result{result}
}
