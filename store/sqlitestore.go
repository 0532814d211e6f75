package store

import (
	"database/sql"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fatih/structs"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/wristlab/timeline/item"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// itemRow is the flat row shape persisted for one timeline item. Times are
// kept as nanoseconds since the epoch so the timestamp ordering is a plain
// integer sort.
type itemRow struct {
	ID         string
	ParentID   string
	Type       int
	Timestamp  int64
	Duration   int64
	AllDay     bool
	Persistent bool
	Dismissed  bool
	Attributes string
}

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	*sql.DB

	lock     sync.RWMutex
	dbName   string
	observer Observer
}

// NewSQLiteStore creates a SQLiteStore at path (without the .sqlite3
// suffix). An empty path picks a generated unique name. Setup failures are
// unrecoverable and panic.
func NewSQLiteStore(path string) *SQLiteStore {
	s := &SQLiteStore{dbName: path}
	s.init()

	atexit.Register(func() { s.Close() })

	return s
}

func (s *SQLiteStore) init() {
	if s.dbName == "" {
		s.dbName = "timeline_items_" + xid.New().String()
	}

	filename := s.dbName + ".sqlite3"

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	s.DB = db

	s.createTable()
}

func (s *SQLiteStore) createTable() {
	names := structs.Names(itemRow{})
	names[0] += " PRIMARY KEY"
	fields := strings.Join(names, ", \n\t")

	createTableSQL := `CREATE TABLE IF NOT EXISTS items (` +
		"\n\t" + fields + "\n" + `);`
	s.mustExecute(createTableSQL)
}

// SetObserver registers the mutation observer.
func (s *SQLiteStore) SetObserver(o Observer) {
	s.lock.Lock()
	s.observer = o
	s.lock.Unlock()
}

// Put inserts or replaces an item. Items without an ID are assigned a
// generated one.
func (s *SQLiteStore) Put(it item.Item) {
	if it.ID == item.IDNone {
		it.ID = item.GetIDGenerator().Generate()
	}

	row := toRow(it)

	names := structs.Names(row)
	marks := make([]string, len(names))
	for i := range marks {
		marks[i] = "?"
	}

	sqlStr := "INSERT OR REPLACE INTO items VALUES (" +
		strings.Join(marks, ", ") + ")"

	s.lock.Lock()
	_, err := s.Exec(sqlStr,
		row.ID, row.ParentID, row.Type,
		row.Timestamp, row.Duration,
		row.AllDay, row.Persistent, row.Dismissed,
		row.Attributes,
	)
	s.lock.Unlock()

	if err != nil {
		panic(err)
	}

	s.notify()
}

// Remove deletes an item by ID.
func (s *SQLiteStore) Remove(id item.ID) {
	s.lock.Lock()
	res, err := s.Exec("DELETE FROM items WHERE ID = ?", string(id))
	s.lock.Unlock()

	if err != nil {
		panic(err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		s.notify()
	}
}

// MarkDismissed flags an item as dismissed by the user.
func (s *SQLiteStore) MarkDismissed(id item.ID) {
	s.lock.Lock()
	res, err := s.Exec(
		"UPDATE items SET Dismissed = 1 WHERE ID = ? AND Dismissed = 0",
		string(id))
	s.lock.Unlock()

	if err != nil {
		panic(err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		s.notify()
	}
}

// NextHeader scans all headers in timestamp order and returns the earliest
// one accepted by f. Scan failures are reported as StatusError, not
// propagated; the caller runs a degraded pass and retries later.
func (s *SQLiteStore) NextHeader(f item.Filter) (item.Header, Status) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	rows, err := s.Query(
		"SELECT * FROM items ORDER BY Timestamp, ID")
	if err != nil {
		log.Printf("timeline store: header scan failed: %v", err)
		return item.Header{}, StatusError
	}
	defer rows.Close()

	var winner item.Header
	found := false

	for rows.Next() {
		var row itemRow
		err := rows.Scan(
			&row.ID, &row.ParentID, &row.Type,
			&row.Timestamp, &row.Duration,
			&row.AllDay, &row.Persistent, &row.Dismissed,
			&row.Attributes,
		)
		if err != nil {
			log.Printf("timeline store: header scan failed: %v", err)
			return item.Header{}, StatusError
		}

		h := row.toHeader()
		if f(h) && !found {
			winner = h
			found = true
		}
	}

	if err := rows.Err(); err != nil {
		log.Printf("timeline store: header scan failed: %v", err)
		return item.Header{}, StatusError
	}

	if !found {
		return item.Header{}, StatusNoMoreItems
	}

	return winner, StatusSuccess
}

// Item materializes the full item for an ID.
func (s *SQLiteStore) Item(id item.ID) (item.Item, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var row itemRow
	err := s.QueryRow("SELECT * FROM items WHERE ID = ?", string(id)).Scan(
		&row.ID, &row.ParentID, &row.Type,
		&row.Timestamp, &row.Duration,
		&row.AllDay, &row.Persistent, &row.Dismissed,
		&row.Attributes,
	)
	if err == sql.ErrNoRows {
		return item.Item{}, ErrItemNotFound
	}
	if err != nil {
		return item.Item{}, err
	}

	return row.toItem()
}

func (s *SQLiteStore) mustExecute(query string) sql.Result {
	res, err := s.Exec(query)
	if err != nil {
		log.Printf("failed to execute: %s", query)
		panic(err)
	}

	return res
}

func (s *SQLiteStore) notify() {
	s.lock.RLock()
	o := s.observer
	s.lock.RUnlock()

	if o != nil {
		o.NotifyChange()
	}
}

func toRow(it item.Item) itemRow {
	attrs := "{}"
	if len(it.Attributes) > 0 {
		b, err := json.Marshal(it.Attributes)
		if err != nil {
			panic(err)
		}
		attrs = string(b)
	}

	return itemRow{
		ID:         string(it.ID),
		ParentID:   string(it.ParentID),
		Type:       int(it.Type),
		Timestamp:  it.Timestamp.UnixNano(),
		Duration:   int64(it.Duration),
		AllDay:     it.AllDay,
		Persistent: it.Persistent,
		Dismissed:  it.Dismissed,
		Attributes: attrs,
	}
}

func (r itemRow) toHeader() item.Header {
	return item.Header{
		ID:         item.ID(r.ID),
		ParentID:   item.ID(r.ParentID),
		Type:       item.Type(r.Type),
		Timestamp:  time.Unix(0, r.Timestamp).UTC(),
		Duration:   time.Duration(r.Duration),
		AllDay:     r.AllDay,
		Persistent: r.Persistent,
		Dismissed:  r.Dismissed,
	}
}

func (r itemRow) toItem() (item.Item, error) {
	it := item.Item{Header: r.toHeader()}

	if r.Attributes != "" {
		err := json.Unmarshal([]byte(r.Attributes), &it.Attributes)
		if err != nil {
			return item.Item{}, err
		}
	}

	return it, nil
}
