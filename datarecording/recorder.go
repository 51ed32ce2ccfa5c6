// Package datarecording stores the translations and the summary of a
// simulation run in a SQLite database.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// A TranslationRecord is one row of the translation trace table.
type TranslationRecord struct {
	Seq             int64
	VirtualAddress  int64
	PhysicalAddress int64
	Value           int64
	Outcome         string
}

// A SummaryRecord is the single row of the run summary table.
type SummaryRecord struct {
	Policy         string
	TotalAddresses int64
	TLBHits        int64
	PageFaults     int64
	TLBHitRate     float64
	PageFaultRate  float64
}

// A Recorder is a backend that can record the outcome of a run.
type Recorder interface {
	// RecordTranslation buffers one translation trace row.
	RecordTranslation(rec TranslationRecord)

	// RecordSummary buffers the end-of-run summary row.
	RecordSummary(rec SummaryRecord)

	// Flush writes all the buffered rows into the database.
	Flush()
}

// New creates a Recorder writing to path + ".sqlite3". When path is empty a
// unique name is generated.
func New(path string) Recorder {
	r := &SQLiteRecorder{
		dbName:    path,
		batchSize: 100000,
	}

	r.init()

	atexit.Register(func() { r.Flush() })

	return r
}

type table struct {
	name       string
	structType reflect.Type
	entries    []any
}

// SQLiteRecorder buffers rows and writes them into SQLite in batches.
type SQLiteRecorder struct {
	*sql.DB

	dbName       string
	batchSize    int
	entryCount   int
	translations *table
	summary      *table
}

func (r *SQLiteRecorder) init() {
	if r.dbName == "" {
		r.dbName = "vmsim_run_" + xid.New().String()
	}

	filename := r.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r.DB = db

	r.translations = r.createTable("translations", TranslationRecord{})
	r.summary = r.createTable("summary", SummaryRecord{})
}

func (r *SQLiteRecorder) createTable(name string, sampleEntry any) *table {
	fields := strings.Join(structs.Names(sampleEntry), ", \n\t")

	createTableSQL := `CREATE TABLE ` + name +
		` (` + "\n\t" + fields + "\n" + `);`
	r.mustExecute(createTableSQL)

	return &table{
		name:       name,
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

func (r *SQLiteRecorder) RecordTranslation(rec TranslationRecord) {
	r.insert(r.translations, rec)
}

func (r *SQLiteRecorder) RecordSummary(rec SummaryRecord) {
	r.insert(r.summary, rec)
}

func (r *SQLiteRecorder) insert(t *table, entry any) {
	t.entries = append(t.entries, entry)

	r.entryCount++
	if r.entryCount >= r.batchSize {
		r.Flush()
	}
}

func (r *SQLiteRecorder) Flush() {
	if r.entryCount == 0 {
		return
	}

	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	r.flushTable(r.translations)
	r.flushTable(r.summary)

	r.entryCount = 0
}

func (r *SQLiteRecorder) flushTable(t *table) {
	if len(t.entries) == 0 {
		return
	}

	stmt := r.prepareStatement(t)

	for _, entry := range t.entries {
		v := []any{}

		value := reflect.ValueOf(entry)
		for i := 0; i < value.NumField(); i++ {
			v = append(v, value.Field(i).Interface())
		}

		_, err := stmt.Exec(v...)
		if err != nil {
			panic(err)
		}
	}

	t.entries = nil

	stmt.Close()
}

func (r *SQLiteRecorder) prepareStatement(t *table) *sql.Stmt {
	n := structs.Names(reflect.New(t.structType).Elem().Interface())
	for i := range n {
		n[i] = "?"
	}

	sqlStr := "INSERT INTO " + t.name +
		" VALUES (" + strings.Join(n, ", ") + ")"

	stmt, err := r.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (r *SQLiteRecorder) mustExecute(query string) sql.Result {
	res, err := r.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
