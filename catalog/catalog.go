// Package catalog indexes published documents into a sqlite database so
// elements can be queried across structures.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ddvk/ppl/element"
	"github.com/ddvk/ppl/ppl"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// Catalog is safe for concurrent use.
type Catalog struct {
	db *sql.DB
	mu sync.RWMutex
}

// Document is one indexed document.
type Document struct {
	Key              string
	SavedAt          time.Time
	User             string
	Workstation      string
	FormatVersion    int
	SelectedLoadCase int
	RootKind         element.Kind
	IndexedAt        time.Time
}

// Attribute is an element attribute as written to the document.
type Attribute struct {
	Name  string
	Type  string
	Value string
}

// Element is one indexed element. ParentID is uuid.Nil for the root.
type Element struct {
	ID          uuid.UUID
	ParentID    uuid.UUID
	Kind        element.Kind
	Position    int
	Depth       int
	Description string
	Attributes  []Attribute
}

// Open opens or creates the catalog at path. ":memory:" keeps it in memory.
func Open(path string) (*Catalog, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// ":memory:" databases are per connection
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	c := &Catalog{db: db}
	if err := c.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) initSchema() error {
	var lines []string
	for _, line := range strings.Split(schemaSQL, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "--") {
			lines = append(lines, line)
		}
	}
	if _, err := c.db.Exec(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	_, _ = c.db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion)
	return nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Index records doc under key, replacing whatever was indexed for key
// before.
func (c *Catalog) Index(ctx context.Context, key string, doc *ppl.Document) error {
	if doc.Root == nil {
		return ppl.ErrNoRoot
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}

	saved := doc.Saved.Date
	if saved.IsZero() {
		saved = time.Now()
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (key, saved_at, user, workstation, format_version, selected_load_case, root_kind, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, key, saved.UTC().Format(timeLayout), doc.Saved.User, doc.Saved.Workstation,
		doc.FormatVersion, doc.SelectedLoadCase, doc.Root.TypeTag(), time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert document %s: %w", key, err)
	}

	insElement, err := tx.PrepareContext(ctx, `
		INSERT INTO elements (document_key, seq, id, parent_id, kind, position, depth, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer insElement.Close()
	insAttr, err := tx.PrepareContext(ctx, `
		INSERT INTO attributes (document_key, element_id, ordinal, name, type, value)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer insAttr.Close()

	seq := 0
	err = element.Walk(doc.Root, func(e *element.Element, depth int) error {
		var parent sql.NullString
		position := 0
		if p := e.Parent(); p != nil && e != doc.Root {
			parent = sql.NullString{String: p.ID().String(), Valid: true}
			for i, sib := range p.Children() {
				if sib == e {
					position = i
					break
				}
			}
		}
		id := e.ID().String()
		if _, err := insElement.ExecContext(ctx, key, seq, id, parent, e.TypeTag(), position, depth, e.DescriptionOverride); err != nil {
			return fmt.Errorf("insert %s %s: %w", e.Kind(), id, err)
		}
		seq++
		for i, a := range e.Attributes() {
			if _, err := insAttr.ExecContext(ctx, key, id, i, a.DisplayName(), a.Type.String(), a.Text()); err != nil {
				return fmt.Errorf("insert %s.%s: %w", e.Kind(), a.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.WithField("key", key).Debugf("indexed %d elements", seq)
	return nil
}

// Remove drops key from the catalog and reports whether it was present.
func (c *Catalog) Remove(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Documents lists the indexed documents ordered by key.
func (c *Catalog) Documents(ctx context.Context) ([]Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, err := c.db.QueryContext(ctx, `
		SELECT key, saved_at, user, workstation, format_version, selected_load_case, root_kind, indexed_at
		FROM documents ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var saved, indexed, rootTag string
		var user, ws sql.NullString
		if err := rows.Scan(&d.Key, &saved, &user, &ws, &d.FormatVersion, &d.SelectedLoadCase, &rootTag, &indexed); err != nil {
			return nil, err
		}
		d.User, d.Workstation = user.String, ws.String
		if d.SavedAt, err = time.Parse(timeLayout, saved); err != nil {
			return nil, fmt.Errorf("document %s: %w", d.Key, err)
		}
		if d.IndexedAt, err = time.Parse(timeLayout, indexed); err != nil {
			return nil, fmt.Errorf("document %s: %w", d.Key, err)
		}
		if d.RootKind, err = element.KindFromTag(rootTag); err != nil {
			return nil, fmt.Errorf("document %s: %w", d.Key, err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Elements returns the elements of key in document order.
func (c *Catalog) Elements(ctx context.Context, key string) ([]Element, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, parent_id, kind, position, depth, description
		FROM elements WHERE document_key = ? ORDER BY seq
	`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Element
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var e Element
		var id, tag string
		var parent, desc sql.NullString
		if err := rows.Scan(&id, &parent, &tag, &e.Position, &e.Depth, &desc); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if parent.Valid {
			if e.ParentID, err = uuid.Parse(parent.String); err != nil {
				return nil, err
			}
		}
		if e.Kind, err = element.KindFromTag(tag); err != nil {
			return nil, err
		}
		e.Description = desc.String
		index[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}

	attrs, err := c.db.QueryContext(ctx, `
		SELECT element_id, name, type, value
		FROM attributes WHERE document_key = ? ORDER BY element_id, ordinal
	`, key)
	if err != nil {
		return nil, err
	}
	defer attrs.Close()
	for attrs.Next() {
		var id string
		var a Attribute
		if err := attrs.Scan(&id, &a.Name, &a.Type, &a.Value); err != nil {
			return nil, err
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		if i, ok := index[uid]; ok {
			out[i].Attributes = append(out[i].Attributes, a)
		}
	}
	return out, attrs.Err()
}

// CountByKind counts elements of every kind across all documents.
func (c *Catalog) CountByKind(ctx context.Context) (map[element.Kind]int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, err := c.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM elements GROUP BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[element.Kind]int)
	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, err
		}
		k, err := element.KindFromTag(tag)
		if err != nil {
			return nil, err
		}
		counts[k] = n
	}
	return counts, rows.Err()
}

// FindByAttribute returns the keys and ids of elements whose attribute
// name (display form) has the given value.
func (c *Catalog) FindByAttribute(ctx context.Context, name, value string) (map[string][]uuid.UUID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, err := c.db.QueryContext(ctx, `
		SELECT a.document_key, a.element_id
		FROM attributes a JOIN elements e ON e.document_key = a.document_key AND e.id = a.element_id
		WHERE a.name = ? AND a.value = ?
		ORDER BY a.document_key, e.seq
	`, name, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string][]uuid.UUID)
	for rows.Next() {
		var key, id string
		if err := rows.Scan(&key, &id); err != nil {
			return nil, err
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		found[key] = append(found[key], uid)
	}
	return found, rows.Err()
}
