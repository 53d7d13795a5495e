package catalog

const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

-- One row per published document
CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    saved_at TEXT NOT NULL,
    user TEXT,
    workstation TEXT,
    format_version INTEGER NOT NULL,
    selected_load_case INTEGER NOT NULL DEFAULT 0,
    root_kind TEXT NOT NULL,
    indexed_at TEXT NOT NULL
);

-- Elements in pre-order; seq preserves document order
CREATE TABLE IF NOT EXISTS elements (
    document_key TEXT NOT NULL REFERENCES documents(key) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    id TEXT NOT NULL,
    parent_id TEXT,
    kind TEXT NOT NULL,
    position INTEGER NOT NULL,
    depth INTEGER NOT NULL,
    description TEXT,
    PRIMARY KEY (document_key, id)
);

CREATE INDEX IF NOT EXISTS idx_elements_kind ON elements(kind);
CREATE INDEX IF NOT EXISTS idx_elements_seq ON elements(document_key, seq);

CREATE TABLE IF NOT EXISTS attributes (
    document_key TEXT NOT NULL,
    element_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (document_key, element_id, ordinal),
    FOREIGN KEY (document_key, element_id) REFERENCES elements(document_key, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_attributes_name ON attributes(name, value);
`
