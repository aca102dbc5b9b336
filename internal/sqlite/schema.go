package sqlite

// Schema DDL. SQLite is a query cache over transmissions.jsonl and is
// rebuilt on every Attach.
const (
	createTransmissions = `CREATE TABLE transmissions (
    transmission_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    type TEXT NOT NULL,
    info TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxTransmissionsType = `CREATE INDEX idx_transmissions_type ON transmissions(type);`
)

// schemaDDL lists the statements run on a fresh database, in order.
var schemaDDL = []string{
	createTransmissions,
	idxTransmissionsType,
}
