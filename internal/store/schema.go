package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id        TEXT PRIMARY KEY,
    name      TEXT NOT NULL,
    amount    REAL NOT NULL,
    category  TEXT NOT NULL,
    note      TEXT NOT NULL DEFAULT '',
    position  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key       TEXT PRIMARY KEY,
    value     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_position ON expenses(position);
`

// settings keys
const (
	keySalary   = "salary"
	keyRule     = "budget_rule"
	keyVisitors = "visitors"
)
