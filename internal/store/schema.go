package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id                   TEXT PRIMARY KEY,
    type                 TEXT NOT NULL,
    name                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    amount               REAL NOT NULL,
    date                 TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    schedule_enabled     INTEGER NOT NULL DEFAULT 0,
    schedule_frequency   TEXT,
    schedule_interval    INTEGER,
    schedule_start       TEXT,
    source_template_id   TEXT
);

CREATE TABLE IF NOT EXISTS budgets (
    id                   TEXT PRIMARY KEY,
    category_id          TEXT NOT NULL,
    amount               REAL NOT NULL,
    type                 TEXT NOT NULL,
    period_type          TEXT NOT NULL,
    period_start         TEXT NOT NULL,
    period_end           TEXT NOT NULL,
    is_recurring         INTEGER NOT NULL DEFAULT 0,
    status               TEXT NOT NULL,
    account_id           TEXT,
    created_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
CREATE INDEX IF NOT EXISTS idx_transactions_template ON transactions(source_template_id, date);
CREATE INDEX IF NOT EXISTS idx_budgets_category ON budgets(category_id, status);
`
