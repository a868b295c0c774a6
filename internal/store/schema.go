package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    category     TEXT NOT NULL,
    percentage   REAL NOT NULL DEFAULT 0,
    balance      REAL NOT NULL DEFAULT 0,
    active       INTEGER NOT NULL DEFAULT 1,
    updated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    amount       REAL NOT NULL DEFAULT 0,
    frequency    TEXT NOT NULL,
    due_date     TEXT NOT NULL,
    account_id   TEXT,
    active       INTEGER NOT NULL DEFAULT 1,
    status       TEXT NOT NULL DEFAULT 'current',
    category     TEXT,
    updated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS debts (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    balance         REAL NOT NULL DEFAULT 0,
    minimum_payment REAL NOT NULL DEFAULT 0,
    interest_rate   REAL NOT NULL DEFAULT 0,
    account_id      TEXT,
    due_date        TEXT NOT NULL,
    active          INTEGER NOT NULL DEFAULT 1,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    target_amount        REAL NOT NULL DEFAULT 0,
    current_amount       REAL NOT NULL DEFAULT 0,
    target_date          TEXT NOT NULL,
    monthly_contribution REAL NOT NULL DEFAULT 0,
    priority             INTEGER NOT NULL DEFAULT 3 CHECK (priority BETWEEN 1 AND 5),
    account_id           TEXT,
    active               INTEGER NOT NULL DEFAULT 1,
    updated_at           TEXT NOT NULL
);

-- Single-row table; id is always 1.
CREATE TABLE IF NOT EXISTS settings (
    id                INTEGER PRIMARY KEY CHECK (id = 1),
    paycheck_amount   REAL NOT NULL DEFAULT 0,
    pay_frequency     TEXT NOT NULL DEFAULT 'bi-weekly',
    tithing_enabled   INTEGER NOT NULL DEFAULT 0,
    tithing_percent   REAL NOT NULL DEFAULT 10,
    emergency_percent REAL NOT NULL DEFAULT 0,
    updated_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pay_dates (
    pay_date TEXT PRIMARY KEY
);

CREATE INDEX IF NOT EXISTS idx_bills_account ON bills(account_id);
CREATE INDEX IF NOT EXISTS idx_debts_account ON debts(account_id);
`
