package ledger

const Schema = `
CREATE TABLE IF NOT EXISTS positions (
	id TEXT PRIMARY KEY,
	instrument TEXT NOT NULL,
	entry_price REAL NOT NULL,
	quantity REAL NOT NULL,
	leverage REAL NOT NULL,
	own_capital REAL NOT NULL,
	swap REAL NOT NULL,
	date_added DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS balance_history (
	time DATETIME NOT NULL,
	balance REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_balance_history_time ON balance_history(time);
`
