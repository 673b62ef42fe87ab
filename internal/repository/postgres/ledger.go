package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cipherledger-server/internal/model"
)

// ledgerLockKey identifies the transaction-scoped advisory lock that
// serializes ledger updates across connections and server instances.
const ledgerLockKey int64 = 0x4c454447455231

var _ model.LedgerStore = (*LedgerRepository)(nil)

type LedgerRepository struct {
	db  *Connection
	now func() time.Time
}

// NewLedgerRepository creates the postgres ledger store. now decides request
// expiry on reads; nil means time.Now.
func NewLedgerRepository(db *Connection, now func() time.Time) *LedgerRepository {
	if now == nil {
		now = time.Now
	}
	return &LedgerRepository{db: db, now: now}
}

// Update runs fn in a transaction holding the ledger advisory lock.
func (r *LedgerRepository) Update(ctx context.Context, fn func(tx model.LedgerTx) error) error {
	return pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockKey); err != nil {
			return fmt.Errorf("failed to acquire ledger lock: %w", err)
		}
		return fn(&ledgerTx{ledgerReader: ledgerReader{q: tx, now: r.now}})
	})
}

// View runs fn in a read-only snapshot.
func (r *LedgerRepository) View(ctx context.Context, fn func(r model.LedgerReader) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	return pgx.BeginTxFunc(ctx, r.db, opts, func(tx pgx.Tx) error {
		return fn(&ledgerReader{q: tx, now: r.now})
	})
}

func (r *LedgerRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var purged int64
	for _, query := range []string{
		`DELETE FROM deposit_requests WHERE expires_at <= $1`,
		`DELETE FROM transfer_requests WHERE expires_at <= $1`,
	} {
		tag, err := r.db.Exec(ctx, query, now)
		if err != nil {
			return purged, fmt.Errorf("failed to purge expired requests: %w", err)
		}
		purged += tag.RowsAffected()
	}
	return purged, nil
}

type ledgerReader struct {
	q   querier
	now func() time.Time
}

func (r *ledgerReader) Config(ctx context.Context) (model.LedgerConfig, error) {
	const query = `
        SELECT authority, custody_asset, custody_account, initialized_at
        FROM ledger_config WHERE id = 1
    `
	var (
		cfg       model.LedgerConfig
		authority string
	)
	err := r.q.QueryRow(ctx, query).Scan(&authority, &cfg.CustodyAsset, &cfg.CustodyAccount, &cfg.InitializedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LedgerConfig{}, model.ErrNotFound
		}
		return model.LedgerConfig{}, fmt.Errorf("failed to get ledger config: %w", err)
	}
	cfg.Authority = model.Address(authority)
	return cfg, nil
}

func (r *ledgerReader) Supply(ctx context.Context) (*uint256.Int, error) {
	var dec string
	if err := r.q.QueryRow(ctx, `SELECT supply::text FROM ledger_state WHERE id = 1`).Scan(&dec); err != nil {
		return nil, fmt.Errorf("failed to get supply: %w", err)
	}
	supply, err := uint256.FromDecimal(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode supply %q: %w", dec, err)
	}
	return supply, nil
}

func (r *ledgerReader) Sequence(ctx context.Context) (uint64, error) {
	var seq int64
	if err := r.q.QueryRow(ctx, `SELECT sequence FROM ledger_state WHERE id = 1`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	}
	return uint64(seq), nil
}

func (r *ledgerReader) UserIndex(ctx context.Context, user model.Address) ([]byte, error) {
	var index []byte
	err := r.q.QueryRow(ctx, `SELECT encrypted_index FROM user_indexes WHERE address = $1`, string(user)).Scan(&index)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user index: %w", err)
	}
	return index, nil
}

func (r *ledgerReader) Balance(ctx context.Context, index model.AccountIndex) (model.EncryptedBalance, error) {
	const query = `
        SELECT encrypted_amount, encrypted_key_user, encrypted_key_server, updated_at
        FROM balances WHERE account_index = $1
    `
	var b model.EncryptedBalance
	err := r.q.QueryRow(ctx, query, index.Bytes()).Scan(
		&b.EncryptedAmount, &b.EncryptedKeyUser, &b.EncryptedKeyServer, &b.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.EncryptedBalance{}, model.ErrNotFound
		}
		return model.EncryptedBalance{}, fmt.Errorf("failed to get balance: %w", err)
	}
	b.Exists = true
	return b, nil
}

func (r *ledgerReader) DepositRequest(ctx context.Context, requestID model.Hash) (model.DepositRequest, error) {
	const query = `
        SELECT address, amount, requested_at, ledger, encrypted_index
        FROM deposit_requests WHERE request_id = $1 AND expires_at > $2
    `
	var (
		req     = model.DepositRequest{RequestID: requestID, Exists: true}
		address string
		ledger  int64
	)
	err := r.q.QueryRow(ctx, query, requestID.Bytes(), r.now()).Scan(
		&address, &req.Amount, &req.Timestamp, &ledger, &req.EncryptedIndex,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DepositRequest{}, model.ErrNotFound
		}
		return model.DepositRequest{}, fmt.Errorf("failed to get deposit request: %w", err)
	}
	req.User = model.Address(address)
	req.Ledger = uint64(ledger)
	return req, nil
}

func (r *ledgerReader) DepositCompleted(ctx context.Context, requestID model.Hash) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM deposit_completions WHERE request_id = $1)`, requestID)
}

func (r *ledgerReader) TransferRequest(ctx context.Context, transferID model.Hash) (model.TransferRequest, error) {
	const query = `
        SELECT sender, encrypted_receiver_index, encrypted_amount, requested_at, ledger
        FROM transfer_requests WHERE transfer_id = $1 AND expires_at > $2
    `
	var (
		req    = model.TransferRequest{TransferID: transferID, Exists: true}
		sender string
		ledger int64
	)
	err := r.q.QueryRow(ctx, query, transferID.Bytes(), r.now()).Scan(
		&sender, &req.EncryptedReceiverIndex, &req.EncryptedAmount, &req.Timestamp, &ledger,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TransferRequest{}, model.ErrNotFound
		}
		return model.TransferRequest{}, fmt.Errorf("failed to get transfer request: %w", err)
	}
	req.Sender = model.Address(sender)
	req.Ledger = uint64(ledger)
	return req, nil
}

func (r *ledgerReader) TransferCompleted(ctx context.Context, transferID model.Hash) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM transfer_completions WHERE transfer_id = $1)`, transferID)
}

func (r *ledgerReader) exists(ctx context.Context, query string, id model.Hash) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, id.Bytes()).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check completion of %s: %w", id, err)
	}
	return ok, nil
}

func (r *ledgerReader) Events(ctx context.Context, afterID uint64, limit int) ([]model.Event, error) {
	query := `
        SELECT id, ledger, kind, payload, created_at
        FROM ledger_events WHERE id > $1 ORDER BY id
    `
	args := []any{int64(afterID)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			e       model.Event
			id      int64
			ledger  int64
			kind    string
			payload []byte
		)
		if err := rows.Scan(&id, &ledger, &kind, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.ID = uint64(id)
		e.Ledger = uint64(ledger)
		e.Kind = model.EventKind(kind)
		e.Payload = payload
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

type ledgerTx struct {
	ledgerReader
}

func (t *ledgerTx) InitConfig(ctx context.Context, cfg model.LedgerConfig) error {
	const query = `
        INSERT INTO ledger_config (id, authority, custody_asset, custody_account, initialized_at)
        VALUES (1, $1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `
	tag, err := t.q.Exec(ctx, query, string(cfg.Authority), cfg.CustodyAsset, cfg.CustodyAccount, cfg.InitializedAt)
	if err != nil {
		return fmt.Errorf("failed to write ledger config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAlreadyInitialized
	}
	return t.SetSupply(ctx, model.ZeroSupply())
}

func (t *ledgerTx) NextSequence(ctx context.Context) (uint64, error) {
	var seq int64
	err := t.q.QueryRow(ctx, `UPDATE ledger_state SET sequence = sequence + 1 WHERE id = 1 RETURNING sequence`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence: %w", err)
	}
	return uint64(seq), nil
}

func (t *ledgerTx) SetSupply(ctx context.Context, supply *uint256.Int) error {
	if _, err := t.q.Exec(ctx, `UPDATE ledger_state SET supply = $1::numeric WHERE id = 1`, supply.Dec()); err != nil {
		return fmt.Errorf("failed to set supply: %w", err)
	}
	return nil
}

func (t *ledgerTx) SetUserIndex(ctx context.Context, user model.Address, index []byte) error {
	const query = `
        INSERT INTO user_indexes (address, encrypted_index) VALUES ($1, $2)
        ON CONFLICT (address) DO UPDATE SET encrypted_index = EXCLUDED.encrypted_index
    `
	if _, err := t.q.Exec(ctx, query, string(user), nonNil(index)); err != nil {
		return fmt.Errorf("failed to set user index: %w", err)
	}
	return nil
}

func (t *ledgerTx) PutBalance(ctx context.Context, index model.AccountIndex, balance model.EncryptedBalance) error {
	const query = `
        INSERT INTO balances (account_index, encrypted_amount, encrypted_key_user, encrypted_key_server, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (account_index) DO UPDATE SET
            encrypted_amount = EXCLUDED.encrypted_amount,
            encrypted_key_user = EXCLUDED.encrypted_key_user,
            encrypted_key_server = EXCLUDED.encrypted_key_server,
            updated_at = EXCLUDED.updated_at
    `
	_, err := t.q.Exec(ctx, query, index.Bytes(),
		nonNil(balance.EncryptedAmount), nonNil(balance.EncryptedKeyUser), nonNil(balance.EncryptedKeyServer),
		balance.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to put balance: %w", err)
	}
	return nil
}

func (t *ledgerTx) PutDepositRequest(ctx context.Context, req model.DepositRequest, expiresAt time.Time) error {
	const query = `
        INSERT INTO deposit_requests (request_id, address, amount, requested_at, ledger, encrypted_index, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (request_id) DO UPDATE SET
            address = EXCLUDED.address,
            amount = EXCLUDED.amount,
            requested_at = EXCLUDED.requested_at,
            ledger = EXCLUDED.ledger,
            encrypted_index = EXCLUDED.encrypted_index,
            expires_at = EXCLUDED.expires_at
    `
	_, err := t.q.Exec(ctx, query, req.RequestID.Bytes(), string(req.User), req.Amount,
		req.Timestamp, int64(req.Ledger), nonNil(req.EncryptedIndex), expiresAt)
	if err != nil {
		return fmt.Errorf("failed to put deposit request: %w", err)
	}
	return nil
}

func (t *ledgerTx) MarkDepositCompleted(ctx context.Context, requestID model.Hash, ledger uint64) error {
	const query = `
        INSERT INTO deposit_completions (request_id, ledger) VALUES ($1, $2)
        ON CONFLICT (request_id) DO NOTHING
    `
	if _, err := t.q.Exec(ctx, query, requestID.Bytes(), int64(ledger)); err != nil {
		return fmt.Errorf("failed to mark deposit completed: %w", err)
	}
	return nil
}

func (t *ledgerTx) PutTransferRequest(ctx context.Context, req model.TransferRequest, expiresAt time.Time) error {
	const query = `
        INSERT INTO transfer_requests (transfer_id, sender, encrypted_receiver_index, encrypted_amount, requested_at, ledger, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (transfer_id) DO UPDATE SET
            sender = EXCLUDED.sender,
            encrypted_receiver_index = EXCLUDED.encrypted_receiver_index,
            encrypted_amount = EXCLUDED.encrypted_amount,
            requested_at = EXCLUDED.requested_at,
            ledger = EXCLUDED.ledger,
            expires_at = EXCLUDED.expires_at
    `
	_, err := t.q.Exec(ctx, query, req.TransferID.Bytes(), string(req.Sender),
		nonNil(req.EncryptedReceiverIndex), nonNil(req.EncryptedAmount),
		req.Timestamp, int64(req.Ledger), expiresAt)
	if err != nil {
		return fmt.Errorf("failed to put transfer request: %w", err)
	}
	return nil
}

func (t *ledgerTx) MarkTransferCompleted(ctx context.Context, transferID model.Hash, ledger uint64) error {
	const query = `
        INSERT INTO transfer_completions (transfer_id, ledger) VALUES ($1, $2)
        ON CONFLICT (transfer_id) DO NOTHING
    `
	if _, err := t.q.Exec(ctx, query, transferID.Bytes(), int64(ledger)); err != nil {
		return fmt.Errorf("failed to mark transfer completed: %w", err)
	}
	return nil
}

func (t *ledgerTx) AppendEvent(ctx context.Context, event model.Event) (model.Event, error) {
	const query = `
        INSERT INTO ledger_events (ledger, kind, payload, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	var id int64
	err := t.q.QueryRow(ctx, query, int64(event.Ledger), string(event.Kind), []byte(event.Payload), event.CreatedAt).Scan(&id)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to append %s event: %w", event.Kind, err)
	}
	event.ID = uint64(id)
	return event, nil
}

// nonNil maps nil to an empty slice; pgx encodes a nil slice as NULL.
func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
