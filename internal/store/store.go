package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rollashield/screenquote/internal/order"
)

// ErrNotFound is returned when no quote has the requested id.
var ErrNotFound = errors.New("quote not found")

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Customer is who the quote is addressed to.
type Customer struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SalesRep is who prepared the quote.
type SalesRep struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Quote is a stored order plus the totals computed when it was saved. Totals
// is nil while the order still has openings.
type Quote struct {
	ID               string        `json:"id"`
	QuoteNumber      string        `json:"quoteNumber"`
	Customer         Customer      `json:"customer"`
	SalesRep         SalesRep      `json:"salesRep"`
	InternalComments string        `json:"internalComments"`
	Order            order.Order   `json:"order"`
	Totals           *order.Totals `json:"totals"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// Summary is one row of a quote listing.
type Summary struct {
	ID           string    `json:"id"`
	QuoteNumber  string    `json:"quoteNumber"`
	CustomerName string    `json:"customerName"`
	CompanyName  string    `json:"companyName"`
	SalesRep     string    `json:"salesRep"`
	ScreenCount  int       `json:"screenCount"`
	TotalPrice   *float64  `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Store persists quotes as JSON snapshots.
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// New returns a Store over db. driver is the database/sql driver name used to
// open it ("sqlite" or "pgx").
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver, now: time.Now}
}

// Save creates or replaces q. A quote without an id is assigned one. Totals
// are recomputed from the order; an incomplete order is stored without them.
func (s *Store) Save(ctx context.Context, q *Quote) error {
	if strings.TrimSpace(q.ID) == "" {
		q.ID = uuid.NewString()
	} else if _, err := uuid.Parse(q.ID); err != nil {
		return fmt.Errorf("invalid quote id %q: %w", q.ID, err)
	}

	totals, err := order.Aggregate(q.Order)
	switch {
	case err == nil:
		q.Totals = &totals
	case errors.Is(err, order.ErrIncompleteOrder):
		q.Totals = nil
	default:
		return fmt.Errorf("aggregate quote order: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save quote transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC()
	var created string
	err = tx.QueryRowContext(ctx, s.rebind(`SELECT created_at FROM quotes WHERE id = ?`), q.ID).Scan(&created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		q.CreatedAt = now
	case err != nil:
		return fmt.Errorf("check quote existence: %w", err)
	default:
		if q.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return fmt.Errorf("parse quote created_at: %w", err)
		}
	}
	q.UpdatedAt = now

	payload, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}

	var total sql.NullFloat64
	if q.Totals != nil {
		total = sql.NullFloat64{Float64: q.Totals.OrderTotalPrice, Valid: true}
	}

	if _, err := tx.ExecContext(ctx, s.rebind(`
		INSERT INTO quotes (
			id, quote_number, customer_name, company_name, sales_rep,
			screen_count, total_price, quote_json, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			quote_number = excluded.quote_number,
			customer_name = excluded.customer_name,
			company_name = excluded.company_name,
			sales_rep = excluded.sales_rep,
			screen_count = excluded.screen_count,
			total_price = excluded.total_price,
			quote_json = excluded.quote_json,
			updated_at = excluded.updated_at
	`),
		q.ID,
		q.QuoteNumber,
		q.Customer.Name,
		q.Customer.Company,
		q.SalesRep.Name,
		len(q.Order.Entries),
		total,
		string(payload),
		q.CreatedAt.Format(timeLayout),
		q.UpdatedAt.Format(timeLayout),
	); err != nil {
		return fmt.Errorf("upsert quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save quote transaction: %w", err)
	}
	return nil
}

// Get returns the stored snapshot of quote id without recalculating it.
func (s *Store) Get(ctx context.Context, id string) (Quote, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT quote_json FROM quotes WHERE id = ?`), id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Quote{}, ErrNotFound
	}
	if err != nil {
		return Quote{}, fmt.Errorf("load quote %s: %w", id, err)
	}

	var q Quote
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return Quote{}, fmt.Errorf("decode quote %s: %w", id, err)
	}
	return q, nil
}

// List returns quotes newest first. A non-empty query matches the customer
// name, company or quote number, case-insensitively.
func (s *Store) List(ctx context.Context, query string) ([]Summary, error) {
	query = strings.TrimSpace(query)
	search := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT
			id,
			quote_number,
			customer_name,
			company_name,
			sales_rep,
			screen_count,
			total_price,
			created_at,
			updated_at
		FROM quotes
		WHERE (? = '' OR LOWER(customer_name) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(quote_number) LIKE ?)
		ORDER BY created_at DESC, id DESC
	`), query, search, search, search)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]Summary, 0)
	for rows.Next() {
		var (
			item             Summary
			total            sql.NullFloat64
			created, updated string
		)
		if err := rows.Scan(
			&item.ID,
			&item.QuoteNumber,
			&item.CustomerName,
			&item.CompanyName,
			&item.SalesRep,
			&item.ScreenCount,
			&total,
			&created,
			&updated,
		); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		if total.Valid {
			item.TotalPrice = &total.Float64
		}
		if item.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse quote created_at: %w", err)
		}
		if item.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, fmt.Errorf("parse quote updated_at: %w", err)
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote rows: %w", err)
	}

	return quotes, nil
}

// Delete removes quote id, returning ErrNotFound when nothing was removed.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM quotes WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// rebind rewrites ? placeholders to $n for the pgx driver.
func (s *Store) rebind(query string) string {
	if s.driver != "pgx" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
