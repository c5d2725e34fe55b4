//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, "Test User", TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCustomer(t *testing.T, db DBLike, firstName, lastName string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO customers (id, first_name, last_name, email, active)
		VALUES ($1, $2, $3, $4, true)`,
		customerID, firstName, lastName, strings.ToLower(firstName+"."+lastName+"@example.com"))
	require.NoError(t, err)

	return customerID
}

func CreateTestService(t *testing.T, db DBLike, name string, pricePence int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO services (id, name, price_pence, active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (name) DO NOTHING`,
		serviceID, name, pricePence)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM services WHERE name = $1", name).Scan(&serviceID)
	}

	return serviceID
}

func CreateTestDog(t *testing.T, db DBLike, customerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	dogID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO dogs (id, customer_id, name, active)
		VALUES ($1, $2, $3, true)`,
		dogID, customerID, name)
	require.NoError(t, err)

	return dogID
}

func CreateTestBooking(t *testing.T, db DBLike, customerID, dogID, serviceID uuid.UUID, date time.Time, timeOfDay string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, customer_id, dog_id, service_id, date, time_of_day)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bookingID, customerID, dogID, serviceID, date, timeOfDay)
	require.NoError(t, err)

	return bookingID
}

func CreateTestExpenseCategory(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO expense_categories (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`,
		categoryID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM expense_categories WHERE name = $1", name).Scan(&categoryID)
	}

	return categoryID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
