package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/TeuSpnl/comisys/infrastructure/database/postgres"
	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/lib/pq"
)

const salesTable = "sales"

type SaleRepository interface {
	Reconcile(ctx context.Context, records []domain.ResolvedRecord, window []domain.MonthWindow) (*domain.ReconciliationPlan, error)
	ListByUserAndPeriod(userID int, year int, month time.Month) ([]*domain.Sale, error)
	TotalByUserAndPeriod(userID int, year int, month time.Month) (float64, error)
	TotalByBranchAndPeriod(branch string, year int, month time.Month) (float64, error)
	TotalByCompanyAndPeriod(year int, month time.Month) (float64, error)
	DeleteByID(saleID int64) error
	DeleteByUser(userID int) error
	SweepDuplicateOrders(ctx context.Context) (int64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// Reconcile aplica uma passada de conciliação como unidade atômica: carrega
// com lock as vendas afetadas, calcula o plano de substituição da janela e o
// executa na mesma transação. Qualquer falha desfaz a passada inteira.
func (r *saleRepository) Reconcile(
	ctx context.Context,
	records []domain.ResolvedRecord,
	window []domain.MonthWindow,
) (*domain.ReconciliationPlan, error) {
	var plan domain.ReconciliationPlan

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		existing, err := loadAffectedSales(tx, records, window)
		if err != nil {
			return fmt.Errorf("erro ao carregar vendas da janela: %w", err)
		}

		plan = domain.BuildReconciliationPlan(existing, records, window)

		if len(plan.DeleteIDs) > 0 {
			if _, err := tx.Exec(
				"DELETE FROM sales WHERE id = ANY($1)",
				pq.Array(plan.DeleteIDs),
			); err != nil {
				return fmt.Errorf("erro ao remover vendas substituídas: %w", err)
			}
		}

		if len(plan.Inserts) > 0 {
			if err := insertSales(tx, plan.Inserts); err != nil {
				return fmt.Errorf("erro ao inserir vendas: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// loadAffectedSales trava (FOR UPDATE) todas as vendas dos meses da janela e
// qualquer venda fora dela que compartilhe order_number com o upload.
func loadAffectedSales(tx *sql.Tx, records []domain.ResolvedRecord, window []domain.MonthWindow) ([]*domain.Sale, error) {
	orderNumbers := make([]string, 0, len(records))
	for _, rec := range records {
		orderNumbers = append(orderNumbers, rec.OrderNumber)
	}

	conditions := squirrel.Or{
		squirrel.Expr("order_number = ANY(?)", pq.Array(orderNumbers)),
	}
	for _, w := range window {
		conditions = append(conditions, squirrel.Expr(
			"(EXTRACT(YEAR FROM date) = ? AND EXTRACT(MONTH FROM date) = ?)",
			w.Year, int(w.Month),
		))
	}

	query, args, err := squirrel.
		Select("id", "date", "amount", "user_id", "order_number", "created_at", "updated_at").
		From(salesTable).
		Where(conditions).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.Sale
	for rows.Next() {
		var sale domain.Sale
		var userID sql.NullInt64
		if err := rows.Scan(
			&sale.ID,
			&sale.Date,
			&sale.Amount,
			&userID,
			&sale.OrderNumber,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := int(userID.Int64)
			sale.UserID = &id
		}
		sales = append(sales, &sale)
	}

	return sales, rows.Err()
}

func insertSales(tx *sql.Tx, records []domain.ResolvedRecord) error {
	queryBuilder := squirrel.
		Insert(salesTable).
		Columns("date", "amount", "user_id", "order_number").
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range records {
		queryBuilder = queryBuilder.Values(
			rec.Date.Format(time.DateOnly),
			rec.Amount,
			rec.UserID,
			rec.OrderNumber,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(query, args...)
	return err
}

func (r *saleRepository) ListByUserAndPeriod(userID int, year int, month time.Month) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "date", "amount", "user_id", "order_number", "created_at", "updated_at").
		From(salesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("EXTRACT(YEAR FROM date) = ?", year)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM date) = ?", int(month))).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.Sale
	for rows.Next() {
		var sale domain.Sale
		var saleUserID sql.NullInt64
		if err := rows.Scan(
			&sale.ID,
			&sale.Date,
			&sale.Amount,
			&saleUserID,
			&sale.OrderNumber,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if saleUserID.Valid {
			id := int(saleUserID.Int64)
			sale.UserID = &id
		}
		sales = append(sales, &sale)
	}

	return sales, rows.Err()
}

func (r *saleRepository) TotalByUserAndPeriod(userID int, year int, month time.Month) (float64, error) {
	return r.sumAmount(squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(salesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("EXTRACT(YEAR FROM date) = ?", year)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM date) = ?", int(month))))
}

// TotalByBranchAndPeriod soma as vendas de todos os usuários da filial.
func (r *saleRepository) TotalByBranchAndPeriod(branch string, year int, month time.Month) (float64, error) {
	return r.sumAmount(squirrel.
		Select("COALESCE(SUM(s.amount), 0)").
		From(salesTable + " s").
		Join(usersTable + " u ON u.id = s.user_id").
		Where(squirrel.Eq{"u.branch": branch}).
		Where(squirrel.Expr("EXTRACT(YEAR FROM s.date) = ?", year)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM s.date) = ?", int(month))))
}

func (r *saleRepository) TotalByCompanyAndPeriod(year int, month time.Month) (float64, error) {
	return r.sumAmount(squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(salesTable).
		Where(squirrel.Expr("EXTRACT(YEAR FROM date) = ?", year)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM date) = ?", int(month))))
}

func (r *saleRepository) sumAmount(queryBuilder squirrel.SelectBuilder) (float64, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *saleRepository) DeleteByID(saleID int64) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *saleRepository) DeleteByUser(userID int) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// SweepDuplicateOrders remove duplicatas de order_number que escaparam de
// passadas antigas, mantendo a venda de data mais recente. Usada pela rotina
// agendada de integridade.
func (r *saleRepository) SweepDuplicateOrders(ctx context.Context) (int64, error) {
	var removed int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			DELETE FROM sales s
			USING (
				SELECT order_number, MAX(date) AS latest_date
				FROM sales
				GROUP BY order_number
				HAVING COUNT(*) > 1
			) dup
			WHERE s.order_number = dup.order_number
			  AND s.date < dup.latest_date
		`)
		if err != nil {
			return err
		}

		removed, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
