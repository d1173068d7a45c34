package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/TeuSpnl/comisys/infrastructure/database/postgres"
	"github.com/TeuSpnl/comisys/internal/domain"
)

const (
	individualGoalsTable = "individual_goals"
	generalGoalsTable    = "general_goals"
)

type GoalRepository interface {
	UpsertIndividualGoal(goal *domain.IndividualGoal) error
	GetIndividualGoal(userID int, year int, month time.Month) (*domain.IndividualGoal, error)
	ListIndividualGoals(year int, month time.Month) ([]*domain.IndividualGoal, error)
	UpsertGeneralGoal(goal *domain.GeneralGoal) error
	GetGeneralGoal(year int, month time.Month) (*domain.GeneralGoal, error)
	DeleteGoalsByUser(userID int) error
	DeleteOrphanGoals() (int64, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) UpsertIndividualGoal(goal *domain.IndividualGoal) error {
	query, args, err := squirrel.
		Insert(individualGoalsTable).
		Columns("user_id", "goal", "year", "month").
		Values(goal.UserID, goal.Goal, goal.Year, int(goal.Month)).
		Suffix(`
			ON CONFLICT (user_id, year, month) DO UPDATE SET
				goal = EXCLUDED.goal,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// GetIndividualGoal devolve a meta configurada para o período; nil quando o
// vendedor não tem meta naquele mês.
func (r *goalRepository) GetIndividualGoal(userID int, year int, month time.Month) (*domain.IndividualGoal, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "goal", "year", "month").
		From(individualGoalsTable).
		Where(squirrel.Eq{"user_id": userID, "year": year, "month": int(month)}).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var goal domain.IndividualGoal
	var monthInt int
	err = r.conn.QueryRow(query, args...).Scan(&goal.ID, &goal.UserID, &goal.Goal, &goal.Year, &monthInt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Month = time.Month(monthInt)
	return &goal, nil
}

func (r *goalRepository) ListIndividualGoals(year int, month time.Month) ([]*domain.IndividualGoal, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "goal", "year", "month").
		From(individualGoalsTable).
		Where(squirrel.Eq{"year": year, "month": int(month)}).
		OrderBy("user_id ASC").
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

	var goals []*domain.IndividualGoal
	for rows.Next() {
		var goal domain.IndividualGoal
		var monthInt int
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Goal, &goal.Year, &monthInt); err != nil {
			return nil, err
		}
		goal.Month = time.Month(monthInt)
		goals = append(goals, &goal)
	}

	return goals, rows.Err()
}

func (r *goalRepository) UpsertGeneralGoal(goal *domain.GeneralGoal) error {
	query, args, err := squirrel.
		Insert(generalGoalsTable).
		Columns("goal", "year", "month").
		Values(goal.Goal, goal.Year, int(goal.Month)).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				goal = EXCLUDED.goal,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *goalRepository) GetGeneralGoal(year int, month time.Month) (*domain.GeneralGoal, error) {
	query, args, err := squirrel.
		Select("id", "goal", "year", "month").
		From(generalGoalsTable).
		Where(squirrel.Eq{"year": year, "month": int(month)}).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var goal domain.GeneralGoal
	var monthInt int
	err = r.conn.QueryRow(query, args...).Scan(&goal.ID, &goal.Goal, &goal.Year, &monthInt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Month = time.Month(monthInt)
	return &goal, nil
}

// DeleteGoalsByUser acompanha a exclusão de um vendedor: metas sem usuário
// não significam nada.
func (r *goalRepository) DeleteGoalsByUser(userID int) error {
	query, args, err := squirrel.
		Delete(individualGoalsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// DeleteOrphanGoals remove metas cujo usuário já foi excluído. Rede de
// segurança da rotina de integridade.
func (r *goalRepository) DeleteOrphanGoals() (int64, error) {
	result, err := r.conn.Exec(`
		DELETE FROM individual_goals ig
		WHERE NOT EXISTS (
			SELECT 1 FROM users u
			WHERE u.id = ig.user_id AND u.deleted = false
		)
	`)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
