package goalsetting

import (
	"errors"
	"time"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/domain"
)

// Erros de gestão de metas
var (
	ErrInvalidGoal    = errors.New("meta deve ser um valor positivo")
	ErrInvalidPeriod  = errors.New("período inválido")
	ErrSellerNotFound = errors.New("vendedor não encontrado")
)

type GoalSetter interface {
	SetIndividualGoal(userID int, goal float64, year int, month time.Month) error
	SetGeneralGoal(goal float64, year int, month time.Month) error
	GetGeneralGoal(year int, month time.Month) (*domain.GeneralGoal, error)
	ListSellerGoals(year int, month time.Month) ([]*SellerGoal, error)
}

// SellerGoal é a meta de um vendedor no período; Goal fica zerada para quem
// ainda não tem meta cadastrada no mês.
type SellerGoal struct {
	UserID int     `json:"user_id"`
	Name   string  `json:"name"`
	Goal   float64 `json:"goal"`
}

type Service struct {
	userRepo repository.UserRepository
	goalRepo repository.GoalRepository
}

func NewService(userRepo repository.UserRepository, goalRepo repository.GoalRepository) GoalSetter {
	return &Service{
		userRepo: userRepo,
		goalRepo: goalRepo,
	}
}

// SetIndividualGoal cria ou sobrescreve a meta mensal de um vendedor.
func (s *Service) SetIndividualGoal(userID int, goal float64, year int, month time.Month) error {
	if err := validatePeriod(year, month); err != nil {
		return err
	}
	if goal < 0 {
		return ErrInvalidGoal
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrSellerNotFound
	}

	return s.goalRepo.UpsertIndividualGoal(&domain.IndividualGoal{
		UserID: userID,
		Goal:   goal,
		Year:   year,
		Month:  month,
	})
}

// SetGeneralGoal cria ou sobrescreve a meta mensal da empresa.
func (s *Service) SetGeneralGoal(goal float64, year int, month time.Month) error {
	if err := validatePeriod(year, month); err != nil {
		return err
	}
	if goal < 0 {
		return ErrInvalidGoal
	}

	return s.goalRepo.UpsertGeneralGoal(&domain.GeneralGoal{
		Goal:  goal,
		Year:  year,
		Month: month,
	})
}

func (s *Service) GetGeneralGoal(year int, month time.Month) (*domain.GeneralGoal, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	return s.goalRepo.GetGeneralGoal(year, month)
}

// ListSellerGoals devolve todos os vendedores ativos com a meta do período;
// quem não tem meta cadastrada aparece com meta zero.
func (s *Service) ListSellerGoals(year int, month time.Month) ([]*SellerGoal, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	sellers, err := s.userRepo.ListActiveSellers()
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListIndividualGoals(year, month)
	if err != nil {
		return nil, err
	}

	goalByUser := make(map[int]float64, len(goals))
	for _, goal := range goals {
		goalByUser[goal.UserID] = goal.Goal
	}

	sellerGoals := make([]*SellerGoal, 0, len(sellers))
	for _, seller := range sellers {
		sellerGoals = append(sellerGoals, &SellerGoal{
			UserID: seller.ID,
			Name:   seller.Name,
			Goal:   goalByUser[seller.ID],
		})
	}

	return sellerGoals, nil
}

func validatePeriod(year int, month time.Month) error {
	if year < 2000 || year > 2100 || month < time.January || month > time.December {
		return ErrInvalidPeriod
	}
	return nil
}
